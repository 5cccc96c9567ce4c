package app

import "trivia-quiz-service/internal/domain"

// Grade derives a Result from stored selections. A selection referencing a
// question outside the loaded list is graded incorrect, never rejected.
// Time is recorded but does not affect the score; it only breaks ties on
// the leaderboard.
func Grade(genre string, questions []domain.Question, answers []domain.AnswerSelection, timeSpent int) domain.Result {
	byID := make(map[string]domain.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	records := make([]domain.AnswerRecord, 0, len(answers))
	score := 0
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		correct := ok && q.Correct == a.SelectedAnswer
		if correct {
			score++
		}
		records = append(records, domain.AnswerRecord{
			QuestionID:     a.QuestionID,
			SelectedAnswer: a.SelectedAnswer,
			IsCorrect:      correct,
		})
	}

	return domain.Result{
		Genre:          genre,
		Score:          score,
		TotalQuestions: len(questions),
		TimeSpent:      timeSpent,
		Answers:        records,
	}
}
