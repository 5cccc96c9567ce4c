package app_test

import (
	"testing"
	"time"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/domain"
)

func scienceQuestions() []domain.Question {
	return []domain.Question{
		{ID: "q1", Prompt: "Symbol for gold?", Options: []string{"Go", "Au", "Ag", "Gd"}, Correct: 1, Genre: "science"},
		{ID: "q2", Prompt: "Red planet?", Options: []string{"Venus", "Jupiter", "Mars", "Saturn"}, Correct: 2, Genre: "science"},
		{ID: "q3", Prompt: "Largest organ?", Options: []string{"Liver", "Brain", "Skin", "Heart"}, Correct: 2, Genre: "science"},
	}
}

func TestSelectAnswerUpserts(t *testing.T) {
	s := app.NewSession("u1")
	s.Begin("science", scienceQuestions())
	s.Start()

	s.SelectAnswer("q1", 0)
	s.SelectAnswer("q2", 2)
	s.SelectAnswer("q1", 1) // change of mind replaces, never appends

	answers := s.Answers()
	if len(answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(answers))
	}
	if answers[0].QuestionID != "q1" || answers[0].SelectedAnswer != 1 {
		t.Fatalf("expected q1 answer replaced with 1, got %+v", answers[0])
	}
	if answers[1].QuestionID != "q2" || answers[1].SelectedAnswer != 2 {
		t.Fatalf("expected q2 answer 2, got %+v", answers[1])
	}
}

func TestNavigationClamps(t *testing.T) {
	s := app.NewSession("u1")
	s.Begin("science", scienceQuestions())
	s.Start()

	s.Previous()
	if got := s.CurrentIndex(); got != 0 {
		t.Fatalf("previous at start should stay at 0, got %d", got)
	}
	s.Next()
	s.Next()
	s.Next() // already at last question
	if got := s.CurrentIndex(); got != 2 {
		t.Fatalf("next at end should stay at 2, got %d", got)
	}
	s.Previous()
	if got := s.CurrentIndex(); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
}

func TestEndComputesElapsedSeconds(t *testing.T) {
	current := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s := app.NewSessionWithClock("u1", func() time.Time { return current })
	s.Begin("science", scienceQuestions())
	s.Start()

	s.SelectAnswer("q1", 1)
	s.SelectAnswer("q2", 2)
	s.SelectAnswer("q3", 0)

	current = current.Add(92*time.Second + 700*time.Millisecond)
	result := s.End()

	if result.TimeSpent != 92 {
		t.Fatalf("expected elapsed 92s (sub-second truncated), got %d", result.TimeSpent)
	}
	if result.Score != 2 {
		t.Fatalf("expected score 2, got %d", result.Score)
	}
	if result.TotalQuestions != 3 {
		t.Fatalf("expected 3 total questions, got %d", result.TotalQuestions)
	}
	if !result.Answers[0].IsCorrect || result.Answers[2].IsCorrect {
		t.Fatalf("expected q1 correct and q3 incorrect, got %+v", result.Answers)
	}
}

func TestEndBeforeStartYieldsZeroElapsed(t *testing.T) {
	s := app.NewSession("u1")
	s.Begin("science", scienceQuestions())
	// Start never called.
	result := s.End()
	if result.TimeSpent != 0 {
		t.Fatalf("expected elapsed 0 for unstarted session, got %d", result.TimeSpent)
	}
}

func TestEndRetainsStateUntilReset(t *testing.T) {
	s := app.NewSession("u1")
	s.Begin("science", scienceQuestions())
	s.Start()
	s.SelectAnswer("q1", 1)
	s.End()

	if len(s.Answers()) != 1 || s.Genre() != "science" {
		t.Fatalf("end must retain state for review, got genre=%q answers=%d", s.Genre(), len(s.Answers()))
	}

	s.Reset()
	if s.Genre() != "" || len(s.Questions()) != 0 || len(s.Answers()) != 0 || s.Started() {
		t.Fatalf("reset must clear all state")
	}

	// Reset is idempotent.
	s.Reset()
	if s.Started() {
		t.Fatalf("second reset changed state")
	}
}

func TestGradeUnknownQuestionIsIncorrect(t *testing.T) {
	questions := scienceQuestions()
	answers := []domain.AnswerSelection{
		{QuestionID: "q1", SelectedAnswer: 1},
		{QuestionID: "ghost", SelectedAnswer: 1},
		{QuestionID: "q2", SelectedAnswer: 7}, // out of range, kept as-is
	}
	result := app.Grade("science", questions, answers, 30)
	if result.Score != 1 {
		t.Fatalf("expected score 1, got %d", result.Score)
	}
	if result.Answers[1].IsCorrect {
		t.Fatalf("unknown question must grade incorrect")
	}
	if result.Answers[2].SelectedAnswer != 7 || result.Answers[2].IsCorrect {
		t.Fatalf("out-of-range selection must be kept verbatim and graded incorrect, got %+v", result.Answers[2])
	}
}

func TestGradePerfectRun(t *testing.T) {
	questions := scienceQuestions()
	answers := []domain.AnswerSelection{
		{QuestionID: "q1", SelectedAnswer: 1},
		{QuestionID: "q2", SelectedAnswer: 2},
		{QuestionID: "q3", SelectedAnswer: 2},
	}
	result := app.Grade("science", questions, answers, 45)
	if result.Score != len(questions) {
		t.Fatalf("expected perfect score %d, got %d", len(questions), result.Score)
	}
	for i, a := range result.Answers {
		if !a.IsCorrect {
			t.Fatalf("answer %d should be correct: %+v", i, a)
		}
	}
}
