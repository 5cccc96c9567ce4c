package app

import (
	"sync"
	"time"

	"trivia-quiz-service/internal/domain"
)

// Session is the mutable in-memory state of one quiz attempt, from genre
// selection through submission. All operations are local mutations; none
// fail. Calling End before Start yields an elapsed time of 0 rather than
// an error.
type Session struct {
	mu        sync.RWMutex
	userID    string
	genre     string
	questions []domain.Question
	index     int
	answers   []domain.AnswerSelection
	startedAt time.Time
	endedAt   time.Time
	now       func() time.Time
}

func NewSession(userID string) *Session {
	return NewSessionWithClock(userID, time.Now)
}

// NewSessionWithClock allows deterministic timestamps in tests.
func NewSessionWithClock(userID string, now func() time.Time) *Session {
	return &Session{userID: userID, now: now}
}

// Begin loads a genre's question list into the session. The question set is
// fixed for the lifetime of the attempt.
func (s *Session) Begin(genre string, questions []domain.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.genre = genre
	s.questions = append([]domain.Question(nil), questions...)
	s.index = 0
}

// Start records the start timestamp, resets the cursor, and clears answers.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startedAt = s.now()
	s.index = 0
	s.answers = nil
}

// SelectAnswer upserts the selection for a question: the latest call per
// question ID wins. The option index is stored as-is; range checking is
// left to the client, and out-of-range picks simply grade incorrect.
func (s *Session) SelectAnswer(questionID string, selectedAnswer int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.answers {
		if s.answers[i].QuestionID == questionID {
			s.answers[i].SelectedAnswer = selectedAnswer
			return
		}
	}
	s.answers = append(s.answers, domain.AnswerSelection{
		QuestionID:     questionID,
		SelectedAnswer: selectedAnswer,
	})
}

// Next advances the cursor; silent no-op at the last question.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index < len(s.questions)-1 {
		s.index++
	}
}

// Previous retreats the cursor; silent no-op at the first question.
func (s *Session) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index > 0 {
		s.index--
	}
}

// End records the end timestamp and returns the graded result. Session
// state is retained so the client can review answers; Reset clears it.
func (s *Session) End() domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endedAt = s.now()

	timeSpent := 0
	if !s.startedAt.IsZero() {
		timeSpent = int(s.endedAt.Sub(s.startedAt) / time.Second)
	}
	return Grade(s.genre, s.questions, s.answers, timeSpent)
}

// Reset returns the session to its initial empty state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.genre = ""
	s.questions = nil
	s.index = 0
	s.answers = nil
	s.startedAt = time.Time{}
	s.endedAt = time.Time{}
}

// UserID returns the owning user's ID.
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Genre returns the active genre, empty if none was chosen.
func (s *Session) Genre() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.genre
}

// Questions returns a copy of the loaded question list.
func (s *Session) Questions() []domain.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Question(nil), s.questions...)
}

// CurrentIndex returns the 0-based cursor position.
func (s *Session) CurrentIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// Answers returns a copy of the stored selections.
func (s *Session) Answers() []domain.AnswerSelection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.AnswerSelection(nil), s.answers...)
}

// Started reports whether Start has been called since the last Reset.
func (s *Session) Started() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.startedAt.IsZero()
}
