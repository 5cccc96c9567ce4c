package app

import (
	"context"
	"time"

	"trivia-quiz-service/internal/domain"
)

// SessionRepository abstracts how per-user quiz sessions are stored
// (in-memory, Redis-backed, etc).
type SessionRepository interface {
	GetOrCreate(userID string) *Session
	Get(userID string) (*Session, bool)
	Delete(userID string)
}

// CatalogRepository serves quiz content (questions and genres), typically
// through a cache in front of the backing store.
type CatalogRepository interface {
	GenreQuestions(ctx context.Context, genreID string) ([]domain.Question, error)
	Genres(ctx context.Context) ([]domain.Genre, error)
}

// LeaderboardRepository persists and queries leaderboard entries.
type LeaderboardRepository interface {
	// FindByUserGenre returns the non-guest entries for one user and genre.
	// The upsert invariant keeps this at a single row, but callers must
	// tolerate duplicates from historical races.
	FindByUserGenre(ctx context.Context, userID, genre string) ([]domain.LeaderboardEntry, error)
	Insert(ctx context.Context, entry domain.LeaderboardEntry) error
	Update(ctx context.Context, entry domain.LeaderboardEntry) error
	TopByGenre(ctx context.Context, genre string, limit int) ([]domain.LeaderboardEntry, error)
	TopOverall(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	HistoryByUser(ctx context.Context, userID string) ([]domain.LeaderboardEntry, error)
}

// GenreAll merges every genre's entries into one board.
const GenreAll = "all"

// TopLimit caps the merged leaderboard, matching the UI's top-10 view.
const TopLimit = 10

// QuizService contains the quiz use cases: starting an attempt, recording
// answers, grading, and publishing results to the leaderboard.
type QuizService struct {
	sessions SessionRepository
	catalog  CatalogRepository
	board    LeaderboardRepository
	hub      *LeaderboardHub
	now      func() time.Time
}

func NewQuizService(sessions SessionRepository, catalog CatalogRepository, board LeaderboardRepository, hub *LeaderboardHub) *QuizService {
	return &QuizService{
		sessions: sessions,
		catalog:  catalog,
		board:    board,
		hub:      hub,
		now:      time.Now,
	}
}

// Genres lists the available quiz topics.
func (s *QuizService) Genres(ctx context.Context) ([]domain.Genre, error) {
	return s.catalog.Genres(ctx)
}

// GenreQuestions returns the question list for a genre.
func (s *QuizService) GenreQuestions(ctx context.Context, genreID string) ([]domain.Question, error) {
	return s.catalog.GenreQuestions(ctx, genreID)
}

// StartQuiz loads the genre's questions into the user's session and starts
// the clock. Any previous attempt state is discarded.
func (s *QuizService) StartQuiz(ctx context.Context, userID, genreID string) ([]domain.Question, error) {
	questions, err := s.catalog.GenreQuestions(ctx, genreID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, domain.ErrGenreNotFound
	}

	session := s.sessions.GetOrCreate(userID)
	session.Begin(genreID, questions)
	session.Start()
	return questions, nil
}

// SelectAnswer stores a selection in the user's active session.
func (s *QuizService) SelectAnswer(userID, questionID string, selectedAnswer int) error {
	session, ok := s.sessions.Get(userID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	session.SelectAnswer(questionID, selectedAnswer)
	return nil
}

// Next advances the user's question cursor.
func (s *QuizService) Next(userID string) error {
	session, ok := s.sessions.Get(userID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	session.Next()
	return nil
}

// Previous retreats the user's question cursor.
func (s *QuizService) Previous(userID string) error {
	session, ok := s.sessions.Get(userID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	session.Previous()
	return nil
}

// Session exposes the caller's active session state.
func (s *QuizService) Session(userID string) (*Session, bool) {
	return s.sessions.Get(userID)
}

// Submit finalizes the attempt, persists it under the upsert policy, and
// broadcasts the refreshed leaderboard to live subscribers. The session is
// retained for answer review until ResetQuiz.
func (s *QuizService) Submit(ctx context.Context, user domain.User) (domain.Result, domain.UpsertOutcome, error) {
	session, ok := s.sessions.Get(user.ID)
	if !ok {
		return domain.Result{}, "", domain.ErrSessionNotFound
	}

	result := session.End()
	outcome, err := s.publishResult(ctx, user, result)
	if err != nil {
		return result, "", err
	}

	s.broadcast(ctx, result.Genre)
	s.broadcast(ctx, GenreAll)
	return result, outcome, nil
}

// ResetQuiz clears the user's session, dropping it from the store.
func (s *QuizService) ResetQuiz(userID string) {
	if session, ok := s.sessions.Get(userID); ok {
		session.Reset()
	}
	s.sessions.Delete(userID)
}

// Leaderboard returns the board for one genre, or the merged top list for
// GenreAll (and for an empty genre).
func (s *QuizService) Leaderboard(ctx context.Context, genre string) (domain.Leaderboard, error) {
	var (
		entries []domain.LeaderboardEntry
		err     error
	)
	if genre == "" || genre == GenreAll {
		genre = GenreAll
		entries, err = s.board.TopOverall(ctx, TopLimit)
	} else {
		entries, err = s.board.TopByGenre(ctx, genre, TopLimit)
	}
	if err != nil {
		return domain.Leaderboard{}, err
	}
	return domain.Leaderboard{Genre: genre, Entries: entries, UpdatedAt: s.now()}, nil
}

// History returns the caller's own leaderboard entries, best first.
func (s *QuizService) History(ctx context.Context, userID string) ([]domain.LeaderboardEntry, error) {
	return s.board.HistoryByUser(ctx, userID)
}

func (s *QuizService) broadcast(ctx context.Context, genre string) {
	lb, err := s.Leaderboard(ctx, genre)
	if err != nil {
		return
	}
	s.hub.Broadcast(lb)
}
