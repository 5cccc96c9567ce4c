package app

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"trivia-quiz-service/internal/domain"
)

// ContentRepository mutates and counts catalog content. Reads go through
// CatalogRepository so they benefit from caching; admin writes go straight
// to the backing store.
type ContentRepository interface {
	InsertQuestion(ctx context.Context, q domain.Question) error
	DeleteQuestion(ctx context.Context, id string) error
	InsertGenre(ctx context.Context, g domain.Genre) error
	DeleteGenre(ctx context.Context, id string) error
	CountQuestions(ctx context.Context) (int, error)
	CountGenres(ctx context.Context) (int, error)
}

// Stats is the admin dashboard summary.
type Stats struct {
	Questions int `json:"questions"`
	Genres    int `json:"genres"`
	Users     int `json:"users"`
}

// AdminService backs the admin panel: content management and user listing.
type AdminService struct {
	users   UserRepository
	content ContentRepository
}

func NewAdminService(users UserRepository, content ContentRepository) *AdminService {
	return &AdminService{users: users, content: content}
}

// EnsureAdmin authorizes the caller by consulting the user store, not the
// token: the admin flag is server-side state and is re-read on every admin
// request. Guests are always denied.
func (s *AdminService) EnsureAdmin(ctx context.Context, user domain.User) error {
	if user.IsGuest {
		return domain.ErrAdminOnly
	}
	rec, err := s.users.FindByID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrAdminOnly
		}
		return err
	}
	if !rec.IsAdmin {
		return domain.ErrAdminOnly
	}
	return nil
}

// AddQuestion stores a new question, assigning an ID when absent.
func (s *AdminService) AddQuestion(ctx context.Context, q domain.Question) (domain.Question, error) {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if err := s.content.InsertQuestion(ctx, q); err != nil {
		return domain.Question{}, err
	}
	return q, nil
}

// DeleteQuestion removes a question by ID.
func (s *AdminService) DeleteQuestion(ctx context.Context, id string) error {
	return s.content.DeleteQuestion(ctx, id)
}

// AddGenre stores a new genre, assigning an ID when absent.
func (s *AdminService) AddGenre(ctx context.Context, g domain.Genre) (domain.Genre, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if err := s.content.InsertGenre(ctx, g); err != nil {
		return domain.Genre{}, err
	}
	return g, nil
}

// DeleteGenre removes a genre by ID. Its questions are left in place; they
// simply stop being reachable through the genre list.
func (s *AdminService) DeleteGenre(ctx context.Context, id string) error {
	return s.content.DeleteGenre(ctx, id)
}

// Users lists all registered users.
func (s *AdminService) Users(ctx context.Context) ([]domain.UserRecord, error) {
	return s.users.List(ctx)
}

// Stats aggregates counts for the dashboard.
func (s *AdminService) Stats(ctx context.Context) (Stats, error) {
	questions, err := s.content.CountQuestions(ctx)
	if err != nil {
		return Stats{}, err
	}
	genres, err := s.content.CountGenres(ctx)
	if err != nil {
		return Stats{}, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Questions: questions, Genres: genres, Users: len(users)}, nil
}
