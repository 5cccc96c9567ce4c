package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"trivia-quiz-service/internal/auth"
	"trivia-quiz-service/internal/domain"
)

// UserRepository persists authenticated users. Guests never reach it.
type UserRepository interface {
	Create(ctx context.Context, rec domain.UserRecord) error
	FindByEmail(ctx context.Context, email string) (domain.UserRecord, error)
	FindByID(ctx context.Context, id string) (domain.UserRecord, error)
	List(ctx context.Context) ([]domain.UserRecord, error)
}

// AuthService implements registration, login, guest identities, and token
// verification on top of the user store and the token manager.
type AuthService struct {
	users  UserRepository
	tokens *auth.TokenManager
	now    func() time.Time
}

func NewAuthService(users UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens, now: time.Now}
}

// Register creates a durable user and returns their identity with tokens.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (domain.User, auth.TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if password == "" {
		return domain.User{}, auth.TokenPair{}, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return domain.User{}, auth.TokenPair{}, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, auth.TokenPair{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, auth.TokenPair{}, err
	}

	rec := domain.UserRecord{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err := s.users.Create(ctx, rec); err != nil {
		return domain.User{}, auth.TokenPair{}, err
	}

	user := domain.User{ID: rec.ID, Name: rec.Name, Email: rec.Email}
	pair, err := s.tokens.GeneratePair(user)
	if err != nil {
		return domain.User{}, auth.TokenPair{}, err
	}
	return user, pair, nil
}

// Login verifies credentials and returns the identity with fresh tokens.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, auth.TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	rec, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, auth.TokenPair{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, auth.TokenPair{}, err
	}
	if !auth.CheckPassword(rec.PasswordHash, password) {
		return domain.User{}, auth.TokenPair{}, domain.ErrInvalidCredentials
	}

	user := domain.User{ID: rec.ID, Name: rec.Name, Email: rec.Email}
	pair, err := s.tokens.GeneratePair(user)
	if err != nil {
		return domain.User{}, auth.TokenPair{}, err
	}
	return user, pair, nil
}

// GuestLogin mints an ephemeral identity. No user row is written; the
// identity lives only as long as its tokens.
func (s *AuthService) GuestLogin(name string) (domain.User, auth.TokenPair, error) {
	if strings.TrimSpace(name) == "" {
		name = "Guest"
	}
	user := domain.User{
		ID:      "guest_" + uuid.NewString(),
		Name:    name,
		IsGuest: true,
	}
	pair, err := s.tokens.GeneratePair(user)
	if err != nil {
		return domain.User{}, auth.TokenPair{}, err
	}
	return user, pair, nil
}

// Refresh exchanges a refresh token for a new pair.
func (s *AuthService) Refresh(refreshToken string) (auth.TokenPair, error) {
	return s.tokens.Refresh(refreshToken)
}

// Authenticate resolves an access token to the identity it carries.
func (s *AuthService) Authenticate(accessToken string) (domain.User, error) {
	claims, err := s.tokens.ValidateAccess(accessToken)
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:      claims.UserID,
		Name:    claims.Name,
		Email:   claims.Email,
		IsGuest: claims.IsGuest,
	}, nil
}
