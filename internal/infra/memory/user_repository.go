package memory

import (
	"context"
	"sort"
	"sync"

	"trivia-quiz-service/internal/domain"
)

// UserRepository is an in-memory implementation of app.UserRepository.
type UserRepository struct {
	mu    sync.RWMutex
	byID  map[string]domain.UserRecord
	byEml map[string]string // email -> id
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:  make(map[string]domain.UserRecord),
		byEml: make(map[string]string),
	}
}

func (r *UserRepository) Create(_ context.Context, rec domain.UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEml[rec.Email]; ok {
		return domain.ErrEmailTaken
	}
	r.byID[rec.ID] = rec
	r.byEml[rec.Email] = rec.ID
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (domain.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEml[email]
	if !ok {
		return domain.UserRecord{}, domain.ErrUserNotFound
	}
	return r.byID[id], nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (domain.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byID[id]
	if !ok {
		return domain.UserRecord{}, domain.ErrUserNotFound
	}
	return rec, nil
}

func (r *UserRepository) List(_ context.Context) ([]domain.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]domain.UserRecord, 0, len(r.byID))
	for _, rec := range r.byID {
		users = append(users, rec)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

// SetAdmin flips the admin flag; test helper for admin-path coverage.
func (r *UserRepository) SetAdmin(id string, isAdmin bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.byID[id]; ok {
		rec.IsAdmin = isAdmin
		r.byID[id] = rec
	}
}
