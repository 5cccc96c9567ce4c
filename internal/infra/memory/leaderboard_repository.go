package memory

import (
	"context"
	"sort"
	"sync"

	"trivia-quiz-service/internal/domain"
)

// LeaderboardRepository is an in-memory implementation of
// app.LeaderboardRepository, used by tests and Postgres-less runs.
type LeaderboardRepository struct {
	mu      sync.RWMutex
	entries []domain.LeaderboardEntry
}

func NewLeaderboardRepository() *LeaderboardRepository {
	return &LeaderboardRepository{}
}

func (r *LeaderboardRepository) FindByUserGenre(_ context.Context, userID, genre string) ([]domain.LeaderboardEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.LeaderboardEntry
	for _, e := range r.entries {
		if e.UserID == userID && e.Genre == genre && !e.IsGuest {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *LeaderboardRepository) Insert(_ context.Context, entry domain.LeaderboardEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *LeaderboardRepository) Update(_ context.Context, entry domain.LeaderboardEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].ID == entry.ID {
			r.entries[i] = entry
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *LeaderboardRepository) TopByGenre(_ context.Context, genre string, limit int) ([]domain.LeaderboardEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.LeaderboardEntry
	for _, e := range r.entries {
		if e.Genre == genre {
			out = append(out, e)
		}
	}
	sortBoard(out)
	return clip(out, limit), nil
}

func (r *LeaderboardRepository) TopOverall(_ context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]domain.LeaderboardEntry(nil), r.entries...)
	sortBoard(out)
	return clip(out, limit), nil
}

func (r *LeaderboardRepository) HistoryByUser(_ context.Context, userID string) ([]domain.LeaderboardEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.LeaderboardEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].TimeSpent != out[j].TimeSpent {
			return out[i].TimeSpent < out[j].TimeSpent
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// sortBoard orders entries the way the leaderboard ranks: score descending,
// then faster time first.
func sortBoard(entries []domain.LeaderboardEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].TimeSpent < entries[j].TimeSpent
	})
}

func clip(entries []domain.LeaderboardEntry, limit int) []domain.LeaderboardEntry {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
