package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"trivia-quiz-service/internal/domain"
)

// CatalogLoader fetches catalog content from a backing store.
type CatalogLoader interface {
	LoadGenreQuestions(ctx context.Context, genreID string) ([]domain.Question, error)
	LoadGenres(ctx context.Context) ([]domain.Genre, error)
}

// CatalogRepository caches per-genre question lists and the genre list with
// TTL to avoid repeated store hits.
type CatalogRepository struct {
	loader CatalogLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	questions map[string]cachedQuestions
	genres    *cachedGenres
}

type cachedQuestions struct {
	questions []domain.Question
	expiresAt time.Time
}

type cachedGenres struct {
	genres    []domain.Genre
	expiresAt time.Time
}

func NewCatalogRepository(loader CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		loader:    loader,
		ttl:       ttl,
		clock:     time.Now,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
		questions: make(map[string]cachedQuestions),
	}
}

func (r *CatalogRepository) GenreQuestions(ctx context.Context, genreID string) ([]domain.Question, error) {
	now := r.clock()

	r.mu.RLock()
	if entry, ok := r.questions[genreID]; ok && entry.expiresAt.After(now) {
		r.mu.RUnlock()
		return entry.questions, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do("questions:"+genreID, func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if entry, ok := r.questions[genreID]; ok && entry.expiresAt.After(now) {
			r.mu.RUnlock()
			return entry.questions, nil
		}
		r.mu.RUnlock()

		questions, err := r.loader.LoadGenreQuestions(ctx, genreID)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.questions[genreID] = cachedQuestions{
			questions: questions,
			expiresAt: now.Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return questions, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

func (r *CatalogRepository) Genres(ctx context.Context) ([]domain.Genre, error) {
	now := r.clock()

	r.mu.RLock()
	if r.genres != nil && r.genres.expiresAt.After(now) {
		genres := r.genres.genres
		r.mu.RUnlock()
		return genres, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do("genres", func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if r.genres != nil && r.genres.expiresAt.After(now) {
			genres := r.genres.genres
			r.mu.RUnlock()
			return genres, nil
		}
		r.mu.RUnlock()

		genres, err := r.loader.LoadGenres(ctx)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.genres = &cachedGenres{genres: genres, expiresAt: now.Add(r.ttlWithJitter())}
		r.mu.Unlock()
		return genres, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Genre), nil
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
