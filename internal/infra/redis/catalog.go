package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"trivia-quiz-service/internal/domain"
)

// CatalogLoader fetches catalog content from a backing store.
type CatalogLoader interface {
	LoadGenreQuestions(ctx context.Context, genreID string) ([]domain.Question, error)
	LoadGenres(ctx context.Context) ([]domain.Genre, error)
}

// CatalogRepository caches catalog content as JSON blobs in Redis and falls
// back to a loader on cache miss:
//
//	SET catalog:genre:{genreID}:questions {json}
//	SET catalog:genres {json}
type CatalogRepository struct {
	client *redis.Client
	loader CatalogLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewCatalogRepository(client *redis.Client, loader CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CatalogRepository) GenreQuestions(ctx context.Context, genreID string) ([]domain.Question, error) {
	key := r.questionsKey(genreID)

	if raw, err := r.client.Get(ctx, key).Bytes(); err == nil {
		var questions []domain.Question
		if err := json.Unmarshal(raw, &questions); err == nil {
			return questions, nil
		}
	}

	result, err, _ := r.sf.Do(key, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if raw, err := r.client.Get(ctx, key).Bytes(); err == nil {
			var questions []domain.Question
			if err := json.Unmarshal(raw, &questions); err == nil {
				return questions, nil
			}
		}

		questions, err := r.loader.LoadGenreQuestions(ctx, genreID)
		if err != nil {
			return nil, err
		}
		r.store(ctx, key, questions)
		return questions, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

func (r *CatalogRepository) Genres(ctx context.Context) ([]domain.Genre, error) {
	key := r.genresKey()

	if raw, err := r.client.Get(ctx, key).Bytes(); err == nil {
		var genres []domain.Genre
		if err := json.Unmarshal(raw, &genres); err == nil {
			return genres, nil
		}
	}

	result, err, _ := r.sf.Do(key, func() (interface{}, error) {
		if raw, err := r.client.Get(ctx, key).Bytes(); err == nil {
			var genres []domain.Genre
			if err := json.Unmarshal(raw, &genres); err == nil {
				return genres, nil
			}
		}

		genres, err := r.loader.LoadGenres(ctx)
		if err != nil {
			return nil, err
		}
		r.store(ctx, key, genres)
		return genres, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Genre), nil
}

// store is best-effort: a failed cache write only costs the next caller a
// loader round-trip.
func (r *CatalogRepository) store(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = r.client.Set(ctx, key, raw, r.ttlWithJitter()).Err()
}

func (r *CatalogRepository) questionsKey(genreID string) string {
	return "catalog:genre:" + genreID + ":questions"
}

func (r *CatalogRepository) genresKey() string {
	return "catalog:genres"
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
