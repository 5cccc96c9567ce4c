package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/infra/memory"
)

func TestCatalogCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)
	loader := &countingLoader{CatalogLoader: sampleCatalog()}
	repo := NewCatalogRepository(client, loader, time.Minute)

	if _, err := repo.GenreQuestions(context.Background(), "science"); err != nil {
		t.Fatalf("questions: %v", err)
	}
	if loader.questionCalls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.questionCalls)
	}
	if !mr.Exists("catalog:genre:science:questions") {
		t.Fatal("expected questions cached in redis")
	}

	// Second call should hit cache, loader not incremented.
	if _, err := repo.GenreQuestions(context.Background(), "science"); err != nil {
		t.Fatalf("questions 2: %v", err)
	}
	if loader.questionCalls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.questionCalls)
	}

	if _, err := repo.Genres(context.Background()); err != nil {
		t.Fatalf("genres: %v", err)
	}
	if !mr.Exists("catalog:genres") {
		t.Fatal("expected genres cached in redis")
	}
}

func TestCatalogMissPropagates(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	repo := NewCatalogRepository(newClient(mr), sampleCatalog(), time.Minute)
	if _, err := repo.GenreQuestions(context.Background(), "philately"); err != domain.ErrGenreNotFound {
		t.Fatalf("expected genre-not-found, got %v", err)
	}
}

type countingLoader struct {
	CatalogLoader
	questionCalls int
	genreCalls    int
}

func (l *countingLoader) LoadGenreQuestions(ctx context.Context, genreID string) ([]domain.Question, error) {
	l.questionCalls++
	return l.CatalogLoader.LoadGenreQuestions(ctx, genreID)
}

func (l *countingLoader) LoadGenres(ctx context.Context) ([]domain.Genre, error) {
	l.genreCalls++
	return l.CatalogLoader.LoadGenres(ctx)
}

func sampleCatalog() *memory.StaticCatalog {
	return memory.NewStaticCatalog(
		[]domain.Genre{{ID: "science", Name: "Science"}},
		map[string][]domain.Question{
			"science": {
				{ID: "q1", Prompt: "What is 2 + 2?", Options: []string{"3", "4", "5", "6"}, Correct: 1, Genre: "science"},
			},
		},
	)
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}
