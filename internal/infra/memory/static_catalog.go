package memory

import (
	"context"
	"sync"

	"trivia-quiz-service/internal/domain"
)

// StaticCatalog is a mutable in-memory catalog backed by maps. It serves as
// both the CatalogLoader and the admin ContentRepository when running
// without Postgres (tests, demos).
type StaticCatalog struct {
	mu        sync.RWMutex
	questions map[string][]domain.Question // keyed by genre ID
	genres    []domain.Genre
}

func NewStaticCatalog(genres []domain.Genre, questions map[string][]domain.Question) *StaticCatalog {
	if questions == nil {
		questions = make(map[string][]domain.Question)
	}
	return &StaticCatalog{questions: questions, genres: genres}
}

func (c *StaticCatalog) LoadGenreQuestions(_ context.Context, genreID string) ([]domain.Question, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	questions, ok := c.questions[genreID]
	if !ok {
		return nil, domain.ErrGenreNotFound
	}
	return append([]domain.Question(nil), questions...), nil
}

func (c *StaticCatalog) LoadGenres(_ context.Context) ([]domain.Genre, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Genre(nil), c.genres...), nil
}

func (c *StaticCatalog) InsertQuestion(_ context.Context, q domain.Question) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.questions[q.Genre] = append(c.questions[q.Genre], q)
	return nil
}

func (c *StaticCatalog) DeleteQuestion(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for genre, questions := range c.questions {
		for i := range questions {
			if questions[i].ID == id {
				c.questions[genre] = append(questions[:i], questions[i+1:]...)
				return nil
			}
		}
	}
	return domain.ErrQuestionNotFound
}

func (c *StaticCatalog) InsertGenre(_ context.Context, g domain.Genre) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.genres = append(c.genres, g)
	return nil
}

func (c *StaticCatalog) DeleteGenre(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.genres {
		if c.genres[i].ID == id {
			c.genres = append(c.genres[:i], c.genres[i+1:]...)
			return nil
		}
	}
	return domain.ErrGenreNotFound
}

func (c *StaticCatalog) CountQuestions(_ context.Context) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := 0
	for _, questions := range c.questions {
		total += len(questions)
	}
	return total, nil
}

func (c *StaticCatalog) CountGenres(_ context.Context) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.genres), nil
}
