package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"trivia-quiz-service/internal/domain"
)

// Catalog serves quiz content from Postgres. It is the CatalogLoader behind
// the cache layers and the ContentRepository behind the admin panel.
type Catalog struct {
	pool *pgxpool.Pool
}

func NewCatalog(pool *pgxpool.Pool) *Catalog {
	return &Catalog{pool: pool}
}

func (c *Catalog) LoadGenreQuestions(ctx context.Context, genreID string) ([]domain.Question, error) {
	rows, err := c.pool.Query(ctx,
		`SELECT id, question, options, correct_answer, COALESCE(explanation, ''), genre
		 FROM questions WHERE genre=$1 ORDER BY id`, genreID)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var (
			q       domain.Question
			rawOpts []byte
		)
		if err := rows.Scan(&q.ID, &q.Prompt, &rawOpts, &q.Correct, &q.Explanation, &q.Genre); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if err := json.Unmarshal(rawOpts, &q.Options); err != nil {
			return nil, fmt.Errorf("unmarshal options: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return questions, nil
}

func (c *Catalog) LoadGenres(ctx context.Context) ([]domain.Genre, error) {
	rows, err := c.pool.Query(ctx,
		`SELECT id, name, description, icon, color, bg_color FROM genres ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("load genres: %w", err)
	}
	defer rows.Close()

	var genres []domain.Genre
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.Icon, &g.Color, &g.BgColor); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load genres: %w", err)
	}
	return genres, nil
}

func (c *Catalog) InsertQuestion(ctx context.Context, q domain.Question) error {
	opts, err := json.Marshal(q.Options)
	if err != nil {
		return fmt.Errorf("marshal options: %w", err)
	}
	_, err = c.pool.Exec(ctx,
		`INSERT INTO questions (id, question, options, correct_answer, explanation, genre)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		q.ID, q.Prompt, opts, q.Correct, q.Explanation, q.Genre)
	if err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}

func (c *Catalog) DeleteQuestion(ctx context.Context, id string) error {
	tag, err := c.pool.Exec(ctx, `DELETE FROM questions WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func (c *Catalog) InsertGenre(ctx context.Context, g domain.Genre) error {
	_, err := c.pool.Exec(ctx,
		`INSERT INTO genres (id, name, description, icon, color, bg_color)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		g.ID, g.Name, g.Description, g.Icon, g.Color, g.BgColor)
	if err != nil {
		return fmt.Errorf("insert genre: %w", err)
	}
	return nil
}

func (c *Catalog) DeleteGenre(ctx context.Context, id string) error {
	tag, err := c.pool.Exec(ctx, `DELETE FROM genres WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGenreNotFound
	}
	return nil
}

func (c *Catalog) CountQuestions(ctx context.Context) (int, error) {
	return c.count(ctx, `SELECT COUNT(*) FROM questions`)
}

func (c *Catalog) CountGenres(ctx context.Context) (int, error) {
	return c.count(ctx, `SELECT COUNT(*) FROM genres`)
}

func (c *Catalog) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := c.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
