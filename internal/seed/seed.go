package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/uptrace/bun"
)

// Run loads the initial catalog into Postgres. It is idempotent by presence
// check only: if both tables already hold rows, nothing is written.
func Run(ctx context.Context, db *bun.DB) error {
	var questionCount, genreCount int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&questionCount); err != nil {
		return fmt.Errorf("count questions: %w", err)
	}
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM genres`).Scan(&genreCount); err != nil {
		return fmt.Errorf("count genres: %w", err)
	}
	if questionCount > 0 && genreCount > 0 {
		log.Printf("catalog already seeded (%d questions, %d genres), skipping", questionCount, genreCount)
		return nil
	}

	for _, g := range Genres {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO genres (id, name, description, icon, color, bg_color)
			 VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT (id) DO NOTHING`,
			g.ID, g.Name, g.Description, g.Icon, g.Color, g.BgColor); err != nil {
			return fmt.Errorf("seed genre %s: %w", g.ID, err)
		}
	}

	questions := QuestionsWithGenre()
	for _, q := range questions {
		opts, err := json.Marshal(q.Options)
		if err != nil {
			return fmt.Errorf("marshal options for %s: %w", q.ID, err)
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO questions (id, question, options, correct_answer, explanation, genre)
			 VALUES (?, ?, ?::jsonb, ?, ?, ?)
			 ON CONFLICT (id) DO NOTHING`,
			q.ID, q.Prompt, string(opts), q.Correct, q.Explanation, q.Genre); err != nil {
			return fmt.Errorf("seed question %s: %w", q.ID, err)
		}
	}

	log.Printf("seeded %d genres and %d questions", len(Genres), len(questions))
	return nil
}
