package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"trivia-quiz-service/internal/domain"
)

// LeaderboardRepository persists leaderboard entries in Postgres. Ranking
// order (score desc, time asc) is pushed into SQL so the limit applies
// after sorting.
type LeaderboardRepository struct {
	pool *pgxpool.Pool
}

func NewLeaderboardRepository(pool *pgxpool.Pool) *LeaderboardRepository {
	return &LeaderboardRepository{pool: pool}
}

const entryColumns = `id, user_id, name, score, total_questions, time_spent, genre, is_guest, ts, answers`

func (r *LeaderboardRepository) FindByUserGenre(ctx context.Context, userID, genre string) ([]domain.LeaderboardEntry, error) {
	return r.query(ctx,
		`SELECT `+entryColumns+` FROM leaderboard
		 WHERE user_id=$1 AND genre=$2 AND is_guest=false ORDER BY ts`, userID, genre)
}

func (r *LeaderboardRepository) Insert(ctx context.Context, e domain.LeaderboardEntry) error {
	answers, err := json.Marshal(e.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO leaderboard (id, user_id, name, score, total_questions, time_spent, genre, is_guest, ts, answers)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.ID, e.UserID, e.Name, e.Score, e.TotalQuestions, e.TimeSpent, e.Genre, e.IsGuest, e.Timestamp, answers)
	if err != nil {
		return fmt.Errorf("insert leaderboard entry: %w", err)
	}
	return nil
}

// Update replaces the scoring fields of an existing entry, preserving its
// identity. Only called when the upsert policy decided the run is better.
func (r *LeaderboardRepository) Update(ctx context.Context, e domain.LeaderboardEntry) error {
	answers, err := json.Marshal(e.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`UPDATE leaderboard
		 SET score=$2, total_questions=$3, time_spent=$4, ts=$5, answers=$6
		 WHERE id=$1`,
		e.ID, e.Score, e.TotalQuestions, e.TimeSpent, e.Timestamp, answers)
	if err != nil {
		return fmt.Errorf("update leaderboard entry: %w", err)
	}
	return nil
}

func (r *LeaderboardRepository) TopByGenre(ctx context.Context, genre string, limit int) ([]domain.LeaderboardEntry, error) {
	return r.query(ctx,
		`SELECT `+entryColumns+` FROM leaderboard
		 WHERE genre=$1 ORDER BY score DESC, time_spent ASC LIMIT $2`, genre, limit)
}

func (r *LeaderboardRepository) TopOverall(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	return r.query(ctx,
		`SELECT `+entryColumns+` FROM leaderboard
		 ORDER BY score DESC, time_spent ASC LIMIT $1`, limit)
}

func (r *LeaderboardRepository) HistoryByUser(ctx context.Context, userID string) ([]domain.LeaderboardEntry, error) {
	return r.query(ctx,
		`SELECT `+entryColumns+` FROM leaderboard
		 WHERE user_id=$1 ORDER BY score DESC, time_spent ASC, ts DESC`, userID)
}

func (r *LeaderboardRepository) query(ctx context.Context, sql string, args ...interface{}) ([]domain.LeaderboardEntry, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var (
			e          domain.LeaderboardEntry
			rawAnswers []byte
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.Score, &e.TotalQuestions,
			&e.TimeSpent, &e.Genre, &e.IsGuest, &e.Timestamp, &rawAnswers); err != nil {
			return nil, fmt.Errorf("scan leaderboard entry: %w", err)
		}
		if len(rawAnswers) > 0 {
			if err := json.Unmarshal(rawAnswers, &e.Answers); err != nil {
				return nil, fmt.Errorf("unmarshal answers: %w", err)
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	return entries, nil
}
