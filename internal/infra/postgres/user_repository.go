package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"trivia-quiz-service/internal/domain"
)

// UserRepository persists users in Postgres.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, rec domain.UserRecord) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, is_admin, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.Name, rec.Email, rec.PasswordHash, rec.IsAdmin, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.UserRecord, error) {
	return r.findBy(ctx,
		`SELECT id, name, email, password_hash, is_admin, created_at FROM users WHERE email=$1`, email)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.UserRecord, error) {
	return r.findBy(ctx,
		`SELECT id, name, email, password_hash, is_admin, created_at FROM users WHERE id=$1`, id)
}

func (r *UserRepository) findBy(ctx context.Context, query string, arg interface{}) (domain.UserRecord, error) {
	var rec domain.UserRecord
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&rec.ID, &rec.Name, &rec.Email, &rec.PasswordHash, &rec.IsAdmin, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserRecord{}, domain.ErrUserNotFound
		}
		return domain.UserRecord{}, fmt.Errorf("find user: %w", err)
	}
	return rec, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.UserRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, password_hash, is_admin, created_at FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.UserRecord
	for rows.Next() {
		var rec domain.UserRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Email, &rec.PasswordHash, &rec.IsAdmin, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
