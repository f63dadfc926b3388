package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"quizhub/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type pgUserRepo struct {
	pool *pgxpool.Pool
}

func (r *pgUserRepo) CreateUser(ctx context.Context, u *model.User) error {
	completed := u.CompletedQuizzes
	if completed == nil {
		completed = []model.CompletedQuiz{}
	}
	payload, err := json.Marshal(completed)
	if err != nil {
		return fmt.Errorf("encoding completed quizzes: %w", err)
	}
	query := `
		INSERT INTO users (id, name, email, joined_at, completed_quizzes)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.pool.Exec(ctx, query, u.ID, u.Name, u.Email, u.JoinedAt, payload); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("creating user %s: %w", u.Email, err)
	}
	return nil
}

func (r *pgUserRepo) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return n, nil
}
