package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"quizhub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgCourseRepo struct {
	pool *pgxpool.Pool
}

func (r *pgCourseRepo) ListCourses(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx, `SELECT key, name, days FROM courses ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying courses: %w", err)
	}
	defer rows.Close()

	courses := []model.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning course row: %w", err)
		}
		courses = append(courses, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating course rows: %w", err)
	}
	return courses, nil
}

func (r *pgCourseRepo) GetCourseByKey(ctx context.Context, key string) (*model.Course, error) {
	row := r.pool.QueryRow(ctx, `SELECT key, name, days FROM courses WHERE key = $1`, key)
	c, err := scanCourse(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting course by key %s: %w", key, err)
	}
	return c, nil
}

func (r *pgCourseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	days, err := marshalDays(c.Days)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO courses (key, name, days) VALUES ($1, $2, $3)`, c.Key, c.Name, days)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("creating course %s: %w", c.Key, err)
	}
	return nil
}

func (r *pgCourseRepo) SaveCourse(ctx context.Context, c *model.Course) error {
	days, err := marshalDays(c.Days)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO courses (key, name, days)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET name = EXCLUDED.name, days = EXCLUDED.days, updated_at = NOW()
	`
	if _, err := r.pool.Exec(ctx, query, c.Key, c.Name, days); err != nil {
		return fmt.Errorf("saving course %s: %w", c.Key, err)
	}
	return nil
}

func (r *pgCourseRepo) CountCourses(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting courses: %w", err)
	}
	return n, nil
}

func scanCourse(row pgx.Row) (*model.Course, error) {
	var (
		c    model.Course
		days []byte
	)
	if err := row.Scan(&c.Key, &c.Name, &days); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(days, &c.Days); err != nil {
		return nil, fmt.Errorf("decoding days of course %s: %w", c.Key, err)
	}
	return &c, nil
}

func marshalDays(days []model.Day) ([]byte, error) {
	if days == nil {
		days = []model.Day{}
	}
	b, err := json.Marshal(days)
	if err != nil {
		return nil, fmt.Errorf("encoding days: %w", err)
	}
	return b, nil
}
