package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quizhub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgVisitorRepo struct {
	pool *pgxpool.Pool
}

func (r *pgVisitorRepo) GetVisitorByDeviceID(ctx context.Context, deviceID string) (*model.Visitor, error) {
	query := `
		SELECT device_id, user_agent, first_visit, last_visit, visit_count
		FROM visitors
		WHERE device_id = $1
	`
	var v model.Visitor
	err := r.pool.QueryRow(ctx, query, deviceID).
		Scan(&v.DeviceID, &v.UserAgent, &v.FirstVisit, &v.LastVisit, &v.VisitCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting visitor %s: %w", deviceID, err)
	}
	return &v, nil
}

func (r *pgVisitorRepo) CreateVisitor(ctx context.Context, v *model.Visitor) error {
	query := `
		INSERT INTO visitors (device_id, user_agent, first_visit, last_visit, visit_count)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query, v.DeviceID, v.UserAgent, v.FirstVisit, v.LastVisit, v.VisitCount)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("creating visitor %s: %w", v.DeviceID, err)
	}
	return nil
}

func (r *pgVisitorRepo) RecordVisit(ctx context.Context, deviceID string, at time.Time) (*model.Visitor, error) {
	query := `
		UPDATE visitors
		SET visit_count = visit_count + 1, last_visit = $2
		WHERE device_id = $1
		RETURNING device_id, user_agent, first_visit, last_visit, visit_count
	`
	var v model.Visitor
	err := r.pool.QueryRow(ctx, query, deviceID, at).
		Scan(&v.DeviceID, &v.UserAgent, &v.FirstVisit, &v.LastVisit, &v.VisitCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("recording visit for %s: %w", deviceID, err)
	}
	return &v, nil
}

func (r *pgVisitorRepo) CountVisitors(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM visitors`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting visitors: %w", err)
	}
	return n, nil
}
