package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// postgresSchema stores each course as one row whose days column holds the
// nested days and questions as JSONB, so a course is read and written whole.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS courses (
		seq        BIGSERIAL,
		key        TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		days       JSONB NOT NULL DEFAULT '[]'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id                TEXT PRIMARY KEY,
		name              TEXT NOT NULL,
		email             TEXT NOT NULL UNIQUE,
		joined_at         TIMESTAMPTZ NOT NULL,
		completed_quizzes JSONB NOT NULL DEFAULT '[]'::jsonb
	)`,
	`CREATE TABLE IF NOT EXISTS visitors (
		device_id   TEXT PRIMARY KEY,
		user_agent  TEXT NOT NULL DEFAULT '',
		first_visit TIMESTAMPTZ NOT NULL,
		last_visit  TIMESTAMPTZ NOT NULL,
		visit_count INTEGER NOT NULL DEFAULT 1
	)`,
}

// PostgresStore keeps the same document shapes as MongoStore in Postgres.
type PostgresStore struct {
	pool     *pgxpool.Pool
	courses  *pgCourseRepo
	users    *pgUserRepo
	visitors *pgVisitorRepo
	logger   zerolog.Logger
}

func NewPostgresStore(ctx context.Context, dsn string, logger zerolog.Logger) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	logger.Info().Msg("Database connection successful")

	return &PostgresStore{
		pool:     pool,
		courses:  &pgCourseRepo{pool: pool},
		users:    &pgUserRepo{pool: pool},
		visitors: &pgVisitorRepo{pool: pool},
		logger:   logger,
	}, nil
}

func (s *PostgresStore) Courses() CourseRepository   { return s.courses }
func (s *PostgresStore) Users() UserRepository       { return s.users }
func (s *PostgresStore) Visitors() VisitorRepository { return s.visitors }

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range postgresSchema {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	s.logger.Debug().Int("statements", len(postgresSchema)).Msg("Schema ensured")
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close(_ context.Context) error {
	s.pool.Close()
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
