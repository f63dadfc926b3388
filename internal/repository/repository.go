package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quizhub/internal/config"
	"quizhub/internal/model"

	"github.com/rs/zerolog"
)

// ErrDuplicateKey is returned when a write violates a unique index
// (course key, user email, visitor device ID).
var ErrDuplicateKey = errors.New("duplicate key")

// CourseRepository persists whole Course documents, days and questions included.
type CourseRepository interface {
	// ListCourses returns every course in insertion order.
	ListCourses(ctx context.Context) ([]model.Course, error)
	// GetCourseByKey returns nil, nil when no course has the key.
	GetCourseByKey(ctx context.Context, key string) (*model.Course, error)
	// CreateCourse inserts c and fails with ErrDuplicateKey if the key exists.
	CreateCourse(ctx context.Context, c *model.Course) error
	// SaveCourse replaces the stored document for c.Key, inserting it if absent.
	SaveCourse(ctx context.Context, c *model.Course) error
	CountCourses(ctx context.Context) (int64, error)
}

type UserRepository interface {
	// CreateUser fails with ErrDuplicateKey if the email is taken.
	CreateUser(ctx context.Context, u *model.User) error
	CountUsers(ctx context.Context) (int64, error)
}

type VisitorRepository interface {
	GetVisitorByDeviceID(ctx context.Context, deviceID string) (*model.Visitor, error)
	// CreateVisitor fails with ErrDuplicateKey if the device is known.
	CreateVisitor(ctx context.Context, v *model.Visitor) error
	// RecordVisit bumps the visit counter and last-visit time of a known device.
	// It returns nil, nil if the device is unknown.
	RecordVisit(ctx context.Context, deviceID string, at time.Time) (*model.Visitor, error)
	CountVisitors(ctx context.Context) (int64, error)
}

// Store is a storage backend exposing every repository.
type Store interface {
	Courses() CourseRepository
	Users() UserRepository
	Visitors() VisitorRepository
	// EnsureSchema creates indexes or tables. Safe to call repeatedly.
	EnsureSchema(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// OpenStore connects to the backend selected by cfg.StoreDriver.
func OpenStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (Store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		return NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase, logger)
	case config.StoreDriverPostgres:
		return NewPostgresStore(ctx, cfg.DBConnectionString, logger)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}
