package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/rs/zerolog"
)

const (
	coursesCollection  = "courses"
	usersCollection    = "users"
	visitorsCollection = "visitors"
)

// MongoStore is the default document-database backend.
type MongoStore struct {
	client   *mongo.Client
	db       *mongo.Database
	courses  *mongoCourseRepo
	users    *mongoUserRepo
	visitors *mongoVisitorRepo
	logger   zerolog.Logger
}

func NewMongoStore(ctx context.Context, uri, database string, logger zerolog.Logger) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}
	db := client.Database(database)
	logger.Info().Str("database", database).Msg("MongoDB connection successful")

	return &MongoStore{
		client:   client,
		db:       db,
		courses:  &mongoCourseRepo{coll: db.Collection(coursesCollection)},
		users:    &mongoUserRepo{coll: db.Collection(usersCollection)},
		visitors: &mongoVisitorRepo{coll: db.Collection(visitorsCollection)},
		logger:   logger,
	}, nil
}

func (s *MongoStore) Courses() CourseRepository   { return s.courses }
func (s *MongoStore) Users() UserRepository       { return s.users }
func (s *MongoStore) Visitors() VisitorRepository { return s.visitors }

func (s *MongoStore) EnsureSchema(ctx context.Context) error {
	indexes := map[string]string{
		coursesCollection:  "key",
		usersCollection:    "email",
		visitorsCollection: "deviceId",
	}
	for coll, field := range indexes {
		name, err := s.db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("creating unique index on %s.%s: %w", coll, field, err)
		}
		s.logger.Debug().Str("collection", coll).Str("index", name).Msg("Index ensured")
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
