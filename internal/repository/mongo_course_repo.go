package repository

import (
	"context"
	"errors"
	"fmt"

	"quizhub/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoCourseRepo struct {
	coll *mongo.Collection
}

// ListCourses retrieves all courses ordered by _id, i.e. insertion order.
func (r *mongoCourseRepo) ListCourses(ctx context.Context) ([]model.Course, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("querying courses: %w", err)
	}
	var courses []model.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("decoding courses: %w", err)
	}
	if len(courses) == 0 {
		return []model.Course{}, nil
	}
	return courses, nil
}

func (r *mongoCourseRepo) GetCourseByKey(ctx context.Context, key string) (*model.Course, error) {
	var c model.Course
	err := r.coll.FindOne(ctx, bson.M{"key": key}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting course by key %s: %w", key, err)
	}
	return &c, nil
}

func (r *mongoCourseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("creating course %s: %w", c.Key, err)
	}
	return nil
}

// SaveCourse replaces the whole document. The replacement carries no _id so
// the existing one is kept.
func (r *mongoCourseRepo) SaveCourse(ctx context.Context, c *model.Course) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"key": c.Key}, c, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("saving course %s: %w", c.Key, err)
	}
	return nil
}

func (r *mongoCourseRepo) CountCourses(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("counting courses: %w", err)
	}
	return n, nil
}
