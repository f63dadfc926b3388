package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quizhub/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoVisitorRepo struct {
	coll *mongo.Collection
}

func (r *mongoVisitorRepo) GetVisitorByDeviceID(ctx context.Context, deviceID string) (*model.Visitor, error) {
	var v model.Visitor
	err := r.coll.FindOne(ctx, bson.M{"deviceId": deviceID}).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting visitor %s: %w", deviceID, err)
	}
	return &v, nil
}

func (r *mongoVisitorRepo) CreateVisitor(ctx context.Context, v *model.Visitor) error {
	if _, err := r.coll.InsertOne(ctx, v); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("creating visitor %s: %w", v.DeviceID, err)
	}
	return nil
}

func (r *mongoVisitorRepo) RecordVisit(ctx context.Context, deviceID string, at time.Time) (*model.Visitor, error) {
	update := bson.M{
		"$inc": bson.M{"visitCount": 1},
		"$set": bson.M{"lastVisit": at},
	}
	var v model.Visitor
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"deviceId": deviceID}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("recording visit for %s: %w", deviceID, err)
	}
	return &v, nil
}

func (r *mongoVisitorRepo) CountVisitors(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("counting visitors: %w", err)
	}
	return n, nil
}
