package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ArowuTest/blood-donation-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// isDuplicateKeyErr detects E11000 across driver error shapes
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if mongo.IsDuplicateKeyError(err) {
		return true
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	return strings.Contains(err.Error(), "E11000")
}

// translateWriteErr maps driver write errors onto repository sentinels
func translateWriteErr(err error) error {
	if isDuplicateKeyErr(err) {
		return fmt.Errorf("%w: %v", repositories.ErrDuplicate, err)
	}
	return err
}

func findOne[T any](ctx context.Context, c *mongo.Collection, id primitive.ObjectID) (*T, error) {
	var doc T
	err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func findMany[T any](ctx context.Context, c *mongo.Collection, filter bson.M, opts *options.FindOptions) ([]*T, error) {
	cursor, err := c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	// Ensure an empty slice is returned instead of nil
	if docs == nil {
		docs = []*T{}
	}
	return docs, nil
}

func updateByID(ctx context.Context, c *mongo.Collection, id primitive.ObjectID, set bson.M) error {
	return updateWhere(ctx, c, bson.M{"_id": id}, set)
}

// updateWhere applies $set to the single document matching filter
func updateWhere(ctx context.Context, c *mongo.Collection, filter bson.M, set bson.M) error {
	res, err := c.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return translateWriteErr(err)
	}
	if res.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, c *mongo.Collection, id primitive.ObjectID) error {
	res, err := c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
