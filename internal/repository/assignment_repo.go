package repository

import (
	"context"
	"errors"
	"time"

	"leagueops/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateGameID is returned when a second assignment references an
// already-assigned game.
var ErrDuplicateGameID = errors.New("duplicate game_id")

type AssignmentRepo interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, assignment *model.Assignment) error
	Find(ctx context.Context, filter model.AssignmentFilter) ([]model.Assignment, error)
	UpdateReferees(ctx context.Context, id string, referees []model.Referee, updatedAt time.Time) (*model.Assignment, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type assignmentRepo struct {
	collection *mongo.Collection
}

func NewAssignmentRepo(db *mongo.Database) AssignmentRepo {
	return &assignmentRepo{
		collection: db.Collection("assignments"),
	}
}

// EnsureIndexes creates the unique game_id index that backs the one
// assignment per game constraint.
func (r *assignmentRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "game_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *model.Assignment) error {
	_, err := r.collection.InsertOne(ctx, assignment)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateGameID
	}
	return err
}

func (r *assignmentRepo) Find(ctx context.Context, filter model.AssignmentFilter) ([]model.Assignment, error) {
	query := bson.M{}
	if filter.AssignmentID != "" {
		query["_id"] = filter.AssignmentID
	}
	if filter.GameID != "" {
		query["game_id"] = filter.GameID
	}
	if filter.RefereeID != "" {
		query["referees.referee_id"] = filter.RefereeID
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []model.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// UpdateReferees replaces the referee list and bumps updated_at. Returns
// nil when no assignment matches the id.
func (r *assignmentRepo) UpdateReferees(ctx context.Context, id string, referees []model.Referee, updatedAt time.Time) (*model.Assignment, error) {
	update := bson.M{"$set": bson.M{
		"referees":   referees,
		"updated_at": updatedAt,
	}}

	var updated model.Assignment
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *assignmentRepo) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
