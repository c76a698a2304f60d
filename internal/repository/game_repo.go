package repository

import (
	"context"
	"time"

	"leagueops/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type GameRepo interface {
	Create(ctx context.Context, game *model.Game) error
	Find(ctx context.Context, filter model.GameFilter) ([]model.Game, error)
	Update(ctx context.Context, id string, update *model.UpdateGameRequest, updatedAt time.Time) (*model.Game, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type gameRepo struct {
	collection *mongo.Collection
}

func NewGameRepo(db *mongo.Database) GameRepo {
	return &gameRepo{
		collection: db.Collection("games"),
	}
}

func (r *gameRepo) Create(ctx context.Context, game *model.Game) error {
	_, err := r.collection.InsertOne(ctx, game)
	return err
}

func (r *gameRepo) Find(ctx context.Context, filter model.GameFilter) ([]model.Game, error) {
	query := bson.M{}
	if filter.GameID != "" {
		query["_id"] = filter.GameID
	}
	if filter.League != "" {
		query["league"] = filter.League
	}
	if filter.Venue != "" {
		query["venue"] = filter.Venue
	}
	if filter.HomeTeam != "" {
		query["home_team"] = filter.HomeTeam
	}
	if filter.AwayTeam != "" {
		query["away_team"] = filter.AwayTeam
	}
	if filter.Level != "" {
		query["level"] = filter.Level
	}
	if filter.GameCompleted != nil {
		query["game_completed"] = *filter.GameCompleted
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var games []model.Game
	if err := cursor.All(ctx, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// Update applies only the supplied fields and returns the updated document,
// or nil when no game matches the id.
func (r *gameRepo) Update(ctx context.Context, id string, update *model.UpdateGameRequest, updatedAt time.Time) (*model.Game, error) {
	fields := bson.M{"updated_at": updatedAt}
	if update.League != nil {
		fields["league"] = *update.League
	}
	if update.Venue != nil {
		fields["venue"] = *update.Venue
	}
	if update.HomeTeam != nil {
		fields["home_team"] = *update.HomeTeam
	}
	if update.AwayTeam != nil {
		fields["away_team"] = *update.AwayTeam
	}
	if update.Level != nil {
		fields["level"] = *update.Level
	}
	if update.HalvesLengthMinutes != nil {
		fields["halves_length_minutes"] = *update.HalvesLengthMinutes
	}
	if update.ScheduledTime != nil {
		fields["scheduled_time"] = *update.ScheduledTime
	}
	if update.GameCompleted != nil {
		fields["game_completed"] = *update.GameCompleted
	}
	if update.Result != nil {
		fields["result"] = *update.Result
	}

	var updated model.Game
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
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

func (r *gameRepo) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
