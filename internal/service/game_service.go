package service

import (
	"context"
	"fmt"
	"time"

	"leagueops/internal/model"
	"leagueops/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultHalvesLengthMinutes = 45

// GameService owns game CRUD. Assignments hold weak references to games;
// nothing here knows about assignments.
type GameService struct {
	repo repository.GameRepo
	log  *zap.Logger
}

func NewGameService(repo repository.GameRepo, logger *zap.Logger) *GameService {
	return &GameService{
		repo: repo,
		log:  logger,
	}
}

func (s *GameService) Create(ctx context.Context, req *model.CreateGameRequest) (*model.Game, error) {
	halves := req.HalvesLengthMinutes
	if halves == 0 {
		halves = defaultHalvesLengthMinutes
	}

	now := time.Now().UTC()
	game := &model.Game{
		ID:                  uuid.NewString(),
		League:              req.League,
		Venue:               req.Venue,
		HomeTeam:            req.HomeTeam,
		AwayTeam:            req.AwayTeam,
		Level:               req.Level,
		HalvesLengthMinutes: halves,
		GameCompleted:       false,
		ScheduledTime:       req.ScheduledTime,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Create(ctx, game); err != nil {
		return nil, err
	}

	s.log.Info("game created", zap.String("game_id", game.ID))
	return game, nil
}

func (s *GameService) Find(ctx context.Context, filter model.GameFilter) ([]model.Game, error) {
	games, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, &NotFoundError{
			Detail: fmt.Sprintf("No game(s) found with properties %v", gameProperties(filter)),
		}
	}
	return games, nil
}

func (s *GameService) Update(ctx context.Context, id string, req *model.UpdateGameRequest) (*model.Game, error) {
	updated, err := s.repo.Update(ctx, id, req, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &NotFoundError{Detail: fmt.Sprintf("No game found with ID %s", id)}
	}

	s.log.Info("game updated", zap.String("game_id", id))
	return updated, nil
}

func (s *GameService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return &NotFoundError{Detail: fmt.Sprintf("No game found with ID %s", id)}
	}

	s.log.Info("game deleted", zap.String("game_id", id))
	return nil
}

func gameProperties(filter model.GameFilter) map[string]string {
	props := map[string]string{}
	if filter.GameID != "" {
		props["game_id"] = filter.GameID
	}
	if filter.League != "" {
		props["league"] = filter.League
	}
	if filter.Venue != "" {
		props["venue"] = filter.Venue
	}
	if filter.HomeTeam != "" {
		props["home_team"] = filter.HomeTeam
	}
	if filter.AwayTeam != "" {
		props["away_team"] = filter.AwayTeam
	}
	if filter.Level != "" {
		props["level"] = filter.Level
	}
	if filter.GameCompleted != nil {
		props["game_completed"] = fmt.Sprintf("%t", *filter.GameCompleted)
	}
	return props
}
