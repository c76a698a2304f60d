package service

import (
	"context"
	"fmt"

	"leagueops/internal/client"
	"leagueops/internal/model"
	"leagueops/internal/repository"

	"go.uber.org/zap"
)

// Aggregator joins a local assignment with the remote game and referee
// profiles into one view. Composition is all-or-nothing: any failed fetch
// aborts the whole read, never a partial response.
type Aggregator struct {
	repo  repository.AssignmentRepo
	games client.GameAPI
	users client.UserAPI
	log   *zap.Logger
}

func NewAggregator(repo repository.AssignmentRepo, games client.GameAPI, users client.UserAPI, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		repo:  repo,
		games: games,
		users: users,
		log:   logger,
	}
}

// FullDetails returns the aggregated view for one assignment. The remote
// referee fetch is by id only; Official status is not re-checked on reads.
func (a *Aggregator) FullDetails(ctx context.Context, assignmentID string) (*model.FullDetails, error) {
	assignments, err := a.repo.Find(ctx, model.AssignmentFilter{AssignmentID: assignmentID})
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return nil, &NotFoundError{Detail: fmt.Sprintf("No assignment found with ID %s", assignmentID)}
	}
	assignment := assignments[0]

	game, err := a.games.GetGame(ctx, assignment.GameID)
	if err != nil {
		a.log.Warn("full details: game fetch failed",
			zap.String("assignment_id", assignmentID),
			zap.String("game_id", assignment.GameID),
			zap.Error(err))
		return nil, err
	}

	var referees []model.RefereeDetail
	if len(assignment.Referees) > 0 {
		referees = make([]model.RefereeDetail, 0, len(assignment.Referees))
		for _, referee := range assignment.Referees {
			profile, err := a.users.GetUser(ctx, referee.RefereeID)
			if err != nil {
				a.log.Warn("full details: referee fetch failed",
					zap.String("assignment_id", assignmentID),
					zap.String("referee_id", referee.RefereeID),
					zap.Error(err))
				return nil, err
			}
			referees = append(referees, model.RefereeDetail{
				User:     *profile,
				Position: referee.Position,
			})
		}
	}

	return &model.FullDetails{
		AssignmentID: assignmentID,
		Game:         game,
		Referees:     referees,
	}, nil
}
