package service

import (
	"context"

	"leagueops/internal/client"
	"leagueops/internal/model"
)

// Validator gates assignment writes on the referenced game existing and
// every referee being an Official user. It is a pure precondition check:
// it never touches the store.
type Validator struct {
	games client.GameAPI
	users client.UserAPI
}

func NewValidator(games client.GameAPI, users client.UserAPI) *Validator {
	return &Validator{
		games: games,
		users: users,
	}
}

// ValidateGame confirms the referenced game exists in the game service.
func (v *Validator) ValidateGame(ctx context.Context, gameID string) error {
	_, err := v.games.GetGame(ctx, gameID)
	return err
}

// ValidateReferees checks each referee in the given order, filtered by
// Official status, and stops at the first rejection. Referees after the
// failing one are never queried.
func (v *Validator) ValidateReferees(ctx context.Context, referees []model.Referee) error {
	for _, referee := range referees {
		if _, err := v.users.GetOfficial(ctx, referee.RefereeID); err != nil {
			return err
		}
	}
	return nil
}
