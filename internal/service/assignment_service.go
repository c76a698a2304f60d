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

// AssignmentService orchestrates assignment writes and reads. Validation
// always precedes persistence, so a failed check leaves the store untouched.
type AssignmentService struct {
	repo      repository.AssignmentRepo
	validator *Validator
	log       *zap.Logger
}

func NewAssignmentService(repo repository.AssignmentRepo, validator *Validator, logger *zap.Logger) *AssignmentService {
	return &AssignmentService{
		repo:      repo,
		validator: validator,
		log:       logger,
	}
}

// Create validates the game reference and every referee before inserting.
func (s *AssignmentService) Create(ctx context.Context, req *model.CreateAssignmentRequest) (*model.Assignment, error) {
	if err := s.validator.ValidateGame(ctx, req.GameID); err != nil {
		s.log.Warn("create assignment: game validation failed",
			zap.String("game_id", req.GameID), zap.Error(err))
		return nil, err
	}

	if len(req.Referees) > 0 {
		if err := s.validator.ValidateReferees(ctx, req.Referees); err != nil {
			s.log.Warn("create assignment: referee validation failed",
				zap.String("game_id", req.GameID), zap.Error(err))
			return nil, err
		}
	}

	now := time.Now().UTC()
	assignment := &model.Assignment{
		ID:         uuid.NewString(),
		GameID:     req.GameID,
		Referees:   req.Referees,
		AssignedAt: now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	s.log.Info("assignment created",
		zap.String("assignment_id", assignment.ID),
		zap.String("game_id", assignment.GameID))
	return assignment, nil
}

// List returns all assignments matching the filter, or NotFound when none do.
func (s *AssignmentService) List(ctx context.Context, filter model.AssignmentFilter) ([]model.Assignment, error) {
	assignments, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return nil, &NotFoundError{
			Detail: fmt.Sprintf("No assignment(s) found with properties %v", filterProperties(filter)),
		}
	}
	return assignments, nil
}

// UpdateReferees replaces the referee list on an existing assignment. The
// game reference is immutable after creation and is not re-validated.
func (s *AssignmentService) UpdateReferees(ctx context.Context, id string, referees []model.Referee) (*model.Assignment, error) {
	if len(referees) > 0 {
		if err := s.validator.ValidateReferees(ctx, referees); err != nil {
			s.log.Warn("update assignment: referee validation failed",
				zap.String("assignment_id", id), zap.Error(err))
			return nil, err
		}
	}

	updated, err := s.repo.UpdateReferees(ctx, id, referees, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &NotFoundError{Detail: fmt.Sprintf("No assignment found with ID %s", id)}
	}

	s.log.Info("assignment updated", zap.String("assignment_id", id))
	return updated, nil
}

func (s *AssignmentService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return &NotFoundError{Detail: fmt.Sprintf("No assignment found with ID %s", id)}
	}

	s.log.Info("assignment deleted", zap.String("assignment_id", id))
	return nil
}

func filterProperties(filter model.AssignmentFilter) map[string]string {
	props := map[string]string{}
	if filter.AssignmentID != "" {
		props["assignment_id"] = filter.AssignmentID
	}
	if filter.GameID != "" {
		props["game_id"] = filter.GameID
	}
	if filter.RefereeID != "" {
		props["referee_id"] = filter.RefereeID
	}
	return props
}
