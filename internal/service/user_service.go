package service

import (
	"context"
	"fmt"
	"time"

	"leagueops/internal/cache"
	"leagueops/internal/metrics"
	"leagueops/internal/model"
	"leagueops/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService owns user CRUD plus the best-effort cache beside it. The
// store is always the source of truth: cache failures are logged and
// absorbed, and a miss falls back to the store.
type UserService struct {
	repo  repository.UserRepo
	cache cache.UserCache
	log   *zap.Logger
}

func NewUserService(repo repository.UserRepo, userCache cache.UserCache, logger *zap.Logger) *UserService {
	return &UserService{
		repo:  repo,
		cache: userCache,
		log:   logger,
	}
}

func (s *UserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	now := time.Now().UTC()
	user := &model.User{
		ID:        uuid.NewString(),
		Status:    req.Status,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.writeThrough(ctx, user)
	s.log.Info("user created", zap.String("user_id", user.ID))
	return user, nil
}

// Find serves the id-only lookup from the cache when possible; any other
// filter combination bypasses the cache unconditionally. A cache miss is
// not back-filled.
func (s *UserService) Find(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	if filter.IDOnly() {
		cached, err := s.cache.Get(ctx, filter.UserID)
		switch {
		case err != nil:
			metrics.CacheError()
			s.log.Warn("cache read failed", zap.String("user_id", filter.UserID), zap.Error(err))
		case cached != nil:
			metrics.CacheHit()
			return []model.User{*cached}, nil
		default:
			metrics.CacheMiss()
		}
	}

	users, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, &NotFoundError{
			Detail: fmt.Sprintf("No user(s) found with properties %v", userProperties(filter)),
		}
	}
	return users, nil
}

func (s *UserService) Update(ctx context.Context, id string, req *model.UpdateUserRequest) (*model.User, error) {
	updated, err := s.repo.Update(ctx, id, req, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &NotFoundError{Detail: fmt.Sprintf("No user found with ID %s", id)}
	}

	s.writeThrough(ctx, updated)
	s.log.Info("user updated", zap.String("user_id", id))
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return &NotFoundError{Detail: fmt.Sprintf("No user found with ID %s", id)}
	}

	if err := s.cache.Delete(ctx, id); err != nil {
		metrics.CacheError()
		s.log.Warn("cache delete failed", zap.String("user_id", id), zap.Error(err))
	}

	s.log.Info("user deleted", zap.String("user_id", id))
	return nil
}

// writeThrough mirrors a committed user into the cache. The request has
// already succeeded on the store result; a failed mirror only costs a
// future cache hit.
func (s *UserService) writeThrough(ctx context.Context, user *model.User) {
	if err := s.cache.Set(ctx, user); err != nil {
		metrics.CacheError()
		s.log.Warn("cache write failed", zap.String("user_id", user.ID), zap.Error(err))
	}
}

func userProperties(filter model.UserFilter) map[string]string {
	props := map[string]string{}
	if filter.UserID != "" {
		props["user_id"] = filter.UserID
	}
	if filter.Status != "" {
		props["status"] = string(filter.Status)
	}
	if filter.Username != "" {
		props["username"] = filter.Username
	}
	if filter.Email != "" {
		props["email"] = filter.Email
	}
	return props
}
