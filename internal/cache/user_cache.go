package cache

import (
	"context"
	"encoding/json"
	"time"

	"leagueops/internal/model"

	"github.com/redis/go-redis/v9"
)

// UserCache is the best-effort side channel for single-id user lookups.
// It is never authoritative; callers must treat every error as a miss.
type UserCache interface {
	Get(ctx context.Context, id string) (*model.User, error)
	Set(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
}

type userCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewUserCache(client *redis.Client, ttl time.Duration) UserCache {
	return &userCache{
		client: client,
		ttl:    ttl,
	}
}

func userKey(id string) string {
	return "user:" + id
}

// Get returns (nil, nil) on a clean miss.
func (c *userCache) Get(ctx context.Context, id string) (*model.User, error) {
	data, err := c.client.Get(ctx, userKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *userCache) Set(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, userKey(user.ID), data, c.ttl).Err()
}

func (c *userCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, userKey(id)).Err()
}
