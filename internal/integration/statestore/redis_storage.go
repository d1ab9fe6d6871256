// Package statestore implements the durable key-value slot that keeps the dashboard criteria.
package statestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sales-dashboard/backend/internal/application/adapter"
)

// redisStorage implements adapter.StateStorage on top of Redis strings.
type redisStorage struct {
	client redis.Cmdable
}

// NewRedisStorage creates a state storage backed by the given Redis client.
func NewRedisStorage(client redis.Cmdable) adapter.StateStorage {
	return &redisStorage{
		client: client,
	}
}

// Load returns the stored value and whether the key exists.
func (s *redisStorage) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, true, nil
}

// Save overwrites the value without expiry.
func (s *redisStorage) Save(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
