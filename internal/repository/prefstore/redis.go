// Package prefstore backs the PreferenceStore interface. The Redis store
// replaces the browser localStorage the frontend used for discover state;
// semantics stay last-write-wins. A memory store covers deployments without
// Redis and tests.
package prefstore

import (
	"context"
	"errors"

	"go-genie-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) domain.PreferenceStore {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return val, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	// No TTL: preferences persist until overwritten, like localStorage did.
	return s.client.Set(ctx, key, value, 0).Err()
}
