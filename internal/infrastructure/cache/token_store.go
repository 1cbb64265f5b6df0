package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore tracks which session token IDs are live. The remote variant
// backs it with redis; the local variant keeps it in process memory, where
// the client-held JWT is the durable session pointer.
type TokenStore interface {
	Store(ctx context.Context, key string, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	Revoke(ctx context.Context, keys ...string) error
	RevokeMatching(ctx context.Context, pattern string) error
}

type redisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

func (s *redisTokenStore) Store(ctx context.Context, key string, ttl time.Duration) error {
	return s.client.Set(ctx, key, "valid", ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, key string) (bool, error) {
	count, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *redisTokenStore) RevokeMatching(ctx context.Context, pattern string) error {
	keys, err := s.client.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}
