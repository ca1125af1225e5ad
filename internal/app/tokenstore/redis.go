package tokenstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked-token:"

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("error while connecting to redis: %w", err)
	}

	return &RedisStore{
		client: client,
	}, nil
}

func (s *RedisStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	err := s.client.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err()
	if err != nil {
		return fmt.Errorf("error while revoking token: %w", err)
	}

	return nil
}

func (s *RedisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	count, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("error while checking revoked token: %w", err)
	}

	return count > 0, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
