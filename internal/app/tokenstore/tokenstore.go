// Package tokenstore keeps ids of revoked bearer tokens until they expire.
package tokenstore

import (
	"context"
	"time"

	"github.com/voyago/travel-order-service/internal/app/config"
)

type TokenStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	Close() error
}

func InitTokenStore(ctx context.Context, config config.Config) (TokenStore, error) {
	if len(config.RedisAddr) == 0 {
		return NewMemoryStore(), nil
	}

	return NewRedisStore(ctx, config.RedisAddr)
}
