package tokenstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	revoked, err := store.IsRevoked(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, revoked)

	err = store.Revoke(ctx, "token-id", time.Hour)
	require.NoError(t, err)

	revoked, err = store.IsRevoked(ctx, "token-id")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestMemoryStoreExpiredEntry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	err := store.Revoke(ctx, "token-id", time.Nanosecond)
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	revoked, err := store.IsRevoked(ctx, "token-id")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemoryStoreNonPositiveTTL(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	err := store.Revoke(ctx, "token-id", -time.Minute)
	require.NoError(t, err)

	revoked, err := store.IsRevoked(ctx, "token-id")
	require.NoError(t, err)
	assert.False(t, revoked)
}
