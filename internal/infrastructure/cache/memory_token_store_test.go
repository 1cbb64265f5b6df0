package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryTokenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("store then exists", func(t *testing.T) {
		store := NewMemoryTokenStore()

		assert.NoError(t, store.Store(ctx, "access_token:u1:t1", time.Minute))

		exists, err := store.Exists(ctx, "access_token:u1:t1")
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = store.Exists(ctx, "access_token:u1:other")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("expired keys read as absent", func(t *testing.T) {
		store := NewMemoryTokenStore()

		assert.NoError(t, store.Store(ctx, "access_token:u1:t1", -time.Second))

		exists, err := store.Exists(ctx, "access_token:u1:t1")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("revoke removes exact keys", func(t *testing.T) {
		store := NewMemoryTokenStore()

		assert.NoError(t, store.Store(ctx, "refresh_token:u1:t1", time.Minute))
		assert.NoError(t, store.Revoke(ctx, "refresh_token:u1:t1"))

		exists, _ := store.Exists(ctx, "refresh_token:u1:t1")
		assert.False(t, exists)
	})

	t.Run("revoke matching only touches the pattern", func(t *testing.T) {
		store := NewMemoryTokenStore()

		assert.NoError(t, store.Store(ctx, "access_token:u1:t1", time.Minute))
		assert.NoError(t, store.Store(ctx, "access_token:u2:t2", time.Minute))

		assert.NoError(t, store.RevokeMatching(ctx, "access_token:*:t1"))

		exists, _ := store.Exists(ctx, "access_token:u1:t1")
		assert.False(t, exists)
		exists, _ = store.Exists(ctx, "access_token:u2:t2")
		assert.True(t, exists)
	})
}
