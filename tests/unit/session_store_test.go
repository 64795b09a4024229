package unit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-suite/admin-dashboard/internal/session"
)

func setupRedisStore(t *testing.T) (*session.RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := session.NewRedisStore(client, "jwt_token", "theme", time.Hour)
	return store, mr
}

func TestRedisStore_Token(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	t.Run("absent reads back empty without error", func(t *testing.T) {
		token, err := store.GetToken(ctx)
		require.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.SetToken(ctx, "tok-123"))

		token, err := store.GetToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok-123", token)
	})

	t.Run("token expires with the session TTL", func(t *testing.T) {
		require.NoError(t, store.SetToken(ctx, "tok-123"))
		mr.FastForward(2 * time.Hour)

		token, err := store.GetToken(ctx)
		require.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, store.SetToken(ctx, "tok-123"))
		require.NoError(t, store.ClearToken(ctx))

		token, err := store.GetToken(ctx)
		require.NoError(t, err)
		assert.Empty(t, token)
	})
}

func TestRedisStore_Theme(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetTheme(ctx, "dark"))

	theme, err := store.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)

	// the theme preference does not expire with the session
	mr.FastForward(48 * time.Hour)
	theme, err = store.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestMemoryStore(t *testing.T) {
	store := session.NewMemoryStore("jwt_token", "theme")
	ctx := context.Background()

	token, err := store.GetToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.SetToken(ctx, "tok"))
	token, _ = store.GetToken(ctx)
	assert.Equal(t, "tok", token)

	require.NoError(t, store.ClearToken(ctx))
	token, _ = store.GetToken(ctx)
	assert.Empty(t, token)

	require.NoError(t, store.SetTheme(ctx, "light"))
	theme, _ := store.GetTheme(ctx)
	assert.Equal(t, "light", theme)
}
