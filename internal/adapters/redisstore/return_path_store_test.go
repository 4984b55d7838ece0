package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstokens/tokens-api/internal/ports"
	"github.com/dstokens/tokens-api/internal/testutil"
)

func TestReturnPathStore_SaveAndTake(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewReturnPathStore(client, time.Minute)
	ctx := context.Background()

	state := uuid.NewString()
	require.NoError(t, store.Save(ctx, state, "/editor"))

	got, err := store.Take(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, "/editor", got)

	// Take consumed the value, a second take misses.
	_, err = store.Take(ctx, state)
	assert.ErrorIs(t, err, ports.ErrStateNotFound)
}

func TestReturnPathStore_EmptyReturnToIsValid(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewReturnPathStore(client, time.Minute)
	ctx := context.Background()

	state := uuid.NewString()
	require.NoError(t, store.Save(ctx, state, ""))

	got, err := store.Take(ctx, state)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReturnPathStore_UnknownState(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewReturnPathStore(client, time.Minute)

	_, err := store.Take(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ports.ErrStateNotFound)
}

func TestReturnPathStore_EmptyStateRejected(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewReturnPathStore(client, time.Minute)
	ctx := context.Background()

	require.Error(t, store.Save(ctx, "", "/home"))

	_, err := store.Take(ctx, "")
	assert.ErrorIs(t, err, ports.ErrStateNotFound)
}

func TestReturnPathStore_EntriesExpire(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewReturnPathStore(client, time.Second)
	ctx := context.Background()

	state := uuid.NewString()
	require.NoError(t, store.Save(ctx, state, "/editor"))

	ttl, err := client.TTL(ctx, "oauth_state:"+state).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Second)
}
