package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpGuard_AcquireRelease(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewOpGuard(client)
	ctx := context.Background()
	accountID := uuid.New()

	ok, err := guard.Acquire(ctx, accountID)
	require.NoError(t, err)
	assert.True(t, ok)

	// Re-entrant attempt while held
	ok, err = guard.Acquire(ctx, accountID)
	require.NoError(t, err)
	assert.False(t, ok, "held guard must refuse a nested acquire")

	require.NoError(t, guard.Release(ctx, accountID))

	ok, err = guard.Acquire(ctx, accountID)
	require.NoError(t, err)
	assert.True(t, ok, "released guard should be acquirable again")
}

func TestOpGuard_IndependentAccounts(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewOpGuard(client)
	ctx := context.Background()

	ok, err := guard.Acquire(ctx, uuid.New())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = guard.Acquire(ctx, uuid.New())
	require.NoError(t, err)
	assert.True(t, ok, "guards are per-account, not global")
}

func TestOpGuard_ExpiresAfterTTL(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewOpGuard(client)
	ctx := context.Background()
	accountID := uuid.New()

	ok, err := guard.Acquire(ctx, accountID)
	require.NoError(t, err)
	require.True(t, ok)

	// A crashed holder must not wedge the account forever.
	s.FastForward(opGuardTTL)

	ok, err = guard.Acquire(ctx, accountID)
	require.NoError(t, err)
	assert.True(t, ok)
}
