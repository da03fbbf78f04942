package redis

import (
	"context"
	"testing"
	"time"

	"vaultwise/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventStream_PublishAssignsSequentialNonces(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	stream := NewEventStream(client, "ledger-events")
	ctx := context.Background()
	accountID := uuid.New()

	for i := 0; i < 3; i++ {
		ev := domain.NewBucketTransferEvent(accountID, domain.BucketBillings, domain.BucketGrowth, 100, time.Now().UTC())
		require.NoError(t, stream.Publish(ctx, ev))
	}

	entries, err := client.XRange(ctx, "ledger-events", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for i, entry := range entries {
		assert.Equal(t, string(domain.EventBucketTransfer), entry.Values["type"])
		assert.Equal(t, accountID.String(), entry.Values["account"])
		// Nonce is a gapless per-account sequence starting at 1.
		assert.Equal(t, int64(i+1), mustInt(t, entry.Values["nonce"]))
	}
}

func TestEventStream_NoncesArePerAccount(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	stream := NewEventStream(client, "ledger-events")
	ctx := context.Background()

	a, b := uuid.New(), uuid.New()
	require.NoError(t, stream.Publish(ctx, domain.NewFundsSplitEvent(a, 1000, 2, domain.SplitWeights{Spendable: 10000}, time.Now().UTC())))
	require.NoError(t, stream.Publish(ctx, domain.NewFundsSplitEvent(b, 500, 1, domain.SplitWeights{Spendable: 10000}, time.Now().UTC())))

	entries, err := client.XRange(ctx, "ledger-events", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), mustInt(t, entries[0].Values["nonce"]))
	assert.Equal(t, int64(1), mustInt(t, entries[1].Values["nonce"]))
}

func mustInt(t *testing.T, v interface{}) int64 {
	t.Helper()
	switch x := v.(type) {
	case string:
		var n int64
		for _, c := range x {
			n = n*10 + int64(c-'0')
		}
		return n
	case int64:
		return x
	default:
		t.Fatalf("unexpected nonce type %T", v)
		return 0
	}
}
