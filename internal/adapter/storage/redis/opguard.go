package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// opGuardTTL bounds how long a crashed operation can hold its guard.
const opGuardTTL = 30 * time.Second

// OpGuard implements ports.OpGuard using Redis SET NX. One key per
// account: while a mutating ledger operation is in flight, any
// re-entrant call for the same account is refused.
type OpGuard struct {
	client *goredis.Client
	prefix string
}

// NewOpGuard creates a new Redis-backed operation guard.
func NewOpGuard(client *goredis.Client) *OpGuard {
	return &OpGuard{
		client: client,
		prefix: "opguard:",
	}
}

// Acquire attempts to take the account's guard. Returns false if
// another operation already holds it.
func (g *OpGuard) Acquire(ctx context.Context, accountID uuid.UUID) (bool, error) {
	key := g.prefix + accountID.String()
	ok, err := g.client.SetNX(ctx, key, 1, opGuardTTL).Result()
	if err != nil {
		return false, fmt.Errorf("redis opguard acquire: %w", err)
	}
	return ok, nil
}

// Release frees the account's guard.
func (g *OpGuard) Release(ctx context.Context, accountID uuid.UUID) error {
	key := g.prefix + accountID.String()
	if err := g.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis opguard release: %w", err)
	}
	return nil
}
