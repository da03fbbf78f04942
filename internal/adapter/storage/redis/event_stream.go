package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"vaultwise/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// EventStream implements ports.EventPublisher on a Redis stream.
// Events are the only read path for downstream history/analytics
// consumers; the ledger tables are never read by them. The per-account
// nonce comes from an INCR counter, giving consumers a gapless,
// ordered sequence per account.
type EventStream struct {
	client *goredis.Client
	stream string
	prefix string
}

// NewEventStream creates a publisher writing to the given stream.
func NewEventStream(client *goredis.Client, stream string) *EventStream {
	return &EventStream{
		client: client,
		stream: stream,
		prefix: "eventnonce:",
	}
}

// Publish assigns the event's nonce and appends it to the stream.
func (s *EventStream) Publish(ctx context.Context, event domain.Event) error {
	nonce, err := s.client.Incr(ctx, s.prefix+event.AccountID.String()).Result()
	if err != nil {
		return fmt.Errorf("redis event nonce: %w", err)
	}
	event.Nonce = nonce

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = s.client.XAdd(ctx, &goredis.XAddArgs{
		Stream: s.stream,
		Values: map[string]interface{}{
			"type":    string(event.Type),
			"account": event.AccountID.String(),
			"nonce":   nonce,
			"payload": payload,
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("redis xadd: %w", err)
	}
	return nil
}
