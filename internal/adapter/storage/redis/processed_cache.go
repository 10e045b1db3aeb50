package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment-reconciler/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ProcessedCache implements ports.ProcessedCache using Redis.
// The value stored under each event id is the outcome it was committed with.
type ProcessedCache struct {
	client *goredis.Client
	prefix string
}

// NewProcessedCache creates a new Redis-backed processed-event cache.
func NewProcessedCache(client *goredis.Client) *ProcessedCache {
	return &ProcessedCache{
		client: client,
		prefix: "prc:",
	}
}

// Outcome returns the cached outcome and whether the event is known processed.
func (c *ProcessedCache) Outcome(ctx context.Context, eventID string) (domain.EventOutcome, bool, error) {
	val, err := c.client.Get(ctx, c.key(eventID)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis processed get: %w", err)
	}
	return domain.EventOutcome(val), true, nil
}

// Remember marks the event processed for ttl. An existing entry is kept.
func (c *ProcessedCache) Remember(ctx context.Context, eventID string, outcome domain.EventOutcome, ttl time.Duration) error {
	if err := c.client.SetNX(ctx, c.key(eventID), string(outcome), ttl).Err(); err != nil {
		return fmt.Errorf("redis processed set: %w", err)
	}
	return nil
}

func (c *ProcessedCache) key(eventID string) string {
	return c.prefix + domain.ProcessedEventKey(eventID)
}
