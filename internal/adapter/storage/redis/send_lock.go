package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// SendLock implements ports.SendLock using Redis SET NX.
type SendLock struct {
	client *goredis.Client
	prefix string
}

// NewSendLock creates a new Redis-backed notification send lock.
func NewSendLock(client *goredis.Client) *SendLock {
	return &SendLock{
		client: client,
		prefix: "prc:notify-lock:",
	}
}

// Acquire takes the lock for key. Returns false if someone else holds it.
func (l *SendLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := l.client.SetArgs(ctx, l.prefix+key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis send lock acquire: %w", err)
	}
	return result == "OK", nil
}

// Release drops the lock. Releasing an expired lock is not an error.
func (l *SendLock) Release(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis send lock release: %w", err)
	}
	return nil
}
