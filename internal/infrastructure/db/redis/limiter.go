package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	attemptWindow = 15 * time.Minute
	maxAttempts   = 10
)

// AttemptLimiter counts failed signin attempts per account in a fixed
// window, backed by Redis. Key format: signin_attempts:<email>
type AttemptLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// NewAttemptLimiter creates an AttemptLimiter wrapping the given Redis client.
func NewAttemptLimiter(client *redis.Client) *AttemptLimiter {
	return &AttemptLimiter{client: client, max: maxAttempts, window: attemptWindow}
}

// TooMany reports whether the key has exhausted its attempt budget for
// the current window.
func (l *AttemptLimiter) TooMany(ctx context.Context, key string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(key)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= l.max, nil
}

// RecordFailure increments the attempt counter; the window starts with
// the first failure and is not extended by later ones.
func (l *AttemptLimiter) RecordFailure(ctx context.Context, key string) error {
	n, err := l.client.Incr(ctx, l.key(key)).Result()
	if err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, l.key(key), l.window).Err(); err != nil {
			return fmt.Errorf("throttle expire: %w", err)
		}
	}
	return nil
}

// Reset clears the counter after a successful signin.
func (l *AttemptLimiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.key(key)).Err()
}

func (l *AttemptLimiter) key(key string) string {
	return fmt.Sprintf("signin_attempts:%s", key)
}
