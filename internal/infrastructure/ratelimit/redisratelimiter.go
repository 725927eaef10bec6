package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter counts requests per fixed window with INCR on a key that
// names the window, so counters expire on their own.
type RedisRateLimiter struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

func NewRedisRateLimiter(client *redis.Client, prefix string) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		prefix: prefix,
		now:    time.Now,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string, policy Policy) (Decision, error) {
	if !policy.Enabled() {
		return Decision{Allowed: true}, nil
	}

	now := l.now()
	windowStart := now.Truncate(policy.Window)
	redisKey := l.getKey(key, policy.Window, windowStart)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, policy.Window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	count := int(incr.Val())
	remaining := policy.Requests - count
	if remaining < 0 {
		remaining = 0
	}
	decision := Decision{
		Allowed:   count <= policy.Requests,
		Limit:     policy.Requests,
		Remaining: remaining,
	}
	if !decision.Allowed {
		decision.RetryAfter = windowStart.Add(policy.Window).Sub(now)
	}
	return decision, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	pattern := fmt.Sprintf("%sratelimit:%s:*", l.prefix, key)

	iter := l.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := l.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys: %w", err)
	}
	return nil
}

func (l *RedisRateLimiter) getKey(identifier string, window time.Duration, start time.Time) string {
	return fmt.Sprintf("%sratelimit:%s:%s:%d", l.prefix, identifier, window.String(), start.Unix())
}
