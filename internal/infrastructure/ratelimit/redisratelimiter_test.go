package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)
	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})
	return client
}

func TestRedisRateLimiter_FixedWindow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client, "test:")
	fixed := time.Date(2026, 1, 1, 12, 0, 10, 0, time.UTC)
	limiter.now = func() time.Time { return fixed }

	ctx := context.Background()
	policy := Policy{Requests: 3, Window: time.Minute}

	for i := 0; i < 3; i++ {
		d, err := limiter.Allow(ctx, "login:1.2.3.4", policy)
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 2-i, d.Remaining)
	}

	d, err := limiter.Allow(ctx, "login:1.2.3.4", policy)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 50*time.Second, d.RetryAfter)

	// next window starts a fresh counter
	limiter.now = func() time.Time { return fixed.Add(time.Minute) }
	d, err = limiter.Allow(ctx, "login:1.2.3.4", policy)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestRedisRateLimiter_KeysAreIndependent(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client, "test:")
	ctx := context.Background()
	policy := Policy{Requests: 1, Window: time.Minute}

	d, err := limiter.Allow(ctx, "a", policy)
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	d, err = limiter.Allow(ctx, "b", policy)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client, "test:")
	ctx := context.Background()
	policy := Policy{Requests: 1, Window: time.Hour}

	_, err := limiter.Allow(ctx, "reset-key", policy)
	require.NoError(t, err)
	d, err := limiter.Allow(ctx, "reset-key", policy)
	require.NoError(t, err)
	assert.False(t, d.Allowed)

	require.NoError(t, limiter.Reset(ctx, "reset-key"))

	d, err = limiter.Allow(ctx, "reset-key", policy)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestPolicy_DisabledAlwaysAllows(t *testing.T) {
	limiter := &RedisRateLimiter{}
	d, err := limiter.Allow(context.Background(), "x", Policy{})
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}
