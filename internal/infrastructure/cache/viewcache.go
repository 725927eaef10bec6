package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/deskhub/deskhub/internal/application/common"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

var _ common.CacheInvalidator = (*ViewCache)(nil)

// CachedView is one rendered read response.
type CachedView struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// ViewCache stores read responses per scope. Each scope has a version
// counter that is part of every key; Invalidate bumps the counter so stale
// entries are never read again and expire on their own TTL.
//
// A nil client disables the cache. Redis failures are logged and treated as
// misses.
type ViewCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger logger.Interface
}

func NewViewCache(client *redis.Client, prefix string, ttl time.Duration, logger logger.Interface) *ViewCache {
	return &ViewCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *ViewCache) Enabled() bool {
	return c != nil && c.client != nil && c.ttl > 0
}

// Get looks up the view for variant (principal and URL) under scope.
func (c *ViewCache) Get(ctx context.Context, scope, variant string) (*CachedView, bool) {
	if !c.Enabled() {
		return nil, false
	}
	key, err := c.entryKey(ctx, scope, variant)
	if err != nil {
		c.logger.Warnw("view cache lookup failed", "scope", scope, "error", err)
		return nil, false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warnw("view cache lookup failed", "scope", scope, "error", err)
		return nil, false
	}

	var view CachedView
	if err := json.Unmarshal(raw, &view); err != nil {
		c.logger.Warnw("discarding corrupt view cache entry", "scope", scope, "error", err)
		return nil, false
	}
	return &view, true
}

func (c *ViewCache) Set(ctx context.Context, scope, variant string, view CachedView) {
	if !c.Enabled() {
		return
	}
	key, err := c.entryKey(ctx, scope, variant)
	if err != nil {
		c.logger.Warnw("view cache store failed", "scope", scope, "error", err)
		return
	}
	data, err := json.Marshal(view)
	if err != nil {
		c.logger.Warnw("view cache store failed", "scope", scope, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warnw("view cache store failed", "scope", scope, "error", err)
	}
}

// Invalidate drops every cached view of the given scopes.
func (c *ViewCache) Invalidate(ctx context.Context, scopes ...string) {
	if !c.Enabled() || len(scopes) == 0 {
		return
	}
	pipe := c.client.Pipeline()
	for _, scope := range scopes {
		pipe.Incr(ctx, c.versionKey(scope))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warnw("view cache invalidation failed", "scopes", scopes, "error", err)
		return
	}
	c.logger.Debugw("view cache invalidated", "scopes", scopes)
}

func (c *ViewCache) entryKey(ctx context.Context, scope, variant string) (string, error) {
	version, err := c.client.Get(ctx, c.versionKey(scope)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("failed to read scope version: %w", err)
	}
	sum := sha256.Sum256([]byte(variant))
	return fmt.Sprintf("%sview:%s:%d:%s", c.prefix, scope, version, hex.EncodeToString(sum[:16])), nil
}

func (c *ViewCache) versionKey(scope string) string {
	return c.prefix + "view:version:" + scope
}
