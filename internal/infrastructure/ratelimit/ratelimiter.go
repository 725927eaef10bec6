package ratelimit

import (
	"context"
	"time"
)

// Policy allows Requests per fixed Window.
type Policy struct {
	Requests int
	Window   time.Duration
}

func (p Policy) Enabled() bool {
	return p.Requests > 0 && p.Window > 0
}

type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, policy Policy) (Decision, error)
	Reset(ctx context.Context, key string) error
}
