package testutil

import (
	"context"
	"sync"

	"github.com/deskhub/deskhub/internal/application/common"
)

// RecordingNotifier keeps every notification request in memory.
type RecordingNotifier struct {
	mu       sync.Mutex
	Requests []common.NotificationRequest
}

func (n *RecordingNotifier) Notify(_ context.Context, req common.NotificationRequest) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Requests = append(n.Requests, req)
}

// Recipients returns the user ids notified so far, in order.
func (n *RecordingNotifier) Recipients() []uint {
	n.mu.Lock()
	defer n.mu.Unlock()
	ids := make([]uint, 0, len(n.Requests))
	for _, r := range n.Requests {
		ids = append(ids, r.UserID)
	}
	return ids
}

// RecordingInvalidator records invalidated cache scopes.
type RecordingInvalidator struct {
	mu     sync.Mutex
	Scopes []string
}

func (r *RecordingInvalidator) Invalidate(_ context.Context, scopes ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Scopes = append(r.Scopes, scopes...)
}

// InlineTx runs the function directly and counts calls. Err, when set, is
// returned instead of running fn.
type InlineTx struct {
	Calls int
	Err   error
}

func (tx *InlineTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.Calls++
	if tx.Err != nil {
		return tx.Err
	}
	return fn(ctx)
}
