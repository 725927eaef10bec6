// Package common holds the ports shared by every use case package.
package common

import "context"

// NotificationRequest describes one message to a user. Subject is used for
// the email copy.
type NotificationRequest struct {
	UserID  uint
	Subject string
	Message string
	LinkTo  string
}

// Notifier delivers notifications. It is best effort: failures are logged by
// the implementation and never fail the calling workflow.
type Notifier interface {
	Notify(ctx context.Context, req NotificationRequest)
}

// CacheInvalidator drops cached read views after a mutation.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, scopes ...string)
}

// TransactionRunner runs fn atomically; repositories join the transaction
// through ctx.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// NopInvalidator is used when no view cache is configured.
type NopInvalidator struct{}

func (NopInvalidator) Invalidate(context.Context, ...string) {}
