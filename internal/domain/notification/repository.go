package notification

import "context"

type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	// ListByUserID returns the newest notifications first.
	ListByUserID(ctx context.Context, userID uint, limit int) ([]*Notification, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	// MarkAllAsRead flips every unread row of the user and returns how many
	// changed.
	MarkAllAsRead(ctx context.Context, userID uint) (int64, error)
}
