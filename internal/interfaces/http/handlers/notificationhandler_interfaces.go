package handlers

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/notification/dto"
	"github.com/deskhub/deskhub/internal/shared/authorization"
)

// Service interface for NotificationHandler - enables unit testing with mocks.

type notificationService interface {
	ListNotifications(ctx context.Context, principal authorization.Principal, limit int) ([]*dto.NotificationDTO, error)
	GetUnreadCount(ctx context.Context, principal authorization.Principal) (*dto.UnreadCountDTO, error)
	MarkAllAsRead(ctx context.Context, principal authorization.Principal) (*dto.MarkAllAsReadDTO, error)
}
