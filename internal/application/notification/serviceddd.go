package notification

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/common"
	"github.com/deskhub/deskhub/internal/application/notification/dto"
	"github.com/deskhub/deskhub/internal/application/notification/usecases"
	"github.com/deskhub/deskhub/internal/domain/notification"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

// ServiceDDD bundles the notification use cases. It is also the Notifier
// handed to the other workflows.
type ServiceDDD struct {
	deliver       *usecases.DeliverNotificationUseCase
	list          *usecases.ListNotificationsUseCase
	unreadCount   *usecases.GetUnreadCountUseCase
	markAllAsRead *usecases.MarkAllAsReadUseCase
}

func NewServiceDDD(
	repo notification.NotificationRepository,
	recipients usecases.RecipientLookup,
	email usecases.EmailSender,
	cache common.CacheInvalidator,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		deliver:       usecases.NewDeliverNotificationUseCase(repo, recipients, email, cache, logger),
		list:          usecases.NewListNotificationsUseCase(repo, logger),
		unreadCount:   usecases.NewGetUnreadCountUseCase(repo, logger),
		markAllAsRead: usecases.NewMarkAllAsReadUseCase(repo, cache, logger),
	}
}

func (s *ServiceDDD) Notify(ctx context.Context, req common.NotificationRequest) {
	s.deliver.Notify(ctx, req)
}

func (s *ServiceDDD) ListNotifications(ctx context.Context, principal authorization.Principal, limit int) ([]*dto.NotificationDTO, error) {
	return s.list.Execute(ctx, principal, limit)
}

func (s *ServiceDDD) GetUnreadCount(ctx context.Context, principal authorization.Principal) (*dto.UnreadCountDTO, error) {
	return s.unreadCount.Execute(ctx, principal)
}

func (s *ServiceDDD) MarkAllAsRead(ctx context.Context, principal authorization.Principal) (*dto.MarkAllAsReadDTO, error) {
	return s.markAllAsRead.Execute(ctx, principal)
}
