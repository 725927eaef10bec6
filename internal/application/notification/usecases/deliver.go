package usecases

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/common"
	"github.com/deskhub/deskhub/internal/domain/notification"
	"github.com/deskhub/deskhub/internal/shared/constants"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

// DeliverNotificationUseCase writes the in-app row and, when enabled, an
// email copy. It implements common.Notifier and never fails the caller.
type DeliverNotificationUseCase struct {
	repo       notification.NotificationRepository
	recipients RecipientLookup
	email      EmailSender
	cache      common.CacheInvalidator
	logger     logger.Interface
}

func NewDeliverNotificationUseCase(
	repo notification.NotificationRepository,
	recipients RecipientLookup,
	email EmailSender,
	cache common.CacheInvalidator,
	logger logger.Interface,
) *DeliverNotificationUseCase {
	return &DeliverNotificationUseCase{
		repo:       repo,
		recipients: recipients,
		email:      email,
		cache:      cache,
		logger:     logger,
	}
}

func (uc *DeliverNotificationUseCase) Notify(ctx context.Context, req common.NotificationRequest) {
	n, err := notification.NewNotification(req.UserID, req.Message, req.LinkTo)
	if err != nil {
		uc.logger.Warnw("dropping invalid notification", "error", err, "user_id", req.UserID)
		return
	}
	if err := uc.repo.Create(ctx, n); err != nil {
		uc.logger.Errorw("failed to store notification", "error", err, "user_id", req.UserID)
		return
	}
	uc.cache.Invalidate(ctx, constants.ScopeNotifications)

	if uc.email == nil || !uc.email.IsEnabled() {
		return
	}
	recipient, err := uc.recipients.GetByID(ctx, req.UserID)
	if err != nil || recipient == nil {
		uc.logger.Warnw("notification recipient not found for email", "error", err, "user_id", req.UserID)
		return
	}
	if !recipient.IsActive() || !recipient.ReceiveNotifications() {
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = "DeskHub notification"
	}
	if err := uc.email.Send(recipient.Email().String(), subject, n.Message()); err != nil {
		uc.logger.Warnw("failed to send notification email", "error", err, "user_id", req.UserID)
	}
}
