package usecases

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/common"
	"github.com/deskhub/deskhub/internal/application/notification/dto"
	"github.com/deskhub/deskhub/internal/domain/notification"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/constants"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

type ListNotificationsUseCase struct {
	repo   notification.NotificationRepository
	logger logger.Interface
}

func NewListNotificationsUseCase(repo notification.NotificationRepository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{repo: repo, logger: logger}
}

// Execute returns the principal's newest notifications; limit is clamped.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context, principal authorization.Principal, limit int) ([]*dto.NotificationDTO, error) {
	if principal.IsZero() {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if limit <= 0 {
		limit = constants.DefaultNotificationsLimit
	}
	if limit > constants.MaxNotificationsLimit {
		limit = constants.MaxNotificationsLimit
	}

	items, err := uc.repo.ListByUserID(ctx, principal.UserID, limit)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "error", err, "user_id", principal.UserID)
		return nil, errors.NewInternalError("failed to list notifications")
	}
	return dto.ToNotificationDTOs(items), nil
}

type GetUnreadCountUseCase struct {
	repo   notification.NotificationRepository
	logger logger.Interface
}

func NewGetUnreadCountUseCase(repo notification.NotificationRepository, logger logger.Interface) *GetUnreadCountUseCase {
	return &GetUnreadCountUseCase{repo: repo, logger: logger}
}

func (uc *GetUnreadCountUseCase) Execute(ctx context.Context, principal authorization.Principal) (*dto.UnreadCountDTO, error) {
	if principal.IsZero() {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	count, err := uc.repo.CountUnread(ctx, principal.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "error", err, "user_id", principal.UserID)
		return nil, errors.NewInternalError("failed to count notifications")
	}
	return &dto.UnreadCountDTO{Count: count}, nil
}

type MarkAllAsReadUseCase struct {
	repo   notification.NotificationRepository
	cache  common.CacheInvalidator
	logger logger.Interface
}

func NewMarkAllAsReadUseCase(repo notification.NotificationRepository, cache common.CacheInvalidator, logger logger.Interface) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{repo: repo, cache: cache, logger: logger}
}

// Execute only touches the principal's own rows.
func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, principal authorization.Principal) (*dto.MarkAllAsReadDTO, error) {
	uc.logger.Infow("executing mark all notifications as read use case", "user_id", principal.UserID)

	if principal.IsZero() {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	updated, err := uc.repo.MarkAllAsRead(ctx, principal.UserID)
	if err != nil {
		uc.logger.Errorw("failed to mark all notifications as read", "user_id", principal.UserID, "error", err)
		return nil, errors.NewInternalError("failed to update notifications")
	}
	if updated > 0 {
		uc.cache.Invalidate(ctx, constants.ScopeNotifications)
	}

	uc.logger.Infow("all notifications marked as read", "user_id", principal.UserID, "updated", updated)
	return &dto.MarkAllAsReadDTO{Updated: updated}, nil
}
