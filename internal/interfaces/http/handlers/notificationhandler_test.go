package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appDto "github.com/deskhub/deskhub/internal/application/notification/dto"
	"github.com/deskhub/deskhub/internal/interfaces/http/handlers/testutil"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/constants"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

// =====================================================================
// Mock notification service
// =====================================================================

type mockNotificationService struct {
	listNotificationsFn func(ctx context.Context, p authorization.Principal, limit int) ([]*appDto.NotificationDTO, error)
	getUnreadCountFn    func(ctx context.Context, p authorization.Principal) (*appDto.UnreadCountDTO, error)
	markAllAsReadFn     func(ctx context.Context, p authorization.Principal) (*appDto.MarkAllAsReadDTO, error)
}

func (m *mockNotificationService) ListNotifications(ctx context.Context, p authorization.Principal, limit int) ([]*appDto.NotificationDTO, error) {
	if m.listNotificationsFn != nil {
		return m.listNotificationsFn(ctx, p, limit)
	}
	return nil, nil
}

func (m *mockNotificationService) GetUnreadCount(ctx context.Context, p authorization.Principal) (*appDto.UnreadCountDTO, error) {
	if m.getUnreadCountFn != nil {
		return m.getUnreadCountFn(ctx, p)
	}
	return &appDto.UnreadCountDTO{}, nil
}

func (m *mockNotificationService) MarkAllAsRead(ctx context.Context, p authorization.Principal) (*appDto.MarkAllAsReadDTO, error) {
	if m.markAllAsReadFn != nil {
		return m.markAllAsReadFn(ctx, p)
	}
	return &appDto.MarkAllAsReadDTO{}, nil
}

func newTestNotificationHandler(svc notificationService) *NotificationHandler {
	return NewNotificationHandler(svc, logger.NewNop())
}

// =====================================================================
// ListNotifications
// =====================================================================

func TestNotificationHandler_ListNotifications_DefaultLimit(t *testing.T) {
	var gotLimit int
	var gotUser uint
	svc := &mockNotificationService{listNotificationsFn: func(_ context.Context, p authorization.Principal, limit int) ([]*appDto.NotificationDTO, error) {
		gotLimit, gotUser = limit, p.UserID
		return []*appDto.NotificationDTO{{ID: 1, Message: "Ticket #4 was assigned to you", LinkTo: "/tickets/4", CreatedAt: time.Now()}}, nil
	}}
	handler := newTestNotificationHandler(svc)

	c, w := testutil.NewTestContext(http.MethodGet, "/notifications", nil)
	testutil.SetPrincipal(c, 5, authorization.RoleITStaff)

	handler.ListNotifications(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.DefaultNotificationsLimit, gotLimit)
	assert.Equal(t, uint(5), gotUser)
	assert.Contains(t, w.Body.String(), "/tickets/4")
}

func TestNotificationHandler_ListNotifications_Limit(t *testing.T) {
	tests := []struct {
		name   string
		limit  string
		status int
	}{
		{"explicit", "5", http.StatusOK},
		{"zero", "0", http.StatusBadRequest},
		{"not a number", "ten", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestNotificationHandler(&mockNotificationService{})
			c, w := testutil.NewTestContext(http.MethodGet, "/notifications", nil)
			testutil.SetPrincipal(c, 5, authorization.RoleITStaff)
			testutil.SetQueryParams(c, map[string]string{"limit": tt.limit})

			handler.ListNotifications(c)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestNotificationHandler_ListNotifications_EmptyIsArray(t *testing.T) {
	handler := newTestNotificationHandler(&mockNotificationService{})
	c, w := testutil.NewTestContext(http.MethodGet, "/notifications", nil)
	testutil.SetPrincipal(c, 5, authorization.RoleITStaff)

	handler.ListNotifications(c)

	assert.Contains(t, w.Body.String(), `"data":[]`)
}

// =====================================================================
// Unread / mark all
// =====================================================================

func TestNotificationHandler_GetUnreadCount(t *testing.T) {
	svc := &mockNotificationService{getUnreadCountFn: func(context.Context, authorization.Principal) (*appDto.UnreadCountDTO, error) {
		return &appDto.UnreadCountDTO{Count: 3}, nil
	}}
	handler := newTestNotificationHandler(svc)

	c, w := testutil.NewTestContext(http.MethodGet, "/notifications/unread-count", nil)
	testutil.SetPrincipal(c, 5, authorization.RoleITStaff)

	handler.GetUnreadCount(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":3`)
}

func TestNotificationHandler_MarkAllAsRead_Error(t *testing.T) {
	svc := &mockNotificationService{markAllAsReadFn: func(context.Context, authorization.Principal) (*appDto.MarkAllAsReadDTO, error) {
		return nil, errors.NewInternalError("failed to update notifications", "db down")
	}}
	handler := newTestNotificationHandler(svc)

	c, w := testutil.NewTestContext(http.MethodPost, "/notifications/read-all", nil)
	testutil.SetPrincipal(c, 5, authorization.RoleITStaff)

	handler.MarkAllAsRead(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}
