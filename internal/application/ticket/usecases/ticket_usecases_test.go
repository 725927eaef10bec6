package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskhub/deskhub/internal/application/testutil"
	"github.com/deskhub/deskhub/internal/domain/ticket"
	vo "github.com/deskhub/deskhub/internal/domain/ticket/valueobjects"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/constants"
	apperrors "github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

var (
	employee = authorization.NewPrincipal(1, authorization.RoleEmployee)
	staff    = authorization.NewPrincipal(2, authorization.RoleITStaff)
	admin    = authorization.NewPrincipal(3, authorization.RoleAdmin)
)

func defaultUsers() *mockUserRepository {
	return newMockUserRepository(
		newTestUser(1, "Erin Employee", authorization.RoleEmployee, true),
		newTestUser(2, "Sam Staff", authorization.RoleITStaff, true),
		newTestUser(3, "Ada Admin", authorization.RoleAdmin, true),
		newTestUser(4, "Ivan Inactive", authorization.RoleITStaff, false),
		newTestUser(5, "Eve Employee", authorization.RoleEmployee, true),
	)
}

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	var created *ticket.Ticket
	repo := &mockTicketRepository{
		CreateFunc: func(_ context.Context, tk *ticket.Ticket) error {
			created = tk
			return tk.SetID(42)
		},
	}
	cache := &testutil.RecordingInvalidator{}
	uc := NewCreateTicketUseCase(repo, newMockLookupRepository(), defaultUsers(), testutil.NewDefaultChecker(), cache, logger.NewNop())

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Principal:   employee,
		Title:       "  VPN drops every hour ",
		Description: "Since Monday",
		Category:    "Network",
		Priority:    "High",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint(42), result.ID)
	assert.Equal(t, "VPN drops every hour", result.Title)
	assert.Equal(t, "Open", result.Status)
	assert.Equal(t, uint(1), result.CreatedBy)
	assert.Equal(t, "Erin Employee", result.CreatorName)
	assert.Nil(t, result.AssignedTo)
	assert.ElementsMatch(t, []string{constants.ScopeTickets, constants.ScopeDashboard}, cache.Scopes)
}

func TestCreateTicketUseCase_Execute_UnknownCategory(t *testing.T) {
	repo := &mockTicketRepository{
		CreateFunc: func(context.Context, *ticket.Ticket) error {
			t.Fatal("store must not be touched")
			return nil
		},
	}
	uc := NewCreateTicketUseCase(repo, newMockLookupRepository(), defaultUsers(), testutil.NewDefaultChecker(), &testutil.RecordingInvalidator{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Principal: employee, Title: "x", Description: "y", Category: "Plumbing", Priority: "Low",
	})

	assert.True(t, apperrors.IsValidationError(err))
}

func TestCreateTicketUseCase_Execute_MissingTitle(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepository{}, newMockLookupRepository(), defaultUsers(), testutil.NewDefaultChecker(), &testutil.RecordingInvalidator{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Principal: employee, Title: "   ", Description: "y", Category: "Network", Priority: "Low",
	})

	assert.True(t, apperrors.IsValidationError(err))
}

func TestCreateTicketUseCase_Execute_StoreFailureIsGeneric(t *testing.T) {
	repo := &mockTicketRepository{
		CreateFunc: func(context.Context, *ticket.Ticket) error {
			return errors.New("pq: connection reset")
		},
	}
	uc := NewCreateTicketUseCase(repo, newMockLookupRepository(), defaultUsers(), testutil.NewDefaultChecker(), &testutil.RecordingInvalidator{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Principal: employee, Title: "x", Description: "y", Category: "Network", Priority: "Low",
	})

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
	assert.NotContains(t, appErr.Message, "pq")
}

func TestAssignTicketUseCase_SelfAssign_Success(t *testing.T) {
	existing := newTestTicket(7, 1, nil, vo.StatusOpen)
	var updated *ticket.Ticket
	repo := &mockTicketRepository{
		GetByIDFunc: func(context.Context, uint) (*ticket.Ticket, error) { return existing, nil },
		UpdateFunc: func(_ context.Context, tk *ticket.Ticket) error {
			updated = tk
			return nil
		},
	}
	notifier := &testutil.RecordingNotifier{}
	uc := NewAssignTicketUseCase(repo, defaultUsers(), testutil.NewDefaultChecker(), notifier, &testutil.RecordingInvalidator{}, logger.NewNop())

	result, err := uc.SelfAssign(context.Background(), staff, 7)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, vo.StatusInProgress, updated.Status())
	assert.True(t, updated.IsAssignedTo(2))
	assert.Equal(t, "Sam Staff", result.AssigneeName)
	assert.Equal(t, []uint{1}, notifier.Recipients())
}

func TestAssignTicketUseCase_SelfAssign_EmployeeForbidden(t *testing.T) {
	repo := &mockTicketRepository{
		GetByIDFunc: func(context.Context, uint) (*ticket.Ticket, error) {
			t.Fatal("store must not be touched")
			return nil, nil
		},
	}
	uc := NewAssignTicketUseCase(repo, defaultUsers(), testutil.NewDefaultChecker(), &testutil.RecordingNotifier{}, &testutil.RecordingInvalidator{}, logger.NewNop())

	_, err := uc.SelfAssign(context.Background(), employee, 7)

	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestAssignTicketUseCase_Execute_NotifiesAssigneeAndCreator(t *testing.T) {
	existing := newTestTicket(7, 1, nil, vo.StatusOpen)
	repo := &mockTicketRepository{
		GetByIDFunc: func(context.Context, uint) (*ticket.Ticket, error) { return existing, nil },
	}
	notifier := &testutil.RecordingNotifier{}
	uc := NewAssignTicketUseCase(repo, defaultUsers(), testutil.NewDefaultChecker(), notifier, &testutil.RecordingInvalidator{}, logger.NewNop())

	result, err := uc.Execute(context.Background(), AssignTicketCommand{Principal: admin, TicketID: 7, AssigneeID: 2})

	require.NoError(t, err)
	assert.Equal(t, "In Progress", result.Status)
	assert.Equal(t, []uint{2, 1}, notifier.Recipients())
	assert.Equal(t, "/tickets/7", notifier.Requests[0].LinkTo)
}

func TestAssignTicketUseCase_Execute_RejectsIneligibleAssignee(t *testing.T) {
	tests := []struct {
		name       string
		assigneeID uint
		check      func(error) bool
	}{
		{"employee", 5, apperrors.IsValidationError},
		{"inactive staff", 4, apperrors.IsValidationError},
		{"missing", 99, apperrors.IsNotFoundError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := newTestTicket(7, 1, nil, vo.StatusOpen)
			repo := &mockTicketRepository{
				GetByIDFunc: func(context.Context, uint) (*ticket.Ticket, error) { return existing, nil },
				UpdateFunc: func(context.Context, *ticket.Ticket) error {
					t.Fatal("ticket must not be updated")
					return nil
				},
			}
			uc := NewAssignTicketUseCase(repo, defaultUsers(), testutil.NewDefaultChecker(), &testutil.RecordingNotifier{}, &testutil.RecordingInvalidator{}, logger.NewNop())

			_, err := uc.Execute(context.Background(), AssignTicketCommand{Principal: admin, TicketID: 7, AssigneeID: tt.assigneeID})

			assert.True(t, tt.check(err), "unexpected error %v", err)
		})
	}
}

func TestAssignTicketUseCase_Execute_TicketNotFound(t *testing.T) {
	uc := NewAssignTicketUseCase(&mockTicketRepository{}, defaultUsers(), testutil.NewDefaultChecker(), &testutil.RecordingNotifier{}, &testutil.RecordingInvalidator{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), AssignTicketCommand{Principal: admin, TicketID: 7, AssigneeID: 2})

	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUpdateTicketStatusUseCase_Execute(t *testing.T) {
	tests := []struct {
		name      string
		principal authorization.Principal
		assignee  *uint
		status    string
		wantErr   func(error) bool
		want      vo.TicketStatus
	}{
		{name: "staff resolves own ticket", principal: staff, assignee: uintPtr(2), status: "Resolved", want: vo.StatusResolved},
		{name: "staff reopens own ticket", principal: staff, assignee: uintPtr(2), status: "open", want: vo.StatusOpen},
		{name: "staff on other ticket", principal: staff, assignee: uintPtr(3), status: "Resolved", wantErr: apperrors.IsForbiddenError},
		{name: "staff cannot close", principal: staff, assignee: uintPtr(2), status: "Closed", wantErr: apperrors.IsForbiddenError},
		{name: "admin closes any ticket", principal: admin, assignee: nil, status: "Closed", want: vo.StatusClosed},
		{name: "employee forbidden", principal: employee, assignee: nil, status: "Resolved", wantErr: apperrors.IsForbiddenError},
		{name: "unknown status", principal: admin, assignee: nil, status: "Pending", wantErr: apperrors.IsValidationError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := newTestTicket(7, 1, tt.assignee, vo.StatusInProgress)
			updates := 0
			repo := &mockTicketRepository{
				GetByIDFunc: func(context.Context, uint) (*ticket.Ticket, error) { return existing, nil },
				UpdateFunc: func(context.Context, *ticket.Ticket) error {
					updates++
					return nil
				},
			}
			notifier := &testutil.RecordingNotifier{}
			uc := NewUpdateTicketStatusUseCase(repo, defaultUsers(), testutil.NewDefaultChecker(), notifier, &testutil.RecordingInvalidator{}, logger.NewNop())

			result, err := uc.Execute(context.Background(), UpdateTicketStatusCommand{Principal: tt.principal, TicketID: 7, Status: tt.status})

			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), "unexpected error %v", err)
				assert.Zero(t, updates)
				assert.Empty(t, notifier.Requests)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, updates)
			assert.Equal(t, string(tt.want), result.Status)
			assert.Equal(t, []uint{1}, notifier.Recipients())
		})
	}
}

func TestUpdateTicketStatusUseCase_Execute_InvalidStatusSkipsStore(t *testing.T) {
	repo := &mockTicketRepository{
		GetByIDFunc: func(context.Context, uint) (*ticket.Ticket, error) {
			t.Fatal("store must not be read for an invalid status")
			return nil, nil
		},
	}
	uc := NewUpdateTicketStatusUseCase(repo, defaultUsers(), testutil.NewDefaultChecker(), &testutil.RecordingNotifier{}, &testutil.RecordingInvalidator{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), UpdateTicketStatusCommand{Principal: admin, TicketID: 7, Status: "Archived"})

	require.Error(t, err)
	assert.Equal(t, "Invalid status provided.", apperrors.GetAppError(err).Message)
}

func TestUpdateTicketStatusUseCase_Execute_ResolvedAtLifecycle(t *testing.T) {
	existing := newTestTicket(7, 1, uintPtr(2), vo.StatusInProgress)
	repo := &mockTicketRepository{
		GetByIDFunc: func(context.Context, uint) (*ticket.Ticket, error) { return existing, nil },
	}
	uc := NewUpdateTicketStatusUseCase(repo, defaultUsers(), testutil.NewDefaultChecker(), &testutil.RecordingNotifier{}, &testutil.RecordingInvalidator{}, logger.NewNop())

	resolved, err := uc.Execute(context.Background(), UpdateTicketStatusCommand{Principal: staff, TicketID: 7, Status: "Resolved"})
	require.NoError(t, err)
	assert.NotNil(t, resolved.ResolvedAt)

	reopened, err := uc.Execute(context.Background(), UpdateTicketStatusCommand{Principal: staff, TicketID: 7, Status: "In Progress"})
	require.NoError(t, err)
	assert.Nil(t, reopened.ResolvedAt)
}

func TestUpdateTicketUseCase_Execute_AdminOnly(t *testing.T) {
	existing := newTestTicket(7, 1, nil, vo.StatusOpen)
	repo := &mockTicketRepository{
		GetByIDFunc: func(context.Context, uint) (*ticket.Ticket, error) { return existing, nil },
	}
	uc := NewUpdateTicketUseCase(repo, newMockLookupRepository(), defaultUsers(), testutil.NewDefaultChecker(), &testutil.RecordingInvalidator{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		Principal: staff, TicketID: 7, Title: "t", Description: "d", Category: "Software", Priority: "Low",
	})
	assert.True(t, apperrors.IsForbiddenError(err))

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		Principal: admin, TicketID: 7, Title: "Laptop fan noise", Description: "d", Category: "Software", Priority: "Low",
	})
	require.NoError(t, err)
	assert.Equal(t, "Laptop fan noise", result.Title)
	assert.Equal(t, "Software", result.Category)
}

func TestDeleteTicketUseCase_Execute(t *testing.T) {
	existing := newTestTicket(7, 1, nil, vo.StatusOpen)
	deleted := false
	repo := &mockTicketRepository{
		GetByIDFunc: func(context.Context, uint) (*ticket.Ticket, error) { return existing, nil },
		DeleteFunc: func(context.Context, uint) error {
			deleted = true
			return nil
		},
	}
	cache := &testutil.RecordingInvalidator{}
	uc := NewDeleteTicketUseCase(repo, testutil.NewDefaultChecker(), cache, logger.NewNop())

	err := uc.Execute(context.Background(), DeleteTicketCommand{Principal: staff, TicketID: 7})
	assert.True(t, apperrors.IsForbiddenError(err))
	assert.False(t, deleted)

	require.NoError(t, uc.Execute(context.Background(), DeleteTicketCommand{Principal: admin, TicketID: 7}))
	assert.True(t, deleted)
	assert.Contains(t, cache.Scopes, constants.ScopeTickets)
}

func TestGetTicketUseCase_Execute_Visibility(t *testing.T) {
	existing := newTestTicket(7, 1, nil, vo.StatusOpen)
	repo := &mockTicketRepository{
		GetByIDFunc: func(context.Context, uint) (*ticket.Ticket, error) { return existing, nil },
	}
	uc := NewGetTicketUseCase(repo, defaultUsers(), logger.NewNop())

	got, err := uc.Execute(context.Background(), GetTicketQuery{Principal: employee, TicketID: 7})
	require.NoError(t, err)
	assert.Equal(t, uint(7), got.ID)

	_, err = uc.Execute(context.Background(), GetTicketQuery{Principal: staff, TicketID: 7})
	assert.NoError(t, err)

	_, err = uc.Execute(context.Background(), GetTicketQuery{
		Principal: authorization.NewPrincipal(5, authorization.RoleEmployee), TicketID: 7,
	})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestListTicketsUseCase_Execute_Views(t *testing.T) {
	var captured ticket.TicketFilter
	repo := &mockTicketRepository{
		ListFunc: func(_ context.Context, f ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			captured = f
			return []*ticket.Ticket{newTestTicket(7, 1, nil, vo.StatusOpen)}, 1, nil
		},
		CountUnassignedFunc: func(context.Context) (int64, error) { return 4, nil },
	}
	uc := NewListTicketsUseCase(repo, defaultUsers(), testutil.NewDefaultChecker(), logger.NewNop())

	mine, err := uc.Execute(context.Background(), ListTicketsQuery{Principal: employee, View: ViewMine, Search: "vpn", PageSize: 500})
	require.NoError(t, err)
	require.NotNil(t, captured.CreatorID)
	assert.Equal(t, uint(1), *captured.CreatorID)
	assert.Equal(t, "vpn", captured.Search)
	assert.Equal(t, constants.MaxPageSize, captured.PageSize)
	assert.Equal(t, ticket.SortNewest, captured.SortBy)
	assert.Nil(t, mine.UnassignedCount)
	assert.Len(t, mine.Tickets, 1)

	_, err = uc.Execute(context.Background(), ListTicketsQuery{Principal: employee, View: ViewQueue})
	assert.True(t, apperrors.IsForbiddenError(err))

	queue, err := uc.Execute(context.Background(), ListTicketsQuery{Principal: staff, View: ViewQueue, SortBy: "oldest"})
	require.NoError(t, err)
	assert.True(t, captured.ExcludeFinished)
	assert.Equal(t, ticket.SortOldest, captured.SortBy)
	require.NotNil(t, queue.UnassignedCount)
	assert.Equal(t, int64(4), *queue.UnassignedCount)

	_, err = uc.Execute(context.Background(), ListTicketsQuery{Principal: staff, View: ViewAssigned, Status: "resolved"})
	require.NoError(t, err)
	require.NotNil(t, captured.AssigneeID)
	require.NotNil(t, captured.Status)
	assert.Equal(t, vo.StatusResolved, *captured.Status)
}

func TestListTicketLookupsUseCase_Execute(t *testing.T) {
	uc := NewListTicketLookupsUseCase(newMockLookupRepository(), logger.NewNop())

	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Len(t, result.Categories, 3)
	assert.Equal(t, "Low", result.Priorities[0].Name)
}
