package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskhub/deskhub/internal/domain/ticket"
	vo "github.com/deskhub/deskhub/internal/domain/ticket/valueobjects"
	"github.com/deskhub/deskhub/internal/infrastructure/persistence/models"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
)

var testAdmin = authorization.NewPrincipal(99, authorization.RoleAdmin)

func createTicket(t *testing.T, repo *TicketRepository, title string, creatorID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(title, "Printer on floor 3 is jammed", "Hardware", "Medium", creatorID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), tk))
	return tk
}

func uintPtr(v uint) *uint { return &v }

func TestTicketRepository_CreateAndGet(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	tk := createTicket(t, repo, "Printer jam", 1)
	assert.NotZero(t, tk.ID())

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Printer jam", found.Title())
	assert.Equal(t, vo.StatusOpen, found.Status())
	assert.Nil(t, found.AssigneeID())

	missing, err := repo.GetByID(ctx, 4242)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTicketRepository_UpdatePersistsAssignmentAndResolution(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	tk := createTicket(t, repo, "VPN drops", 1)
	require.NoError(t, tk.AssignTo(2))
	require.NoError(t, tk.ChangeStatus(testAdmin, vo.StatusResolved))
	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusResolved, found.Status())
	require.NotNil(t, found.AssigneeID())
	assert.Equal(t, uint(2), *found.AssigneeID())
	assert.NotNil(t, found.ResolvedAt())
}

func TestTicketRepository_Delete(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	tk := createTicket(t, repo, "Old ticket", 1)
	require.NoError(t, repo.Delete(ctx, tk.ID()))

	err := repo.Delete(ctx, tk.ID())
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTicketRepository_ListFilters(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	mine := createTicket(t, repo, "Laptop battery", 1)
	createTicket(t, repo, "Monitor flicker", 1)
	other := createTicket(t, repo, "Email quota", 5)
	done := createTicket(t, repo, "Password reset", 5)

	require.NoError(t, mine.AssignTo(2))
	require.NoError(t, repo.Update(ctx, mine))
	require.NoError(t, done.ChangeStatus(testAdmin, vo.StatusClosed))
	require.NoError(t, repo.Update(ctx, done))

	t.Run("by creator", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{CreatorID: uintPtr(1), Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, tickets, 2)
	})

	t.Run("by assignee", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{AssigneeID: uintPtr(2)})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, mine.ID(), tickets[0].ID())
	})

	t.Run("queue excludes finished", func(t *testing.T) {
		_, total, err := repo.List(ctx, ticket.TicketFilter{ExcludeFinished: true})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("unassigned", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{Unassigned: true, ExcludeFinished: true})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, tk := range tickets {
			assert.False(t, tk.IsAssigned())
		}
	})

	t.Run("status filter", func(t *testing.T) {
		closed := vo.StatusClosed
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{Status: &closed})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, done.ID(), tickets[0].ID())
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{Search: "EMAIL"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, other.ID(), tickets[0].ID())
	})

	t.Run("pagination keeps total", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{Page: 2, PageSize: 3, SortBy: ticket.SortOldest})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		require.Len(t, tickets, 1)
		assert.Equal(t, done.ID(), tickets[0].ID())
	})

	unassigned, err := repo.CountUnassigned(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unassigned)
}

func TestTicketRepository_Aggregates(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	a := createTicket(t, repo, "One", 1)
	createTicket(t, repo, "Two", 1)
	c := createTicket(t, repo, "Three", 3)
	require.NoError(t, a.AssignTo(2))
	require.NoError(t, repo.Update(ctx, a))

	counts, err := repo.CountByStatus(ctx, ticket.StatusCountFilter{CreatorID: uintPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[vo.StatusOpen])
	assert.Equal(t, int64(1), counts[vo.StatusInProgress])

	created := time.Now().UTC().AddDate(0, 0, -30)
	require.NoError(t, gdb.Model(&models.TicketModel{}).Where("id = ?", c.ID()).Updates(map[string]interface{}{
		"created_at":  created,
		"resolved_at": created.Add(4 * time.Hour),
		"status":      vo.StatusResolved.String(),
	}).Error)

	avg, count, err := repo.AverageResolution(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, 4*time.Hour, avg)

	recent, err := repo.CreatedSince(ctx, created.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestTicketLookupRepository(t *testing.T) {
	repo := NewTicketLookupRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.EnsureCategory(ctx, "Network"))
	require.NoError(t, repo.EnsureCategory(ctx, "Network"))
	require.NoError(t, repo.EnsureCategory(ctx, "Hardware"))
	require.NoError(t, repo.EnsurePriority(ctx, "Low"))
	require.NoError(t, repo.EnsurePriority(ctx, "High"))

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Hardware", categories[0].Name)

	priorities, err := repo.ListPriorities(ctx)
	require.NoError(t, err)
	require.Len(t, priorities, 2)
	assert.Equal(t, "Low", priorities[0].Name)

	ok, err := repo.CategoryExists(ctx, "Network")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.PriorityExists(ctx, "Urgent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTicketRepository_AverageResolutionLongHistory(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	const tickets = 2000
	created := time.Now().UTC().AddDate(-1, 0, 0).Truncate(time.Second)
	resolved := created.Add(60 * 24 * time.Hour)
	rows := make([]models.TicketModel, 0, tickets)
	for i := 0; i < tickets; i++ {
		rows = append(rows, models.TicketModel{
			Title:       "Laptop replacement",
			Description: "Battery swollen",
			Category:    "Hardware",
			Priority:    "Low",
			Status:      vo.StatusClosed.String(),
			CreatedBy:   1,
			CreatedAt:   created,
			UpdatedAt:   resolved,
			ResolvedAt:  &resolved,
		})
	}
	require.NoError(t, gdb.CreateInBatches(rows, 200).Error)

	avg, count, err := repo.AverageResolution(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(tickets), count)
	assert.InDelta(t, (60 * 24 * time.Hour).Seconds(), avg.Seconds(), 1)
}
