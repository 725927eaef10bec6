package usecases

import (
	"context"
	"time"

	"github.com/deskhub/deskhub/internal/domain/ticket"
	vo "github.com/deskhub/deskhub/internal/domain/ticket/valueobjects"
	"github.com/deskhub/deskhub/internal/domain/user"
	"github.com/deskhub/deskhub/internal/shared/authorization"
)

type mockTicketRepository struct {
	CreateFunc          func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc          func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc          func(ctx context.Context, ticketID uint) error
	GetByIDFunc         func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc            func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	CountUnassignedFunc func(ctx context.Context) (int64, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountUnassigned(ctx context.Context) (int64, error) {
	if m.CountUnassignedFunc != nil {
		return m.CountUnassignedFunc(ctx)
	}
	return 0, nil
}

func (m *mockTicketRepository) CountByStatus(context.Context, ticket.StatusCountFilter) (map[vo.TicketStatus]int64, error) {
	return map[vo.TicketStatus]int64{}, nil
}

func (m *mockTicketRepository) CreatedSince(context.Context, time.Time) ([]time.Time, error) {
	return nil, nil
}

func (m *mockTicketRepository) AverageResolution(context.Context) (time.Duration, int64, error) {
	return 0, 0, nil
}

type mockLookupRepository struct {
	categories []string
	priorities []string
	err        error
}

func newMockLookupRepository() *mockLookupRepository {
	return &mockLookupRepository{
		categories: []string{"Hardware", "Software", "Network"},
		priorities: []string{"Low", "Medium", "High"},
	}
}

func toLookups(names []string) []ticket.Lookup {
	out := make([]ticket.Lookup, 0, len(names))
	for i, n := range names {
		out = append(out, ticket.Lookup{ID: uint(i + 1), Name: n})
	}
	return out
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func (m *mockLookupRepository) ListCategories(context.Context) ([]ticket.Lookup, error) {
	return toLookups(m.categories), m.err
}

func (m *mockLookupRepository) ListPriorities(context.Context) ([]ticket.Lookup, error) {
	return toLookups(m.priorities), m.err
}

func (m *mockLookupRepository) CategoryExists(_ context.Context, name string) (bool, error) {
	return contains(m.categories, name), m.err
}

func (m *mockLookupRepository) PriorityExists(_ context.Context, name string) (bool, error) {
	return contains(m.priorities, name), m.err
}

func (m *mockLookupRepository) EnsureCategory(_ context.Context, name string) error {
	m.categories = append(m.categories, name)
	return m.err
}

func (m *mockLookupRepository) EnsurePriority(_ context.Context, name string) error {
	m.priorities = append(m.priorities, name)
	return m.err
}

// mockUserRepository serves a fixed set of profiles.
type mockUserRepository struct {
	users       map[uint]*user.User
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func newMockUserRepository(users ...*user.User) *mockUserRepository {
	m := &mockUserRepository{users: make(map[uint]*user.User)}
	for _, u := range users {
		m.users[u.ID()] = u
	}
	return m
}

func (m *mockUserRepository) Create(context.Context, *user.User) error { return nil }
func (m *mockUserRepository) Update(context.Context, *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return m.users[id], nil
}

func (m *mockUserRepository) GetByEmail(context.Context, string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) GetNames(_ context.Context, ids []uint) (map[uint]string, error) {
	names := make(map[uint]string, len(ids))
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			names[id] = u.FullName()
		}
	}
	return names, nil
}

func (m *mockUserRepository) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }

func (m *mockUserRepository) List(context.Context, user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepository) ListStaff(context.Context) ([]*user.User, error) { return nil, nil }
func (m *mockUserRepository) Count(context.Context) (int64, error)            { return int64(len(m.users)), nil }

func (m *mockUserRepository) CountByRole(context.Context) (map[authorization.UserRole]int64, error) {
	return nil, nil
}

func newTestUser(id uint, name string, role authorization.UserRole, active bool) *user.User {
	u, err := user.ReconstructUser(user.State{
		ID:       id,
		Email:    "user" + uintToString(id) + "@example.com",
		FullName: name,
		Role:     string(role),
		IsActive: active,
	})
	if err != nil {
		panic(err)
	}
	return u
}

func newTestTicket(id, creatorID uint, assigneeID *uint, status vo.TicketStatus) *ticket.Ticket {
	now := time.Now().UTC()
	t, err := ticket.ReconstructTicket(id, "Printer jammed", "Paper stuck in tray 2", "Hardware", "Medium",
		status, creatorID, assigneeID, nil, now.Add(-time.Hour), now.Add(-time.Hour))
	if err != nil {
		panic(err)
	}
	return t
}

func uintPtr(v uint) *uint { return &v }
