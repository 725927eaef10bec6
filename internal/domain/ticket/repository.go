package ticket

import (
	"context"
	"time"

	vo "github.com/deskhub/deskhub/internal/domain/ticket/valueobjects"
)

// Sort keys accepted by TicketFilter.SortBy.
const (
	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortUpdated = "updated"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	CountUnassigned(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, filter StatusCountFilter) (map[vo.TicketStatus]int64, error)
	// CreatedSince returns creation times of tickets created at or after since.
	CreatedSince(ctx context.Context, since time.Time) ([]time.Time, error)
	// AverageResolution returns the mean resolution duration and the number
	// of finished tickets it covers.
	AverageResolution(ctx context.Context) (avg time.Duration, count int64, err error)
}

type TicketFilter struct {
	CreatorID  *uint
	AssigneeID *uint
	Unassigned bool
	// ExcludeFinished drops Resolved and Closed tickets (queue view).
	ExcludeFinished bool
	Status          *vo.TicketStatus
	Search          string
	SortBy          string
	Page            int
	PageSize        int
}

type StatusCountFilter struct {
	CreatorID  *uint
	AssigneeID *uint
}

// Lookup is a row of the category or priority tables.
type Lookup struct {
	ID   uint
	Name string
}

type LookupRepository interface {
	ListCategories(ctx context.Context) ([]Lookup, error)
	ListPriorities(ctx context.Context) ([]Lookup, error)
	CategoryExists(ctx context.Context, name string) (bool, error)
	PriorityExists(ctx context.Context, name string) (bool, error)
	EnsureCategory(ctx context.Context, name string) error
	EnsurePriority(ctx context.Context, name string) error
}
