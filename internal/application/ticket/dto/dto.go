package dto

import (
	"time"

	"github.com/deskhub/deskhub/internal/domain/ticket"
)

type TicketDTO struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	CreatedBy    uint       `json:"created_by"`
	CreatorName  string     `json:"creator_name,omitempty"`
	AssignedTo   *uint      `json:"assigned_to"`
	AssigneeName string     `json:"assignee_name,omitempty"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type LookupDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ToTicketDTO maps a ticket; names resolves user ids to display names and
// may be nil.
func ToTicketDTO(t *ticket.Ticket, names map[uint]string) *TicketDTO {
	if t == nil {
		return nil
	}
	d := &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Category:    t.Category(),
		Priority:    t.Priority(),
		Status:      t.Status().String(),
		CreatedBy:   t.CreatorID(),
		CreatorName: names[t.CreatorID()],
		AssignedTo:  t.AssigneeID(),
		ResolvedAt:  t.ResolvedAt(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
	if id := t.AssigneeID(); id != nil {
		d.AssigneeName = names[*id]
	}
	return d
}

func ToTicketDTOs(tickets []*ticket.Ticket, names map[uint]string) []*TicketDTO {
	out := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ToTicketDTO(t, names))
	}
	return out
}

// ParticipantIDs collects creator and assignee ids for a name lookup.
func ParticipantIDs(tickets ...*ticket.Ticket) []uint {
	seen := make(map[uint]struct{})
	ids := make([]uint, 0, len(tickets)*2)
	add := func(id uint) {
		if _, ok := seen[id]; !ok && id != 0 {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, t := range tickets {
		add(t.CreatorID())
		if a := t.AssigneeID(); a != nil {
			add(*a)
		}
	}
	return ids
}

func ToLookupDTOs(lookups []ticket.Lookup) []LookupDTO {
	out := make([]LookupDTO, 0, len(lookups))
	for _, l := range lookups {
		out = append(out, LookupDTO{ID: l.ID, Name: l.Name})
	}
	return out
}
