package valueobjects

import (
	"strings"

	"github.com/deskhub/deskhub/internal/shared/errors"
)

// TicketStatus values are the display strings stored in the database.
type TicketStatus string

const (
	StatusOpen       TicketStatus = "Open"
	StatusInProgress TicketStatus = "In Progress"
	StatusResolved   TicketStatus = "Resolved"
	StatusClosed     TicketStatus = "Closed"
)

// AllStatuses is the fixed allow-list in display order.
var AllStatuses = []TicketStatus{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}

// staffStatuses are the values an it_staff member may set.
var staffStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
}

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// IsSettableByStaff reports whether a non-admin staff member may set s.
func (s TicketStatus) IsSettableByStaff() bool {
	return staffStatuses[s]
}

// IsFinished is true for Resolved and Closed.
func (s TicketStatus) IsFinished() bool {
	return s == StatusResolved || s == StatusClosed
}

// ParseTicketStatus matches the allow-list ignoring case and surrounding
// whitespace, and also accepts the snake_case form ("in_progress").
func ParseTicketStatus(raw string) (TicketStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(raw, "_", " ")))
	for _, s := range AllStatuses {
		if strings.ToLower(string(s)) == normalized {
			return s, nil
		}
	}
	return "", errors.NewValidationError("Invalid status provided.", raw)
}
