package ticket

import (
	"strings"
	"time"

	vo "github.com/deskhub/deskhub/internal/domain/ticket/valueobjects"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
)

// Ticket is a support request raised by a user and worked by IT staff.
type Ticket struct {
	id          uint
	title       string
	description string
	category    string
	priority    string
	status      vo.TicketStatus
	creatorID   uint
	assigneeID  *uint
	resolvedAt  *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTicket creates an Open, unassigned ticket. Category and priority are
// checked against the lookup tables by the caller.
func NewTicket(title, description, category, priority string, creatorID uint) (*Ticket, error) {
	t := &Ticket{
		status:    vo.StatusOpen,
		creatorID: creatorID,
	}
	if creatorID == 0 {
		return nil, errors.NewValidationError("creator ID is required")
	}
	if err := t.setDetails(title, description, category, priority); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	t.createdAt = now
	t.updatedAt = now
	return t, nil
}

// ReconstructTicket rebuilds a persisted ticket without re-running creation
// rules.
func ReconstructTicket(
	id uint,
	title, description, category, priority string,
	status vo.TicketStatus,
	creatorID uint,
	assigneeID *uint,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, errors.NewValidationError("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, errors.NewValidationError("invalid ticket status", string(status))
	}
	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		category:    category,
		priority:    priority,
		status:      status,
		creatorID:   creatorID,
		assigneeID:  assigneeID,
		resolvedAt:  resolvedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                  { return t.id }
func (t *Ticket) Title() string             { return t.title }
func (t *Ticket) Description() string       { return t.description }
func (t *Ticket) Category() string          { return t.category }
func (t *Ticket) Priority() string          { return t.priority }
func (t *Ticket) Status() vo.TicketStatus   { return t.status }
func (t *Ticket) CreatorID() uint           { return t.creatorID }
func (t *Ticket) AssigneeID() *uint         { return t.assigneeID }
func (t *Ticket) ResolvedAt() *time.Time    { return t.resolvedAt }
func (t *Ticket) CreatedAt() time.Time      { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time      { return t.updatedAt }
func (t *Ticket) IsAssigned() bool          { return t.assigneeID != nil }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return errors.NewInternalError("ticket ID is already set")
	}
	if id == 0 {
		return errors.NewValidationError("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// IsAssignedTo reports whether userID currently holds the ticket.
func (t *Ticket) IsAssignedTo(userID uint) bool {
	return t.assigneeID != nil && *t.assigneeID == userID
}

// CanBeViewedBy allows the creator, the assignee and any staff member.
func (t *Ticket) CanBeViewedBy(p authorization.Principal) bool {
	return p.IsStaff() || p.Owns(t.creatorID) || t.IsAssignedTo(p.UserID)
}

// AssignTo hands the ticket to assigneeID and moves it to In Progress in
// the same change.
func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return errors.NewValidationError("assignee ID cannot be zero")
	}
	t.assigneeID = &assigneeID
	t.setStatus(vo.StatusInProgress)
	return nil
}

// ChangeStatus applies the role rules for status updates. Admins may set
// any status on any ticket. IT staff may only touch tickets assigned to
// them and cannot close. There is no transition graph.
func (t *Ticket) ChangeStatus(actor authorization.Principal, status vo.TicketStatus) error {
	if !status.IsValid() {
		return errors.NewValidationError("Invalid status provided.", string(status))
	}
	switch actor.Role {
	case authorization.RoleAdmin:
	case authorization.RoleITStaff:
		if !t.IsAssignedTo(actor.UserID) {
			return errors.NewForbiddenError("You can only update the status of tickets assigned to you.")
		}
		if !status.IsSettableByStaff() {
			return errors.NewForbiddenError("Only an admin can set this status.", string(status))
		}
	default:
		return errors.NewForbiddenError("Unauthorized: You do not have permission to update ticket status.")
	}
	t.setStatus(status)
	return nil
}

// UpdateDetails replaces the editable fields with the creation rules.
func (t *Ticket) UpdateDetails(title, description, category, priority string) error {
	if err := t.setDetails(title, description, category, priority); err != nil {
		return err
	}
	t.touch()
	return nil
}

func (t *Ticket) setDetails(title, description, category, priority string) error {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	category = strings.TrimSpace(category)
	priority = strings.TrimSpace(priority)

	switch {
	case title == "":
		return errors.NewValidationError("title is required")
	case len(title) > MaxTitleLength:
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	case description == "":
		return errors.NewValidationError("description is required")
	case len(description) > MaxDescriptionLength:
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	case category == "":
		return errors.NewValidationError("category is required")
	case priority == "":
		return errors.NewValidationError("priority is required")
	}

	t.title = title
	t.description = description
	t.category = category
	t.priority = priority
	return nil
}

// setStatus keeps resolvedAt in step with the status: stamped on the first
// move into a finished state, cleared when work resumes.
func (t *Ticket) setStatus(status vo.TicketStatus) {
	if status == t.status {
		return
	}
	t.status = status
	now := time.Now().UTC()
	switch {
	case status.IsFinished() && t.resolvedAt == nil:
		t.resolvedAt = &now
	case !status.IsFinished():
		t.resolvedAt = nil
	}
	t.updatedAt = now
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now().UTC()
}
