package notification

import (
	"strings"
	"time"

	"github.com/deskhub/deskhub/internal/shared/errors"
)

const MaxMessageLength = 500

// Notification is an in-app message for one user with an optional link to
// the record it concerns.
type Notification struct {
	id        uint
	userID    uint
	message   string
	linkTo    string
	isRead    bool
	createdAt time.Time
}

func NewNotification(userID uint, message, linkTo string) (*Notification, error) {
	message = strings.TrimSpace(message)
	if userID == 0 {
		return nil, errors.NewValidationError("notification recipient is required")
	}
	if message == "" {
		return nil, errors.NewValidationError("notification message is required")
	}
	if len(message) > MaxMessageLength {
		message = message[:MaxMessageLength]
	}
	return &Notification{
		userID:    userID,
		message:   message,
		linkTo:    strings.TrimSpace(linkTo),
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructNotification(id, userID uint, message, linkTo string, isRead bool, createdAt time.Time) *Notification {
	return &Notification{
		id:        id,
		userID:    userID,
		message:   message,
		linkTo:    linkTo,
		isRead:    isRead,
		createdAt: createdAt,
	}
}

func (n *Notification) ID() uint             { return n.id }
func (n *Notification) UserID() uint         { return n.userID }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) LinkTo() string       { return n.linkTo }
func (n *Notification) IsRead() bool         { return n.isRead }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

func (n *Notification) SetID(id uint) {
	n.id = id
}
