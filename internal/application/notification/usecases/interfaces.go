package usecases

import (
	"context"

	"github.com/deskhub/deskhub/internal/domain/user"
)

// EmailSender delivers the email copy of a notification.
type EmailSender interface {
	IsEnabled() bool
	Send(to, subject, plainBody string) error
}

// RecipientLookup is the subset of user.Repository the notifier reads.
type RecipientLookup interface {
	GetByID(ctx context.Context, id uint) (*user.User, error)
}
