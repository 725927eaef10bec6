package usecases

import (
	"context"
	"io"
	"time"

	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/constants"
)

// Ticket, asset and article views embed holder and author names, so
// profile changes drop them too.
var invalidatedScopes = []string{
	constants.ScopeUsers,
	constants.ScopeDashboard,
	constants.ScopeTickets,
	constants.ScopeAssets,
	constants.ScopeKnowledge,
}

type TokenPair struct {
	AccessToken string
	ExpiresIn   int64
}

type JWTService interface {
	Generate(userID uint, role authorization.UserRole) (*TokenPair, error)
}

// ResetTokenService issues and checks single-purpose password reset tokens.
// The fingerprint ties a token to the password hash it was issued against.
type ResetTokenService interface {
	GenerateResetToken(userID uint, fingerprint string, ttl time.Duration) (string, error)
	VerifyResetToken(token string) (userID uint, fingerprint string, err error)
}

// EmailSender delivers plain text mail.
type EmailSender interface {
	IsEnabled() bool
	Send(to, subject, plainBody string) error
}

// ObjectStore keeps uploaded files and serves them by URL.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (url string, err error)
	Delete(ctx context.Context, key string) error
	// KeyFromURL maps a URL produced by Put back to its key.
	KeyFromURL(url string) (string, bool)
}
