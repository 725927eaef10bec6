package valueobjects

import (
	"net/mail"
	"strings"

	"github.com/deskhub/deskhub/internal/shared/errors"
)

const maxEmailLength = 255

// Email is a normalized (trimmed, lowercased) address.
type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return Email{}, errors.NewValidationError("email is required")
	}
	if len(normalized) > maxEmailLength {
		return Email{}, errors.NewValidationError("email cannot exceed 255 characters")
	}
	addr, err := mail.ParseAddress(normalized)
	if err != nil || addr.Address != normalized || !strings.Contains(normalized[strings.LastIndex(normalized, "@"):], ".") {
		return Email{}, errors.NewValidationError("invalid email format", value)
	}
	return Email{value: normalized}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) IsZero() bool {
	return e.value == ""
}
