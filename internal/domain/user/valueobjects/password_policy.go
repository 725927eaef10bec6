package valueobjects

import (
	"fmt"
	"unicode"

	"github.com/deskhub/deskhub/internal/shared/errors"
)

// bcrypt ignores bytes past 72.
const maxPasswordBytes = 72

type PasswordPolicy struct {
	MinLength     int
	RequireLetter bool
	RequireNumber bool
}

func DefaultPasswordPolicy() *PasswordPolicy {
	return &PasswordPolicy{MinLength: 8, RequireLetter: true, RequireNumber: true}
}

func NewPasswordPolicy(minLength int) *PasswordPolicy {
	p := DefaultPasswordPolicy()
	if minLength > 0 {
		p.MinLength = minLength
	}
	return p
}

func (p *PasswordPolicy) Validate(password string) error {
	if len(password) < p.MinLength {
		return errors.NewValidationError(fmt.Sprintf("password must be at least %d characters long", p.MinLength))
	}
	if len(password) > maxPasswordBytes {
		return errors.NewValidationError("password must not exceed 72 characters")
	}

	var hasLetter, hasNumber bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasNumber = true
		}
	}
	if p.RequireLetter && !hasLetter {
		return errors.NewValidationError("password must contain at least one letter")
	}
	if p.RequireNumber && !hasNumber {
		return errors.NewValidationError("password must contain at least one number")
	}
	return nil
}
