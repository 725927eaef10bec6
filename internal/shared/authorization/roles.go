package authorization

import (
	"strings"

	"github.com/deskhub/deskhub/internal/shared/errors"
)

// UserRole is the closed set of roles a profile can hold.
type UserRole string

const (
	RoleEmployee UserRole = "employee"
	RoleITStaff  UserRole = "it_staff"
	RoleAdmin    UserRole = "admin"
)

// AllRoles lists the roles in ascending privilege order.
var AllRoles = []UserRole{RoleEmployee, RoleITStaff, RoleAdmin}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role works the ticket queue.
func (r UserRole) IsStaff() bool {
	return r == RoleITStaff || r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleEmployee, RoleITStaff, RoleAdmin:
		return true
	}
	return false
}

// ParseUserRole accepts any casing and surrounding whitespace.
func ParseUserRole(s string) (UserRole, error) {
	role := UserRole(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", errors.NewValidationError("invalid role", s)
	}
	return role, nil
}
