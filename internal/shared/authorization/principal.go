package authorization

// Principal is the authenticated caller of a workflow. It is resolved once
// per request from the stored profile and passed explicitly into commands.
type Principal struct {
	UserID uint
	Role   UserRole
}

func NewPrincipal(userID uint, role UserRole) Principal {
	return Principal{UserID: userID, Role: role}
}

func (p Principal) IsZero() bool {
	return p.UserID == 0
}

func (p Principal) IsAdmin() bool {
	return p.Role.IsAdmin()
}

func (p Principal) IsStaff() bool {
	return p.Role.IsStaff()
}

// Owns reports whether the principal is the given user.
func (p Principal) Owns(userID uint) bool {
	return p.UserID != 0 && p.UserID == userID
}
