package user

import (
	"strings"
	"time"

	vo "github.com/deskhub/deskhub/internal/domain/user/valueobjects"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
)

const MaxNameLength = 100

// PasswordHasher hashes and verifies login passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// User is the profile of a person who can sign in. Its id is the user id
// referenced by tickets, assets and articles.
type User struct {
	id                   uint
	email                vo.Email
	passwordHash         string
	fullName             string
	role                 authorization.UserRole
	isActive             bool
	jobTitle             string
	department           string
	avatarURL            string
	phoneNumber          string
	officeLocation       string
	receiveNotifications bool
	createdAt            time.Time
	updatedAt            time.Time
}

// State is the persisted shape of a User, used by ReconstructUser.
type State struct {
	ID                   uint
	Email                string
	PasswordHash         string
	FullName             string
	Role                 string
	IsActive             bool
	JobTitle             string
	Department           string
	AvatarURL            string
	PhoneNumber          string
	OfficeLocation       string
	ReceiveNotifications bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewUser creates an active profile that receives notifications.
func NewUser(email vo.Email, fullName string, role authorization.UserRole, passwordHash string) (*User, error) {
	if email.IsZero() {
		return nil, errors.NewValidationError("email is required")
	}
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role", string(role))
	}
	if passwordHash == "" {
		return nil, errors.NewValidationError("password is required")
	}
	name, err := normalizeName(fullName)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		email:                email,
		passwordHash:         passwordHash,
		fullName:             name,
		role:                 role,
		isActive:             true,
		receiveNotifications: true,
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

func ReconstructUser(s State) (*User, error) {
	if s.ID == 0 {
		return nil, errors.NewValidationError("user ID cannot be zero")
	}
	role, err := authorization.ParseUserRole(s.Role)
	if err != nil {
		return nil, err
	}
	email, err := vo.NewEmail(s.Email)
	if err != nil {
		return nil, err
	}
	return &User{
		id:                   s.ID,
		email:                email,
		passwordHash:         s.PasswordHash,
		fullName:             s.FullName,
		role:                 role,
		isActive:             s.IsActive,
		jobTitle:             s.JobTitle,
		department:           s.Department,
		avatarURL:            s.AvatarURL,
		phoneNumber:          s.PhoneNumber,
		officeLocation:       s.OfficeLocation,
		receiveNotifications: s.ReceiveNotifications,
		createdAt:            s.CreatedAt,
		updatedAt:            s.UpdatedAt,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Email() vo.Email              { return u.email }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) FullName() string             { return u.fullName }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) IsActive() bool               { return u.isActive }
func (u *User) JobTitle() string             { return u.jobTitle }
func (u *User) Department() string           { return u.department }
func (u *User) AvatarURL() string            { return u.avatarURL }
func (u *User) PhoneNumber() string          { return u.phoneNumber }
func (u *User) OfficeLocation() string       { return u.officeLocation }
func (u *User) ReceiveNotifications() bool   { return u.receiveNotifications }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return errors.NewInternalError("user ID is already set")
	}
	u.id = id
	return nil
}

// Principal returns the workflow identity of this profile.
func (u *User) Principal() authorization.Principal {
	return authorization.NewPrincipal(u.id, u.role)
}

// CanWorkTickets is true for active staff, the only valid assignees.
func (u *User) CanWorkTickets() bool {
	return u.isActive && u.role.IsStaff()
}

// VerifyPassword checks a login attempt.
func (u *User) VerifyPassword(plain string, hasher PasswordHasher) error {
	if u.passwordHash == "" || hasher.Verify(plain, u.passwordHash) != nil {
		return errors.NewUnauthorizedError("Invalid email or password")
	}
	return nil
}

func (u *User) SetPasswordHash(hash string) {
	u.passwordHash = hash
	u.touch()
}

// ChangeRole is performed by an admin. Admins cannot demote themselves.
func (u *User) ChangeRole(role authorization.UserRole, actorID uint) error {
	if !role.IsValid() {
		return errors.NewValidationError("invalid role", string(role))
	}
	if actorID == u.id && role != u.role {
		return errors.NewForbiddenError("You cannot change your own role.")
	}
	u.role = role
	u.touch()
	return nil
}

// SetActive is performed by an admin. Admins cannot deactivate themselves.
func (u *User) SetActive(active bool, actorID uint) error {
	if actorID == u.id && !active {
		return errors.NewForbiddenError("You cannot deactivate your own account.")
	}
	u.isActive = active
	u.touch()
	return nil
}

// UpdateEmployment sets the admin-managed profile fields.
func (u *User) UpdateEmployment(fullName, jobTitle, department string) error {
	name, err := normalizeName(fullName)
	if err != nil {
		return err
	}
	u.fullName = name
	u.jobTitle = strings.TrimSpace(jobTitle)
	u.department = strings.TrimSpace(department)
	u.touch()
	return nil
}

// UpdateContact sets the self-service profile fields.
func (u *User) UpdateContact(phoneNumber, officeLocation string, receiveNotifications bool) {
	u.phoneNumber = strings.TrimSpace(phoneNumber)
	u.officeLocation = strings.TrimSpace(officeLocation)
	u.receiveNotifications = receiveNotifications
	u.touch()
}

// SetAvatarURL replaces the avatar and returns the previous URL.
func (u *User) SetAvatarURL(url string) string {
	prev := u.avatarURL
	u.avatarURL = url
	u.touch()
	return prev
}

func (u *User) touch() {
	u.updatedAt = time.Now().UTC()
}

func normalizeName(fullName string) (string, error) {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return "", errors.NewValidationError("full name is required")
	}
	if len(name) > MaxNameLength {
		return "", errors.NewValidationError("full name exceeds maximum length of 100 characters")
	}
	return name, nil
}
