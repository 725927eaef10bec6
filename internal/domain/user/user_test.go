package user

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/deskhub/deskhub/internal/domain/user/valueobjects"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	apperrors "github.com/deskhub/deskhub/internal/shared/errors"
)

type fakeHasher struct{}

func (fakeHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }

func (fakeHasher) Verify(p, h string) error {
	if h != "hashed:"+p {
		return errors.New("mismatch")
	}
	return nil
}

func newUser(t *testing.T, id uint, role authorization.UserRole) *User {
	t.Helper()
	email, err := vo.NewEmail("person@example.com")
	require.NoError(t, err)
	u, err := NewUser(email, "Pat Person", role, "hashed:secret123")
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	return u
}

func TestNewUser_Defaults(t *testing.T) {
	u := newUser(t, 1, authorization.RoleEmployee)

	assert.True(t, u.IsActive())
	assert.True(t, u.ReceiveNotifications())
	assert.Equal(t, authorization.NewPrincipal(1, authorization.RoleEmployee), u.Principal())
}

func TestUser_VerifyPassword(t *testing.T) {
	u := newUser(t, 1, authorization.RoleEmployee)

	assert.NoError(t, u.VerifyPassword("secret123", fakeHasher{}))
	err := u.VerifyPassword("wrong", fakeHasher{})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, apperrors.GetAppError(err).Type)
}

func TestUser_ChangeRole_NoSelfDemotion(t *testing.T) {
	admin := newUser(t, 1, authorization.RoleAdmin)

	err := admin.ChangeRole(authorization.RoleEmployee, 1)
	assert.True(t, apperrors.IsForbiddenError(err))
	assert.Equal(t, authorization.RoleAdmin, admin.Role())

	// re-saving the same role on oneself is harmless
	assert.NoError(t, admin.ChangeRole(authorization.RoleAdmin, 1))

	other := newUser(t, 2, authorization.RoleEmployee)
	require.NoError(t, other.ChangeRole(authorization.RoleITStaff, 1))
	assert.Equal(t, authorization.RoleITStaff, other.Role())
}

func TestUser_SetActive_NoSelfDeactivation(t *testing.T) {
	admin := newUser(t, 1, authorization.RoleAdmin)
	assert.True(t, apperrors.IsForbiddenError(admin.SetActive(false, 1)))

	other := newUser(t, 2, authorization.RoleITStaff)
	require.NoError(t, other.SetActive(false, 1))
	assert.False(t, other.IsActive())
	assert.False(t, other.CanWorkTickets())
}

func TestUser_CanWorkTickets(t *testing.T) {
	assert.False(t, newUser(t, 1, authorization.RoleEmployee).CanWorkTickets())
	assert.True(t, newUser(t, 2, authorization.RoleITStaff).CanWorkTickets())
	assert.True(t, newUser(t, 3, authorization.RoleAdmin).CanWorkTickets())
}

func TestUser_SetAvatarURL_ReturnsPrevious(t *testing.T) {
	u := newUser(t, 1, authorization.RoleEmployee)

	assert.Equal(t, "", u.SetAvatarURL("a.png"))
	assert.Equal(t, "a.png", u.SetAvatarURL("b.png"))
}

func TestReconstructUser_ParsesRoleCaseInsensitively(t *testing.T) {
	u, err := ReconstructUser(State{ID: 4, Email: "x@example.com", FullName: "X", Role: "IT_STAFF", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleITStaff, u.Role())
}
