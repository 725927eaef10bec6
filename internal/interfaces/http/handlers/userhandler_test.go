package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskhub/deskhub/internal/application/user/dto"
	"github.com/deskhub/deskhub/internal/application/user/usecases"
	"github.com/deskhub/deskhub/internal/interfaces/http/handlers/testutil"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

type mockManageUsersUC struct {
	listFn          func(q usecases.ListUsersQuery) (*usecases.ListUsersResult, error)
	createFn        func(cmd usecases.CreateUserCommand) (*dto.UserDTO, error)
	updateProfileFn func(cmd usecases.UpdateUserProfileCommand) (*dto.UserDTO, error)
	changeRoleFn    func(cmd usecases.ChangeUserRoleCommand) (*dto.UserDTO, error)
	setActiveFn     func(cmd usecases.SetUserActiveCommand) (*dto.UserDTO, error)
	listStaffFn     func() ([]*dto.StaffDTO, error)
}

func (m *mockManageUsersUC) List(_ context.Context, q usecases.ListUsersQuery) (*usecases.ListUsersResult, error) {
	return m.listFn(q)
}

func (m *mockManageUsersUC) Create(_ context.Context, cmd usecases.CreateUserCommand) (*dto.UserDTO, error) {
	return m.createFn(cmd)
}

func (m *mockManageUsersUC) UpdateProfile(_ context.Context, cmd usecases.UpdateUserProfileCommand) (*dto.UserDTO, error) {
	return m.updateProfileFn(cmd)
}

func (m *mockManageUsersUC) ChangeRole(_ context.Context, cmd usecases.ChangeUserRoleCommand) (*dto.UserDTO, error) {
	return m.changeRoleFn(cmd)
}

func (m *mockManageUsersUC) SetActive(_ context.Context, cmd usecases.SetUserActiveCommand) (*dto.UserDTO, error) {
	return m.setActiveFn(cmd)
}

func (m *mockManageUsersUC) ListStaff(_ context.Context, _ authorization.Principal) ([]*dto.StaffDTO, error) {
	return m.listStaffFn()
}

func TestUserHandler_ListUsers_PassesFilters(t *testing.T) {
	var got usecases.ListUsersQuery
	uc := &mockManageUsersUC{listFn: func(q usecases.ListUsersQuery) (*usecases.ListUsersResult, error) {
		got = q
		return &usecases.ListUsersResult{Users: []*dto.UserDTO{{ID: 2}}, TotalCount: 41}, nil
	}}
	handler := NewUserHandler(uc, logger.NewNop())

	c, w := testutil.NewTestContext(http.MethodGet, "/users", nil)
	testutil.SetPrincipal(c, 1, authorization.RoleAdmin)
	testutil.SetQueryParams(c, map[string]string{"q": "ana", "role": "it_staff", "page": "3", "limit": "20"})

	handler.ListUsers(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ana", got.Search)
	assert.Equal(t, "it_staff", got.Role)
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 20, got.PageSize)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data testutil.ListData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, 3, data.TotalPages)
}

func TestUserHandler_CreateUser_RejectsUnknownRole(t *testing.T) {
	called := false
	uc := &mockManageUsersUC{createFn: func(usecases.CreateUserCommand) (*dto.UserDTO, error) {
		called = true
		return nil, nil
	}}
	handler := NewUserHandler(uc, logger.NewNop())

	c, w := testutil.NewTestContext(http.MethodPost, "/users", CreateUserRequest{
		Email: "x@example.com", Password: "long-enough", FullName: "X Y", Role: "superuser",
	})
	testutil.SetPrincipal(c, 1, authorization.RoleAdmin)

	handler.CreateUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
}

func TestUserHandler_CreateUser_Success(t *testing.T) {
	var got usecases.CreateUserCommand
	uc := &mockManageUsersUC{createFn: func(cmd usecases.CreateUserCommand) (*dto.UserDTO, error) {
		got = cmd
		return &dto.UserDTO{ID: 12, Role: cmd.Role}, nil
	}}
	handler := NewUserHandler(uc, logger.NewNop())

	c, w := testutil.NewTestContext(http.MethodPost, "/users", CreateUserRequest{
		Email: "tech@example.com", Password: "long-enough", FullName: "Tech One", Role: "it_staff", Department: "IT",
	})
	testutil.SetPrincipal(c, 1, authorization.RoleAdmin)

	handler.CreateUser(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "IT", got.Department)
}

func TestUserHandler_ChangeUserRole_SelfDemotion(t *testing.T) {
	uc := &mockManageUsersUC{changeRoleFn: func(usecases.ChangeUserRoleCommand) (*dto.UserDTO, error) {
		return nil, errors.NewValidationError("you cannot change your own role")
	}}
	handler := NewUserHandler(uc, logger.NewNop())

	c, w := testutil.NewTestContext(http.MethodPatch, "/users/1/role", ChangeUserRoleRequest{Role: "employee"})
	testutil.SetPrincipal(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "1")

	handler.ChangeUserRole(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_SetUserActive(t *testing.T) {
	var got usecases.SetUserActiveCommand
	uc := &mockManageUsersUC{setActiveFn: func(cmd usecases.SetUserActiveCommand) (*dto.UserDTO, error) {
		got = cmd
		return &dto.UserDTO{ID: cmd.UserID, IsActive: cmd.Active}, nil
	}}
	handler := NewUserHandler(uc, logger.NewNop())

	c, w := testutil.NewTestContext(http.MethodPatch, "/users/4/active", map[string]bool{"is_active": false})
	testutil.SetPrincipal(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "4")

	handler.SetUserActive(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), got.UserID)
	assert.False(t, got.Active)
	assert.Contains(t, w.Body.String(), "User deactivated")

	c, w = testutil.NewTestContext(http.MethodPatch, "/users/4/active", map[string]string{})
	testutil.SetPrincipal(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "4")

	handler.SetUserActive(c)

	assert.Equal(t, http.StatusBadRequest, w.Code, "missing flag is rejected")
}

func TestUserHandler_ListStaff_Forbidden(t *testing.T) {
	uc := &mockManageUsersUC{listStaffFn: func() ([]*dto.StaffDTO, error) {
		return nil, errors.NewForbiddenError("Unauthorized: You do not have permission to list staff.")
	}}
	handler := NewUserHandler(uc, logger.NewNop())

	c, w := testutil.NewTestContext(http.MethodGet, "/users/staff", nil)
	testutil.SetPrincipal(c, 3, authorization.RoleEmployee)

	handler.ListStaff(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
