package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskhub/deskhub/internal/application/user/dto"
	"github.com/deskhub/deskhub/internal/application/user/usecases"
	"github.com/deskhub/deskhub/internal/interfaces/http/handlers/testutil"
	"github.com/deskhub/deskhub/internal/interfaces/http/validators"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/config"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
	"github.com/deskhub/deskhub/internal/shared/utils"
)

func init() {
	if err := validators.Register(); err != nil {
		panic(err)
	}
}

// =====================================================================
// Mocks
// =====================================================================

type mockRegisterUC struct {
	executeFn func(ctx context.Context, cmd usecases.RegisterCommand) (*dto.UserDTO, error)
}

func (m *mockRegisterUC) Execute(ctx context.Context, cmd usecases.RegisterCommand) (*dto.UserDTO, error) {
	return m.executeFn(ctx, cmd)
}

type mockLoginUC struct {
	executeFn func(ctx context.Context, cmd usecases.LoginCommand) (*dto.TokenDTO, error)
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginCommand) (*dto.TokenDTO, error) {
	return m.executeFn(ctx, cmd)
}

type mockAccountUC struct {
	meFn             func(ctx context.Context, p authorization.Principal) (*dto.UserDTO, error)
	changePasswordFn func(ctx context.Context, cmd usecases.ChangePasswordCommand) error
	updateProfileFn  func(ctx context.Context, cmd usecases.UpdateOwnProfileCommand) (*dto.UserDTO, error)
}

func (m *mockAccountUC) Me(ctx context.Context, p authorization.Principal) (*dto.UserDTO, error) {
	if m.meFn != nil {
		return m.meFn(ctx, p)
	}
	return nil, nil
}

func (m *mockAccountUC) ChangePassword(ctx context.Context, cmd usecases.ChangePasswordCommand) error {
	if m.changePasswordFn != nil {
		return m.changePasswordFn(ctx, cmd)
	}
	return nil
}

func (m *mockAccountUC) UpdateOwnProfile(ctx context.Context, cmd usecases.UpdateOwnProfileCommand) (*dto.UserDTO, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, cmd)
	}
	return nil, nil
}

func newTestAuthHandler(register registerUseCase, login loginUseCase, account usecases.AccountExecutor) *AuthHandler {
	return NewAuthHandler(register, login, account, nil, logger.NewNop(), config.CookieConfig{Path: "/", SameSite: "Lax"})
}

// =====================================================================
// Register
// =====================================================================

func TestAuthHandler_Register_Success(t *testing.T) {
	var got usecases.RegisterCommand
	register := &mockRegisterUC{executeFn: func(_ context.Context, cmd usecases.RegisterCommand) (*dto.UserDTO, error) {
		got = cmd
		return &dto.UserDTO{ID: 1, Email: cmd.Email, Role: "employee"}, nil
	}}
	handler := newTestAuthHandler(register, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", RegisterRequest{
		Email:    "ana@example.com",
		FullName: "Ana Lima",
		Password: "correct-horse",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Ana Lima", got.FullName)
	assert.Contains(t, w.Body.String(), `"role":"employee"`)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	called := false
	register := &mockRegisterUC{executeFn: func(context.Context, usecases.RegisterCommand) (*dto.UserDTO, error) {
		called = true
		return nil, nil
	}}
	handler := newTestAuthHandler(register, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", RegisterRequest{
		Email:    "ana@example.com",
		FullName: "Ana Lima",
		Password: "short",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
	assert.Contains(t, w.Body.String(), "password must be at least 8 characters long")
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	register := &mockRegisterUC{executeFn: func(context.Context, usecases.RegisterCommand) (*dto.UserDTO, error) {
		return nil, errors.NewConflictError("email already registered")
	}}
	handler := newTestAuthHandler(register, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", RegisterRequest{
		Email: "ana@example.com", FullName: "Ana Lima", Password: "correct-horse",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// =====================================================================
// Login / Logout
// =====================================================================

func TestAuthHandler_Login_SetsCookie(t *testing.T) {
	login := &mockLoginUC{executeFn: func(context.Context, usecases.LoginCommand) (*dto.TokenDTO, error) {
		return &dto.TokenDTO{AccessToken: "tok", TokenType: "Bearer", ExpiresIn: 3600}, nil
	}}
	handler := newTestAuthHandler(nil, login, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", LoginRequest{Email: "ana@example.com", Password: "correct-horse"})

	handler.Login(c)

	require.Equal(t, http.StatusOK, w.Code)
	cookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, utils.AccessTokenCookie+"=tok")
	assert.Contains(t, cookie, "HttpOnly")
	assert.Contains(t, w.Body.String(), `"access_token":"tok"`)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	assert.Equal(t, utils.CSRFTokenCookie, cookies[1].Name)
	assert.Len(t, cookies[1].Value, 64)
	assert.False(t, cookies[1].HttpOnly)
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"bad credentials", errors.NewUnauthorizedError("Invalid email or password"), http.StatusUnauthorized},
		{"inactive account", errors.NewForbiddenError("account is deactivated"), http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			login := &mockLoginUC{executeFn: func(context.Context, usecases.LoginCommand) (*dto.TokenDTO, error) {
				return nil, tt.err
			}}
			handler := newTestAuthHandler(nil, login, nil)

			c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", LoginRequest{Email: "ana@example.com", Password: "x"})
			handler.Login(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Empty(t, w.Header().Get("Set-Cookie"))
		})
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	handler := newTestAuthHandler(nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/logout", nil)
	handler.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

// =====================================================================
// Me / ChangePassword
// =====================================================================

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	account := &mockAccountUC{meFn: func(_ context.Context, p authorization.Principal) (*dto.UserDTO, error) {
		return &dto.UserDTO{ID: p.UserID, Role: p.Role.String()}, nil
	}}
	handler := newTestAuthHandler(nil, nil, account)

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/me", nil)
	testutil.SetPrincipal(c, 8, authorization.RoleITStaff)

	handler.GetCurrentUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":8`)
	assert.Contains(t, w.Body.String(), `"role":"it_staff"`)
}

func TestAuthHandler_ChangePassword_WrongCurrent(t *testing.T) {
	account := &mockAccountUC{changePasswordFn: func(context.Context, usecases.ChangePasswordCommand) error {
		return errors.NewValidationError("current password is incorrect")
	}}
	handler := newTestAuthHandler(nil, nil, account)

	c, w := testutil.NewTestContext(http.MethodPut, "/auth/password", ChangePasswordRequest{
		CurrentPassword: "nope", NewPassword: "new-password-1",
	})
	testutil.SetPrincipal(c, 8, authorization.RoleEmployee)

	handler.ChangePassword(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// Password reset
// =====================================================================

type mockPasswordResetUC struct {
	requestFn func(ctx context.Context, cmd usecases.RequestPasswordResetCommand) error
	resetFn   func(ctx context.Context, cmd usecases.ResetPasswordCommand) error
}

func (m *mockPasswordResetUC) RequestReset(ctx context.Context, cmd usecases.RequestPasswordResetCommand) error {
	if m.requestFn != nil {
		return m.requestFn(ctx, cmd)
	}
	return nil
}

func (m *mockPasswordResetUC) Reset(ctx context.Context, cmd usecases.ResetPasswordCommand) error {
	if m.resetFn != nil {
		return m.resetFn(ctx, cmd)
	}
	return nil
}

func newResetAuthHandler(reset passwordResetUseCase) *AuthHandler {
	return NewAuthHandler(nil, nil, nil, reset, logger.NewNop(), config.CookieConfig{Path: "/", SameSite: "Lax"})
}

func TestAuthHandler_ForgotPassword_SameReplyForAnyEmail(t *testing.T) {
	var got []string
	reset := &mockPasswordResetUC{requestFn: func(_ context.Context, cmd usecases.RequestPasswordResetCommand) error {
		got = append(got, cmd.Email)
		return nil
	}}
	handler := newResetAuthHandler(reset)

	var bodies []string
	for _, email := range []string{"ana@example.com", "nobody@example.com"} {
		c, w := testutil.NewTestContext(http.MethodPost, "/auth/forgot-password", ForgotPasswordRequest{Email: email})
		handler.ForgotPassword(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), passwordResetSentMessage)
		bodies = append(bodies, w.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, []string{"ana@example.com", "nobody@example.com"}, got)
}

func TestAuthHandler_ForgotPassword_InvalidEmail(t *testing.T) {
	reset := &mockPasswordResetUC{requestFn: func(context.Context, usecases.RequestPasswordResetCommand) error {
		t.Fatal("use case must not run for an invalid body")
		return nil
	}}
	handler := newResetAuthHandler(reset)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/forgot-password", ForgotPasswordRequest{Email: "not-an-email"})
	handler.ForgotPassword(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	tests := []struct {
		name   string
		req    ResetPasswordRequest
		err    error
		status int
	}{
		{"success", ResetPasswordRequest{Token: "tok", NewPassword: "Brand-new-pass1", ConfirmPassword: "Brand-new-pass1"}, nil, http.StatusOK},
		{"missing token", ResetPasswordRequest{NewPassword: "Brand-new-pass1"}, nil, http.StatusBadRequest},
		{"short password", ResetPasswordRequest{Token: "tok", NewPassword: "short"}, nil, http.StatusBadRequest},
		{"expired token", ResetPasswordRequest{Token: "old", NewPassword: "Brand-new-pass1"}, errors.NewValidationError("Invalid or expired reset link. Please request a new one."), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got usecases.ResetPasswordCommand
			reset := &mockPasswordResetUC{resetFn: func(_ context.Context, cmd usecases.ResetPasswordCommand) error {
				got = cmd
				return tt.err
			}}
			handler := newResetAuthHandler(reset)

			c, w := testutil.NewTestContext(http.MethodPost, "/auth/reset-password", tt.req)
			handler.ResetPassword(c)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "tok", got.Token)
				assert.Equal(t, "Brand-new-pass1", got.NewPassword)
			}
		})
	}
}
