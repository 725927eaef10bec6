package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskhub/deskhub/internal/application/user/dto"
	"github.com/deskhub/deskhub/internal/application/user/usecases"
	"github.com/deskhub/deskhub/internal/interfaces/http/handlers/testutil"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

type mockUploadAvatarUC struct {
	body []byte
}

func (m *mockUploadAvatarUC) Execute(_ context.Context, cmd usecases.UploadAvatarCommand) (*dto.UserDTO, error) {
	b, err := io.ReadAll(cmd.Body)
	if err != nil {
		return nil, err
	}
	m.body = b
	return &dto.UserDTO{ID: cmd.Principal.UserID, AvatarURL: "http://localhost/static/avatars/x.png"}, nil
}

func multipartContext(t *testing.T, field string, content []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		part, err := mw.CreateFormFile(field, "me.png")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/profile/avatar", &buf)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	return c, w
}

func TestProfileHandler_UploadAvatar(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n0000")

	t.Run("success", func(t *testing.T) {
		upload := &mockUploadAvatarUC{}
		handler := NewProfileHandler(&mockAccountUC{}, upload, 1024, logger.NewNop())

		c, w := multipartContext(t, avatarFormField, png)
		testutil.SetPrincipal(c, 7, authorization.RoleEmployee)

		handler.UploadAvatar(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, png, upload.body)
		assert.Contains(t, w.Body.String(), "avatar_url")
	})

	t.Run("missing file", func(t *testing.T) {
		handler := NewProfileHandler(&mockAccountUC{}, &mockUploadAvatarUC{}, 1024, logger.NewNop())

		c, w := multipartContext(t, "", nil)
		testutil.SetPrincipal(c, 7, authorization.RoleEmployee)

		handler.UploadAvatar(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("too large", func(t *testing.T) {
		upload := &mockUploadAvatarUC{}
		handler := NewProfileHandler(&mockAccountUC{}, upload, 8, logger.NewNop())

		c, w := multipartContext(t, avatarFormField, png)
		testutil.SetPrincipal(c, 7, authorization.RoleEmployee)

		handler.UploadAvatar(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, upload.body)
	})
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	var got usecases.UpdateOwnProfileCommand
	account := &mockAccountUC{updateProfileFn: func(_ context.Context, cmd usecases.UpdateOwnProfileCommand) (*dto.UserDTO, error) {
		got = cmd
		return &dto.UserDTO{ID: cmd.Principal.UserID}, nil
	}}
	handler := NewProfileHandler(account, nil, 0, logger.NewNop())

	c, w := testutil.NewTestContext(http.MethodPut, "/profile", UpdateOwnProfileRequest{
		PhoneNumber:          "+1 555 0100",
		OfficeLocation:       "HQ 3F",
		ReceiveNotifications: true,
	})
	testutil.SetPrincipal(c, 7, authorization.RoleEmployee)

	handler.UpdateProfile(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "HQ 3F", got.OfficeLocation)
	assert.True(t, got.ReceiveNotifications)
	assert.Equal(t, uint(7), got.Principal.UserID)
}
