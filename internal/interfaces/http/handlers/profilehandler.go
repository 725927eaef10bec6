package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deskhub/deskhub/internal/application/user/usecases"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
	"github.com/deskhub/deskhub/internal/shared/utils"
)

const avatarFormField = "avatar"

// ProfileHandler handles the signed-in user's own profile.
type ProfileHandler struct {
	accountUC      usecases.AccountExecutor
	uploadAvatarUC usecases.UploadAvatarExecutor
	maxAvatarBytes int64
	logger         logger.Interface
}

func NewProfileHandler(
	accountUC usecases.AccountExecutor,
	uploadAvatarUC usecases.UploadAvatarExecutor,
	maxAvatarBytes int64,
	logger logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		accountUC:      accountUC,
		uploadAvatarUC: uploadAvatarUC,
		maxAvatarBytes: maxAvatarBytes,
		logger:         logger,
	}
}

type UpdateOwnProfileRequest struct {
	PhoneNumber          string `json:"phone_number" binding:"max=32"`
	OfficeLocation       string `json:"office_location" binding:"max=100"`
	ReceiveNotifications bool   `json:"receive_notifications"`
}

// UpdateProfile handles PUT /profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateOwnProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.accountUC.UpdateOwnProfile(c.Request.Context(), usecases.UpdateOwnProfileCommand{
		Principal:            principal,
		PhoneNumber:          req.PhoneNumber,
		OfficeLocation:       req.OfficeLocation,
		ReceiveNotifications: req.ReceiveNotifications,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile updated successfully", result)
}

// UploadAvatar handles POST /profile/avatar as multipart/form-data with
// the image in the "avatar" field.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	if h.maxAvatarBytes > 0 {
		// leave room for multipart framing
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxAvatarBytes+64<<10)
	}

	header, err := c.FormFile(avatarFormField)
	if err != nil {
		h.logger.Warnw("avatar upload without file", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("avatar file is required"))
		return
	}
	if h.maxAvatarBytes > 0 && header.Size > h.maxAvatarBytes {
		utils.ErrorResponseWithError(c, errors.NewValidationError("avatar file is too large"))
		return
	}

	file, err := header.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded avatar", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read upload"))
		return
	}
	defer file.Close()

	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.uploadAvatarUC.Execute(c.Request.Context(), usecases.UploadAvatarCommand{
		Principal: principal,
		Body:      file,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "avatar updated", result)
}
