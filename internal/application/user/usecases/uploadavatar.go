package usecases

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"path"

	"github.com/google/uuid"

	"github.com/deskhub/deskhub/internal/application/common"
	"github.com/deskhub/deskhub/internal/application/user/dto"
	"github.com/deskhub/deskhub/internal/application/user/helpers"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/constants"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

var avatarExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type UploadAvatarCommand struct {
	Principal authorization.Principal
	Body      io.Reader
}

type UploadAvatarExecutor interface {
	Execute(ctx context.Context, cmd UploadAvatarCommand) (*dto.UserDTO, error)
}

type UploadAvatarUseCase struct {
	authHelper *helpers.AuthHelper
	store      ObjectStore
	maxBytes   int64
	cache      common.CacheInvalidator
	logger     logger.Interface
}

// NewUploadAvatarUseCase caps uploads at maxBytes; zero selects the default.
func NewUploadAvatarUseCase(
	authHelper *helpers.AuthHelper,
	store ObjectStore,
	maxBytes int64,
	cache common.CacheInvalidator,
	logger logger.Interface,
) *UploadAvatarUseCase {
	if maxBytes <= 0 {
		maxBytes = constants.MaxAvatarBytes
	}
	return &UploadAvatarUseCase{
		authHelper: authHelper,
		store:      store,
		maxBytes:   maxBytes,
		cache:      cache,
		logger:     logger,
	}
}

// Execute sniffs the content type from the bytes rather than trusting the
// client header.
func (uc *UploadAvatarUseCase) Execute(ctx context.Context, cmd UploadAvatarCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing upload avatar use case", "user_id", cmd.Principal.UserID)

	if cmd.Principal.IsZero() {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if cmd.Body == nil {
		return nil, errors.NewValidationError("avatar file is required")
	}

	data, err := io.ReadAll(io.LimitReader(cmd.Body, uc.maxBytes+1))
	if err != nil {
		return nil, errors.NewBadRequestError("failed to read upload")
	}
	if len(data) == 0 {
		return nil, errors.NewValidationError("avatar file is required")
	}
	if int64(len(data)) > uc.maxBytes {
		return nil, errors.NewValidationError("Avatar image is too large.")
	}
	contentType := http.DetectContentType(data)
	ext, ok := avatarExtensions[contentType]
	if !ok {
		return nil, errors.NewValidationError("Avatar must be a PNG, JPEG, GIF or WebP image.", contentType)
	}

	u, err := uc.authHelper.LoadUser(ctx, cmd.Principal.UserID)
	if err != nil {
		return nil, err
	}

	key := path.Join("avatars", uintToString(u.ID()), uuid.NewString()+ext)
	url, err := uc.store.Put(ctx, key, contentType, bytes.NewReader(data))
	if err != nil {
		uc.logger.Errorw("failed to store avatar", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("failed to upload avatar")
	}

	previous := u.SetAvatarURL(url)
	if err := uc.authHelper.SaveUser(ctx, u); err != nil {
		if delErr := uc.store.Delete(ctx, key); delErr != nil {
			uc.logger.Warnw("failed to remove orphaned avatar", "error", delErr, "key", key)
		}
		return nil, err
	}

	if oldKey, ok := uc.store.KeyFromURL(previous); ok && previous != "" {
		if err := uc.store.Delete(ctx, oldKey); err != nil {
			uc.logger.Warnw("failed to delete previous avatar", "error", err, "key", oldKey)
		}
	}

	uc.cache.Invalidate(ctx, invalidatedScopes...)

	uc.logger.Infow("avatar uploaded successfully", "user_id", u.ID(), "key", key)
	return dto.ToUserDTO(u), nil
}
