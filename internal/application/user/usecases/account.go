package usecases

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/common"
	"github.com/deskhub/deskhub/internal/application/user/dto"
	"github.com/deskhub/deskhub/internal/application/user/helpers"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

type ChangePasswordCommand struct {
	Principal       authorization.Principal
	CurrentPassword string
	NewPassword     string
}

type UpdateOwnProfileCommand struct {
	Principal            authorization.Principal
	PhoneNumber          string
	OfficeLocation       string
	ReceiveNotifications bool
}

type AccountExecutor interface {
	Me(ctx context.Context, principal authorization.Principal) (*dto.UserDTO, error)
	ChangePassword(ctx context.Context, cmd ChangePasswordCommand) error
	UpdateOwnProfile(ctx context.Context, cmd UpdateOwnProfileCommand) (*dto.UserDTO, error)
}

// AccountUseCase covers what a signed-in user does to their own profile.
type AccountUseCase struct {
	authHelper *helpers.AuthHelper
	cache      common.CacheInvalidator
	logger     logger.Interface
}

func NewAccountUseCase(authHelper *helpers.AuthHelper, cache common.CacheInvalidator, logger logger.Interface) *AccountUseCase {
	return &AccountUseCase{authHelper: authHelper, cache: cache, logger: logger}
}

func (uc *AccountUseCase) Me(ctx context.Context, principal authorization.Principal) (*dto.UserDTO, error) {
	if principal.IsZero() {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	u, err := uc.authHelper.LoadUser(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	return dto.ToUserDTO(u), nil
}

func (uc *AccountUseCase) ChangePassword(ctx context.Context, cmd ChangePasswordCommand) error {
	uc.logger.Infow("executing change password use case", "user_id", cmd.Principal.UserID)

	if cmd.Principal.IsZero() {
		return errors.NewUnauthorizedError("authentication required")
	}
	u, err := uc.authHelper.LoadUser(ctx, cmd.Principal.UserID)
	if err != nil {
		return err
	}
	if err := u.VerifyPassword(cmd.CurrentPassword, uc.authHelper.Hasher()); err != nil {
		return errors.NewValidationError("Current password is incorrect.")
	}
	if cmd.CurrentPassword == cmd.NewPassword {
		return errors.NewValidationError("New password must be different from the current password.")
	}

	hash, err := uc.authHelper.HashNewPassword(cmd.NewPassword)
	if err != nil {
		return err
	}
	u.SetPasswordHash(hash)
	if err := uc.authHelper.SaveUser(ctx, u); err != nil {
		return err
	}

	uc.logger.Infow("password changed successfully", "user_id", u.ID())
	return nil
}

func (uc *AccountUseCase) UpdateOwnProfile(ctx context.Context, cmd UpdateOwnProfileCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing update own profile use case", "user_id", cmd.Principal.UserID)

	if cmd.Principal.IsZero() {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	u, err := uc.authHelper.LoadUser(ctx, cmd.Principal.UserID)
	if err != nil {
		return nil, err
	}

	u.UpdateContact(cmd.PhoneNumber, cmd.OfficeLocation, cmd.ReceiveNotifications)
	if err := uc.authHelper.SaveUser(ctx, u); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, invalidatedScopes...)
	return dto.ToUserDTO(u), nil
}
