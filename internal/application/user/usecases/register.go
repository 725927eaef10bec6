package usecases

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/user/dto"
	"github.com/deskhub/deskhub/internal/application/user/helpers"
	"github.com/deskhub/deskhub/internal/domain/user"
	vo "github.com/deskhub/deskhub/internal/domain/user/valueobjects"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

type RegisterCommand struct {
	Email    string
	Password string
	FullName string
}

// RegisterUseCase creates a self-service employee account.
type RegisterUseCase struct {
	userRepo   user.Repository
	authHelper *helpers.AuthHelper
	logger     logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, authHelper *helpers.AuthHelper, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{userRepo: userRepo, authHelper: authHelper, logger: logger}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	uc.logger.Infow("executing register use case", "email", email.String())

	if err := uc.authHelper.EnsureEmailAvailable(ctx, email); err != nil {
		return nil, err
	}
	hash, err := uc.authHelper.HashNewPassword(cmd.Password)
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(email, cmd.FullName, authorization.RoleEmployee, hash)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("An account with this email already exists.")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, errors.NewInternalError("failed to create account")
	}

	uc.logger.Infow("user registered successfully", "user_id", u.ID())
	return dto.ToUserDTO(u), nil
}
