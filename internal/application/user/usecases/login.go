package usecases

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/user/dto"
	"github.com/deskhub/deskhub/internal/application/user/helpers"
	"github.com/deskhub/deskhub/internal/domain/user"
	vo "github.com/deskhub/deskhub/internal/domain/user/valueobjects"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo   user.Repository
	authHelper *helpers.AuthHelper
	jwtService JWTService
	logger     logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, authHelper *helpers.AuthHelper, jwtService JWTService, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, authHelper: authHelper, jwtService: jwtService, logger: logger}
}

// Execute never reveals whether the email exists.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.TokenDTO, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	u, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, errors.NewInternalError("failed to sign in")
	}
	if u == nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := u.VerifyPassword(cmd.Password, uc.authHelper.Hasher()); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", u.ID())
		return nil, errors.NewInvalidCredentialsError()
	}
	if !u.IsActive() {
		uc.logger.Warnw("login refused for inactive user", "user_id", u.ID())
		return nil, errors.NewAccountInactiveError()
	}

	tokens, err := uc.jwtService.Generate(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("failed to sign in")
	}

	uc.logger.Infow("user logged in successfully", "user_id", u.ID())
	return &dto.TokenDTO{
		AccessToken: tokens.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   tokens.ExpiresIn,
		User:        dto.ToUserDTO(u),
	}, nil
}
