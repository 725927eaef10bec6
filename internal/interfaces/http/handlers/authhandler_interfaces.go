package handlers

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/user/dto"
	"github.com/deskhub/deskhub/internal/application/user/usecases"
)

// Use case interfaces for AuthHandler - enables unit testing with mocks.

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*dto.UserDTO, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*dto.TokenDTO, error)
}

type passwordResetUseCase interface {
	RequestReset(ctx context.Context, cmd usecases.RequestPasswordResetCommand) error
	Reset(ctx context.Context, cmd usecases.ResetPasswordCommand) error
}
