package usecases

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/common"
	"github.com/deskhub/deskhub/internal/application/permission"
	"github.com/deskhub/deskhub/internal/application/ticket/dto"
	permvo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	"github.com/deskhub/deskhub/internal/domain/ticket"
	"github.com/deskhub/deskhub/internal/domain/user"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

type CreateTicketCommand struct {
	Principal   authorization.Principal
	Title       string
	Description string
	Category    string
	Priority    string
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	lookupRepo  ticket.LookupRepository
	userRepo    user.Repository
	permissions permission.Checker
	cache       common.CacheInvalidator
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	lookupRepo ticket.LookupRepository,
	userRepo user.Repository,
	permissions permission.Checker,
	cache common.CacheInvalidator,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		lookupRepo:  lookupRepo,
		userRepo:    userRepo,
		permissions: permissions,
		cache:       cache,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "user_id", cmd.Principal.UserID, "category", cmd.Category)

	if err := uc.permissions.Require(ctx, cmd.Principal, permvo.ResourceTicket, permvo.ActionCreate); err != nil {
		return nil, err
	}

	t, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.Category, cmd.Priority, cmd.Principal.UserID)
	if err != nil {
		return nil, err
	}

	if err := checkLookups(ctx, uc.lookupRepo, uc.logger, t.Category(), t.Priority()); err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err, "user_id", cmd.Principal.UserID)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	uc.cache.Invalidate(ctx, invalidatedScopes...)

	uc.logger.Infow("ticket created successfully", "ticket_id", t.ID(), "user_id", cmd.Principal.UserID)
	return toDTOs(ctx, uc.userRepo, uc.logger, t)[0], nil
}
