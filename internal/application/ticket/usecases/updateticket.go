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

type UpdateTicketCommand struct {
	Principal   authorization.Principal
	TicketID    uint
	Title       string
	Description string
	Category    string
	Priority    string
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type UpdateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	lookupRepo  ticket.LookupRepository
	userRepo    user.Repository
	permissions permission.Checker
	cache       common.CacheInvalidator
	logger      logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	lookupRepo ticket.LookupRepository,
	userRepo user.Repository,
	permissions permission.Checker,
	cache common.CacheInvalidator,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:  ticketRepo,
		lookupRepo:  lookupRepo,
		userRepo:    userRepo,
		permissions: permissions,
		cache:       cache,
		logger:      logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Principal.UserID)

	if err := uc.permissions.Require(ctx, cmd.Principal, permvo.ResourceTicket, permvo.ActionUpdate); err != nil {
		return nil, err
	}

	t, err := loadTicket(ctx, uc.ticketRepo, uc.logger, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.UpdateDetails(cmd.Title, cmd.Description, cmd.Category, cmd.Priority); err != nil {
		return nil, err
	}

	if err := checkLookups(ctx, uc.lookupRepo, uc.logger, t.Category(), t.Priority()); err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.cache.Invalidate(ctx, invalidatedScopes...)

	uc.logger.Infow("ticket updated successfully", "ticket_id", t.ID())
	return toDTOs(ctx, uc.userRepo, uc.logger, t)[0], nil
}
