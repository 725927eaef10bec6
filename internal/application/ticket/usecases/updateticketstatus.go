package usecases

import (
	"context"
	"fmt"

	"github.com/deskhub/deskhub/internal/application/common"
	"github.com/deskhub/deskhub/internal/application/permission"
	"github.com/deskhub/deskhub/internal/application/ticket/dto"
	permvo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	"github.com/deskhub/deskhub/internal/domain/ticket"
	vo "github.com/deskhub/deskhub/internal/domain/ticket/valueobjects"
	"github.com/deskhub/deskhub/internal/domain/user"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

type UpdateTicketStatusCommand struct {
	Principal authorization.Principal
	TicketID  uint
	Status    string
}

type UpdateTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketStatusCommand) (*dto.TicketDTO, error)
}

type UpdateTicketStatusUseCase struct {
	ticketRepo  ticket.TicketRepository
	userRepo    user.Repository
	permissions permission.Checker
	notifier    common.Notifier
	cache       common.CacheInvalidator
	logger      logger.Interface
}

func NewUpdateTicketStatusUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	permissions permission.Checker,
	notifier common.Notifier,
	cache common.CacheInvalidator,
	logger logger.Interface,
) *UpdateTicketStatusUseCase {
	return &UpdateTicketStatusUseCase{
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		permissions: permissions,
		notifier:    notifier,
		cache:       cache,
		logger:      logger,
	}
}

func (uc *UpdateTicketStatusUseCase) Execute(ctx context.Context, cmd UpdateTicketStatusCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket status use case",
		"ticket_id", cmd.TicketID,
		"status", cmd.Status,
		"actor_id", cmd.Principal.UserID,
	)

	// The allow-list is checked before anything else is read.
	status, err := vo.ParseTicketStatus(cmd.Status)
	if err != nil {
		return nil, err
	}

	if err := uc.permissions.Require(ctx, cmd.Principal, permvo.ResourceTicket, permvo.ActionUpdateStatus); err != nil {
		return nil, err
	}
	if status == vo.StatusClosed {
		if err := uc.permissions.Require(ctx, cmd.Principal, permvo.ResourceTicket, permvo.ActionClose); err != nil {
			return nil, err
		}
	}

	t, err := loadTicket(ctx, uc.ticketRepo, uc.logger, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	previous := t.Status()
	if err := t.ChangeStatus(cmd.Principal, status); err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket status", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to update ticket status")
	}

	uc.cache.Invalidate(ctx, invalidatedScopes...)

	if previous != status && t.CreatorID() != cmd.Principal.UserID {
		uc.notifier.Notify(ctx, common.NotificationRequest{
			UserID:  t.CreatorID(),
			Subject: "Ticket status updated",
			Message: fmt.Sprintf("The status of your ticket #%d \"%s\" changed to %s.", t.ID(), t.Title(), status),
			LinkTo:  ticketLink(t.ID()),
		})
	}

	uc.logger.Infow("ticket status updated successfully",
		"ticket_id", t.ID(),
		"from", previous,
		"to", status,
	)
	return toDTOs(ctx, uc.userRepo, uc.logger, t)[0], nil
}
