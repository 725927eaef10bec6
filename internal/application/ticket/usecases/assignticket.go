package usecases

import (
	"context"
	"fmt"

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

// AssignTicketCommand hands a ticket to AssigneeID. SelfAssign commands
// leave AssigneeID zero and use the principal.
type AssignTicketCommand struct {
	Principal  authorization.Principal
	TicketID   uint
	AssigneeID uint
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error)
	SelfAssign(ctx context.Context, principal authorization.Principal, ticketID uint) (*dto.TicketDTO, error)
}

type AssignTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	userRepo    user.Repository
	permissions permission.Checker
	notifier    common.Notifier
	cache       common.CacheInvalidator
	logger      logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	permissions permission.Checker,
	notifier common.Notifier,
	cache common.CacheInvalidator,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		permissions: permissions,
		notifier:    notifier,
		cache:       cache,
		logger:      logger,
	}
}

// SelfAssign assigns the ticket to the acting principal.
func (uc *AssignTicketUseCase) SelfAssign(ctx context.Context, principal authorization.Principal, ticketID uint) (*dto.TicketDTO, error) {
	if err := uc.permissions.Require(ctx, principal, permvo.ResourceTicket, permvo.ActionSelfAssign); err != nil {
		return nil, err
	}
	return uc.assign(ctx, principal, ticketID, principal.UserID)
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error) {
	if err := uc.permissions.Require(ctx, cmd.Principal, permvo.ResourceTicket, permvo.ActionAssign); err != nil {
		return nil, err
	}
	if cmd.AssigneeID == 0 {
		return nil, errors.NewValidationError("assignee is required")
	}
	return uc.assign(ctx, cmd.Principal, cmd.TicketID, cmd.AssigneeID)
}

func (uc *AssignTicketUseCase) assign(ctx context.Context, principal authorization.Principal, ticketID, assigneeID uint) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing assign ticket use case",
		"ticket_id", ticketID,
		"assignee_id", assigneeID,
		"actor_id", principal.UserID,
	)

	t, err := loadTicket(ctx, uc.ticketRepo, uc.logger, ticketID)
	if err != nil {
		return nil, err
	}

	assignee, err := uc.userRepo.GetByID(ctx, assigneeID)
	if err != nil {
		uc.logger.Errorw("failed to load assignee", "error", err, "assignee_id", assigneeID)
		return nil, errors.NewInternalError("failed to assign ticket")
	}
	if assignee == nil {
		return nil, errors.NewNotFoundError("assignee not found")
	}
	if !assignee.CanWorkTickets() {
		return nil, errors.NewValidationError("Tickets can only be assigned to active IT staff or admins.")
	}

	if err := t.AssignTo(assigneeID); err != nil {
		return nil, err
	}
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", ticketID)
		return nil, errors.NewInternalError("failed to assign ticket")
	}

	uc.cache.Invalidate(ctx, invalidatedScopes...)

	if assigneeID != principal.UserID {
		uc.notifier.Notify(ctx, common.NotificationRequest{
			UserID:  assigneeID,
			Subject: "Ticket assigned to you",
			Message: fmt.Sprintf("Ticket #%d \"%s\" has been assigned to you.", t.ID(), t.Title()),
			LinkTo:  ticketLink(t.ID()),
		})
	}
	if t.CreatorID() != assigneeID {
		uc.notifier.Notify(ctx, common.NotificationRequest{
			UserID:  t.CreatorID(),
			Subject: "Your ticket is being worked on",
			Message: fmt.Sprintf("Your ticket #%d \"%s\" was assigned to %s.", t.ID(), t.Title(), assignee.FullName()),
			LinkTo:  ticketLink(t.ID()),
		})
	}

	uc.logger.Infow("ticket assigned successfully", "ticket_id", t.ID(), "assignee_id", assigneeID)
	return toDTOs(ctx, uc.userRepo, uc.logger, t)[0], nil
}
