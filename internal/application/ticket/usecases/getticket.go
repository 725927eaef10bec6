package usecases

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/ticket/dto"
	"github.com/deskhub/deskhub/internal/domain/ticket"
	"github.com/deskhub/deskhub/internal/domain/user"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

type GetTicketQuery struct {
	Principal authorization.Principal
	TicketID  uint
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Execute hides tickets the principal may not see behind not-found.
func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.Principal.IsZero() {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	t, err := loadTicket(ctx, uc.ticketRepo, uc.logger, query.TicketID)
	if err != nil {
		return nil, err
	}

	if !t.CanBeViewedBy(query.Principal) {
		uc.logger.Warnw("ticket access denied",
			"ticket_id", query.TicketID,
			"user_id", query.Principal.UserID,
		)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	return toDTOs(ctx, uc.userRepo, uc.logger, t)[0], nil
}
