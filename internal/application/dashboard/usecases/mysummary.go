package usecases

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/dashboard/dto"
	"github.com/deskhub/deskhub/internal/domain/asset"
	"github.com/deskhub/deskhub/internal/domain/ticket"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

const (
	summaryScopeCreated  = "created"
	summaryScopeAssigned = "assigned"
)

type MySummaryExecutor interface {
	Execute(ctx context.Context, principal authorization.Principal) (*dto.SummaryDTO, error)
}

type MySummaryUseCase struct {
	ticketRepo ticket.TicketRepository
	assetRepo  asset.AssetRepository
	logger     logger.Interface
}

func NewMySummaryUseCase(ticketRepo ticket.TicketRepository, assetRepo asset.AssetRepository, logger logger.Interface) *MySummaryUseCase {
	return &MySummaryUseCase{ticketRepo: ticketRepo, assetRepo: assetRepo, logger: logger}
}

func (uc *MySummaryUseCase) Execute(ctx context.Context, principal authorization.Principal) (*dto.SummaryDTO, error) {
	if principal.IsZero() {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	scope := summaryScopeCreated
	filter := ticket.StatusCountFilter{CreatorID: &principal.UserID}
	if principal.IsStaff() {
		scope = summaryScopeAssigned
		filter = ticket.StatusCountFilter{AssigneeID: &principal.UserID}
	}

	byStatus, err := uc.ticketRepo.CountByStatus(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to count tickets for summary", "user_id", principal.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load summary")
	}
	held, err := uc.assetRepo.ListByHolder(ctx, principal.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list held assets for summary", "user_id", principal.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load summary")
	}

	counts, total := statusCounts(byStatus)
	return &dto.SummaryDTO{
		Scope:        scope,
		TicketCounts: counts,
		TotalTickets: total,
		AssetsHeld:   len(held),
	}, nil
}
