package usecases

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/ticket/dto"
	"github.com/deskhub/deskhub/internal/domain/ticket"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

// TicketLookupsResult feeds the ticket form pickers.
type TicketLookupsResult struct {
	Categories []dto.LookupDTO `json:"categories"`
	Priorities []dto.LookupDTO `json:"priorities"`
}

type ListTicketLookupsExecutor interface {
	Execute(ctx context.Context) (*TicketLookupsResult, error)
}

type ListTicketLookupsUseCase struct {
	lookupRepo ticket.LookupRepository
	logger     logger.Interface
}

func NewListTicketLookupsUseCase(lookupRepo ticket.LookupRepository, logger logger.Interface) *ListTicketLookupsUseCase {
	return &ListTicketLookupsUseCase{lookupRepo: lookupRepo, logger: logger}
}

func (uc *ListTicketLookupsUseCase) Execute(ctx context.Context) (*TicketLookupsResult, error) {
	categories, err := uc.lookupRepo.ListCategories(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list ticket categories", "error", err)
		return nil, errors.NewInternalError("failed to load ticket options")
	}
	priorities, err := uc.lookupRepo.ListPriorities(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list ticket priorities", "error", err)
		return nil, errors.NewInternalError("failed to load ticket options")
	}
	return &TicketLookupsResult{
		Categories: dto.ToLookupDTOs(categories),
		Priorities: dto.ToLookupDTOs(priorities),
	}, nil
}
