package usecases

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/permission"
	"github.com/deskhub/deskhub/internal/application/ticket/dto"
	permvo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	"github.com/deskhub/deskhub/internal/domain/ticket"
	vo "github.com/deskhub/deskhub/internal/domain/ticket/valueobjects"
	"github.com/deskhub/deskhub/internal/domain/user"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/constants"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

// TicketView selects which list a query reads.
type TicketView string

const (
	// ViewMine lists tickets the principal created.
	ViewMine TicketView = "mine"
	// ViewAssigned lists tickets assigned to the principal.
	ViewAssigned TicketView = "assigned"
	// ViewQueue lists unfinished tickets for staff triage.
	ViewQueue TicketView = "queue"
)

type ListTicketsQuery struct {
	Principal authorization.Principal
	View      TicketView
	Status    string
	Search    string
	SortBy    string
	// UnassignedOnly narrows the queue to tickets nobody holds.
	UnassignedOnly bool
	Page           int
	PageSize       int
}

type ListTicketsResult struct {
	Tickets    []*dto.TicketDTO `json:"tickets"`
	TotalCount int64            `json:"total_count"`
	// UnassignedCount is only reported for the queue view.
	UnassignedCount *int64 `json:"unassigned_count,omitempty"`
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ListTicketsUseCase struct {
	ticketRepo  ticket.TicketRepository
	userRepo    user.Repository
	permissions permission.Checker
	logger      logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	permissions permission.Checker,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		permissions: permissions,
		logger:      logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(ctx, query)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "view", query.View, "user_id", query.Principal.UserID)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	result := &ListTicketsResult{
		Tickets:    toDTOs(ctx, uc.userRepo, uc.logger, tickets...),
		TotalCount: total,
	}

	if query.View == ViewQueue {
		unassigned, err := uc.ticketRepo.CountUnassigned(ctx)
		if err != nil {
			uc.logger.Errorw("failed to count unassigned tickets", "error", err)
			return nil, errors.NewInternalError("failed to list tickets")
		}
		result.UnassignedCount = &unassigned
	}

	return result, nil
}

func (uc *ListTicketsUseCase) buildFilter(ctx context.Context, query ListTicketsQuery) (ticket.TicketFilter, error) {
	filter := ticket.TicketFilter{
		Search:   query.Search,
		SortBy:   normalizeSort(query.SortBy),
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize < 1 {
		filter.PageSize = constants.DefaultPageSize
	}
	if filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.MaxPageSize
	}

	if query.Status != "" {
		status, err := vo.ParseTicketStatus(query.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	userID := query.Principal.UserID
	switch query.View {
	case ViewMine, "":
		if err := uc.permissions.Require(ctx, query.Principal, permvo.ResourceTicket, permvo.ActionReadOwn); err != nil {
			return filter, err
		}
		filter.CreatorID = &userID
	case ViewAssigned:
		if err := uc.permissions.Require(ctx, query.Principal, permvo.ResourceTicket, permvo.ActionReadQueue); err != nil {
			return filter, err
		}
		filter.AssigneeID = &userID
	case ViewQueue:
		if err := uc.permissions.Require(ctx, query.Principal, permvo.ResourceTicket, permvo.ActionReadQueue); err != nil {
			return filter, err
		}
		filter.Unassigned = query.UnassignedOnly
		if filter.Status == nil {
			filter.ExcludeFinished = true
		}
	default:
		return filter, errors.NewValidationError("unknown ticket view", string(query.View))
	}
	return filter, nil
}

func normalizeSort(sortBy string) string {
	switch sortBy {
	case ticket.SortOldest, ticket.SortUpdated:
		return sortBy
	}
	return ticket.SortNewest
}
