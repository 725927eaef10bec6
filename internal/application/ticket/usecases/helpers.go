package usecases

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/ticket/dto"
	"github.com/deskhub/deskhub/internal/domain/ticket"
	"github.com/deskhub/deskhub/internal/domain/user"
	"github.com/deskhub/deskhub/internal/shared/constants"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

// invalidatedScopes are dropped from the view cache after any ticket change.
var invalidatedScopes = []string{constants.ScopeTickets, constants.ScopeDashboard}

func loadTicket(ctx context.Context, repo ticket.TicketRepository, log logger.Interface, id uint) (*ticket.Ticket, error) {
	if id == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	t, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to load ticket", "error", err, "ticket_id", id)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return t, nil
}

// toDTOs resolves participant names. A failed name lookup degrades to ids
// only rather than failing the read.
func toDTOs(ctx context.Context, users user.Repository, log logger.Interface, tickets ...*ticket.Ticket) []*dto.TicketDTO {
	names, err := users.GetNames(ctx, dto.ParticipantIDs(tickets...))
	if err != nil {
		log.Warnw("failed to resolve ticket participant names", "error", err)
		names = nil
	}
	return dto.ToTicketDTOs(tickets, names)
}

func ticketLink(id uint) string {
	return "/tickets/" + uintToString(id)
}

// checkLookups rejects categories and priorities missing from the lookup
// tables.
func checkLookups(ctx context.Context, repo ticket.LookupRepository, log logger.Interface, category, priority string) error {
	ok, err := repo.CategoryExists(ctx, category)
	if err != nil {
		log.Errorw("failed to check ticket category", "error", err, "category", category)
		return errors.NewInternalError("failed to validate ticket")
	}
	if !ok {
		return errors.NewValidationError("unknown ticket category", category)
	}

	ok, err = repo.PriorityExists(ctx, priority)
	if err != nil {
		log.Errorw("failed to check ticket priority", "error", err, "priority", priority)
		return errors.NewInternalError("failed to validate ticket")
	}
	if !ok {
		return errors.NewValidationError("unknown ticket priority", priority)
	}
	return nil
}
