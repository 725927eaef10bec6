package ticket

import (
	"github.com/deskhub/deskhub/internal/application/ticket/dto"
	"github.com/deskhub/deskhub/internal/application/ticket/usecases"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	Category    string `json:"category" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
}

func (r *CreateTicketRequest) ToCommand(principal authorization.Principal) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Principal:   principal,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Priority:    r.Priority,
	}
}

type UpdateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	Category    string `json:"category" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
}

func (r *UpdateTicketRequest) ToCommand(principal authorization.Principal, ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		Principal:   principal,
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Priority:    r.Priority,
	}
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,ticket_status"`
}

// ListTicketsResponse is the list envelope plus the queue's unassigned count.
type ListTicketsResponse struct {
	utils.ListResponse
	UnassignedCount *int64 `json:"unassigned_count,omitempty"`
}

func toListResponse(result *usecases.ListTicketsResult, q utils.ListQuery) ListTicketsResponse {
	items := result.Tickets
	if items == nil {
		items = []*dto.TicketDTO{}
	}
	return ListTicketsResponse{
		ListResponse: utils.ListResponse{
			Items:      items,
			Total:      result.TotalCount,
			Page:       q.Page,
			PageSize:   q.PageSize,
			TotalPages: utils.TotalPages(result.TotalCount, q.PageSize),
		},
		UnassignedCount: result.UnassignedCount,
	}
}
