package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	tickethandlers "github.com/deskhub/deskhub/internal/interfaces/http/handlers/ticket"
	"github.com/deskhub/deskhub/internal/interfaces/http/middleware"
	"github.com/deskhub/deskhub/internal/shared/constants"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	ViewCache            middleware.ViewStore
}

func SetupTicketRoutes(r gin.IRouter, config *TicketRouteConfig) {
	cached := middleware.CacheView(config.ViewCache, constants.ScopeTickets)
	perm := config.PermissionMiddleware

	tickets := r.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("",
			perm.RequirePermission(vo.ResourceTicket, vo.ActionCreate),
			config.TicketHandler.CreateTicket)
		tickets.GET("/mine", cached, config.TicketHandler.ListMyTickets)
		tickets.GET("/assigned",
			perm.RequirePermission(vo.ResourceTicket, vo.ActionReadQueue),
			cached,
			config.TicketHandler.ListAssignedTickets)
		tickets.GET("/queue",
			perm.RequirePermission(vo.ResourceTicket, vo.ActionReadQueue),
			cached,
			config.TicketHandler.ListTicketQueue)
		tickets.GET("/lookups", config.TicketHandler.ListLookups)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.POST("/:id/self-assign",
			perm.RequirePermission(vo.ResourceTicket, vo.ActionSelfAssign),
			config.TicketHandler.SelfAssignTicket)
		tickets.POST("/:id/assign",
			perm.RequirePermission(vo.ResourceTicket, vo.ActionAssign),
			config.TicketHandler.AssignTicket)
		// Closed needs ticket/close; the use case checks the target status.
		tickets.PATCH("/:id/status",
			perm.RequirePermission(vo.ResourceTicket, vo.ActionUpdateStatus),
			config.TicketHandler.UpdateTicketStatus)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id", cached, config.TicketHandler.GetTicket)
		tickets.PUT("/:id",
			perm.RequirePermission(vo.ResourceTicket, vo.ActionUpdate),
			config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			perm.RequirePermission(vo.ResourceTicket, vo.ActionDelete),
			config.TicketHandler.DeleteTicket)
	}
}
