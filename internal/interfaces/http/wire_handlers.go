package http

import (
	"github.com/deskhub/deskhub/internal/interfaces/http/handlers"
	assetHandlers "github.com/deskhub/deskhub/internal/interfaces/http/handlers/asset"
	knowledgeHandlers "github.com/deskhub/deskhub/internal/interfaces/http/handlers/knowledge"
	ticketHandlers "github.com/deskhub/deskhub/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds every HTTP handler instance.
type allHandlers struct {
	authHandler         *handlers.AuthHandler
	userHandler         *handlers.UserHandler
	profileHandler      *handlers.ProfileHandler
	notificationHandler *handlers.NotificationHandler
	dashboardHandler    *handlers.DashboardHandler
	ticketHandler       *ticketHandlers.TicketHandler
	assetHandler        *assetHandlers.AssetHandler
	knowledgeHandler    *knowledgeHandlers.KnowledgeHandler
}

// ============================================================
// Section 3: Handlers
// ============================================================

func (c *Container) initHandlers() {
	log := c.log
	ucs := c.ucs

	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(ucs.registerUC, ucs.loginUC, ucs.accountUC, ucs.passwordResetUC, log, c.cfg.Auth.Cookie),
		userHandler: handlers.NewUserHandler(ucs.manageUsersUC, log),
		profileHandler: handlers.NewProfileHandler(
			ucs.accountUC, ucs.uploadAvatarUC, c.cfg.Storage.MaxAvatarBytes, log,
		),
		notificationHandler: handlers.NewNotificationHandler(c.svcs.notifications, log),
		dashboardHandler:    handlers.NewDashboardHandler(ucs.adminStatsUC, ucs.mySummaryUC, log),
		ticketHandler: ticketHandlers.NewTicketHandler(
			ucs.createTicketUC,
			ucs.assignTicketUC,
			ucs.updateTicketStatusUC,
			ucs.updateTicketUC,
			ucs.getTicketUC,
			ucs.listTicketsUC,
			ucs.deleteTicketUC,
			ucs.listTicketLookupsUC,
			log,
		),
		assetHandler: assetHandlers.NewAssetHandler(
			ucs.createAssetUC,
			ucs.updateAssetUC,
			ucs.deleteAssetUC,
			ucs.assignAssetUC,
			ucs.assetQueryUC,
			log,
		),
		knowledgeHandler: knowledgeHandlers.NewKnowledgeHandler(
			ucs.browseKnowledgeUC,
			ucs.createArticleUC,
			ucs.updateArticleUC,
			ucs.deleteArticleUC,
			log,
		),
	}
}
