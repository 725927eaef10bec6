package http

import (
	assetUsecases "github.com/deskhub/deskhub/internal/application/asset/usecases"
	dashboardUsecases "github.com/deskhub/deskhub/internal/application/dashboard/usecases"
	knowledgeUsecases "github.com/deskhub/deskhub/internal/application/knowledge/usecases"
	ticketUsecases "github.com/deskhub/deskhub/internal/application/ticket/usecases"
	userUsecases "github.com/deskhub/deskhub/internal/application/user/usecases"
)

// allUseCases holds every use case instance; handlers receive them through
// their executor interfaces.
type allUseCases struct {
	// Auth & users
	registerUC      *userUsecases.RegisterUseCase
	loginUC         *userUsecases.LoginUseCase
	accountUC       *userUsecases.AccountUseCase
	passwordResetUC *userUsecases.PasswordResetUseCase
	manageUsersUC   *userUsecases.ManageUsersUseCase
	uploadAvatarUC  *userUsecases.UploadAvatarUseCase

	// Tickets
	createTicketUC       *ticketUsecases.CreateTicketUseCase
	assignTicketUC       *ticketUsecases.AssignTicketUseCase
	updateTicketStatusUC *ticketUsecases.UpdateTicketStatusUseCase
	updateTicketUC       *ticketUsecases.UpdateTicketUseCase
	getTicketUC          *ticketUsecases.GetTicketUseCase
	listTicketsUC        *ticketUsecases.ListTicketsUseCase
	deleteTicketUC       *ticketUsecases.DeleteTicketUseCase
	listTicketLookupsUC  *ticketUsecases.ListTicketLookupsUseCase

	// Assets
	createAssetUC *assetUsecases.CreateAssetUseCase
	updateAssetUC *assetUsecases.UpdateAssetUseCase
	deleteAssetUC *assetUsecases.DeleteAssetUseCase
	assignAssetUC *assetUsecases.AssignAssetUseCase
	assetQueryUC  *assetUsecases.AssetQueryUseCase

	// Knowledge base
	browseKnowledgeUC *knowledgeUsecases.BrowseKnowledgeUseCase
	createArticleUC   *knowledgeUsecases.CreateArticleUseCase
	updateArticleUC   *knowledgeUsecases.UpdateArticleUseCase
	deleteArticleUC   *knowledgeUsecases.DeleteArticleUseCase

	// Dashboard
	adminStatsUC *dashboardUsecases.AdminStatsUseCase
	mySummaryUC  *dashboardUsecases.MySummaryUseCase
}

// ============================================================
// Section 2: Use cases per bounded context
// ============================================================

func (c *Container) initUseCases() {
	log := c.log
	repos := c.repos
	svcs := c.svcs
	perms := c.permissions
	viewCache := c.viewCache
	notifier := svcs.notifications

	ucs := &allUseCases{}
	c.ucs = ucs

	// Auth & users
	ucs.registerUC = userUsecases.NewRegisterUseCase(repos.userRepo, svcs.authHelper, log)
	ucs.loginUC = userUsecases.NewLoginUseCase(repos.userRepo, svcs.authHelper, c.jwtSvc, log)
	ucs.accountUC = userUsecases.NewAccountUseCase(svcs.authHelper, viewCache, log)
	ucs.passwordResetUC = userUsecases.NewPasswordResetUseCase(
		repos.userRepo, svcs.authHelper, c.jwtSvc, svcs.emailService,
		c.cfg.Auth.PasswordReset.URL, c.cfg.Auth.PasswordReset.TTL(), log,
	)
	ucs.manageUsersUC = userUsecases.NewManageUsersUseCase(repos.userRepo, svcs.authHelper, perms, viewCache, log)
	ucs.uploadAvatarUC = userUsecases.NewUploadAvatarUseCase(
		svcs.authHelper, svcs.objectStore, c.cfg.Storage.MaxAvatarBytes, viewCache, log,
	)

	// Tickets
	ucs.createTicketUC = ticketUsecases.NewCreateTicketUseCase(
		repos.ticketRepo, repos.ticketLookupRepo, repos.userRepo, perms, viewCache, log,
	)
	ucs.assignTicketUC = ticketUsecases.NewAssignTicketUseCase(
		repos.ticketRepo, repos.userRepo, perms, notifier, viewCache, log,
	)
	ucs.updateTicketStatusUC = ticketUsecases.NewUpdateTicketStatusUseCase(
		repos.ticketRepo, repos.userRepo, perms, notifier, viewCache, log,
	)
	ucs.updateTicketUC = ticketUsecases.NewUpdateTicketUseCase(
		repos.ticketRepo, repos.ticketLookupRepo, repos.userRepo, perms, viewCache, log,
	)
	ucs.getTicketUC = ticketUsecases.NewGetTicketUseCase(repos.ticketRepo, repos.userRepo, log)
	ucs.listTicketsUC = ticketUsecases.NewListTicketsUseCase(repos.ticketRepo, repos.userRepo, perms, log)
	ucs.deleteTicketUC = ticketUsecases.NewDeleteTicketUseCase(repos.ticketRepo, perms, viewCache, log)
	ucs.listTicketLookupsUC = ticketUsecases.NewListTicketLookupsUseCase(repos.ticketLookupRepo, log)

	// Assets
	ucs.createAssetUC = assetUsecases.NewCreateAssetUseCase(repos.assetRepo, perms, viewCache, log)
	ucs.updateAssetUC = assetUsecases.NewUpdateAssetUseCase(repos.assetRepo, repos.userRepo, perms, viewCache, log)
	ucs.deleteAssetUC = assetUsecases.NewDeleteAssetUseCase(repos.assetRepo, perms, viewCache, log)
	ucs.assignAssetUC = assetUsecases.NewAssignAssetUseCase(
		repos.assetRepo, repos.assetHistoryRepo, repos.userRepo, svcs.txManager, perms, notifier, viewCache, log,
	)
	ucs.assetQueryUC = assetUsecases.NewAssetQueryUseCase(
		repos.assetRepo, repos.assetHistoryRepo, repos.userRepo, perms, log,
	)

	// Knowledge base
	ucs.browseKnowledgeUC = knowledgeUsecases.NewBrowseKnowledgeUseCase(
		repos.kbCategoryRepo, repos.kbArticleRepo, repos.userRepo, svcs.markdown, perms, log,
	)
	ucs.createArticleUC = knowledgeUsecases.NewCreateArticleUseCase(
		repos.kbCategoryRepo, repos.kbArticleRepo, repos.userRepo, svcs.markdown, perms, viewCache, log,
	)
	ucs.updateArticleUC = knowledgeUsecases.NewUpdateArticleUseCase(
		repos.kbCategoryRepo, repos.kbArticleRepo, repos.userRepo, svcs.markdown, perms, viewCache, log,
	)
	ucs.deleteArticleUC = knowledgeUsecases.NewDeleteArticleUseCase(repos.kbArticleRepo, perms, viewCache, log)

	// Dashboard
	ucs.adminStatsUC = dashboardUsecases.NewAdminStatsUseCase(
		repos.ticketRepo, repos.assetRepo, repos.userRepo, perms, log,
	)
	ucs.mySummaryUC = dashboardUsecases.NewMySummaryUseCase(repos.ticketRepo, repos.assetRepo, log)
}
