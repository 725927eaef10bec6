package constants

const (
	EnvDevelopment = "development"

	// Pagination for list endpoints
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	MaxPage         = 1_000_000

	// Dashboard and notification windows
	DailyTicketWindowDays     = 7
	DefaultNotificationsLimit = 20
	MaxNotificationsLimit     = 100
	RecentArticlesLimit       = 10

	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXCache        = "X-Cache"

	// Table names
	TableProfiles          = "profiles"
	TableTickets           = "tickets"
	TableTicketCategories  = "ticket_categories"
	TableTicketPriorities  = "ticket_priorities"
	TableAssets            = "assets"
	TableAssetHistory      = "asset_history"
	TableKBCategories      = "kb_categories"
	TableKBArticles        = "kb_articles"
	TableNotifications     = "notifications"
	TableGooseVersionTable = "goose_db_version"

	// Avatar upload limits
	MaxAvatarBytes = 2 << 20

	ErrMsgInternalServerError = "Internal server error occurred"
)

// Cache scopes invalidated after mutations.
const (
	ScopeTickets       = "tickets"
	ScopeAssets        = "assets"
	ScopeKnowledge     = "knowledge"
	ScopeUsers         = "users"
	ScopeNotifications = "notifications"
	ScopeDashboard     = "dashboard"
)
