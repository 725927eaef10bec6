package http

import (
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/deskhub/deskhub/docs"

	"github.com/deskhub/deskhub/internal/infrastructure/config"
	"github.com/deskhub/deskhub/internal/infrastructure/ratelimit"
	"github.com/deskhub/deskhub/internal/interfaces/http/handlers"
	"github.com/deskhub/deskhub/internal/interfaces/http/middleware"
	"github.com/deskhub/deskhub/internal/interfaces/http/routes"
	"github.com/deskhub/deskhub/internal/interfaces/http/validators"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

const apiPrefix = "/api"

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	if err := validators.Register(); err != nil {
		return nil, err
	}
	container, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: container}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.CustomLogger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.CSRF())
	r.engine.Use(middleware.SecurityHeaders())

	if sqlDB, err := r.db.DB(); err == nil {
		r.engine.GET("/health", handlers.NewHealthHandler(sqlDB, r.log).HealthCheck)
	}

	if r.cfg.Server.IsDebug() {
		r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if r.cfg.Storage.Root != "" {
		r.engine.Static(publicPath(r.cfg.Storage.PublicURL), r.cfg.Storage.Root)
	}

	api := r.engine.Group(apiPrefix)

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimit:      r.loginRateLimit(),
	})

	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:        r.hdlrs.ticketHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		ViewCache:            r.viewCache,
	})

	routes.SetupAssetRoutes(api, &routes.AssetRouteConfig{
		AssetHandler:         r.hdlrs.assetHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		ViewCache:            r.viewCache,
	})

	routes.SetupKnowledgeRoutes(api, &routes.KnowledgeRouteConfig{
		KnowledgeHandler:     r.hdlrs.knowledgeHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		ViewCache:            r.viewCache,
	})

	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:          r.hdlrs.userHandler,
		ProfileHandler:       r.hdlrs.profileHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		ViewCache:            r.viewCache,
	})

	routes.SetupNotificationRoutes(api, &routes.NotificationRouteConfig{
		NotificationHandler: r.hdlrs.notificationHandler,
		AuthMiddleware:      r.authMiddleware,
		ViewCache:           r.viewCache,
	})

	routes.SetupDashboardRoutes(api, &routes.DashboardRouteConfig{
		DashboardHandler:     r.hdlrs.dashboardHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		ViewCache:            r.viewCache,
	})
}

func (r *Router) loginRateLimit() gin.HandlerFunc {
	policy := ratelimit.Policy{
		Requests: r.cfg.Auth.RateLimit.Requests,
		Window:   time.Duration(r.cfg.Auth.RateLimit.WindowSeconds) * time.Second,
	}
	return middleware.RateLimit(r.rateLimiter, "auth", policy, r.log)
}

// publicPath returns the path component of the storage URL prefix.
func publicPath(publicURL string) string {
	p := publicURL
	if u, err := url.Parse(publicURL); err == nil && u.Host != "" {
		p = u.Path
	}
	p = "/" + strings.Trim(p, "/")
	if p == "/" {
		return "/uploads"
	}
	return p
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// Shutdown releases the Redis connection.
func (r *Router) Shutdown() {
	if r.redis != nil {
		if err := r.redis.Close(); err != nil {
			r.log.Errorw("failed to close redis client", "error", err)
		}
	}
}
