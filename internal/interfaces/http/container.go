package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	apppermission "github.com/deskhub/deskhub/internal/application/permission"
	"github.com/deskhub/deskhub/internal/infrastructure/auth"
	"github.com/deskhub/deskhub/internal/infrastructure/cache"
	"github.com/deskhub/deskhub/internal/infrastructure/config"
	infrapermission "github.com/deskhub/deskhub/internal/infrastructure/permission"
	"github.com/deskhub/deskhub/internal/infrastructure/ratelimit"
	"github.com/deskhub/deskhub/internal/interfaces/http/middleware"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers. It is responsible for wiring everything together and providing a
// Shutdown() method for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Shared services
	svcs *services

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware

	// Cross-cutting infrastructure
	jwtSvc      *auth.JWTService
	enforcer    *infrapermission.Enforcer
	permissions *apppermission.Service
	viewCache   *cache.ViewCache
	rateLimiter ratelimit.RateLimiter
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Permissions, Basic Services
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Use cases per bounded context
	c.initUseCases()

	// Section 3: Handlers and middlewares
	c.initHandlers()

	return c, nil
}

// Permissions exposes the role checker for callers outside HTTP, such as the
// seed command.
func (c *Container) Permissions() *apppermission.Service {
	return c.permissions
}
