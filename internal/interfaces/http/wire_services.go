package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	notificationApp "github.com/deskhub/deskhub/internal/application/notification"
	apppermission "github.com/deskhub/deskhub/internal/application/permission"
	"github.com/deskhub/deskhub/internal/application/user/helpers"
	uservo "github.com/deskhub/deskhub/internal/domain/user/valueobjects"
	"github.com/deskhub/deskhub/internal/infrastructure/auth"
	"github.com/deskhub/deskhub/internal/infrastructure/cache"
	"github.com/deskhub/deskhub/internal/infrastructure/config"
	"github.com/deskhub/deskhub/internal/infrastructure/email"
	infrapermission "github.com/deskhub/deskhub/internal/infrastructure/permission"
	"github.com/deskhub/deskhub/internal/infrastructure/ratelimit"
	"github.com/deskhub/deskhub/internal/infrastructure/storage"
	"github.com/deskhub/deskhub/internal/interfaces/http/middleware"
	shareddb "github.com/deskhub/deskhub/internal/shared/db"
	"github.com/deskhub/deskhub/internal/shared/logger"
	"github.com/deskhub/deskhub/internal/shared/services/markdown"
)

const (
	redisPingTimeout   = 3 * time.Second
	rateLimitKeyPrefix = "deskhub:"
)

// services holds the shared collaborators handed to use cases.
type services struct {
	hasher        *auth.BcryptPasswordHasher
	authHelper    *helpers.AuthHelper
	txManager     *shareddb.TransactionManager
	markdown      markdown.MarkdownService
	objectStore   *storage.LocalStore
	emailService  *email.SMTPEmailService
	notifications *notificationApp.ServiceDDD
}

// ============================================================
// Section 1: Infrastructure - Redis, Repositories, Basic Services
// ============================================================

// initInfrastructure initializes Redis, all repositories, the permission
// enforcer, auth services and the notification service.
func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log
	db := c.db

	// Redis is optional: without it the view cache and rate limiter are off.
	c.redis = initRedis(cfg, log)

	// Initialize all repositories
	c.repos = newRepositories(db, log)

	// Role grants live in the database through the casbin gorm adapter.
	enforcer, err := infrapermission.NewEnforcer(db, log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := infrapermission.SeedDefaultPolicies(enforcer, log); err != nil {
		return fmt.Errorf("failed to seed default permissions: %w", err)
	}
	c.enforcer = enforcer
	c.permissions = apppermission.NewService(enforcer, log)

	// View cache and rate limiter
	var cacheClient *redis.Client
	if cfg.Cache.Enabled {
		cacheClient = c.redis
	}
	c.viewCache = cache.NewViewCache(cacheClient, cfg.Cache.KeyPrefix, cfg.Cache.TTL(), log)
	if c.redis != nil {
		c.rateLimiter = ratelimit.NewRedisRateLimiter(c.redis, rateLimitKeyPrefix)
	}

	// Initialize auth services
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessTTL())

	store, err := storage.NewLocalStore(cfg.Storage.Root, cfg.Storage.PublicURL, log)
	if err != nil {
		return fmt.Errorf("failed to open object store: %w", err)
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	emailService := email.NewSMTPEmailService(email.ConfigFrom(cfg.Email))

	c.svcs = &services{
		hasher:       hasher,
		authHelper:   helpers.NewAuthHelper(c.repos.userRepo, hasher, uservo.NewPasswordPolicy(cfg.Auth.Password.MinLength), log),
		txManager:    shareddb.NewTransactionManager(db),
		markdown:     markdown.NewMarkdownService(),
		objectStore:  store,
		emailService: emailService,
		notifications: notificationApp.NewServiceDDD(
			c.repos.notificationRepo, c.repos.userRepo, emailService, c.viewCache, log,
		),
	}

	// Initialize early middlewares
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.repos.userRepo, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.permissions)

	return nil
}

// initRedis creates and tests the Redis client connection. A failed ping
// returns nil and the server runs without Redis.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	if cfg.Redis.Host == "" {
		log.Infow("redis not configured, view cache and rate limiting disabled")
		return nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("failed to connect to Redis, continuing without it", "addr", cfg.Redis.GetAddr(), "error", err)
		_ = redisClient.Close()
		return nil
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient
}
