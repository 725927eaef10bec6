package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/deskhub/deskhub/internal/interfaces/http/handlers"
	"github.com/deskhub/deskhub/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	// RateLimit guards the credential endpoints. May be nil.
	RateLimit gin.HandlerFunc
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(r gin.IRouter, cfg *AuthRouteConfig) {
	limit := cfg.RateLimit
	if limit == nil {
		limit = func(c *gin.Context) { c.Next() }
	}

	auth := r.Group("/auth")
	{
		auth.POST("/register", limit, cfg.AuthHandler.Register)
		auth.POST("/login", limit, cfg.AuthHandler.Login)
		auth.POST("/logout", cfg.AuthHandler.Logout)
		auth.POST("/forgot-password", limit, cfg.AuthHandler.ForgotPassword)
		auth.POST("/reset-password", limit, cfg.AuthHandler.ResetPassword)

		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.GetCurrentUser)
		auth.PUT("/password", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.ChangePassword)
	}
}
