package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	"github.com/deskhub/deskhub/internal/interfaces/http/handlers"
	"github.com/deskhub/deskhub/internal/interfaces/http/middleware"
	"github.com/deskhub/deskhub/internal/shared/constants"
)

// UserRouteConfig holds dependencies for user and profile routes.
type UserRouteConfig struct {
	UserHandler          *handlers.UserHandler
	ProfileHandler       *handlers.ProfileHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	ViewCache            middleware.ViewStore
}

// SetupUserRoutes configures the admin user directory and the own-profile
// endpoints.
func SetupUserRoutes(r gin.IRouter, config *UserRouteConfig) {
	cached := middleware.CacheView(config.ViewCache, constants.ScopeUsers)
	manage := config.PermissionMiddleware.RequirePermission(vo.ResourceUser, vo.ActionManage)

	users := r.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		// Specific named endpoints (must come BEFORE /:id to avoid conflicts)
		users.GET("/staff",
			config.PermissionMiddleware.RequirePermission(vo.ResourceUser, vo.ActionListStaff),
			cached,
			config.UserHandler.ListStaff)

		users.GET("", manage, cached, config.UserHandler.ListUsers)
		users.POST("", manage, config.UserHandler.CreateUser)
		users.PUT("/:id", manage, config.UserHandler.UpdateUserProfile)
		users.PATCH("/:id/role", manage, config.UserHandler.ChangeUserRole)
		users.PATCH("/:id/active", manage, config.UserHandler.SetUserActive)
	}

	profile := r.Group("/profile")
	profile.Use(config.AuthMiddleware.RequireAuth())
	{
		profile.PUT("", config.ProfileHandler.UpdateProfile)
		profile.POST("/avatar", config.ProfileHandler.UploadAvatar)
	}
}
