package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	"github.com/deskhub/deskhub/internal/interfaces/http/handlers"
	"github.com/deskhub/deskhub/internal/interfaces/http/middleware"
	"github.com/deskhub/deskhub/internal/shared/constants"
)

type DashboardRouteConfig struct {
	DashboardHandler     *handlers.DashboardHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	ViewCache            middleware.ViewStore
}

func SetupDashboardRoutes(r gin.IRouter, config *DashboardRouteConfig) {
	cached := middleware.CacheView(config.ViewCache, constants.ScopeDashboard)

	dashboard := r.Group("/dashboard")
	dashboard.Use(config.AuthMiddleware.RequireAuth())
	{
		dashboard.GET("/me", cached, config.DashboardHandler.GetMySummary)
		dashboard.GET("/stats",
			config.PermissionMiddleware.RequirePermission(vo.ResourceDashboard, vo.ActionStats),
			cached,
			config.DashboardHandler.GetAdminStats)
	}
}
