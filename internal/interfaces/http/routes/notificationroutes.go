package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/deskhub/deskhub/internal/interfaces/http/handlers"
	"github.com/deskhub/deskhub/internal/interfaces/http/middleware"
	"github.com/deskhub/deskhub/internal/shared/constants"
)

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	ViewCache           middleware.ViewStore
}

func SetupNotificationRoutes(r gin.IRouter, config *NotificationRouteConfig) {
	cached := middleware.CacheView(config.ViewCache, constants.ScopeNotifications)

	notifications := r.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", cached, config.NotificationHandler.ListNotifications)
		notifications.GET("/unread-count", cached, config.NotificationHandler.GetUnreadCount)
		notifications.POST("/read-all", config.NotificationHandler.MarkAllAsRead)
	}
}
