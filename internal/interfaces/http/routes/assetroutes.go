package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	assethandlers "github.com/deskhub/deskhub/internal/interfaces/http/handlers/asset"
	"github.com/deskhub/deskhub/internal/interfaces/http/middleware"
	"github.com/deskhub/deskhub/internal/shared/constants"
)

type AssetRouteConfig struct {
	AssetHandler         *assethandlers.AssetHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	ViewCache            middleware.ViewStore
}

func SetupAssetRoutes(r gin.IRouter, config *AssetRouteConfig) {
	cached := middleware.CacheView(config.ViewCache, constants.ScopeAssets)
	manage := config.PermissionMiddleware.RequirePermission(vo.ResourceAsset, vo.ActionManage)

	assets := r.Group("/assets")
	assets.Use(config.AuthMiddleware.RequireAuth())
	{
		assets.GET("/mine", cached, config.AssetHandler.ListMyAssets)

		assets.GET("", manage, cached, config.AssetHandler.ListAssets)
		assets.POST("", manage, config.AssetHandler.CreateAsset)

		assets.GET("/:id/history", manage, cached, config.AssetHandler.GetAssetHistory)
		assets.POST("/:id/assign", manage, config.AssetHandler.AssignAsset)
		assets.POST("/:id/unassign", manage, config.AssetHandler.UnassignAsset)

		assets.GET("/:id", manage, cached, config.AssetHandler.GetAsset)
		assets.PUT("/:id", manage, config.AssetHandler.UpdateAsset)
		assets.DELETE("/:id",
			config.PermissionMiddleware.RequirePermission(vo.ResourceAsset, vo.ActionDelete),
			config.AssetHandler.DeleteAsset)
	}
}
