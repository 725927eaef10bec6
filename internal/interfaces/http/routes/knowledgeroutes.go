package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	kbhandlers "github.com/deskhub/deskhub/internal/interfaces/http/handlers/knowledge"
	"github.com/deskhub/deskhub/internal/interfaces/http/middleware"
	"github.com/deskhub/deskhub/internal/shared/constants"
)

type KnowledgeRouteConfig struct {
	KnowledgeHandler     *kbhandlers.KnowledgeHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	ViewCache            middleware.ViewStore
}

func SetupKnowledgeRoutes(r gin.IRouter, config *KnowledgeRouteConfig) {
	cached := middleware.CacheView(config.ViewCache, constants.ScopeKnowledge)
	perm := config.PermissionMiddleware

	kb := r.Group("/kb")
	kb.Use(config.AuthMiddleware.RequireAuth())
	{
		kb.GET("/categories", cached, config.KnowledgeHandler.ListCategories)
		kb.GET("/categories/:slug", cached, config.KnowledgeHandler.GetCategory)
		kb.GET("/categories/:slug/articles/:articleSlug", cached, config.KnowledgeHandler.GetArticle)

		kb.GET("/articles", cached, config.KnowledgeHandler.ListRecentArticles)
		kb.POST("/articles",
			perm.RequirePermission(vo.ResourceArticle, vo.ActionCreate),
			config.KnowledgeHandler.CreateArticle)
		kb.PUT("/articles/:id",
			perm.RequirePermission(vo.ResourceArticle, vo.ActionUpdate),
			config.KnowledgeHandler.UpdateArticle)
		kb.DELETE("/articles/:id",
			perm.RequirePermission(vo.ResourceArticle, vo.ActionDelete),
			config.KnowledgeHandler.DeleteArticle)
	}
}
