package knowledge

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deskhub/deskhub/internal/application/knowledge/dto"
	"github.com/deskhub/deskhub/internal/application/knowledge/usecases"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/logger"
	"github.com/deskhub/deskhub/internal/shared/utils"
)

// KnowledgeHandler serves the knowledge base: category browsing, article
// reading and article authoring.
type KnowledgeHandler struct {
	browseUC usecases.BrowseExecutor
	createUC usecases.CreateArticleExecutor
	updateUC usecases.UpdateArticleExecutor
	deleteUC usecases.DeleteArticleExecutor
	logger   logger.Interface
}

func NewKnowledgeHandler(
	browseUC usecases.BrowseExecutor,
	createUC usecases.CreateArticleExecutor,
	updateUC usecases.UpdateArticleExecutor,
	deleteUC usecases.DeleteArticleExecutor,
	logger logger.Interface,
) *KnowledgeHandler {
	return &KnowledgeHandler{
		browseUC: browseUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// ListCategories handles GET /kb/categories
func (h *KnowledgeHandler) ListCategories(c *gin.Context) {
	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.browseUC.ListCategories(c.Request.Context(), principal)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result == nil {
		result = []*dto.CategoryDTO{}
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetCategory handles GET /kb/categories/:slug
func (h *KnowledgeHandler) GetCategory(c *gin.Context) {
	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.browseUC.GetCategory(c.Request.Context(), principal, c.Param("slug"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListRecentArticles handles GET /kb/articles?q=
func (h *KnowledgeHandler) ListRecentArticles(c *gin.Context) {
	q := utils.ParseListQuery(c)
	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.browseUC.ListRecent(c.Request.Context(), principal, q.Search)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result == nil {
		result = []*dto.ArticleDTO{}
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetArticle handles GET /kb/categories/:slug/articles/:articleSlug
func (h *KnowledgeHandler) GetArticle(c *gin.Context) {
	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.browseUC.GetArticle(c.Request.Context(), principal, c.Param("slug"), c.Param("articleSlug"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateArticle handles POST /kb/articles
func (h *KnowledgeHandler) CreateArticle(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create article", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateArticleCommand{
		Principal:    principal,
		ArticleInput: req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Article created successfully")
}

// UpdateArticle handles PUT /kb/articles/:id
func (h *KnowledgeHandler) UpdateArticle(c *gin.Context) {
	articleID, err := utils.ParseIDParam(c, "id", "article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateArticleCommand{
		Principal:    principal,
		ArticleID:    articleID,
		ArticleInput: req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article updated successfully", result)
}

// DeleteArticle handles DELETE /kb/articles/:id
func (h *KnowledgeHandler) DeleteArticle(c *gin.Context) {
	articleID, err := utils.ParseIDParam(c, "id", "article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := authorization.PrincipalFromContext(c)
	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteArticleCommand{
		Principal: principal,
		ArticleID: articleID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article deleted successfully", nil)
}
