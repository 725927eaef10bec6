package asset

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/deskhub/deskhub/internal/application/asset/dto"
	"github.com/deskhub/deskhub/internal/application/asset/usecases"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
	"github.com/deskhub/deskhub/internal/shared/utils"
)

type AssetHandler struct {
	createAssetUC usecases.CreateAssetExecutor
	updateAssetUC usecases.UpdateAssetExecutor
	deleteAssetUC usecases.DeleteAssetExecutor
	assignAssetUC usecases.AssignAssetExecutor
	queryUC       usecases.AssetQueryExecutor
	logger        logger.Interface
}

func NewAssetHandler(
	createAssetUC usecases.CreateAssetExecutor,
	updateAssetUC usecases.UpdateAssetExecutor,
	deleteAssetUC usecases.DeleteAssetExecutor,
	assignAssetUC usecases.AssignAssetExecutor,
	queryUC usecases.AssetQueryExecutor,
	logger logger.Interface,
) *AssetHandler {
	return &AssetHandler{
		createAssetUC: createAssetUC,
		updateAssetUC: updateAssetUC,
		deleteAssetUC: deleteAssetUC,
		assignAssetUC: assignAssetUC,
		queryUC:       queryUC,
		logger:        logger,
	}
}

// ListAssets handles GET /assets
func (h *AssetHandler) ListAssets(c *gin.Context) {
	q := utils.ParseListQuery(c)
	assigned := strings.ToLower(strings.TrimSpace(c.Query("assigned")))
	if assigned != "" && assigned != "yes" && assigned != "no" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("assigned must be yes or no"))
		return
	}

	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.queryUC.List(c.Request.Context(), usecases.ListAssetsQuery{
		Principal: principal,
		Search:    q.Search,
		Type:      strings.TrimSpace(c.Query("type")),
		Assigned:  assigned,
		SortBy:    q.Sort,
		Page:      q.Page,
		PageSize:  q.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := result.Assets
	if items == nil {
		items = []*dto.AssetDTO{}
	}
	utils.ListSuccessResponse(c, items, result.TotalCount, q.Page, q.PageSize)
}

// ListMyAssets handles GET /assets/mine
func (h *AssetHandler) ListMyAssets(c *gin.Context) {
	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.queryUC.ListMine(c.Request.Context(), principal)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result == nil {
		result = []*dto.AssetDTO{}
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetAsset handles GET /assets/:id
func (h *AssetHandler) GetAsset(c *gin.Context) {
	assetID, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.queryUC.Get(c.Request.Context(), principal, assetID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetAssetHistory handles GET /assets/:id/history
func (h *AssetHandler) GetAssetHistory(c *gin.Context) {
	assetID, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.queryUC.History(c.Request.Context(), principal, assetID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result == nil {
		result = []*dto.HistoryDTO{}
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateAsset handles POST /assets
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create asset", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.createAssetUC.Execute(c.Request.Context(), usecases.CreateAssetCommand{
		Principal:  principal,
		AssetInput: req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Asset created successfully")
}

// UpdateAsset handles PUT /assets/:id
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	assetID, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.updateAssetUC.Execute(c.Request.Context(), usecases.UpdateAssetCommand{
		Principal:  principal,
		AssetID:    assetID,
		AssetInput: req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Asset updated successfully", result)
}

// DeleteAsset handles DELETE /assets/:id
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	assetID, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := authorization.PrincipalFromContext(c)
	if err := h.deleteAssetUC.Execute(c.Request.Context(), usecases.DeleteAssetCommand{
		Principal: principal,
		AssetID:   assetID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Asset deleted successfully", nil)
}

// AssignAsset handles POST /assets/:id/assign
func (h *AssetHandler) AssignAsset(c *gin.Context) {
	assetID, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.assignAssetUC.Execute(c.Request.Context(), usecases.AssignAssetCommand{
		Principal: principal,
		AssetID:   assetID,
		UserID:    req.UserID,
		Notes:     req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Asset assigned successfully", result)
}

// UnassignAsset handles POST /assets/:id/unassign
func (h *AssetHandler) UnassignAsset(c *gin.Context) {
	assetID, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.assignAssetUC.Unassign(c.Request.Context(), usecases.UnassignAssetCommand{
		Principal: principal,
		AssetID:   assetID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Asset unassigned successfully", result)
}
