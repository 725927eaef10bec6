package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deskhub/deskhub/internal/application/dashboard/usecases"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/logger"
	"github.com/deskhub/deskhub/internal/shared/utils"
)

type DashboardHandler struct {
	adminStatsUC usecases.AdminStatsExecutor
	mySummaryUC  usecases.MySummaryExecutor
	logger       logger.Interface
}

func NewDashboardHandler(
	adminStatsUC usecases.AdminStatsExecutor,
	mySummaryUC usecases.MySummaryExecutor,
	logger logger.Interface,
) *DashboardHandler {
	return &DashboardHandler{
		adminStatsUC: adminStatsUC,
		mySummaryUC:  mySummaryUC,
		logger:       logger,
	}
}

// GetAdminStats handles GET /dashboard/stats
func (h *DashboardHandler) GetAdminStats(c *gin.Context) {
	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.adminStatsUC.Execute(c.Request.Context(), principal)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetMySummary handles GET /dashboard/me
func (h *DashboardHandler) GetMySummary(c *gin.Context) {
	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.mySummaryUC.Execute(c.Request.Context(), principal)
	if err != nil {
		h.logger.Errorw("failed to get dashboard summary", "user_id", principal.UserID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
