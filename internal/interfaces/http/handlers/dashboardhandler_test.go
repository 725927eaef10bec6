package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deskhub/deskhub/internal/application/dashboard/dto"
	"github.com/deskhub/deskhub/internal/interfaces/http/handlers/testutil"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

type mockAdminStatsUC struct {
	result *dto.AdminStatsDTO
	err    error
}

func (m *mockAdminStatsUC) Execute(context.Context, authorization.Principal) (*dto.AdminStatsDTO, error) {
	return m.result, m.err
}

type mockMySummaryUC struct {
	result *dto.SummaryDTO
	err    error
}

func (m *mockMySummaryUC) Execute(context.Context, authorization.Principal) (*dto.SummaryDTO, error) {
	return m.result, m.err
}

func TestDashboardHandler_GetAdminStats(t *testing.T) {
	stats := &mockAdminStatsUC{result: &dto.AdminStatsDTO{TotalUsers: 12, AvgResolutionTime: "N/A"}}
	handler := NewDashboardHandler(stats, nil, logger.NewNop())

	c, w := testutil.NewTestContext(http.MethodGet, "/dashboard/stats", nil)
	testutil.SetPrincipal(c, 1, authorization.RoleAdmin)
	handler.GetAdminStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"avg_resolution_time":"N/A"`)

	stats.err = errors.NewForbiddenError("Unauthorized: You do not have permission to view statistics for the dashboard.")
	c, w = testutil.NewTestContext(http.MethodGet, "/dashboard/stats", nil)
	testutil.SetPrincipal(c, 3, authorization.RoleEmployee)
	handler.GetAdminStats(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDashboardHandler_GetMySummary(t *testing.T) {
	summary := &mockMySummaryUC{result: &dto.SummaryDTO{Scope: "created", TotalTickets: 2, AssetsHeld: 1}}
	handler := NewDashboardHandler(nil, summary, logger.NewNop())

	c, w := testutil.NewTestContext(http.MethodGet, "/dashboard/me", nil)
	testutil.SetPrincipal(c, 3, authorization.RoleEmployee)
	handler.GetMySummary(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"scope":"created"`)
	assert.Contains(t, w.Body.String(), `"assets_held":1`)
}
