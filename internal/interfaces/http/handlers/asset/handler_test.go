package asset

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskhub/deskhub/internal/application/asset/dto"
	"github.com/deskhub/deskhub/internal/application/asset/usecases"
	"github.com/deskhub/deskhub/internal/interfaces/http/handlers/testutil"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

type mockCreateAssetUC struct {
	got    usecases.CreateAssetCommand
	result *dto.AssetDTO
	err    error
}

func (m *mockCreateAssetUC) Execute(_ context.Context, cmd usecases.CreateAssetCommand) (*dto.AssetDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockUpdateAssetUC struct {
	got    usecases.UpdateAssetCommand
	result *dto.AssetDTO
	err    error
}

func (m *mockUpdateAssetUC) Execute(_ context.Context, cmd usecases.UpdateAssetCommand) (*dto.AssetDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockDeleteAssetUC struct {
	err error
}

func (m *mockDeleteAssetUC) Execute(_ context.Context, _ usecases.DeleteAssetCommand) error {
	return m.err
}

type mockAssignAssetUC struct {
	assigned   usecases.AssignAssetCommand
	unassigned usecases.UnassignAssetCommand
	result     *dto.AssetDTO
	err        error
}

func (m *mockAssignAssetUC) Execute(_ context.Context, cmd usecases.AssignAssetCommand) (*dto.AssetDTO, error) {
	m.assigned = cmd
	return m.result, m.err
}

func (m *mockAssignAssetUC) Unassign(_ context.Context, cmd usecases.UnassignAssetCommand) (*dto.AssetDTO, error) {
	m.unassigned = cmd
	return m.result, m.err
}

type mockAssetQueryUC struct {
	listQuery usecases.ListAssetsQuery
	list      *usecases.ListAssetsResult
	mine      []*dto.AssetDTO
	asset     *dto.AssetDTO
	history   []*dto.HistoryDTO
	err       error
}

func (m *mockAssetQueryUC) List(_ context.Context, q usecases.ListAssetsQuery) (*usecases.ListAssetsResult, error) {
	m.listQuery = q
	return m.list, m.err
}

func (m *mockAssetQueryUC) ListMine(_ context.Context, _ authorization.Principal) ([]*dto.AssetDTO, error) {
	return m.mine, m.err
}

func (m *mockAssetQueryUC) Get(_ context.Context, _ authorization.Principal, _ uint) (*dto.AssetDTO, error) {
	return m.asset, m.err
}

func (m *mockAssetQueryUC) History(_ context.Context, _ authorization.Principal, _ uint) ([]*dto.HistoryDTO, error) {
	return m.history, m.err
}

type testDeps struct {
	create usecases.CreateAssetExecutor
	update usecases.UpdateAssetExecutor
	delete usecases.DeleteAssetExecutor
	assign usecases.AssignAssetExecutor
	query  usecases.AssetQueryExecutor
}

func newTestAssetHandler(deps testDeps) *AssetHandler {
	return NewAssetHandler(deps.create, deps.update, deps.delete, deps.assign, deps.query, logger.NewNop())
}

func TestAssetHandler_ListAssets_PassesFilters(t *testing.T) {
	query := &mockAssetQueryUC{list: &usecases.ListAssetsResult{
		Assets:     []*dto.AssetDTO{{ID: 1, AssetTag: "LT-001", AssetType: "Laptop"}},
		TotalCount: 1,
	}}
	handler := newTestAssetHandler(testDeps{query: query})

	c, w := testutil.NewTestContext(http.MethodGet, "/assets", nil)
	testutil.SetPrincipal(c, 5, authorization.RoleITStaff)
	testutil.SetQueryParams(c, map[string]string{"q": "lt", "type": "Laptop", "assigned": "No", "sort": "tag"})

	handler.ListAssets(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "lt", query.listQuery.Search)
	assert.Equal(t, "Laptop", query.listQuery.Type)
	assert.Equal(t, "no", query.listQuery.Assigned)
	assert.Equal(t, "tag", query.listQuery.SortBy)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data testutil.ListData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, int64(1), data.Total)
}

func TestAssetHandler_ListAssets_InvalidAssignedFilter(t *testing.T) {
	query := &mockAssetQueryUC{}
	handler := newTestAssetHandler(testDeps{query: query})

	c, w := testutil.NewTestContext(http.MethodGet, "/assets", nil)
	testutil.SetPrincipal(c, 5, authorization.RoleITStaff)
	testutil.SetQueryParams(c, map[string]string{"assigned": "maybe"})

	handler.ListAssets(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssetHandler_ListMyAssets_EmptyIsArray(t *testing.T) {
	handler := newTestAssetHandler(testDeps{query: &mockAssetQueryUC{}})

	c, w := testutil.NewTestContext(http.MethodGet, "/assets/mine", nil)
	testutil.SetPrincipal(c, 3, authorization.RoleEmployee)

	handler.ListMyAssets(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestAssetHandler_CreateAsset(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		create := &mockCreateAssetUC{result: &dto.AssetDTO{ID: 7, AssetTag: "LT-007"}}
		handler := newTestAssetHandler(testDeps{create: create})

		c, w := testutil.NewTestContext(http.MethodPost, "/assets", AssetRequest{
			AssetTag:     "LT-007",
			AssetType:    "Laptop",
			PurchaseDate: "2024-03-01",
		})
		testutil.SetPrincipal(c, 5, authorization.RoleITStaff)

		handler.CreateAsset(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "LT-007", create.got.AssetTag)
		assert.Equal(t, "2024-03-01", create.got.PurchaseDate)
	})

	t.Run("bad date", func(t *testing.T) {
		create := &mockCreateAssetUC{}
		handler := newTestAssetHandler(testDeps{create: create})

		c, w := testutil.NewTestContext(http.MethodPost, "/assets", AssetRequest{
			AssetTag:     "LT-008",
			AssetType:    "Laptop",
			PurchaseDate: "03/01/2024",
		})
		testutil.SetPrincipal(c, 5, authorization.RoleITStaff)

		handler.CreateAsset(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, create.got.AssetTag)
	})

	t.Run("duplicate tag", func(t *testing.T) {
		create := &mockCreateAssetUC{err: errors.NewConflictError("An asset with this tag already exists.")}
		handler := newTestAssetHandler(testDeps{create: create})

		c, w := testutil.NewTestContext(http.MethodPost, "/assets", AssetRequest{AssetTag: "LT-001", AssetType: "Laptop"})
		testutil.SetPrincipal(c, 5, authorization.RoleITStaff)

		handler.CreateAsset(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAssetHandler_UpdateAsset_UsesPathID(t *testing.T) {
	update := &mockUpdateAssetUC{result: &dto.AssetDTO{ID: 4}}
	handler := newTestAssetHandler(testDeps{update: update})

	c, w := testutil.NewTestContext(http.MethodPut, "/assets/4", AssetRequest{AssetType: "Monitor"})
	testutil.SetPrincipal(c, 5, authorization.RoleITStaff)
	testutil.SetURLParam(c, "id", "4")

	handler.UpdateAsset(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), update.got.AssetID)
	assert.Equal(t, "Monitor", update.got.AssetType)
}

func TestAssetHandler_AssignAndUnassign(t *testing.T) {
	assign := &mockAssignAssetUC{result: &dto.AssetDTO{ID: 2}}
	handler := newTestAssetHandler(testDeps{assign: assign})

	c, w := testutil.NewTestContext(http.MethodPost, "/assets/2/assign", AssignAssetRequest{UserID: 3, Notes: "onboarding"})
	testutil.SetPrincipal(c, 5, authorization.RoleITStaff)
	testutil.SetURLParam(c, "id", "2")
	handler.AssignAsset(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(2), assign.assigned.AssetID)
	assert.Equal(t, uint(3), assign.assigned.UserID)
	assert.Equal(t, "onboarding", assign.assigned.Notes)

	c, w = testutil.NewTestContext(http.MethodPost, "/assets/2/unassign", nil)
	testutil.SetPrincipal(c, 5, authorization.RoleITStaff)
	testutil.SetURLParam(c, "id", "2")
	handler.UnassignAsset(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(2), assign.unassigned.AssetID)
}

func TestAssetHandler_AssignAsset_MissingUser(t *testing.T) {
	handler := newTestAssetHandler(testDeps{assign: &mockAssignAssetUC{}})

	c, w := testutil.NewTestContext(http.MethodPost, "/assets/2/assign", map[string]string{"notes": "x"})
	testutil.SetPrincipal(c, 5, authorization.RoleITStaff)
	testutil.SetURLParam(c, "id", "2")
	handler.AssignAsset(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssetHandler_GetAssetHistory(t *testing.T) {
	query := &mockAssetQueryUC{history: []*dto.HistoryDTO{{ID: 1, AssetID: 2, UserID: 3}}}
	handler := newTestAssetHandler(testDeps{query: query})

	c, w := testutil.NewTestContext(http.MethodGet, "/assets/2/history", nil)
	testutil.SetPrincipal(c, 5, authorization.RoleITStaff)
	testutil.SetURLParam(c, "id", "2")
	handler.GetAssetHistory(c)

	assert.Equal(t, http.StatusOK, w.Code)

	handler = newTestAssetHandler(testDeps{query: &mockAssetQueryUC{err: errors.NewForbiddenError("Unauthorized: You do not have permission to view asset history.")}})
	c, w = testutil.NewTestContext(http.MethodGet, "/assets/2/history", nil)
	testutil.SetPrincipal(c, 3, authorization.RoleEmployee)
	testutil.SetURLParam(c, "id", "2")
	handler.GetAssetHistory(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAssetHandler_DeleteAsset_NotFound(t *testing.T) {
	handler := newTestAssetHandler(testDeps{delete: &mockDeleteAssetUC{err: errors.NewNotFoundError("asset not found")}})

	c, w := testutil.NewTestContext(http.MethodDelete, "/assets/9", nil)
	testutil.SetPrincipal(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "9")
	handler.DeleteAsset(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
