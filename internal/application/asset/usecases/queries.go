package usecases

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/asset/dto"
	"github.com/deskhub/deskhub/internal/application/permission"
	"github.com/deskhub/deskhub/internal/domain/asset"
	permvo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	"github.com/deskhub/deskhub/internal/domain/user"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/constants"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

type ListAssetsQuery struct {
	Principal authorization.Principal
	Search    string
	Type      string
	// Assigned is "yes", "no" or empty for both.
	Assigned string
	SortBy   string
	Page     int
	PageSize int
}

type ListAssetsResult struct {
	Assets     []*dto.AssetDTO `json:"assets"`
	TotalCount int64           `json:"total_count"`
}

type AssetQueryExecutor interface {
	List(ctx context.Context, query ListAssetsQuery) (*ListAssetsResult, error)
	ListMine(ctx context.Context, principal authorization.Principal) ([]*dto.AssetDTO, error)
	Get(ctx context.Context, principal authorization.Principal, assetID uint) (*dto.AssetDTO, error)
	History(ctx context.Context, principal authorization.Principal, assetID uint) ([]*dto.HistoryDTO, error)
}

// AssetQueryUseCase serves the read side of asset tracking.
type AssetQueryUseCase struct {
	assetRepo   asset.AssetRepository
	historyRepo asset.HistoryRepository
	userRepo    user.Repository
	permissions permission.Checker
	logger      logger.Interface
}

func NewAssetQueryUseCase(
	assetRepo asset.AssetRepository,
	historyRepo asset.HistoryRepository,
	userRepo user.Repository,
	permissions permission.Checker,
	logger logger.Interface,
) *AssetQueryUseCase {
	return &AssetQueryUseCase{
		assetRepo:   assetRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		permissions: permissions,
		logger:      logger,
	}
}

func (uc *AssetQueryUseCase) List(ctx context.Context, query ListAssetsQuery) (*ListAssetsResult, error) {
	if err := uc.permissions.Require(ctx, query.Principal, permvo.ResourceAsset, permvo.ActionManage); err != nil {
		return nil, err
	}

	filter := asset.AssetFilter{
		Search:   query.Search,
		Type:     query.Type,
		SortBy:   query.SortBy,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize < 1 || filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.DefaultPageSize
	}
	switch query.Assigned {
	case "":
	case "yes":
		v := true
		filter.Assigned = &v
	case "no":
		v := false
		filter.Assigned = &v
	default:
		return nil, errors.NewValidationError("assigned must be yes or no", query.Assigned)
	}

	assets, total, err := uc.assetRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list assets", "error", err)
		return nil, errors.NewInternalError("failed to list assets")
	}

	names := resolveNames(ctx, uc.userRepo, uc.logger, dto.HolderIDs(assets))
	return &ListAssetsResult{
		Assets:     dto.ToAssetDTOs(assets, names),
		TotalCount: total,
	}, nil
}

func (uc *AssetQueryUseCase) ListMine(ctx context.Context, principal authorization.Principal) ([]*dto.AssetDTO, error) {
	if err := uc.permissions.Require(ctx, principal, permvo.ResourceAsset, permvo.ActionReadOwn); err != nil {
		return nil, err
	}

	assets, err := uc.assetRepo.ListByHolder(ctx, principal.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list held assets", "error", err, "user_id", principal.UserID)
		return nil, errors.NewInternalError("failed to list assets")
	}
	return dto.ToAssetDTOs(assets, nil), nil
}

// Get lets managers read any asset and other users read assets they hold.
func (uc *AssetQueryUseCase) Get(ctx context.Context, principal authorization.Principal, assetID uint) (*dto.AssetDTO, error) {
	if err := uc.permissions.Require(ctx, principal, permvo.ResourceAsset, permvo.ActionReadOwn); err != nil {
		return nil, err
	}

	a, err := loadAsset(ctx, uc.assetRepo, uc.logger, assetID)
	if err != nil {
		return nil, err
	}
	if !a.IsHeldBy(principal.UserID) && !uc.permissions.Allowed(ctx, principal, permvo.ResourceAsset, permvo.ActionManage) {
		return nil, errors.NewNotFoundError("asset not found")
	}
	return toDTO(ctx, uc.userRepo, uc.logger, a), nil
}

func (uc *AssetQueryUseCase) History(ctx context.Context, principal authorization.Principal, assetID uint) ([]*dto.HistoryDTO, error) {
	if err := uc.permissions.Require(ctx, principal, permvo.ResourceAsset, permvo.ActionManage); err != nil {
		return nil, err
	}

	if _, err := loadAsset(ctx, uc.assetRepo, uc.logger, assetID); err != nil {
		return nil, err
	}

	rows, err := uc.historyRepo.ListByAsset(ctx, assetID)
	if err != nil {
		uc.logger.Errorw("failed to list asset history", "error", err, "asset_id", assetID)
		return nil, errors.NewInternalError("failed to load asset history")
	}

	ids := make([]uint, 0, len(rows))
	for _, h := range rows {
		ids = append(ids, h.UserID())
	}
	return dto.ToHistoryDTOs(rows, resolveNames(ctx, uc.userRepo, uc.logger, ids)), nil
}
