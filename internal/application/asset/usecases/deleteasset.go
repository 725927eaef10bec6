package usecases

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/common"
	"github.com/deskhub/deskhub/internal/application/permission"
	"github.com/deskhub/deskhub/internal/domain/asset"
	permvo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

type DeleteAssetCommand struct {
	Principal authorization.Principal
	AssetID   uint
}

type DeleteAssetExecutor interface {
	Execute(ctx context.Context, cmd DeleteAssetCommand) error
}

type DeleteAssetUseCase struct {
	assetRepo   asset.AssetRepository
	permissions permission.Checker
	cache       common.CacheInvalidator
	logger      logger.Interface
}

func NewDeleteAssetUseCase(
	assetRepo asset.AssetRepository,
	permissions permission.Checker,
	cache common.CacheInvalidator,
	logger logger.Interface,
) *DeleteAssetUseCase {
	return &DeleteAssetUseCase{
		assetRepo:   assetRepo,
		permissions: permissions,
		cache:       cache,
		logger:      logger,
	}
}

// Execute removes the asset together with its history rows.
func (uc *DeleteAssetUseCase) Execute(ctx context.Context, cmd DeleteAssetCommand) error {
	uc.logger.Infow("executing delete asset use case", "asset_id", cmd.AssetID, "actor_id", cmd.Principal.UserID)

	if err := uc.permissions.Require(ctx, cmd.Principal, permvo.ResourceAsset, permvo.ActionDelete); err != nil {
		return err
	}

	if _, err := loadAsset(ctx, uc.assetRepo, uc.logger, cmd.AssetID); err != nil {
		return err
	}

	if err := uc.assetRepo.Delete(ctx, cmd.AssetID); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete asset", "error", err, "asset_id", cmd.AssetID)
		return errors.NewInternalError("failed to delete asset")
	}

	uc.cache.Invalidate(ctx, invalidatedScopes...)

	uc.logger.Infow("asset deleted successfully", "asset_id", cmd.AssetID)
	return nil
}
