package usecases

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/asset/dto"
	"github.com/deskhub/deskhub/internal/application/common"
	"github.com/deskhub/deskhub/internal/application/permission"
	"github.com/deskhub/deskhub/internal/domain/asset"
	permvo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	"github.com/deskhub/deskhub/internal/domain/user"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

// UpdateAssetCommand edits the descriptive fields. The tag is immutable.
type UpdateAssetCommand struct {
	Principal authorization.Principal
	AssetID   uint
	AssetInput
}

type UpdateAssetExecutor interface {
	Execute(ctx context.Context, cmd UpdateAssetCommand) (*dto.AssetDTO, error)
}

type UpdateAssetUseCase struct {
	assetRepo   asset.AssetRepository
	userRepo    user.Repository
	permissions permission.Checker
	cache       common.CacheInvalidator
	logger      logger.Interface
}

func NewUpdateAssetUseCase(
	assetRepo asset.AssetRepository,
	userRepo user.Repository,
	permissions permission.Checker,
	cache common.CacheInvalidator,
	logger logger.Interface,
) *UpdateAssetUseCase {
	return &UpdateAssetUseCase{
		assetRepo:   assetRepo,
		userRepo:    userRepo,
		permissions: permissions,
		cache:       cache,
		logger:      logger,
	}
}

func (uc *UpdateAssetUseCase) Execute(ctx context.Context, cmd UpdateAssetCommand) (*dto.AssetDTO, error) {
	uc.logger.Infow("executing update asset use case", "asset_id", cmd.AssetID, "actor_id", cmd.Principal.UserID)

	if err := uc.permissions.Require(ctx, cmd.Principal, permvo.ResourceAsset, permvo.ActionManage); err != nil {
		return nil, err
	}

	a, err := loadAsset(ctx, uc.assetRepo, uc.logger, cmd.AssetID)
	if err != nil {
		return nil, err
	}

	details, err := cmd.details()
	if err != nil {
		return nil, err
	}
	if err := a.UpdateDetails(cmd.AssetType, details); err != nil {
		return nil, err
	}

	if err := uc.assetRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to update asset", "error", err, "asset_id", cmd.AssetID)
		return nil, errors.NewInternalError("failed to update asset")
	}

	uc.cache.Invalidate(ctx, invalidatedScopes...)

	uc.logger.Infow("asset updated successfully", "asset_id", a.ID())
	return toDTO(ctx, uc.userRepo, uc.logger, a), nil
}
