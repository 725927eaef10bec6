package usecases

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/asset/dto"
	"github.com/deskhub/deskhub/internal/application/common"
	"github.com/deskhub/deskhub/internal/application/permission"
	"github.com/deskhub/deskhub/internal/domain/asset"
	permvo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

const duplicateTagMessage = "An asset with this tag already exists."

type CreateAssetCommand struct {
	Principal authorization.Principal
	AssetInput
}

type CreateAssetExecutor interface {
	Execute(ctx context.Context, cmd CreateAssetCommand) (*dto.AssetDTO, error)
}

type CreateAssetUseCase struct {
	assetRepo   asset.AssetRepository
	permissions permission.Checker
	cache       common.CacheInvalidator
	logger      logger.Interface
}

func NewCreateAssetUseCase(
	assetRepo asset.AssetRepository,
	permissions permission.Checker,
	cache common.CacheInvalidator,
	logger logger.Interface,
) *CreateAssetUseCase {
	return &CreateAssetUseCase{
		assetRepo:   assetRepo,
		permissions: permissions,
		cache:       cache,
		logger:      logger,
	}
}

func (uc *CreateAssetUseCase) Execute(ctx context.Context, cmd CreateAssetCommand) (*dto.AssetDTO, error) {
	uc.logger.Infow("executing create asset use case", "asset_tag", cmd.AssetTag, "actor_id", cmd.Principal.UserID)

	if err := uc.permissions.Require(ctx, cmd.Principal, permvo.ResourceAsset, permvo.ActionManage); err != nil {
		return nil, err
	}

	details, err := cmd.details()
	if err != nil {
		return nil, err
	}
	a, err := asset.NewAsset(cmd.AssetTag, cmd.AssetType, details)
	if err != nil {
		return nil, err
	}

	if err := uc.assetRepo.Create(ctx, a); err != nil {
		if errors.IsDuplicateError(err) || errors.IsConflictError(err) {
			return nil, errors.NewConflictError(duplicateTagMessage, a.Tag())
		}
		uc.logger.Errorw("failed to create asset", "error", err, "asset_tag", a.Tag())
		return nil, errors.NewInternalError("failed to create asset")
	}

	uc.cache.Invalidate(ctx, invalidatedScopes...)

	uc.logger.Infow("asset created successfully", "asset_id", a.ID(), "asset_tag", a.Tag())
	return dto.ToAssetDTO(a, nil), nil
}
