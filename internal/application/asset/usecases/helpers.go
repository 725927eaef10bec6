package usecases

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/asset/dto"
	"github.com/deskhub/deskhub/internal/domain/asset"
	"github.com/deskhub/deskhub/internal/domain/user"
	"github.com/deskhub/deskhub/internal/shared/constants"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

var invalidatedScopes = []string{constants.ScopeAssets, constants.ScopeDashboard}

// AssetInput carries the editable asset fields. Dates are YYYY-MM-DD.
type AssetInput struct {
	AssetTag           string
	AssetType          string
	Manufacturer       string
	Model              string
	SerialNumber       string
	PurchaseDate       string
	WarrantyExpiryDate string
}

func (in AssetInput) details() (asset.Details, error) {
	purchase, err := dto.ParseDate(in.PurchaseDate)
	if err != nil {
		return asset.Details{}, errors.NewValidationError("purchase date must be YYYY-MM-DD", in.PurchaseDate)
	}
	warranty, err := dto.ParseDate(in.WarrantyExpiryDate)
	if err != nil {
		return asset.Details{}, errors.NewValidationError("warranty expiry date must be YYYY-MM-DD", in.WarrantyExpiryDate)
	}
	return asset.Details{
		Manufacturer:       in.Manufacturer,
		Model:              in.Model,
		SerialNumber:       in.SerialNumber,
		PurchaseDate:       purchase,
		WarrantyExpiryDate: warranty,
	}, nil
}

func loadAsset(ctx context.Context, repo asset.AssetRepository, log logger.Interface, id uint) (*asset.Asset, error) {
	if id == 0 {
		return nil, errors.NewValidationError("asset ID is required")
	}
	a, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to load asset", "error", err, "asset_id", id)
		return nil, errors.NewInternalError("failed to load asset")
	}
	if a == nil {
		return nil, errors.NewNotFoundError("asset not found")
	}
	return a, nil
}

func resolveNames(ctx context.Context, users user.Repository, log logger.Interface, ids []uint) map[uint]string {
	if len(ids) == 0 {
		return nil
	}
	names, err := users.GetNames(ctx, ids)
	if err != nil {
		log.Warnw("failed to resolve user names", "error", err)
		return nil
	}
	return names
}

func toDTO(ctx context.Context, users user.Repository, log logger.Interface, a *asset.Asset) *dto.AssetDTO {
	return dto.ToAssetDTO(a, resolveNames(ctx, users, log, dto.HolderIDs([]*asset.Asset{a})))
}
