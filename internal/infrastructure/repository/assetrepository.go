package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/deskhub/deskhub/internal/domain/asset"
	"github.com/deskhub/deskhub/internal/infrastructure/persistence/mappers"
	"github.com/deskhub/deskhub/internal/infrastructure/persistence/models"
	"github.com/deskhub/deskhub/internal/shared/db"
	apperrors "github.com/deskhub/deskhub/internal/shared/errors"
)

var assetOrderBy = map[string]string{
	"newest": "created_at DESC, id DESC",
	"oldest": "created_at ASC, id ASC",
	"tag":    "asset_tag ASC",
	"type":   "asset_type ASC, asset_tag ASC",
}

type AssetRepository struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{
		db:     db,
		mapper: mappers.NewAssetMapper(),
	}
}

func (r *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AssetModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"asset_tag":            model.AssetTag,
			"asset_type":           model.AssetType,
			"manufacturer":         model.Manufacturer,
			"model":                model.Model,
			"serial_number":        model.SerialNumber,
			"purchase_date":        model.PurchaseDate,
			"warranty_expiry_date": model.WarrantyExpiryDate,
			"current_user_id":      model.CurrentUserID,
			"updated_at":           model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update asset: %w", result.Error)
	}
	return nil
}

// Delete removes the asset together with its assignment history.
func (r *AssetRepository) Delete(ctx context.Context, assetID uint) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("asset_id = ?", assetID).Delete(&models.AssetHistoryModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete asset history: %w", err)
		}
		result := tx.Delete(&models.AssetModel{}, assetID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete asset: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("asset not found")
		}
		return nil
	})
}

func (r *AssetRepository) GetByID(ctx context.Context, assetID uint) (*asset.Asset, error) {
	var model models.AssetModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AssetRepository) List(ctx context.Context, filter asset.AssetFilter) ([]*asset.Asset, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AssetModel{})

	if t := strings.TrimSpace(filter.Type); t != "" {
		query = query.Where("asset_type = ?", t)
	}
	if filter.Assigned != nil {
		if *filter.Assigned {
			query = query.Where("current_user_id IS NOT NULL")
		} else {
			query = query.Where("current_user_id IS NULL")
		}
	}
	query = query.Scopes(db.SearchAny(filter.Search, "asset_tag", "manufacturer", "model", "serial_number"))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assets: %w", err)
	}

	orderBy, ok := assetOrderBy[filter.SortBy]
	if !ok {
		orderBy = assetOrderBy["newest"]
	}

	var rows []models.AssetModel
	if err := query.
		Order(orderBy).
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list assets: %w", err)
	}

	assets, err := r.mapper.ToDomainList(rows)
	if err != nil {
		return nil, 0, err
	}
	return assets, total, nil
}

func (r *AssetRepository) ListByHolder(ctx context.Context, userID uint) ([]*asset.Asset, error) {
	var rows []models.AssetModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("current_user_id = ?", userID).
		Order("asset_tag ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assets by holder: %w", err)
	}
	return r.mapper.ToDomainList(rows)
}

func (r *AssetRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.AssetModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count assets: %w", err)
	}
	return count, nil
}

// AssetHistoryRepository appends and closes assignment rows.
type AssetHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
}

func NewAssetHistoryRepository(db *gorm.DB) *AssetHistoryRepository {
	return &AssetHistoryRepository{
		db:     db,
		mapper: mappers.NewAssetMapper(),
	}
}

func (r *AssetHistoryRepository) Create(ctx context.Context, entry *asset.AssignmentHistory) error {
	model := r.mapper.HistoryToModel(entry)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create asset history: %w", err)
	}

	entry.SetID(model.ID)
	return nil
}

func (r *AssetHistoryRepository) CloseOpen(ctx context.Context, assetID uint, at time.Time) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AssetHistoryModel{}).
		Where("asset_id = ? AND unassigned_at IS NULL", assetID).
		Update("unassigned_at", at.UTC())
	if result.Error != nil {
		return 0, fmt.Errorf("failed to close asset history: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *AssetHistoryRepository) ListByAsset(ctx context.Context, assetID uint) ([]*asset.AssignmentHistory, error) {
	var rows []models.AssetHistoryModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("asset_id = ?", assetID).
		Order("assigned_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list asset history: %w", err)
	}

	out := make([]*asset.AssignmentHistory, 0, len(rows))
	for i := range rows {
		out = append(out, r.mapper.HistoryToDomain(&rows[i]))
	}
	return out, nil
}
