package mappers

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/deskhub/deskhub/internal/domain/asset"
	"github.com/deskhub/deskhub/internal/infrastructure/persistence/models"
)

type AssetMapper interface {
	ToModel(a *asset.Asset) *models.AssetModel
	ToDomain(model *models.AssetModel) (*asset.Asset, error)
	ToDomainList(models []models.AssetModel) ([]*asset.Asset, error)
	HistoryToModel(h *asset.AssignmentHistory) *models.AssetHistoryModel
	HistoryToDomain(model *models.AssetHistoryModel) *asset.AssignmentHistory
}

type AssetMapperImpl struct{}

func NewAssetMapper() AssetMapper {
	return &AssetMapperImpl{}
}

func (m *AssetMapperImpl) ToModel(a *asset.Asset) *models.AssetModel {
	d := a.Details()
	return &models.AssetModel{
		ID:                 a.ID(),
		AssetTag:           a.Tag(),
		AssetType:          a.Type(),
		Manufacturer:       d.Manufacturer,
		Model:              d.Model,
		SerialNumber:       d.SerialNumber,
		PurchaseDate:       toDate(d.PurchaseDate),
		WarrantyExpiryDate: toDate(d.WarrantyExpiryDate),
		CurrentUserID:      a.CurrentUserID(),
		CreatedAt:          a.CreatedAt(),
		UpdatedAt:          a.UpdatedAt(),
	}
}

func (m *AssetMapperImpl) ToDomain(model *models.AssetModel) (*asset.Asset, error) {
	if model == nil {
		return nil, nil
	}
	a, err := asset.ReconstructAsset(
		model.ID,
		model.AssetTag,
		model.AssetType,
		asset.Details{
			Manufacturer:       model.Manufacturer,
			Model:              model.Model,
			SerialNumber:       model.SerialNumber,
			PurchaseDate:       fromDate(model.PurchaseDate),
			WarrantyExpiryDate: fromDate(model.WarrantyExpiryDate),
		},
		model.CurrentUserID,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct asset %d: %w", model.ID, err)
	}
	return a, nil
}

func (m *AssetMapperImpl) ToDomainList(rows []models.AssetModel) ([]*asset.Asset, error) {
	out := make([]*asset.Asset, 0, len(rows))
	for i := range rows {
		a, err := m.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *AssetMapperImpl) HistoryToModel(h *asset.AssignmentHistory) *models.AssetHistoryModel {
	return &models.AssetHistoryModel{
		ID:           h.ID(),
		AssetID:      h.AssetID(),
		UserID:       h.UserID(),
		AssignedAt:   h.AssignedAt(),
		UnassignedAt: h.UnassignedAt(),
		Notes:        h.Notes(),
	}
}

func (m *AssetMapperImpl) HistoryToDomain(model *models.AssetHistoryModel) *asset.AssignmentHistory {
	return asset.ReconstructAssignmentHistory(
		model.ID, model.AssetID, model.UserID, model.AssignedAt, model.UnassignedAt, model.Notes,
	)
}

func toDate(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
	return &d
}

func fromDate(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d).UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &day
}
