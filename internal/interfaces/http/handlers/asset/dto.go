package asset

import (
	"github.com/deskhub/deskhub/internal/application/asset/usecases"
)

// AssetRequest is shared by create and update. AssetTag is ignored on
// update since tags are immutable once issued.
type AssetRequest struct {
	AssetTag           string `json:"asset_tag" binding:"omitempty,max=64"`
	AssetType          string `json:"asset_type" binding:"required,max=64"`
	Manufacturer       string `json:"manufacturer" binding:"max=128"`
	Model              string `json:"model" binding:"max=128"`
	SerialNumber       string `json:"serial_number" binding:"max=128"`
	PurchaseDate       string `json:"purchase_date" binding:"omitempty,datetime=2006-01-02"`
	WarrantyExpiryDate string `json:"warranty_expiry_date" binding:"omitempty,datetime=2006-01-02"`
}

func (r *AssetRequest) toInput() usecases.AssetInput {
	return usecases.AssetInput{
		AssetTag:           r.AssetTag,
		AssetType:          r.AssetType,
		Manufacturer:       r.Manufacturer,
		Model:              r.Model,
		SerialNumber:       r.SerialNumber,
		PurchaseDate:       r.PurchaseDate,
		WarrantyExpiryDate: r.WarrantyExpiryDate,
	}
}

type AssignAssetRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Notes  string `json:"notes" binding:"max=1000"`
}
