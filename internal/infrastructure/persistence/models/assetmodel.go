package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/deskhub/deskhub/internal/shared/constants"
)

type AssetModel struct {
	ID                 uint   `gorm:"primaryKey"`
	AssetTag           string `gorm:"size:100;not null;uniqueIndex"`
	AssetType          string `gorm:"size:100;not null;index"`
	Manufacturer       string `gorm:"size:100"`
	Model              string `gorm:"size:100"`
	SerialNumber       string `gorm:"size:100"`
	PurchaseDate       *datatypes.Date
	WarrantyExpiryDate *datatypes.Date
	CurrentUserID      *uint `gorm:"index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (AssetModel) TableName() string {
	return constants.TableAssets
}

// AssetHistoryModel rows are only appended and closed, never rewritten.
type AssetHistoryModel struct {
	ID           uint      `gorm:"primaryKey"`
	AssetID      uint      `gorm:"not null;index"`
	UserID       uint      `gorm:"not null;index"`
	AssignedAt   time.Time `gorm:"not null"`
	UnassignedAt *time.Time
	Notes        string `gorm:"type:text"`
}

func (AssetHistoryModel) TableName() string {
	return constants.TableAssetHistory
}
