package asset

import (
	"context"
	"time"
)

type AssetRepository interface {
	Create(ctx context.Context, asset *Asset) error
	Update(ctx context.Context, asset *Asset) error
	// Delete removes the asset and its history.
	Delete(ctx context.Context, assetID uint) error
	GetByID(ctx context.Context, assetID uint) (*Asset, error)
	List(ctx context.Context, filter AssetFilter) ([]*Asset, int64, error)
	ListByHolder(ctx context.Context, userID uint) ([]*Asset, error)
	Count(ctx context.Context) (int64, error)
}

// AssetFilter narrows ListAssets. Assigned nil means both.
type AssetFilter struct {
	Search   string
	Type     string
	Assigned *bool
	SortBy   string
	Page     int
	PageSize int
}

type HistoryRepository interface {
	Create(ctx context.Context, entry *AssignmentHistory) error
	// CloseOpen stamps unassignedAt on the asset's open row, if any, and
	// returns the number of rows closed.
	CloseOpen(ctx context.Context, assetID uint, at time.Time) (int64, error)
	// ListByAsset returns rows newest first.
	ListByAsset(ctx context.Context, assetID uint) ([]*AssignmentHistory, error)
}
