package dto

import (
	"time"

	"github.com/deskhub/deskhub/internal/domain/asset"
)

// DateLayout is the calendar date format used for purchase and warranty dates.
const DateLayout = "2006-01-02"

type AssetDTO struct {
	ID                 uint      `json:"id"`
	AssetTag           string    `json:"asset_tag"`
	AssetType          string    `json:"asset_type"`
	Manufacturer       string    `json:"manufacturer,omitempty"`
	Model              string    `json:"model,omitempty"`
	SerialNumber       string    `json:"serial_number,omitempty"`
	PurchaseDate       *string   `json:"purchase_date"`
	WarrantyExpiryDate *string   `json:"warranty_expiry_date"`
	CurrentUserID      *uint     `json:"current_user_id"`
	CurrentUserName    string    `json:"current_user_name,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type HistoryDTO struct {
	ID           uint       `json:"id"`
	AssetID      uint       `json:"asset_id"`
	UserID       uint       `json:"user_id"`
	UserName     string     `json:"user_name,omitempty"`
	AssignedAt   time.Time  `json:"assigned_at"`
	UnassignedAt *time.Time `json:"unassigned_at"`
	Notes        string     `json:"notes,omitempty"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// ParseDate reads an optional YYYY-MM-DD value; empty input yields nil.
func ParseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func ToAssetDTO(a *asset.Asset, names map[uint]string) *AssetDTO {
	if a == nil {
		return nil
	}
	d := a.Details()
	out := &AssetDTO{
		ID:                 a.ID(),
		AssetTag:           a.Tag(),
		AssetType:          a.Type(),
		Manufacturer:       d.Manufacturer,
		Model:              d.Model,
		SerialNumber:       d.SerialNumber,
		PurchaseDate:       formatDate(d.PurchaseDate),
		WarrantyExpiryDate: formatDate(d.WarrantyExpiryDate),
		CurrentUserID:      a.CurrentUserID(),
		CreatedAt:          a.CreatedAt(),
		UpdatedAt:          a.UpdatedAt(),
	}
	if id := a.CurrentUserID(); id != nil {
		out.CurrentUserName = names[*id]
	}
	return out
}

func ToAssetDTOs(assets []*asset.Asset, names map[uint]string) []*AssetDTO {
	out := make([]*AssetDTO, 0, len(assets))
	for _, a := range assets {
		out = append(out, ToAssetDTO(a, names))
	}
	return out
}

func ToHistoryDTOs(rows []*asset.AssignmentHistory, names map[uint]string) []*HistoryDTO {
	out := make([]*HistoryDTO, 0, len(rows))
	for _, h := range rows {
		out = append(out, &HistoryDTO{
			ID:           h.ID(),
			AssetID:      h.AssetID(),
			UserID:       h.UserID(),
			UserName:     names[h.UserID()],
			AssignedAt:   h.AssignedAt(),
			UnassignedAt: h.UnassignedAt(),
			Notes:        h.Notes(),
		})
	}
	return out
}

// HolderIDs collects the current holders of assets for a name lookup.
func HolderIDs(assets []*asset.Asset) []uint {
	seen := make(map[uint]struct{})
	ids := make([]uint, 0, len(assets))
	for _, a := range assets {
		if id := a.CurrentUserID(); id != nil {
			if _, ok := seen[*id]; !ok {
				seen[*id] = struct{}{}
				ids = append(ids, *id)
			}
		}
	}
	return ids
}
