package asset

import (
	"time"

	"github.com/deskhub/deskhub/internal/shared/errors"
)

// AssignmentHistory is one holding period of an asset. Rows are appended on
// assignment and closed on unassignment; at most one row per asset is open.
type AssignmentHistory struct {
	id           uint
	assetID      uint
	userID       uint
	assignedAt   time.Time
	unassignedAt *time.Time
	notes        string
}

func NewAssignmentHistory(assetID, userID uint, assignedAt time.Time, notes string) (*AssignmentHistory, error) {
	if assetID == 0 || userID == 0 {
		return nil, errors.NewValidationError("asset and user are required for an assignment record")
	}
	return &AssignmentHistory{
		assetID:    assetID,
		userID:     userID,
		assignedAt: assignedAt.UTC(),
		notes:      notes,
	}, nil
}

func ReconstructAssignmentHistory(id, assetID, userID uint, assignedAt time.Time, unassignedAt *time.Time, notes string) *AssignmentHistory {
	return &AssignmentHistory{
		id:           id,
		assetID:      assetID,
		userID:       userID,
		assignedAt:   assignedAt,
		unassignedAt: unassignedAt,
		notes:        notes,
	}
}

func (h *AssignmentHistory) ID() uint                 { return h.id }
func (h *AssignmentHistory) AssetID() uint            { return h.assetID }
func (h *AssignmentHistory) UserID() uint             { return h.userID }
func (h *AssignmentHistory) AssignedAt() time.Time    { return h.assignedAt }
func (h *AssignmentHistory) UnassignedAt() *time.Time { return h.unassignedAt }
func (h *AssignmentHistory) Notes() string            { return h.notes }
func (h *AssignmentHistory) IsOpen() bool             { return h.unassignedAt == nil }

func (h *AssignmentHistory) SetID(id uint) {
	h.id = id
}
