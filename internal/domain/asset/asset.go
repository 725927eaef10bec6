package asset

import (
	"strings"
	"time"

	"github.com/deskhub/deskhub/internal/shared/errors"
)

const MaxTagLength = 100

// Details are the descriptive, freely editable fields of an asset.
type Details struct {
	Manufacturer       string
	Model              string
	SerialNumber       string
	PurchaseDate       *time.Time
	WarrantyExpiryDate *time.Time
}

// Asset is a tracked piece of company equipment. currentUserID is the
// holder; the assignment trail lives in AssignmentHistory rows.
type Asset struct {
	id            uint
	tag           string
	assetType     string
	details       Details
	currentUserID *uint
	createdAt     time.Time
	updatedAt     time.Time
}

func NewAsset(tag, assetType string, details Details) (*Asset, error) {
	tag = strings.TrimSpace(tag)
	assetType = strings.TrimSpace(assetType)
	if tag == "" || assetType == "" {
		return nil, errors.NewValidationError("Asset Tag and Type are required.")
	}
	if len(tag) > MaxTagLength {
		return nil, errors.NewValidationError("asset tag exceeds maximum length of 100 characters")
	}
	if err := validateDates(details); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Asset{
		tag:       tag,
		assetType: assetType,
		details:   trimDetails(details),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAsset(
	id uint,
	tag, assetType string,
	details Details,
	currentUserID *uint,
	createdAt, updatedAt time.Time,
) (*Asset, error) {
	if id == 0 {
		return nil, errors.NewValidationError("asset ID cannot be zero")
	}
	return &Asset{
		id:            id,
		tag:           tag,
		assetType:     assetType,
		details:       details,
		currentUserID: currentUserID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (a *Asset) ID() uint              { return a.id }
func (a *Asset) Tag() string           { return a.tag }
func (a *Asset) Type() string          { return a.assetType }
func (a *Asset) Details() Details      { return a.details }
func (a *Asset) CurrentUserID() *uint  { return a.currentUserID }
func (a *Asset) CreatedAt() time.Time  { return a.createdAt }
func (a *Asset) UpdatedAt() time.Time  { return a.updatedAt }
func (a *Asset) IsAssigned() bool      { return a.currentUserID != nil }

func (a *Asset) SetID(id uint) error {
	if a.id != 0 {
		return errors.NewInternalError("asset ID is already set")
	}
	a.id = id
	return nil
}

// IsHeldBy reports whether userID is the current holder.
func (a *Asset) IsHeldBy(userID uint) bool {
	return a.currentUserID != nil && *a.currentUserID == userID
}

// AssignTo makes userID the holder. Reassigning to the current holder is a
// conflict so no duplicate history row is written.
func (a *Asset) AssignTo(userID uint) error {
	if userID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if a.IsHeldBy(userID) {
		return errors.NewConflictError("Asset is already assigned to this user.")
	}
	a.currentUserID = &userID
	a.updatedAt = time.Now().UTC()
	return nil
}

// Unassign clears the holder and returns who held it.
func (a *Asset) Unassign() (uint, error) {
	if a.currentUserID == nil {
		return 0, errors.NewConflictError("Asset is not currently assigned.")
	}
	prev := *a.currentUserID
	a.currentUserID = nil
	a.updatedAt = time.Now().UTC()
	return prev, nil
}

func (a *Asset) UpdateDetails(assetType string, details Details) error {
	assetType = strings.TrimSpace(assetType)
	if assetType == "" {
		return errors.NewValidationError("asset type is required")
	}
	if err := validateDates(details); err != nil {
		return err
	}
	a.assetType = assetType
	a.details = trimDetails(details)
	a.updatedAt = time.Now().UTC()
	return nil
}

func validateDates(d Details) error {
	if d.PurchaseDate != nil && d.WarrantyExpiryDate != nil && d.WarrantyExpiryDate.Before(*d.PurchaseDate) {
		return errors.NewValidationError("warranty expiry date cannot be before the purchase date")
	}
	return nil
}

func trimDetails(d Details) Details {
	d.Manufacturer = strings.TrimSpace(d.Manufacturer)
	d.Model = strings.TrimSpace(d.Model)
	d.SerialNumber = strings.TrimSpace(d.SerialNumber)
	return d
}
