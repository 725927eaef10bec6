package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/deskhub/deskhub/internal/domain/ticket"
	"github.com/deskhub/deskhub/internal/infrastructure/persistence/models"
	"github.com/deskhub/deskhub/internal/shared/db"
)

// TicketLookupRepository serves the ticket category and priority tables.
type TicketLookupRepository struct {
	db *gorm.DB
}

func NewTicketLookupRepository(db *gorm.DB) *TicketLookupRepository {
	return &TicketLookupRepository{db: db}
}

func (r *TicketLookupRepository) ListCategories(ctx context.Context) ([]ticket.Lookup, error) {
	var rows []models.TicketCategoryModel
	if err := db.GetTxFromContext(ctx, r.db).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket categories: %w", err)
	}
	out := make([]ticket.Lookup, 0, len(rows))
	for _, row := range rows {
		out = append(out, ticket.Lookup{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

func (r *TicketLookupRepository) ListPriorities(ctx context.Context) ([]ticket.Lookup, error) {
	var rows []models.TicketPriorityModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket priorities: %w", err)
	}
	out := make([]ticket.Lookup, 0, len(rows))
	for _, row := range rows {
		out = append(out, ticket.Lookup{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

func (r *TicketLookupRepository) CategoryExists(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, &models.TicketCategoryModel{}, name)
}

func (r *TicketLookupRepository) PriorityExists(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, &models.TicketPriorityModel{}, name)
}

// EnsureCategory inserts name unless it already exists.
func (r *TicketLookupRepository) EnsureCategory(ctx context.Context, name string) error {
	return r.ensure(ctx, &models.TicketCategoryModel{Name: strings.TrimSpace(name)})
}

func (r *TicketLookupRepository) EnsurePriority(ctx context.Context, name string) error {
	return r.ensure(ctx, &models.TicketPriorityModel{Name: strings.TrimSpace(name)})
}

func (r *TicketLookupRepository) exists(ctx context.Context, model interface{}, name string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(model).
		Where("name = ?", strings.TrimSpace(name)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check ticket lookup: %w", err)
	}
	return count > 0, nil
}

func (r *TicketLookupRepository) ensure(ctx context.Context, model interface{}) error {
	err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to insert ticket lookup: %w", err)
	}
	return nil
}
