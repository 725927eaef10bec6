package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/deskhub/deskhub/internal/domain/ticket"
	vo "github.com/deskhub/deskhub/internal/domain/ticket/valueobjects"
	"github.com/deskhub/deskhub/internal/infrastructure/persistence/mappers"
	"github.com/deskhub/deskhub/internal/infrastructure/persistence/models"
	"github.com/deskhub/deskhub/internal/shared/db"
	apperrors "github.com/deskhub/deskhub/internal/shared/errors"
)

// ticketOrderBy maps the accepted sort keys to ORDER BY clauses so no caller
// input reaches the SQL text.
var ticketOrderBy = map[string]string{
	ticket.SortNewest:  "created_at DESC, id DESC",
	ticket.SortOldest:  "created_at ASC, id ASC",
	ticket.SortUpdated: "updated_at DESC, id DESC",
}

const resolutionBatchSize = 500

var finishedStatuses = []string{vo.StatusResolved.String(), vo.StatusClosed.String()}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"category":    model.Category,
			"priority":    model.Priority,
			"status":      model.Status,
			"assigned_to": model.AssignedTo,
			"resolved_at": model.ResolvedAt,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// RowsAffected may be 0 when the stored values are identical.
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})

	if filter.CreatorID != nil {
		query = query.Where("created_by = ?", *filter.CreatorID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assigned_to = ?", *filter.AssigneeID)
	}
	if filter.Unassigned {
		query = query.Where("assigned_to IS NULL")
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	} else if filter.ExcludeFinished {
		query = query.Where("status NOT IN ?", finishedStatuses)
	}
	query = query.Scopes(db.SearchAny(filter.Search, "title", "description"))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	orderBy, ok := ticketOrderBy[filter.SortBy]
	if !ok {
		orderBy = ticketOrderBy[ticket.SortNewest]
	}

	var rows []models.TicketModel
	if err := query.
		Order(orderBy).
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.mapper.ToDomainList(rows)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (r *TicketRepository) CountUnassigned(ctx context.Context) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("assigned_to IS NULL AND status NOT IN ?", finishedStatuses).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unassigned tickets: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context, filter ticket.StatusCountFilter) (map[vo.TicketStatus]int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})
	if filter.CreatorID != nil {
		query = query.Where("created_by = ?", *filter.CreatorID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assigned_to = ?", *filter.AssigneeID)
	}

	var rows []struct {
		Status string
		Count  int64
	}
	if err := query.Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	counts := make(map[vo.TicketStatus]int64, len(rows))
	for _, row := range rows {
		counts[vo.TicketStatus(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *TicketRepository) CreatedSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	var rows []models.TicketModel
	err := db.GetTxFromContext(ctx, r.db).
		Select("created_at").
		Where("created_at >= ?", since).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket creation times: %w", err)
	}

	out := make([]time.Time, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.CreatedAt)
	}
	return out, nil
}

// AverageResolution averages resolved_at - created_at over finished
// tickets. Rows are read in batches and summed as float seconds; date
// arithmetic differs between the supported drivers.
func (r *TicketRepository) AverageResolution(ctx context.Context) (time.Duration, int64, error) {
	var (
		rows    []models.TicketModel
		seconds float64
		count   int64
	)
	err := db.GetTxFromContext(ctx, r.db).
		Select("id, created_at, resolved_at").
		Where("resolved_at IS NOT NULL").
		FindInBatches(&rows, resolutionBatchSize, func(_ *gorm.DB, _ int) error {
			for _, row := range rows {
				if row.ResolvedAt == nil || row.ResolvedAt.Before(row.CreatedAt) {
					continue
				}
				seconds += row.ResolvedAt.Sub(row.CreatedAt).Seconds()
				count++
			}
			return nil
		}).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load resolution times: %w", err)
	}
	if count == 0 {
		return 0, 0, nil
	}
	return time.Duration(seconds / float64(count) * float64(time.Second)), count, nil
}
