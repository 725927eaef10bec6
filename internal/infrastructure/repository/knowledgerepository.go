package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/deskhub/deskhub/internal/domain/knowledge"
	"github.com/deskhub/deskhub/internal/infrastructure/persistence/mappers"
	"github.com/deskhub/deskhub/internal/infrastructure/persistence/models"
	"github.com/deskhub/deskhub/internal/shared/db"
	apperrors "github.com/deskhub/deskhub/internal/shared/errors"
)

type KBCategoryRepository struct {
	db     *gorm.DB
	mapper mappers.KnowledgeMapper
}

func NewKBCategoryRepository(db *gorm.DB) *KBCategoryRepository {
	return &KBCategoryRepository{db: db, mapper: mappers.NewKnowledgeMapper()}
}

func (r *KBCategoryRepository) Create(ctx context.Context, c *knowledge.Category) error {
	model := r.mapper.CategoryToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create kb category: %w", err)
	}
	c.SetID(model.ID)
	return nil
}

func (r *KBCategoryRepository) List(ctx context.Context) ([]*knowledge.Category, error) {
	var rows []models.KBCategoryModel
	if err := db.GetTxFromContext(ctx, r.db).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list kb categories: %w", err)
	}
	out := make([]*knowledge.Category, 0, len(rows))
	for i := range rows {
		out = append(out, r.mapper.CategoryToDomain(&rows[i]))
	}
	return out, nil
}

func (r *KBCategoryRepository) GetByID(ctx context.Context, id uint) (*knowledge.Category, error) {
	var model models.KBCategoryModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get kb category: %w", err)
	}
	return r.mapper.CategoryToDomain(&model), nil
}

func (r *KBCategoryRepository) GetBySlug(ctx context.Context, slug string) (*knowledge.Category, error) {
	var model models.KBCategoryModel
	if err := db.GetTxFromContext(ctx, r.db).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get kb category by slug: %w", err)
	}
	return r.mapper.CategoryToDomain(&model), nil
}

type KBArticleRepository struct {
	db     *gorm.DB
	mapper mappers.KnowledgeMapper
}

func NewKBArticleRepository(db *gorm.DB) *KBArticleRepository {
	return &KBArticleRepository{db: db, mapper: mappers.NewKnowledgeMapper()}
}

func (r *KBArticleRepository) Create(ctx context.Context, a *knowledge.Article) error {
	model := r.mapper.ArticleToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}
	a.SetID(model.ID)
	return nil
}

func (r *KBArticleRepository) Update(ctx context.Context, a *knowledge.Article) error {
	model := r.mapper.ArticleToModel(a)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.KBArticleModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"slug":        model.Slug,
			"content":     model.Content,
			"excerpt":     model.Excerpt,
			"image_url":   model.ImageURL,
			"category_id": model.CategoryID,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update article: %w", result.Error)
	}
	return nil
}

func (r *KBArticleRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.KBArticleModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("article not found")
	}
	return nil
}

func (r *KBArticleRepository) GetByID(ctx context.Context, id uint) (*knowledge.Article, error) {
	var model models.KBArticleModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return r.mapper.ArticleToDomain(&model), nil
}

func (r *KBArticleRepository) GetBySlug(ctx context.Context, slug string) (*knowledge.Article, error) {
	var model models.KBArticleModel
	if err := db.GetTxFromContext(ctx, r.db).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get article by slug: %w", err)
	}
	return r.mapper.ArticleToDomain(&model), nil
}

func (r *KBArticleRepository) ListByCategory(ctx context.Context, categoryID uint) ([]*knowledge.Article, error) {
	var rows []models.KBArticleModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("category_id = ?", categoryID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list articles by category: %w", err)
	}
	return r.mapper.ArticlesToDomain(rows), nil
}

func (r *KBArticleRepository) ListRecent(ctx context.Context, search string, limit int) ([]*knowledge.Article, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Scopes(db.SearchAny(search, "title", "excerpt")).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []models.KBArticleModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent articles: %w", err)
	}
	return r.mapper.ArticlesToDomain(rows), nil
}

func (r *KBArticleRepository) CountByCategory(ctx context.Context) (map[uint]int64, error) {
	var rows []struct {
		CategoryID uint
		Count      int64
	}
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.KBArticleModel{}).
		Select("category_id, COUNT(*) AS count").
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count articles by category: %w", err)
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Count
	}
	return counts, nil
}
