package mappers

import (
	"github.com/deskhub/deskhub/internal/domain/knowledge"
	"github.com/deskhub/deskhub/internal/infrastructure/persistence/models"
)

type KnowledgeMapper interface {
	CategoryToModel(c *knowledge.Category) *models.KBCategoryModel
	CategoryToDomain(model *models.KBCategoryModel) *knowledge.Category
	ArticleToModel(a *knowledge.Article) *models.KBArticleModel
	ArticleToDomain(model *models.KBArticleModel) *knowledge.Article
	ArticlesToDomain(models []models.KBArticleModel) []*knowledge.Article
}

type KnowledgeMapperImpl struct{}

func NewKnowledgeMapper() KnowledgeMapper {
	return &KnowledgeMapperImpl{}
}

func (m *KnowledgeMapperImpl) CategoryToModel(c *knowledge.Category) *models.KBCategoryModel {
	return &models.KBCategoryModel{
		ID:          c.ID(),
		Name:        c.Name(),
		Slug:        c.Slug(),
		Description: c.Description(),
		IconName:    c.IconName(),
	}
}

func (m *KnowledgeMapperImpl) CategoryToDomain(model *models.KBCategoryModel) *knowledge.Category {
	if model == nil {
		return nil
	}
	return knowledge.ReconstructCategory(model.ID, model.Name, model.Slug, model.Description, model.IconName)
}

func (m *KnowledgeMapperImpl) ArticleToModel(a *knowledge.Article) *models.KBArticleModel {
	return &models.KBArticleModel{
		ID:         a.ID(),
		Title:      a.Title(),
		Slug:       a.Slug(),
		Content:    a.Content(),
		Excerpt:    a.Excerpt(),
		ImageURL:   a.ImageURL(),
		CategoryID: a.CategoryID(),
		AuthorID:   a.AuthorID(),
		CreatedAt:  a.CreatedAt(),
		UpdatedAt:  a.UpdatedAt(),
	}
}

func (m *KnowledgeMapperImpl) ArticleToDomain(model *models.KBArticleModel) *knowledge.Article {
	if model == nil {
		return nil
	}
	return knowledge.ReconstructArticle(
		model.ID,
		model.Title, model.Slug, model.Content, model.Excerpt, model.ImageURL,
		model.CategoryID, model.AuthorID,
		model.CreatedAt, model.UpdatedAt,
	)
}

func (m *KnowledgeMapperImpl) ArticlesToDomain(rows []models.KBArticleModel) []*knowledge.Article {
	out := make([]*knowledge.Article, 0, len(rows))
	for i := range rows {
		out = append(out, m.ArticleToDomain(&rows[i]))
	}
	return out
}
