package dto

import (
	"time"

	"github.com/deskhub/deskhub/internal/domain/knowledge"
)

type CategoryDTO struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description,omitempty"`
	IconName     string `json:"icon_name,omitempty"`
	ArticleCount int64  `json:"article_count"`
}

type ArticleDTO struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Excerpt      string    `json:"excerpt"`
	Content      string    `json:"content,omitempty"`
	ContentHTML  string    `json:"content_html,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	CategoryID   uint      `json:"category_id"`
	CategorySlug string    `json:"category_slug,omitempty"`
	AuthorID     uint      `json:"author_id"`
	AuthorName   string    `json:"author_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CategoryDetailDTO is a category page: the category and its articles.
type CategoryDetailDTO struct {
	Category *CategoryDTO  `json:"category"`
	Articles []*ArticleDTO `json:"articles"`
}

func ToCategoryDTO(c *knowledge.Category, count int64) *CategoryDTO {
	return &CategoryDTO{
		ID:           c.ID(),
		Name:         c.Name(),
		Slug:         c.Slug(),
		Description:  c.Description(),
		IconName:     c.IconName(),
		ArticleCount: count,
	}
}

// ToArticleSummary omits the article body.
func ToArticleSummary(a *knowledge.Article, authorName string) *ArticleDTO {
	return &ArticleDTO{
		ID:         a.ID(),
		Title:      a.Title(),
		Slug:       a.Slug(),
		Excerpt:    a.Excerpt(),
		ImageURL:   a.ImageURL(),
		CategoryID: a.CategoryID(),
		AuthorID:   a.AuthorID(),
		AuthorName: authorName,
		CreatedAt:  a.CreatedAt(),
		UpdatedAt:  a.UpdatedAt(),
	}
}

// ToArticleDTO includes the markdown source and its rendered HTML.
func ToArticleDTO(a *knowledge.Article, authorName, contentHTML string) *ArticleDTO {
	d := ToArticleSummary(a, authorName)
	d.Content = a.Content()
	d.ContentHTML = contentHTML
	return d
}
