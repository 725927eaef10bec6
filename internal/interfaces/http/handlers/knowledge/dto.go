package knowledge

import (
	domain "github.com/deskhub/deskhub/internal/domain/knowledge"
)

type ArticleRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	Content    string `json:"content" binding:"required"`
	Excerpt    string `json:"excerpt" binding:"required,max=500"`
	ImageURL   string `json:"image_url" binding:"omitempty,url,max=500"`
	CategoryID uint   `json:"category_id" binding:"required"`
}

func (r *ArticleRequest) toInput() domain.ArticleInput {
	return domain.ArticleInput{
		Title:      r.Title,
		Content:    r.Content,
		Excerpt:    r.Excerpt,
		ImageURL:   r.ImageURL,
		CategoryID: r.CategoryID,
	}
}
