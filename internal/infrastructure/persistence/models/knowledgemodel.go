package models

import (
	"time"

	"github.com/deskhub/deskhub/internal/shared/constants"
)

type KBCategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Slug        string `gorm:"size:120;not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	IconName    string `gorm:"size:50"`
}

func (KBCategoryModel) TableName() string {
	return constants.TableKBCategories
}

type KBArticleModel struct {
	ID         uint      `gorm:"primaryKey"`
	Title      string    `gorm:"size:200;not null"`
	Slug       string    `gorm:"size:220;not null;uniqueIndex"`
	Content    string    `gorm:"type:text;not null"`
	Excerpt    string    `gorm:"size:500;not null"`
	ImageURL   string    `gorm:"size:500"`
	CategoryID uint      `gorm:"not null;index"`
	AuthorID   uint      `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

func (KBArticleModel) TableName() string {
	return constants.TableKBArticles
}
