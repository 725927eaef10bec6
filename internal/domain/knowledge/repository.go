package knowledge

import "context"

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	List(ctx context.Context) ([]*Category, error)
	GetByID(ctx context.Context, id uint) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
}

type ArticleRepository interface {
	Create(ctx context.Context, article *Article) error
	Update(ctx context.Context, article *Article) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Article, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]*Article, error)
	// ListRecent returns the newest articles, optionally matching search
	// against title and excerpt.
	ListRecent(ctx context.Context, search string, limit int) ([]*Article, error)
	CountByCategory(ctx context.Context) (map[uint]int64, error)
}
