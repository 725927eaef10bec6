package usecases

import (
	"context"
	"sort"

	"github.com/deskhub/deskhub/internal/domain/knowledge"
	"github.com/deskhub/deskhub/internal/domain/user"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
)

type memoryCategoryRepository struct {
	categories []*knowledge.Category
}

func (m *memoryCategoryRepository) Create(_ context.Context, c *knowledge.Category) error {
	c.SetID(uint(len(m.categories) + 1))
	m.categories = append(m.categories, c)
	return nil
}

func (m *memoryCategoryRepository) List(context.Context) ([]*knowledge.Category, error) {
	return m.categories, nil
}

func (m *memoryCategoryRepository) GetByID(_ context.Context, id uint) (*knowledge.Category, error) {
	for _, c := range m.categories {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memoryCategoryRepository) GetBySlug(_ context.Context, slug string) (*knowledge.Category, error) {
	for _, c := range m.categories {
		if c.Slug() == slug {
			return c, nil
		}
	}
	return nil, nil
}

// memoryArticleRepository enforces slug uniqueness like the database index.
type memoryArticleRepository struct {
	articles map[uint]*knowledge.Article
	nextID   uint
}

func newMemoryArticleRepository() *memoryArticleRepository {
	return &memoryArticleRepository{articles: make(map[uint]*knowledge.Article)}
}

func (m *memoryArticleRepository) slugTaken(slug string, selfID uint) bool {
	for _, a := range m.articles {
		if a.Slug() == slug && a.ID() != selfID {
			return true
		}
	}
	return false
}

func (m *memoryArticleRepository) Create(_ context.Context, a *knowledge.Article) error {
	if m.slugTaken(a.Slug(), 0) {
		return errors.NewConflictError("UNIQUE constraint failed: kb_articles.slug")
	}
	m.nextID++
	a.SetID(m.nextID)
	m.articles[a.ID()] = a
	return nil
}

func (m *memoryArticleRepository) Update(_ context.Context, a *knowledge.Article) error {
	m.articles[a.ID()] = a
	return nil
}

func (m *memoryArticleRepository) Delete(_ context.Context, id uint) error {
	delete(m.articles, id)
	return nil
}

func (m *memoryArticleRepository) GetByID(_ context.Context, id uint) (*knowledge.Article, error) {
	return m.articles[id], nil
}

func (m *memoryArticleRepository) GetBySlug(_ context.Context, slug string) (*knowledge.Article, error) {
	for _, a := range m.articles {
		if a.Slug() == slug {
			return a, nil
		}
	}
	return nil, nil
}

func (m *memoryArticleRepository) sorted() []*knowledge.Article {
	out := make([]*knowledge.Article, 0, len(m.articles))
	for _, a := range m.articles {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() > out[j].ID() })
	return out
}

func (m *memoryArticleRepository) ListByCategory(_ context.Context, categoryID uint) ([]*knowledge.Article, error) {
	var out []*knowledge.Article
	for _, a := range m.sorted() {
		if a.CategoryID() == categoryID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryArticleRepository) ListRecent(_ context.Context, _ string, limit int) ([]*knowledge.Article, error) {
	out := m.sorted()
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryArticleRepository) CountByCategory(context.Context) (map[uint]int64, error) {
	counts := make(map[uint]int64)
	for _, a := range m.articles {
		counts[a.CategoryID()]++
	}
	return counts, nil
}

type stubUserRepository struct {
	user.Repository
	names map[uint]string
}

func (s *stubUserRepository) GetNames(_ context.Context, ids []uint) (map[uint]string, error) {
	out := make(map[uint]string, len(ids))
	for _, id := range ids {
		if n, ok := s.names[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

var (
	employee = authorization.NewPrincipal(1, authorization.RoleEmployee)
	staff    = authorization.NewPrincipal(2, authorization.RoleITStaff)
	staff2   = authorization.NewPrincipal(4, authorization.RoleITStaff)
	admin    = authorization.NewPrincipal(3, authorization.RoleAdmin)
)
