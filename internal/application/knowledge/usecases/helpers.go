package usecases

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/knowledge/dto"
	"github.com/deskhub/deskhub/internal/domain/knowledge"
	"github.com/deskhub/deskhub/internal/domain/user"
	"github.com/deskhub/deskhub/internal/shared/constants"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
	"github.com/deskhub/deskhub/internal/shared/services/markdown"
)

const duplicateSlugMessage = "An article with this title already exists. Please choose a different title."

var invalidatedScopes = []string{constants.ScopeKnowledge}

func summaries(ctx context.Context, users user.Repository, log logger.Interface, articles []*knowledge.Article) []*dto.ArticleDTO {
	ids := make([]uint, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, a.AuthorID())
	}
	names := map[uint]string{}
	if len(ids) > 0 {
		resolved, err := users.GetNames(ctx, ids)
		if err != nil {
			log.Warnw("failed to resolve author names", "error", err)
		} else {
			names = resolved
		}
	}
	out := make([]*dto.ArticleDTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, dto.ToArticleSummary(a, names[a.AuthorID()]))
	}
	return out
}

func fullArticle(ctx context.Context, users user.Repository, md markdown.MarkdownService, log logger.Interface, a *knowledge.Article) (*dto.ArticleDTO, error) {
	html, err := md.ToHTMLSanitized(a.Content())
	if err != nil {
		log.Errorw("failed to render article", "error", err, "article_id", a.ID())
		return nil, errors.NewInternalError("failed to render article")
	}
	name := ""
	if names, err := users.GetNames(ctx, []uint{a.AuthorID()}); err == nil {
		name = names[a.AuthorID()]
	}
	return dto.ToArticleDTO(a, name, html), nil
}

func loadArticle(ctx context.Context, repo knowledge.ArticleRepository, log logger.Interface, id uint) (*knowledge.Article, error) {
	if id == 0 {
		return nil, errors.NewValidationError("article ID is required")
	}
	a, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to load article", "error", err, "article_id", id)
		return nil, errors.NewInternalError("failed to load article")
	}
	if a == nil {
		return nil, errors.NewNotFoundError("article not found")
	}
	return a, nil
}

// ensureCategory fails with a validation error for unknown category ids.
func ensureCategory(ctx context.Context, repo knowledge.CategoryRepository, log logger.Interface, id uint) error {
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to load category", "error", err, "category_id", id)
		return errors.NewInternalError("failed to validate category")
	}
	if c == nil {
		return errors.NewValidationError("category does not exist")
	}
	return nil
}

// ensureSlugFree reports a conflict when another article owns slug.
func ensureSlugFree(ctx context.Context, repo knowledge.ArticleRepository, log logger.Interface, slug string, selfID uint) error {
	existing, err := repo.GetBySlug(ctx, slug)
	if err != nil {
		log.Errorw("failed to check article slug", "error", err, "slug", slug)
		return errors.NewInternalError("failed to save article")
	}
	if existing != nil && existing.ID() != selfID {
		return errors.NewConflictError(duplicateSlugMessage, slug)
	}
	return nil
}
