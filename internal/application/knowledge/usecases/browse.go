package usecases

import (
	"context"
	"strings"

	"github.com/deskhub/deskhub/internal/application/knowledge/dto"
	"github.com/deskhub/deskhub/internal/application/permission"
	"github.com/deskhub/deskhub/internal/domain/knowledge"
	permvo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	"github.com/deskhub/deskhub/internal/domain/user"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/constants"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
	"github.com/deskhub/deskhub/internal/shared/services/markdown"
)

type BrowseExecutor interface {
	ListCategories(ctx context.Context, principal authorization.Principal) ([]*dto.CategoryDTO, error)
	GetCategory(ctx context.Context, principal authorization.Principal, slug string) (*dto.CategoryDetailDTO, error)
	ListRecent(ctx context.Context, principal authorization.Principal, search string) ([]*dto.ArticleDTO, error)
	GetArticle(ctx context.Context, principal authorization.Principal, categorySlug, articleSlug string) (*dto.ArticleDTO, error)
}

// BrowseKnowledgeUseCase serves the read side of the knowledge base.
type BrowseKnowledgeUseCase struct {
	categoryRepo knowledge.CategoryRepository
	articleRepo  knowledge.ArticleRepository
	userRepo     user.Repository
	markdown     markdown.MarkdownService
	permissions  permission.Checker
	logger       logger.Interface
}

func NewBrowseKnowledgeUseCase(
	categoryRepo knowledge.CategoryRepository,
	articleRepo knowledge.ArticleRepository,
	userRepo user.Repository,
	markdownService markdown.MarkdownService,
	permissions permission.Checker,
	logger logger.Interface,
) *BrowseKnowledgeUseCase {
	return &BrowseKnowledgeUseCase{
		categoryRepo: categoryRepo,
		articleRepo:  articleRepo,
		userRepo:     userRepo,
		markdown:     markdownService,
		permissions:  permissions,
		logger:       logger,
	}
}

func (uc *BrowseKnowledgeUseCase) ListCategories(ctx context.Context, principal authorization.Principal) ([]*dto.CategoryDTO, error) {
	if err := uc.permissions.Require(ctx, principal, permvo.ResourceArticle, permvo.ActionRead); err != nil {
		return nil, err
	}

	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list kb categories", "error", err)
		return nil, errors.NewInternalError("failed to list categories")
	}
	counts, err := uc.articleRepo.CountByCategory(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count kb articles", "error", err)
		return nil, errors.NewInternalError("failed to list categories")
	}

	out := make([]*dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.ToCategoryDTO(c, counts[c.ID()]))
	}
	return out, nil
}

func (uc *BrowseKnowledgeUseCase) GetCategory(ctx context.Context, principal authorization.Principal, slug string) (*dto.CategoryDetailDTO, error) {
	if err := uc.permissions.Require(ctx, principal, permvo.ResourceArticle, permvo.ActionRead); err != nil {
		return nil, err
	}

	c, err := uc.categoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	articles, err := uc.articleRepo.ListByCategory(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("failed to list category articles", "error", err, "category_id", c.ID())
		return nil, errors.NewInternalError("failed to load category")
	}

	items := summaries(ctx, uc.userRepo, uc.logger, articles)
	for _, a := range items {
		a.CategorySlug = c.Slug()
	}
	return &dto.CategoryDetailDTO{
		Category: dto.ToCategoryDTO(c, int64(len(articles))),
		Articles: items,
	}, nil
}

func (uc *BrowseKnowledgeUseCase) ListRecent(ctx context.Context, principal authorization.Principal, search string) ([]*dto.ArticleDTO, error) {
	if err := uc.permissions.Require(ctx, principal, permvo.ResourceArticle, permvo.ActionRead); err != nil {
		return nil, err
	}

	articles, err := uc.articleRepo.ListRecent(ctx, strings.TrimSpace(search), constants.RecentArticlesLimit)
	if err != nil {
		uc.logger.Errorw("failed to list recent articles", "error", err)
		return nil, errors.NewInternalError("failed to list articles")
	}
	return summaries(ctx, uc.userRepo, uc.logger, articles), nil
}

// GetArticle returns not-found when the article lives in another category.
func (uc *BrowseKnowledgeUseCase) GetArticle(ctx context.Context, principal authorization.Principal, categorySlug, articleSlug string) (*dto.ArticleDTO, error) {
	if err := uc.permissions.Require(ctx, principal, permvo.ResourceArticle, permvo.ActionRead); err != nil {
		return nil, err
	}

	c, err := uc.categoryBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	a, err := uc.articleRepo.GetBySlug(ctx, articleSlug)
	if err != nil {
		uc.logger.Errorw("failed to load article", "error", err, "slug", articleSlug)
		return nil, errors.NewInternalError("failed to load article")
	}
	if a == nil || a.CategoryID() != c.ID() {
		return nil, errors.NewNotFoundError("article not found")
	}

	out, err := fullArticle(ctx, uc.userRepo, uc.markdown, uc.logger, a)
	if err != nil {
		return nil, err
	}
	out.CategorySlug = c.Slug()
	return out, nil
}

func (uc *BrowseKnowledgeUseCase) categoryBySlug(ctx context.Context, slug string) (*knowledge.Category, error) {
	c, err := uc.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		uc.logger.Errorw("failed to load kb category", "error", err, "slug", slug)
		return nil, errors.NewInternalError("failed to load category")
	}
	if c == nil {
		return nil, errors.NewNotFoundError("category not found")
	}
	return c, nil
}
