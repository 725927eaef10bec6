package usecases

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/common"
	"github.com/deskhub/deskhub/internal/application/knowledge/dto"
	"github.com/deskhub/deskhub/internal/application/permission"
	"github.com/deskhub/deskhub/internal/domain/knowledge"
	permvo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	"github.com/deskhub/deskhub/internal/domain/user"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
	"github.com/deskhub/deskhub/internal/shared/services/markdown"
)

type CreateArticleCommand struct {
	Principal authorization.Principal
	knowledge.ArticleInput
}

type CreateArticleExecutor interface {
	Execute(ctx context.Context, cmd CreateArticleCommand) (*dto.ArticleDTO, error)
}

type CreateArticleUseCase struct {
	categoryRepo knowledge.CategoryRepository
	articleRepo  knowledge.ArticleRepository
	userRepo     user.Repository
	markdown     markdown.MarkdownService
	permissions  permission.Checker
	cache        common.CacheInvalidator
	logger       logger.Interface
}

func NewCreateArticleUseCase(
	categoryRepo knowledge.CategoryRepository,
	articleRepo knowledge.ArticleRepository,
	userRepo user.Repository,
	markdownService markdown.MarkdownService,
	permissions permission.Checker,
	cache common.CacheInvalidator,
	logger logger.Interface,
) *CreateArticleUseCase {
	return &CreateArticleUseCase{
		categoryRepo: categoryRepo,
		articleRepo:  articleRepo,
		userRepo:     userRepo,
		markdown:     markdownService,
		permissions:  permissions,
		cache:        cache,
		logger:       logger,
	}
}

func (uc *CreateArticleUseCase) Execute(ctx context.Context, cmd CreateArticleCommand) (*dto.ArticleDTO, error) {
	uc.logger.Infow("executing create article use case", "title", cmd.Title, "actor_id", cmd.Principal.UserID)

	if err := uc.permissions.Require(ctx, cmd.Principal, permvo.ResourceArticle, permvo.ActionCreate); err != nil {
		return nil, err
	}

	a, err := knowledge.NewArticle(cmd.ArticleInput, cmd.Principal.UserID)
	if err != nil {
		return nil, err
	}
	if err := ensureCategory(ctx, uc.categoryRepo, uc.logger, a.CategoryID()); err != nil {
		return nil, err
	}
	if err := ensureSlugFree(ctx, uc.articleRepo, uc.logger, a.Slug(), 0); err != nil {
		return nil, err
	}

	if err := uc.articleRepo.Create(ctx, a); err != nil {
		if errors.IsDuplicateError(err) || errors.IsConflictError(err) {
			return nil, errors.NewConflictError(duplicateSlugMessage, a.Slug())
		}
		uc.logger.Errorw("failed to create article", "error", err, "slug", a.Slug())
		return nil, errors.NewInternalError("failed to create article")
	}

	uc.cache.Invalidate(ctx, invalidatedScopes...)

	uc.logger.Infow("article created successfully", "article_id", a.ID(), "slug", a.Slug())
	return fullArticle(ctx, uc.userRepo, uc.markdown, uc.logger, a)
}
