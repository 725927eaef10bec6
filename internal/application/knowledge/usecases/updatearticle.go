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

type UpdateArticleCommand struct {
	Principal authorization.Principal
	ArticleID uint
	knowledge.ArticleInput
}

type UpdateArticleExecutor interface {
	Execute(ctx context.Context, cmd UpdateArticleCommand) (*dto.ArticleDTO, error)
}

type UpdateArticleUseCase struct {
	categoryRepo knowledge.CategoryRepository
	articleRepo  knowledge.ArticleRepository
	userRepo     user.Repository
	markdown     markdown.MarkdownService
	permissions  permission.Checker
	cache        common.CacheInvalidator
	logger       logger.Interface
}

func NewUpdateArticleUseCase(
	categoryRepo knowledge.CategoryRepository,
	articleRepo knowledge.ArticleRepository,
	userRepo user.Repository,
	markdownService markdown.MarkdownService,
	permissions permission.Checker,
	cache common.CacheInvalidator,
	logger logger.Interface,
) *UpdateArticleUseCase {
	return &UpdateArticleUseCase{
		categoryRepo: categoryRepo,
		articleRepo:  articleRepo,
		userRepo:     userRepo,
		markdown:     markdownService,
		permissions:  permissions,
		cache:        cache,
		logger:       logger,
	}
}

func (uc *UpdateArticleUseCase) Execute(ctx context.Context, cmd UpdateArticleCommand) (*dto.ArticleDTO, error) {
	uc.logger.Infow("executing update article use case", "article_id", cmd.ArticleID, "actor_id", cmd.Principal.UserID)

	if err := uc.permissions.Require(ctx, cmd.Principal, permvo.ResourceArticle, permvo.ActionUpdate); err != nil {
		return nil, err
	}

	a, err := loadArticle(ctx, uc.articleRepo, uc.logger, cmd.ArticleID)
	if err != nil {
		return nil, err
	}
	if !a.CanBeEditedBy(cmd.Principal) {
		return nil, errors.NewForbiddenError("Unauthorized: Only the author or an admin can edit this article.")
	}

	if slug := knowledge.Slugify(cmd.Title); slug != "" && slug != a.Slug() {
		if err := ensureSlugFree(ctx, uc.articleRepo, uc.logger, slug, a.ID()); err != nil {
			return nil, err
		}
	}
	if err := a.Update(cmd.ArticleInput); err != nil {
		return nil, err
	}
	if err := ensureCategory(ctx, uc.categoryRepo, uc.logger, a.CategoryID()); err != nil {
		return nil, err
	}

	if err := uc.articleRepo.Update(ctx, a); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(duplicateSlugMessage, a.Slug())
		}
		uc.logger.Errorw("failed to update article", "error", err, "article_id", a.ID())
		return nil, errors.NewInternalError("failed to update article")
	}

	uc.cache.Invalidate(ctx, invalidatedScopes...)

	uc.logger.Infow("article updated successfully", "article_id", a.ID(), "slug", a.Slug())
	return fullArticle(ctx, uc.userRepo, uc.markdown, uc.logger, a)
}
