package usecases

import (
	"context"

	"github.com/deskhub/deskhub/internal/application/common"
	"github.com/deskhub/deskhub/internal/application/permission"
	"github.com/deskhub/deskhub/internal/domain/knowledge"
	permvo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

type DeleteArticleCommand struct {
	Principal authorization.Principal
	ArticleID uint
}

type DeleteArticleExecutor interface {
	Execute(ctx context.Context, cmd DeleteArticleCommand) error
}

type DeleteArticleUseCase struct {
	articleRepo knowledge.ArticleRepository
	permissions permission.Checker
	cache       common.CacheInvalidator
	logger      logger.Interface
}

func NewDeleteArticleUseCase(
	articleRepo knowledge.ArticleRepository,
	permissions permission.Checker,
	cache common.CacheInvalidator,
	logger logger.Interface,
) *DeleteArticleUseCase {
	return &DeleteArticleUseCase{
		articleRepo: articleRepo,
		permissions: permissions,
		cache:       cache,
		logger:      logger,
	}
}

func (uc *DeleteArticleUseCase) Execute(ctx context.Context, cmd DeleteArticleCommand) error {
	uc.logger.Infow("executing delete article use case", "article_id", cmd.ArticleID, "actor_id", cmd.Principal.UserID)

	if err := uc.permissions.Require(ctx, cmd.Principal, permvo.ResourceArticle, permvo.ActionDelete); err != nil {
		return err
	}

	if _, err := loadArticle(ctx, uc.articleRepo, uc.logger, cmd.ArticleID); err != nil {
		return err
	}

	if err := uc.articleRepo.Delete(ctx, cmd.ArticleID); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete article", "error", err, "article_id", cmd.ArticleID)
		return errors.NewInternalError("failed to delete article")
	}

	uc.cache.Invalidate(ctx, invalidatedScopes...)

	uc.logger.Infow("article deleted successfully", "article_id", cmd.ArticleID)
	return nil
}
