package http

import (
	"gorm.io/gorm"

	"github.com/deskhub/deskhub/internal/domain/asset"
	"github.com/deskhub/deskhub/internal/domain/knowledge"
	"github.com/deskhub/deskhub/internal/domain/notification"
	"github.com/deskhub/deskhub/internal/domain/ticket"
	"github.com/deskhub/deskhub/internal/infrastructure/repository"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo         *repository.UserRepository
	ticketRepo       ticket.TicketRepository
	ticketLookupRepo ticket.LookupRepository
	assetRepo        asset.AssetRepository
	assetHistoryRepo asset.HistoryRepository
	kbCategoryRepo   knowledge.CategoryRepository
	kbArticleRepo    knowledge.ArticleRepository
	notificationRepo notification.NotificationRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:         repository.NewUserRepository(db, log),
		ticketRepo:       repository.NewTicketRepository(db),
		ticketLookupRepo: repository.NewTicketLookupRepository(db),
		assetRepo:        repository.NewAssetRepository(db),
		assetHistoryRepo: repository.NewAssetHistoryRepository(db),
		kbCategoryRepo:   repository.NewKBCategoryRepository(db),
		kbArticleRepo:    repository.NewKBArticleRepository(db),
		notificationRepo: repository.NewNotificationRepository(db),
	}
}
