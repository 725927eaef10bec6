package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/deskhub/deskhub/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persisted model.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.TicketCategoryModel{},
		&models.TicketPriorityModel{},
		&models.TicketModel{},
		&models.AssetModel{},
		&models.AssetHistoryModel{},
		&models.KBCategoryModel{},
		&models.KBArticleModel{},
		&models.NotificationModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the models. It is used for
// throwaway development databases only.
type GormAutoMigrateStrategy struct{}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{}
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}
	return nil
}
