package models

import (
	"time"

	"github.com/deskhub/deskhub/internal/shared/constants"
)

type NotificationModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index:idx_notifications_user_read"`
	Message   string    `gorm:"type:text;not null"`
	LinkTo    string    `gorm:"size:500"`
	IsRead    bool      `gorm:"not null;default:false;index:idx_notifications_user_read"`
	CreatedAt time.Time `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
