package models

import (
	"time"

	"github.com/deskhub/deskhub/internal/shared/constants"
)

// UserModel is a row of the profiles table. Its ID is the user id referenced
// by tickets, assets and articles.
type UserModel struct {
	ID                   uint   `gorm:"primarykey"`
	Email                string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash         string `gorm:"not null;size:255"`
	FullName             string `gorm:"not null;size:100;index"`
	Role                 string `gorm:"not null;size:20;default:employee;index"`
	IsActive             bool   `gorm:"not null;default:true"`
	JobTitle             string `gorm:"size:100"`
	Department           string `gorm:"size:100"`
	AvatarURL            string `gorm:"size:500"`
	PhoneNumber          string `gorm:"size:50"`
	OfficeLocation       string `gorm:"size:100"`
	ReceiveNotifications bool   `gorm:"not null;default:true"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (UserModel) TableName() string {
	return constants.TableProfiles
}
