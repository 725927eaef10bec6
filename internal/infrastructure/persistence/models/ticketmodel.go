package models

import (
	"time"

	"github.com/deskhub/deskhub/internal/shared/constants"
)

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Category    string `gorm:"size:100;not null;index"`
	Priority    string `gorm:"size:50;not null;index"`
	Status      string `gorm:"size:20;not null;default:Open;index"`
	CreatedBy   uint   `gorm:"not null;index"`
	AssignedTo  *uint  `gorm:"index"`
	ResolvedAt  *time.Time
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	// No foreign key associations; the use cases resolve names.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type TicketCategoryModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null;uniqueIndex"`
}

func (TicketCategoryModel) TableName() string {
	return constants.TableTicketCategories
}

type TicketPriorityModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;not null;uniqueIndex"`
}

func (TicketPriorityModel) TableName() string {
	return constants.TableTicketPriorities
}
