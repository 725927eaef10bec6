package mappers

import (
	"github.com/deskhub/deskhub/internal/domain/notification"
	"github.com/deskhub/deskhub/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToEntity(model *models.NotificationModel) *notification.Notification
	ToModel(entity *notification.Notification) *models.NotificationModel
	ToEntities(models []models.NotificationModel) []*notification.Notification
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToEntity(model *models.NotificationModel) *notification.Notification {
	if model == nil {
		return nil
	}
	return notification.ReconstructNotification(
		model.ID, model.UserID, model.Message, model.LinkTo, model.IsRead, model.CreatedAt,
	)
}

func (m *NotificationMapperImpl) ToModel(entity *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:        entity.ID(),
		UserID:    entity.UserID(),
		Message:   entity.Message(),
		LinkTo:    entity.LinkTo(),
		IsRead:    entity.IsRead(),
		CreatedAt: entity.CreatedAt(),
	}
}

func (m *NotificationMapperImpl) ToEntities(rows []models.NotificationModel) []*notification.Notification {
	out := make([]*notification.Notification, 0, len(rows))
	for i := range rows {
		out = append(out, m.ToEntity(&rows[i]))
	}
	return out
}
