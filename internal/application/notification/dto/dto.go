package dto

import (
	"time"

	"github.com/deskhub/deskhub/internal/domain/notification"
)

type NotificationDTO struct {
	ID        uint      `json:"id"`
	Message   string    `json:"message"`
	LinkTo    string    `json:"link_to,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type UnreadCountDTO struct {
	Count int64 `json:"count"`
}

type MarkAllAsReadDTO struct {
	Updated int64 `json:"updated"`
}

func ToNotificationDTOs(items []*notification.Notification) []*NotificationDTO {
	out := make([]*NotificationDTO, 0, len(items))
	for _, n := range items {
		out = append(out, &NotificationDTO{
			ID:        n.ID(),
			Message:   n.Message(),
			LinkTo:    n.LinkTo(),
			IsRead:    n.IsRead(),
			CreatedAt: n.CreatedAt(),
		})
	}
	return out
}
