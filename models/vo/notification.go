package vo

import (
	"time"

	"github.com/Xushengqwer/qa_service/models/entities"
	"github.com/Xushengqwer/qa_service/models/enums"
)

// NotificationResponse 定义了通知的响应数据结构
type NotificationResponse struct {
	ID        uint64                 `json:"id"`
	Type      enums.NotificationType `json:"type"`
	Message   string                 `json:"message"`
	Link      string                 `json:"link,omitempty"`
	IsRead    bool                   `json:"is_read"`
	CreatedAt time.Time              `json:"created_at"`
}

// NotificationListVO 定义通知列表接口的响应结构
type NotificationListVO struct {
	Notifications []*NotificationResponse `json:"notifications"`
}

// UnreadCountVO 定义未读数量接口的响应结构
type UnreadCountVO struct {
	UnreadCount int64 `json:"unreadCount"`
}

// MapNotificationsToResponseVOs 批量转换通知实体列表。
func MapNotificationsToResponseVOs(list []*entities.Notification) []*NotificationResponse {
	if len(list) == 0 {
		return []*NotificationResponse{}
	}
	responses := make([]*NotificationResponse, 0, len(list))
	for _, n := range list {
		if n == nil {
			continue
		}
		responses = append(responses, &NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Message:   n.Message,
			Link:      n.Link,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return responses
}
