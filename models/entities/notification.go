package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"

	"github.com/Xushengqwer/qa_service/models/enums"
)

// Notification 通知实体
// - 表名: notifications
// - 生命周期: 由领域事件（新回答、采纳、广播）创建，收件人本人可标记已读或删除；
//   已读通知超过保留期后由清理任务批量删除
type Notification struct {
	entities.BaseModel

	// 收件人用户ID
	UserID string `gorm:"type:char(36);not null;index"`

	// 通知类型: answer / answer-accepted / admin-message
	Type enums.NotificationType `gorm:"type:varchar(20);not null"`

	// 通知文案
	Message string `gorm:"type:varchar(500);not null"`

	// 关联资源的跳转链接，可为空
	Link string `gorm:"type:varchar(255)"`

	// 已读标记
	IsRead bool `gorm:"default:false;index"`
}
