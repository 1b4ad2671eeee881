package dto

import "github.com/Xushengqwer/qa_service/models/enums"

// BroadcastRequest 定义管理员平台广播的请求数据结构
// - Type 缺省时落为 admin-message
type BroadcastRequest struct {
	Message string                 `json:"message" binding:"required,max=500"`
	Type    enums.NotificationType `json:"type" binding:"omitempty,oneof=answer answer-accepted admin-message"`
}
