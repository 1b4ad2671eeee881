package enums

// NotificationType 表示通知的业务类型。
type NotificationType string

const (
	NotificationTypeAnswer         NotificationType = "answer"          // 有人回答了你的问题
	NotificationTypeAnswerAccepted NotificationType = "answer-accepted" // 你的回答被采纳
	NotificationTypeAdminMessage   NotificationType = "admin-message"   // 管理员广播
)
