package constant

import "time"

// 定时任务相关的默认值。
const (
	// HotQuestionsDefaultListSize 是热门问题榜单的默认长度，
	// 在配置未给出 hotQuestionConfig.listSize 时使用。
	HotQuestionsDefaultListSize = 50

	// HotQuestionsDefaultCronSpec 是榜单刷新任务的默认调度表达式。
	HotQuestionsDefaultCronSpec = "*/10 * * * *"

	// NotificationCleanupCronSpec 是已读通知清理任务的调度表达式，每天凌晨执行。
	NotificationCleanupCronSpec = "30 3 * * *"

	// NotificationRetention 定义已读通知的保留时长，超过后由清理任务删除。
	NotificationRetention = 30 * 24 * time.Hour
)
