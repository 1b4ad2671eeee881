package vo

// --- 用于成功响应且包含具体 Data 的包装器 ---

// QuestionResponseWrapper 对应 response.APIResponse[vo.QuestionResponse]
type QuestionResponseWrapper struct {
	Code    int              `json:"code" example:"0"`
	Message string           `json:"message,omitempty" example:"success"`
	Data    QuestionResponse `json:"data"`
}

// QuestionPageResponseWrapper 对应 response.APIResponse[vo.QuestionPageVO]
type QuestionPageResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    QuestionPageVO `json:"data"`
}

// PopularTagsResponseWrapper 对应 response.APIResponse[vo.PopularTagsVO]
type PopularTagsResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    PopularTagsVO `json:"data"`
}

// HotQuestionsResponseWrapper 对应 response.APIResponse[vo.HotQuestionsVO]
type HotQuestionsResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    HotQuestionsVO `json:"data"`
}

// AnswerResponseWrapper 对应 response.APIResponse[vo.AnswerResponse]
type AnswerResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    AnswerResponse `json:"data"`
}

// AnswerListResponseWrapper 对应 response.APIResponse[vo.AnswerListVO]
type AnswerListResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    AnswerListVO `json:"data"`
}

// VoteResultResponseWrapper 对应 response.APIResponse[vo.VoteResultVO]
type VoteResultResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    VoteResultVO `json:"data"`
}

// UserResponseWrapper 对应 response.APIResponse[vo.UserResponse]
type UserResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    UserResponse `json:"data"`
}

// UserProfileResponseWrapper 对应 response.APIResponse[vo.UserProfileVO]
type UserProfileResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    UserProfileVO `json:"data"`
}

// UserListResponseWrapper 对应 response.APIResponse[vo.UserListVO]
type UserListResponseWrapper struct {
	Code    int        `json:"code" example:"0"`
	Message string     `json:"message,omitempty" example:"success"`
	Data    UserListVO `json:"data"`
}

// UserStatsResponseWrapper 对应 response.APIResponse[vo.UserStatsVO]
type UserStatsResponseWrapper struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message,omitempty" example:"success"`
	Data    UserStatsVO `json:"data"`
}

// NotificationListResponseWrapper 对应 response.APIResponse[vo.NotificationListVO]
type NotificationListResponseWrapper struct {
	Code    int                `json:"code" example:"0"`
	Message string             `json:"message,omitempty" example:"success"`
	Data    NotificationListVO `json:"data"`
}

// UnreadCountResponseWrapper 对应 response.APIResponse[vo.UnreadCountVO]
type UnreadCountResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    UnreadCountVO `json:"data"`
}

// --- 用于错误响应 或 简单成功响应（只有 Code 和 Message） ---

// BaseResponseWrapper 代表一个只包含 Code 和 Message 的响应。
// 适用于错误情况（RespondError 返回时 Data 为 nil 且 omitempty）
// 或某些成功操作（如 DELETE）只返回 Code 和 Message。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`          // 成功时为 0, 错误时为具体错误码
	Message string `json:"message" example:"success"` // 成功或错误消息
}
