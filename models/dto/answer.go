package dto

// CreateAnswerRequest 定义了发布回答的请求数据结构
type CreateAnswerRequest struct {
	QuestionID uint64 `json:"questionId" binding:"required"` // 所属问题ID，必填
	Content    string `json:"content" binding:"required"`    // 回答内容，必填
}

// UpdateAnswerRequest 定义了编辑回答的请求数据结构
type UpdateAnswerRequest struct {
	Content string `json:"content" binding:"required"` // 新的回答内容
}
