package dto

// CreateQuestionRequest 定义了发布问题的请求数据结构
// - 添加了 binding 标签用于输入验证
type CreateQuestionRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`              // 问题标题，必填
	Description string   `json:"description" binding:"required"`                // 问题描述（富文本），必填
	Tags        []string `json:"tags" binding:"required,min=1,max=5,dive,max=50"` // 标签列表，必填，至多5个
}

// UpdateQuestionRequest 定义了编辑问题的请求数据结构
// - 指针字段为 nil 表示不更新对应字段
type UpdateQuestionRequest struct {
	Title       *string   `json:"title" binding:"omitempty,max=255"`
	Description *string   `json:"description" binding:"omitempty"`
	Tags        *[]string `json:"tags" binding:"omitempty,min=1,max=5,dive,max=50"`
}

// ListQuestionsRequest 定义问题列表的查询参数（页码分页）
type ListQuestionsRequest struct {
	Page     int     `form:"page,default=1" binding:"omitempty,gte=1"`            // 页码，从1开始
	Limit    int     `form:"limit,default=10" binding:"omitempty,gte=1,lte=100"`  // 每页数量
	Tag      *string `form:"tag" binding:"omitempty,max=50"`                      // 标签等值筛选
	Search   *string `form:"search" binding:"omitempty,max=255"`                  // 标题/描述子串搜索，大小写不敏感
	Sort     string  `form:"sort,default=newest" binding:"omitempty,oneof=newest oldest"` // 排序方式
	Answered *bool   `form:"answered"`                                            // true=已有回答, false=零回答, 缺省=不筛选
}

// VoteRequest 定义投票请求体，问题与回答共用
type VoteRequest struct {
	Vote int `json:"vote" binding:"required,oneof=1 -1"` // +1 赞成, -1 反对
}
