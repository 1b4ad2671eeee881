package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"
)

// Question 问题实体
// - 使用场景: 问题列表页与详情页的数据
// - 表名: questions (GORM 默认使用结构体名复数形式)
type Question struct {
	entities.BaseModel // 嵌入自定义的 BaseModel ,包含 ID, CreatedAt, UpdatedAt, DeletedAt，支持软删除

	// 标题，必填，最大长度255个字符
	Title string `gorm:"type:varchar(255);not null"`

	// 描述，富文本，存储为 TEXT 类型
	Description string `gorm:"type:text;not null"`

	// 作者ID，关联用户表
	// - 类型: char(36)，用户ID为UUID格式（36个字符）
	AuthorID string `gorm:"type:char(36);not null;index"`

	// 作者用户名
	// - 设计意图: 列表页直接展示作者用户名，避免再查一次用户表
	// - 注意: 该字段为冗余字段，创建时从用户表取出落库
	AuthorUsername string `gorm:"type:varchar(50);not null"`

	// 票数，允许为负；没有按用户去重，同一用户可以反复投票（既有产品行为）
	Votes int64 `gorm:"type:bigint;default:0"`

	// 回答数量，冗余计数
	// - 在回答创建/删除的同一事务中维护，等价于文档模型里问题持有的回答引用列表
	// - 列表页的 answered/unanswered 筛选直接基于该列
	AnswerCount int64 `gorm:"type:bigint;default:0"`

	// 被采纳回答的ID，可为空
	// - 不变式: 指向的回答必须属于本问题，且该回答的 is_accepted 为 true
	AcceptedAnswerID *uint64 `gorm:"type:bigint"`

	// 标签列表，按 Position 排序；单独成表以支持标签筛选与热门标签聚合
	Tags []QuestionTag `gorm:"foreignKey:QuestionID"`
}

// QuestionTag 问题的单个标签
// - 表名: question_tags
// - 标签是自由字符串，不做全局去重；热门标签通过 GROUP BY tag_name 聚合得出
type QuestionTag struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	QuestionID uint64 `gorm:"type:bigint;not null;index"`
	TagName    string `gorm:"type:varchar(50);not null;index"`
	Position   int    `gorm:"type:int;not null"` // 标签在问题里的顺序，从 0 开始
}
