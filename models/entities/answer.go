package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"
)

// Answer 回答实体
// - 表名: answers
// - 关系: 属于一个 Question 与一个 User；问题删除时回答在同一事务内级联删除
type Answer struct {
	entities.BaseModel

	// 所属问题ID
	QuestionID uint64 `gorm:"type:bigint;not null;index"`

	// 回答内容
	Content string `gorm:"type:text;not null"`

	// 作者ID，char(36) UUID
	AuthorID string `gorm:"type:char(36);not null;index"`

	// 作者用户名，冗余字段，创建时落库
	AuthorUsername string `gorm:"type:varchar(50);not null"`

	// 票数，同问题一样不做按用户去重
	Votes int64 `gorm:"type:bigint;default:0"`

	// 是否被采纳
	// - 不变式: 同一问题下至多一条回答为 true，且与问题的 accepted_answer_id 一致
	IsAccepted bool `gorm:"default:false"`
}
