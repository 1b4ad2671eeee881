// Package events 定义本服务通过 Kafka 与下游服务交换的事件结构。
// 事件载荷只携带标识与必要的冗余字段，消费方需要完整数据时自行回查。
package events

import "time"

// QuestionDeletedEvent 在问题（连同其回答）删除后发出，
// 供搜索索引等下游服务同步数据。
type QuestionDeletedEvent struct {
	EventID    string    `json:"event_id"`
	Timestamp  time.Time `json:"timestamp"`
	QuestionID uint64    `json:"question_id"`
}

// AnswerAcceptedEvent 在回答被采纳后发出，声望服务据此给回答作者加分。
type AnswerAcceptedEvent struct {
	EventID        string    `json:"event_id"`
	Timestamp      time.Time `json:"timestamp"`
	QuestionID     uint64    `json:"question_id"`
	AnswerID       uint64    `json:"answer_id"`
	AnswerAuthorID string    `json:"answer_author_id"`
}

// ReputationChangedEvent 由外部声望服务产出，本服务消费后把增量落到用户表。
// Delta 为带符号的声望变化量。
type ReputationChangedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
	Delta     int64     `json:"delta"`
	Reason    string    `json:"reason,omitempty"`
}
