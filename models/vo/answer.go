package vo

import (
	"time"

	"github.com/Xushengqwer/qa_service/models/entities"
)

// AnswerResponse 定义了回答的响应数据结构
type AnswerResponse struct {
	ID             uint64    `json:"id"`              // 回答ID
	QuestionID     uint64    `json:"question_id"`     // 所属问题ID
	Content        string    `json:"content"`         // 回答内容
	AuthorID       string    `json:"author_id"`       // 作者ID
	AuthorUsername string    `json:"author_username"` // 作者用户名
	Votes          int64     `json:"votes"`           // 票数
	IsAccepted     bool      `json:"is_accepted"`     // 是否被采纳
	CreatedAt      time.Time `json:"created_at"`      // 创建时间
}

// AnswerListVO 定义单个问题下回答列表的响应结构
type AnswerListVO struct {
	Answers []*AnswerResponse `json:"answers"`
}

// VoteResultVO 定义投票接口的响应结构，问题与回答共用
type VoteResultVO struct {
	Votes int64 `json:"votes"` // 投票后的最新票数
}

// MapAnswerToResponseVO 将回答实体转换为响应VO。
func MapAnswerToResponseVO(a *entities.Answer) *AnswerResponse {
	if a == nil {
		return nil
	}
	return &AnswerResponse{
		ID:             a.ID,
		QuestionID:     a.QuestionID,
		Content:        a.Content,
		AuthorID:       a.AuthorID,
		AuthorUsername: a.AuthorUsername,
		Votes:          a.Votes,
		IsAccepted:     a.IsAccepted,
		CreatedAt:      a.CreatedAt,
	}
}

// MapAnswersToResponseVOs 批量转换回答实体列表。
func MapAnswersToResponseVOs(answers []*entities.Answer) []*AnswerResponse {
	if len(answers) == 0 {
		return []*AnswerResponse{}
	}
	responses := make([]*AnswerResponse, 0, len(answers))
	for _, a := range answers {
		if a == nil {
			continue
		}
		responses = append(responses, MapAnswerToResponseVO(a))
	}
	return responses
}
