package vo

import (
	"time"

	"github.com/Xushengqwer/qa_service/models/entities"
)

// QuestionResponse 定义了问题的响应数据结构
type QuestionResponse struct {
	ID               uint64    `json:"id"`               // 问题ID
	Title            string    `json:"title"`            // 标题
	Description      string    `json:"description"`      // 描述（富文本）
	AuthorID         string    `json:"author_id"`        // 作者ID
	AuthorUsername   string    `json:"author_username"`  // 作者用户名
	Tags             []string  `json:"tags"`             // 标签，保持创建时的顺序
	Votes            int64     `json:"votes"`            // 票数
	AnswerCount      int64     `json:"answer_count"`     // 回答数量
	AcceptedAnswerID *uint64   `json:"accepted_answer_id"` // 被采纳回答ID，可为 null
	CreatedAt        time.Time `json:"created_at"`       // 创建时间
	UpdatedAt        time.Time `json:"updated_at"`       // 更新时间
}

// QuestionPageVO 定义问题列表分页查询的响应结构。
// - totalPages = ceil(total / limit)，与前端分页组件约定一致。
type QuestionPageVO struct {
	Questions  []*QuestionResponse `json:"questions"`  // 当前页的问题列表
	Total      int64               `json:"total"`      // 符合条件的总记录数
	Page       int                 `json:"page"`       // 当前页码（从1开始）
	TotalPages int64               `json:"totalPages"` // 总页数
}

// TagCountVO 表示单个标签及其被引用次数
type TagCountVO struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}

// PopularTagsVO 定义热门标签接口的响应结构
type PopularTagsVO struct {
	Tags []*TagCountVO `json:"tags"`
}

// HotQuestionsVO 定义热门问题榜单接口的响应结构
type HotQuestionsVO struct {
	Questions []*QuestionResponse `json:"questions"`
}

// MapQuestionToResponseVO 将问题实体转换为响应VO。
// tags 为 nil 时使用实体上已预加载的 Tags 关联。
func MapQuestionToResponseVO(q *entities.Question) *QuestionResponse {
	if q == nil {
		return nil
	}
	tags := make([]string, 0, len(q.Tags))
	for _, t := range q.Tags {
		tags = append(tags, t.TagName)
	}
	return &QuestionResponse{
		ID:               q.ID,
		Title:            q.Title,
		Description:      q.Description,
		AuthorID:         q.AuthorID,
		AuthorUsername:   q.AuthorUsername,
		Tags:             tags,
		Votes:            q.Votes,
		AnswerCount:      q.AnswerCount,
		AcceptedAnswerID: q.AcceptedAnswerID,
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
	}
}

// MapQuestionsToResponseVOs 批量转换问题实体列表。
func MapQuestionsToResponseVOs(questions []*entities.Question) []*QuestionResponse {
	if len(questions) == 0 {
		return []*QuestionResponse{} // 返回空切片而不是nil，便于前端处理
	}
	responses := make([]*QuestionResponse, 0, len(questions))
	for _, q := range questions {
		if q == nil {
			continue
		}
		responses = append(responses, MapQuestionToResponseVO(q))
	}
	return responses
}
