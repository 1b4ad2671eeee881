package vo

import (
	"time"

	"github.com/Xushengqwer/qa_service/models/entities"
	"github.com/Xushengqwer/qa_service/models/enums"
)

// UserResponse 定义了用户的响应数据结构。
// - 实体的 Password 列带有 json:"-"，这里再经过一次显式映射，
//   保证任何出口都不可能带出密码哈希。
type UserResponse struct {
	ID             string         `json:"id"`
	Username       string         `json:"username"`
	Email          string         `json:"email"`
	Role           enums.UserRole `json:"role"`
	Reputation     int64          `json:"reputation"`
	Banned         bool           `json:"banned"`
	ProfilePicture string         `json:"profile_picture"`
	CreatedAt      time.Time      `json:"created_at"`
}

// UserProfileVO 定义个人主页接口的响应结构：用户资料加上其问题与回答列表
type UserProfileVO struct {
	User      *UserResponse       `json:"user"`
	Questions []*QuestionResponse `json:"questions"`
	Answers   []*AnswerResponse   `json:"answers"`
}

// UserListVO 定义管理员用户列表接口的响应结构
type UserListVO struct {
	Users []*UserResponse `json:"users"`
}

// UserStatsVO 定义用户统计接口的响应结构
type UserStatsVO struct {
	QuestionsCount       int64     `json:"questionsCount"`       // 提问数
	AnswersCount         int64     `json:"answersCount"`         // 回答数
	AcceptedAnswersCount int64     `json:"acceptedAnswersCount"` // 被采纳的回答数
	TotalVotes           int64     `json:"totalVotes"`           // 问题与回答的票数合计
	Reputation           int64     `json:"reputation"`           // 声望
	MemberSince          time.Time `json:"memberSince"`          // 注册时间
}

// MapUserToResponseVO 将用户实体转换为响应VO（不含密码）。
func MapUserToResponseVO(u *entities.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Role:           u.Role,
		Reputation:     u.Reputation,
		Banned:         u.Banned,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
}

// MapUsersToResponseVOs 批量转换用户实体列表。
func MapUsersToResponseVOs(users []*entities.User) []*UserResponse {
	if len(users) == 0 {
		return []*UserResponse{}
	}
	responses := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		if u == nil {
			continue
		}
		responses = append(responses, MapUserToResponseVO(u))
	}
	return responses
}
