package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/qa_service/models/enums"
	"github.com/Xushengqwer/qa_service/models/vo"
	"github.com/Xushengqwer/qa_service/myErrors"
	"github.com/Xushengqwer/qa_service/repo/mysql"
)

// UserService 定义了用户资料、统计与管理相关的业务逻辑接口。
// - 注册/登录由网关侧的认证服务完成，这里只有读与状态管理。
type UserService interface {
	// GetProfile 获取个人主页数据：用户资料 + 其全部问题与回答。
	GetProfile(ctx context.Context, userID string) (*vo.UserProfileVO, error)

	// GetStats 获取用户的贡献统计。
	// - totalVotes 是该用户全部问题与回答的票数合计。
	GetStats(ctx context.Context, userID string) (*vo.UserStatsVO, error)

	// ListUsers 管理员获取全部用户列表。
	ListUsers(ctx context.Context) (*vo.UserListVO, error)

	// SetBanStatus 管理员封禁/解封用户。
	// - 管理员账号不可被封禁，返回 myErrors.ErrAdminNotBannable。
	SetBanStatus(ctx context.Context, userID string, banned bool) (*vo.UserResponse, error)

	// ApplyReputationChange 将外部声望服务产出的增量落到用户表。
	// - 由 Kafka 消费者调用。
	ApplyReputationChange(ctx context.Context, userID string, delta int64) error
}

// userService 是 UserService 接口的具体实现。
type userService struct {
	userRepo     mysql.UserRepository
	questionRepo mysql.QuestionRepository
	answerRepo   mysql.AnswerRepository
	logger       *core.ZapLogger
}

// NewUserService 是 userService 的构造函数。
func NewUserService(
	userRepo mysql.UserRepository,
	questionRepo mysql.QuestionRepository,
	answerRepo mysql.AnswerRepository,
	logger *core.ZapLogger,
) UserService {
	return &userService{
		userRepo:     userRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		logger:       logger,
	}
}

// GetProfile 实现个人主页数据的聚合查询。
func (s *userService) GetProfile(ctx context.Context, userID string) (*vo.UserProfileVO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.ListQuestionsByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	answers, err := s.answerRepo.ListAnswersByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &vo.UserProfileVO{
		User:      vo.MapUserToResponseVO(user),
		Questions: vo.MapQuestionsToResponseVOs(questions),
		Answers:   vo.MapAnswersToResponseVOs(answers),
	}, nil
}

// GetStats 实现用户贡献统计的聚合查询。
func (s *userService) GetStats(ctx context.Context, userID string) (*vo.UserStatsVO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	questionsCount, err := s.questionRepo.CountByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	answersCount, err := s.answerRepo.CountByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	acceptedCount, err := s.answerRepo.CountAcceptedByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	questionVotes, err := s.questionRepo.SumVotesByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	answerVotes, err := s.answerRepo.SumVotesByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &vo.UserStatsVO{
		QuestionsCount:       questionsCount,
		AnswersCount:         answersCount,
		AcceptedAnswersCount: acceptedCount,
		TotalVotes:           questionVotes + answerVotes,
		Reputation:           user.Reputation,
		MemberSince:          user.CreatedAt,
	}, nil
}

// ListUsers 实现用户列表查询。
func (s *userService) ListUsers(ctx context.Context) (*vo.UserListVO, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return &vo.UserListVO{Users: vo.MapUsersToResponseVOs(users)}, nil
}

// SetBanStatus 实现封禁/解封。
func (s *userService) SetBanStatus(ctx context.Context, userID string, banned bool) (*vo.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if banned && user.Role == enums.RoleAdmin {
		s.logger.Warn("尝试封禁管理员账号被拒绝", zap.String("userID", userID))
		return nil, myErrors.ErrAdminNotBannable
	}

	if user.Banned != banned {
		if err := s.userRepo.SetBanned(ctx, userID, banned); err != nil {
			return nil, err
		}
		user.Banned = banned
		s.logger.Info("用户封禁状态已更新",
			zap.String("userID", userID),
			zap.Bool("banned", banned),
		)
	}

	return vo.MapUserToResponseVO(user), nil
}

// ApplyReputationChange 实现声望增量落库。
func (s *userService) ApplyReputationChange(ctx context.Context, userID string, delta int64) error {
	if delta == 0 {
		return nil
	}
	if err := s.userRepo.AddReputation(ctx, userID, delta); err != nil {
		return err
	}
	s.logger.Info("用户声望已更新", zap.String("userID", userID), zap.Int64("delta", delta))
	return nil
}
