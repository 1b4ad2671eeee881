package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/qa_service/models/dto"
	"github.com/Xushengqwer/qa_service/models/entities"
	"github.com/Xushengqwer/qa_service/models/vo"
	"github.com/Xushengqwer/qa_service/myErrors"
	"github.com/Xushengqwer/qa_service/repo/mysql"
)

// AnswerService 定义了处理回答核心业务逻辑的接口。
type AnswerService interface {
	// CreateAnswer 处理用户发布回答的业务流程。
	// - 被封禁的用户不能发布回答，返回 myErrors.ErrUserBanned。
	// - 回答写入与问题回答计数的维护在同一事务内完成。
	// - 事务提交后为问题作者创建通知（自问自答不通知）。
	CreateAnswer(ctx context.Context, authorID string, req *dto.CreateAnswerRequest) (*vo.AnswerResponse, error)

	// GetAnswerByID 获取单条回答。
	GetAnswerByID(ctx context.Context, answerID uint64) (*vo.AnswerResponse, error)

	// ListByQuestion 获取问题下的全部回答，被采纳的在前，其后按票数与时间排序。
	ListByQuestion(ctx context.Context, questionID uint64) (*vo.AnswerListVO, error)

	// UpdateAnswer 编辑回答内容。
	// - 仅限回答作者本人操作（管理员也不行），否则返回 myErrors.ErrForbidden。
	UpdateAnswer(ctx context.Context, callerID string, answerID uint64, req *dto.UpdateAnswerRequest) (*vo.AnswerResponse, error)

	// DeleteAnswer 删除回答。
	// - 仅限回答作者本人操作。
	// - 同一事务内回扣问题的回答计数；被采纳的回答删除时同时清空问题上的采纳指针。
	DeleteAnswer(ctx context.Context, callerID string, answerID uint64) error

	// VoteAnswer 对回答投票（+1/-1），返回最新票数。
	// - 不允许给自己的回答投票，返回 myErrors.ErrSelfVote。
	VoteAnswer(ctx context.Context, voterID string, answerID uint64, delta int64) (*vo.VoteResultVO, error)
}

// answerService 是 AnswerService 接口的具体实现。
type answerService struct {
	answerRepo      mysql.AnswerRepository
	questionRepo    mysql.QuestionRepository
	userRepo        mysql.UserRepository
	notificationSvc NotificationService
	db              *gorm.DB // GORM 数据库实例，主要用于事务管理
	logger          *core.ZapLogger
}

// NewAnswerService 是 answerService 的构造函数。
func NewAnswerService(
	db *gorm.DB,
	answerRepo mysql.AnswerRepository,
	questionRepo mysql.QuestionRepository,
	userRepo mysql.UserRepository,
	notificationSvc NotificationService,
	logger *core.ZapLogger,
) AnswerService {
	return &answerService{
		answerRepo:      answerRepo,
		questionRepo:    questionRepo,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
		db:              db,
		logger:          logger,
	}
}

// CreateAnswer 处理用户发布回答的请求。
func (s *answerService) CreateAnswer(ctx context.Context, authorID string, req *dto.CreateAnswerRequest) (*vo.AnswerResponse, error) {
	// 1. 校验作者状态
	author, err := s.userRepo.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author.Banned {
		s.logger.Warn("被封禁用户尝试发布回答", zap.String("userID", authorID))
		return nil, myErrors.ErrUserBanned
	}

	// 2. 校验问题存在（软删除的问题不能再被回答）
	question, err := s.questionRepo.GetQuestionByID(ctx, req.QuestionID)
	if err != nil {
		return nil, err
	}

	answer := &entities.Answer{
		QuestionID:     question.ID,
		Content:        req.Content,
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
	}

	// 3. 在事务中写入回答并维护问题的回答计数
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if repoErr := s.answerRepo.CreateAnswer(ctx, tx, answer); repoErr != nil {
			return fmt.Errorf("创建回答失败: %w", repoErr)
		}
		if repoErr := s.questionRepo.AdjustAnswerCount(ctx, tx, question.ID, 1); repoErr != nil {
			return fmt.Errorf("更新问题回答计数失败: %w", repoErr)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("创建回答事务失败",
			zap.Error(err),
			zap.Uint64("questionID", req.QuestionID),
			zap.String("authorID", authorID),
		)
		return nil, err
	}

	// 4. 通知问题作者，失败只记录不影响主流程
	notification := newAnswerNotification(question.AuthorID, author.Username, question.Title, question.ID)
	if notifyErr := s.notificationSvc.Notify(ctx, question.AuthorID, authorID, notification); notifyErr != nil {
		s.logger.Error("创建新回答通知失败",
			zap.Error(notifyErr),
			zap.Uint64("questionID", question.ID),
			zap.String("questionAuthorID", question.AuthorID),
		)
	}

	s.logger.Info("回答创建成功",
		zap.Uint64("answerID", answer.ID),
		zap.Uint64("questionID", question.ID),
		zap.String("authorID", authorID),
	)
	return vo.MapAnswerToResponseVO(answer), nil
}

// GetAnswerByID 实现单条回答查询。
func (s *answerService) GetAnswerByID(ctx context.Context, answerID uint64) (*vo.AnswerResponse, error) {
	answer, err := s.answerRepo.GetAnswerByID(ctx, answerID)
	if err != nil {
		return nil, err
	}
	return vo.MapAnswerToResponseVO(answer), nil
}

// ListByQuestion 实现问题下回答列表查询。
func (s *answerService) ListByQuestion(ctx context.Context, questionID uint64) (*vo.AnswerListVO, error) {
	// 先确认问题存在，避免对已删除问题返回空列表造成歧义
	if _, err := s.questionRepo.GetQuestionByID(ctx, questionID); err != nil {
		return nil, err
	}

	answers, err := s.answerRepo.ListByQuestionID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	return &vo.AnswerListVO{Answers: vo.MapAnswersToResponseVOs(answers)}, nil
}

// UpdateAnswer 实现回答编辑，仅作者本人可操作。
func (s *answerService) UpdateAnswer(ctx context.Context, callerID string, answerID uint64, req *dto.UpdateAnswerRequest) (*vo.AnswerResponse, error) {
	answer, err := s.answerRepo.GetAnswerByID(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if callerID != answer.AuthorID {
		s.logger.Warn("用户尝试编辑他人的回答",
			zap.String("callerID", callerID),
			zap.Uint64("answerID", answerID),
			zap.String("authorID", answer.AuthorID),
		)
		return nil, myErrors.ErrForbidden
	}

	if err := s.answerRepo.UpdateContent(ctx, answerID, req.Content); err != nil {
		return nil, err
	}

	updated, err := s.answerRepo.GetAnswerByID(ctx, answerID)
	if err != nil {
		return nil, err
	}
	return vo.MapAnswerToResponseVO(updated), nil
}

// DeleteAnswer 实现回答删除及关联状态的回收，仅作者本人可操作。
func (s *answerService) DeleteAnswer(ctx context.Context, callerID string, answerID uint64) error {
	answer, err := s.answerRepo.GetAnswerByID(ctx, answerID)
	if err != nil {
		return err
	}
	if callerID != answer.AuthorID {
		s.logger.Warn("用户尝试删除他人的回答",
			zap.String("callerID", callerID),
			zap.Uint64("answerID", answerID),
			zap.String("authorID", answer.AuthorID),
		)
		return myErrors.ErrForbidden
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if repoErr := s.answerRepo.DeleteAnswer(ctx, tx, answerID); repoErr != nil {
			return fmt.Errorf("删除回答失败: %w", repoErr)
		}
		if repoErr := s.questionRepo.AdjustAnswerCount(ctx, tx, answer.QuestionID, -1); repoErr != nil {
			return fmt.Errorf("回扣问题回答计数失败: %w", repoErr)
		}
		// 删除的是被采纳的回答时，同时清空问题上的采纳指针
		if answer.IsAccepted {
			if repoErr := s.questionRepo.SetAcceptedAnswer(ctx, tx, answer.QuestionID, nil); repoErr != nil {
				return fmt.Errorf("清空问题被采纳回答指针失败: %w", repoErr)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("删除回答事务失败", zap.Error(err), zap.Uint64("answerID", answerID))
		return err
	}

	s.logger.Info("回答删除完成",
		zap.Uint64("answerID", answerID),
		zap.Uint64("questionID", answer.QuestionID),
		zap.Bool("wasAccepted", answer.IsAccepted),
	)
	return nil
}

// VoteAnswer 实现回答投票。
func (s *answerService) VoteAnswer(ctx context.Context, voterID string, answerID uint64, delta int64) (*vo.VoteResultVO, error) {
	answer, err := s.answerRepo.GetAnswerByID(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if answer.AuthorID == voterID {
		return nil, myErrors.ErrSelfVote
	}

	votes, err := s.answerRepo.IncrementVotes(ctx, answerID, delta)
	if err != nil {
		return nil, err
	}
	return &vo.VoteResultVO{Votes: votes}, nil
}
