package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/qa_service/models/dto"
	"github.com/Xushengqwer/qa_service/models/entities"
	"github.com/Xushengqwer/qa_service/models/enums"
	"github.com/Xushengqwer/qa_service/models/vo"
	"github.com/Xushengqwer/qa_service/mq/producer"
	"github.com/Xushengqwer/qa_service/myErrors"
	"github.com/Xushengqwer/qa_service/repo/mysql"
)

// QuestionService 定义了处理问题核心业务逻辑的接口。
type QuestionService interface {
	// CreateQuestion 处理用户发布新问题的业务流程。
	// - 被封禁的用户不能发布问题，返回 myErrors.ErrUserBanned。
	// - 作者用户名在创建时从用户表取出冗余落库。
	CreateQuestion(ctx context.Context, authorID string, req *dto.CreateQuestionRequest) (*vo.QuestionResponse, error)

	// GetQuestionByID 获取单个问题（标签按创建顺序）。
	GetQuestionByID(ctx context.Context, questionID uint64) (*vo.QuestionResponse, error)

	// UpdateQuestion 编辑问题的标题/描述/标签。
	// - 只有问题作者或管理员可以操作，否则返回 myErrors.ErrForbidden。
	UpdateQuestion(ctx context.Context, callerID string, callerRole enums.UserRole, questionID uint64, req *dto.UpdateQuestionRequest) (*vo.QuestionResponse, error)

	// DeleteQuestion 删除问题及其全部回答（同一事务），并异步通知下游服务。
	// - 只有问题作者或管理员可以操作。
	DeleteQuestion(ctx context.Context, callerID string, callerRole enums.UserRole, questionID uint64) error

	// VoteQuestion 对问题投票（+1/-1），返回最新票数。
	// - 不允许给自己的问题投票，返回 myErrors.ErrSelfVote。
	// - 同一用户重复投票会被如数累计（既有产品行为）。
	VoteQuestion(ctx context.Context, voterID string, questionID uint64, delta int64) (*vo.VoteResultVO, error)

	// AcceptAnswer 问题作者采纳一条回答。
	// - 只有问题作者本人可以采纳，否则返回 myErrors.ErrForbidden。
	// - 回答必须属于该问题，否则返回 myErrors.ErrAnswerMismatch。
	// - 换选时旧的被采纳回答在同一事务内被撤销标记。
	// - 事务提交后为回答作者创建通知（自采纳不通知），并异步发送采纳事件。
	AcceptAnswer(ctx context.Context, callerID string, questionID, answerID uint64) (*vo.QuestionResponse, error)
}

// questionService 是 QuestionService 接口的具体实现。
type questionService struct {
	questionRepo    mysql.QuestionRepository
	answerRepo      mysql.AnswerRepository
	userRepo        mysql.UserRepository
	notificationSvc NotificationService
	db              *gorm.DB                // GORM 数据库实例，主要用于事务管理
	kafkaSvc        *producer.KafkaProducer // Kafka 生产者，未接入消息队列时可为 nil
	logger          *core.ZapLogger
}

// NewQuestionService 是 questionService 的构造函数，通过依赖注入初始化服务实例。
func NewQuestionService(
	db *gorm.DB,
	questionRepo mysql.QuestionRepository,
	answerRepo mysql.AnswerRepository,
	userRepo mysql.UserRepository,
	notificationSvc NotificationService,
	kafkaSvc *producer.KafkaProducer,
	logger *core.ZapLogger,
) QuestionService {
	return &questionService{
		questionRepo:    questionRepo,
		answerRepo:      answerRepo,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
		db:              db,
		kafkaSvc:        kafkaSvc,
		logger:          logger,
	}
}

// canModify 判断调用者是否有权修改/删除资源：作者本人或管理员。
func canModify(callerID string, callerRole enums.UserRole, authorID string) bool {
	return callerID == authorID || callerRole == enums.RoleAdmin
}

// CreateQuestion 处理用户发布新问题的请求。
func (s *questionService) CreateQuestion(ctx context.Context, authorID string, req *dto.CreateQuestionRequest) (*vo.QuestionResponse, error) {
	// 1. 校验作者状态，封禁用户不能发布内容
	author, err := s.userRepo.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author.Banned {
		s.logger.Warn("被封禁用户尝试发布问题", zap.String("userID", authorID))
		return nil, myErrors.ErrUserBanned
	}

	// 2. 组装实体，标签按请求中的顺序落库
	tags := make([]entities.QuestionTag, 0, len(req.Tags))
	for i, tag := range req.Tags {
		tags = append(tags, entities.QuestionTag{TagName: tag, Position: i})
	}
	question := &entities.Question{
		Title:          req.Title,
		Description:    req.Description,
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
		Tags:           tags,
	}

	// 3. 在事务中写入问题与标签关联
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if repoErr := s.questionRepo.CreateQuestion(ctx, tx, question); repoErr != nil {
			return fmt.Errorf("创建问题失败: %w", repoErr)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("创建问题事务失败", zap.Error(err), zap.String("authorID", authorID))
		return nil, err
	}

	s.logger.Info("问题创建成功",
		zap.Uint64("questionID", question.ID),
		zap.String("authorID", authorID),
	)
	return vo.MapQuestionToResponseVO(question), nil
}

// GetQuestionByID 实现问题详情查询。
func (s *questionService) GetQuestionByID(ctx context.Context, questionID uint64) (*vo.QuestionResponse, error) {
	question, err := s.questionRepo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	return vo.MapQuestionToResponseVO(question), nil
}

// UpdateQuestion 实现问题编辑，带作者/管理员校验。
func (s *questionService) UpdateQuestion(ctx context.Context, callerID string, callerRole enums.UserRole, questionID uint64, req *dto.UpdateQuestionRequest) (*vo.QuestionResponse, error) {
	question, err := s.questionRepo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if !canModify(callerID, callerRole, question.AuthorID) {
		s.logger.Warn("用户尝试编辑他人的问题",
			zap.String("callerID", callerID),
			zap.Uint64("questionID", questionID),
			zap.String("authorID", question.AuthorID),
		)
		return nil, myErrors.ErrForbidden
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.Title != nil || req.Description != nil {
			if repoErr := s.questionRepo.UpdateQuestion(ctx, tx, questionID, req.Title, req.Description); repoErr != nil {
				return fmt.Errorf("更新问题失败: %w", repoErr)
			}
		}
		if req.Tags != nil {
			if repoErr := s.questionRepo.ReplaceTags(ctx, tx, questionID, *req.Tags); repoErr != nil {
				return fmt.Errorf("更新问题标签失败: %w", repoErr)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("编辑问题事务失败", zap.Error(err), zap.Uint64("questionID", questionID))
		return nil, err
	}

	// 重新读取以返回最新状态（含重建后的标签顺序）
	updated, err := s.questionRepo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	return vo.MapQuestionToResponseVO(updated), nil
}

// DeleteQuestion 实现问题及其回答的级联删除。
func (s *questionService) DeleteQuestion(ctx context.Context, callerID string, callerRole enums.UserRole, questionID uint64) error {
	question, err := s.questionRepo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return err
	}
	if !canModify(callerID, callerRole, question.AuthorID) {
		s.logger.Warn("用户尝试删除他人的问题",
			zap.String("callerID", callerID),
			zap.Uint64("questionID", questionID),
			zap.String("authorID", question.AuthorID),
		)
		return myErrors.ErrForbidden
	}

	var deletedAnswers int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, repoErr := s.answerRepo.DeleteByQuestionID(ctx, tx, questionID)
		if repoErr != nil {
			return fmt.Errorf("级联删除问题回答失败: %w", repoErr)
		}
		deletedAnswers = count

		if repoErr := s.questionRepo.DeleteQuestion(ctx, tx, questionID); repoErr != nil {
			return fmt.Errorf("删除问题失败: %w", repoErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// 异步发送删除事件，供搜索索引等下游同步
	if s.kafkaSvc != nil {
		go func(id uint64) {
			bgCtx := context.Background()
			if kafkaErr := s.kafkaSvc.SendQuestionDeletedEvent(bgCtx, id); kafkaErr != nil {
				s.logger.Error("发送问题删除事件失败", zap.Error(kafkaErr), zap.Uint64("questionID", id))
			}
		}(questionID)
	}

	s.logger.Info("问题及其回答删除完成",
		zap.Uint64("questionID", questionID),
		zap.Int64("deletedAnswers", deletedAnswers),
	)
	return nil
}

// VoteQuestion 实现问题投票。
func (s *questionService) VoteQuestion(ctx context.Context, voterID string, questionID uint64, delta int64) (*vo.VoteResultVO, error) {
	question, err := s.questionRepo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.AuthorID == voterID {
		return nil, myErrors.ErrSelfVote
	}

	votes, err := s.questionRepo.IncrementVotes(ctx, questionID, delta)
	if err != nil {
		return nil, err
	}
	return &vo.VoteResultVO{Votes: votes}, nil
}

// AcceptAnswer 实现回答采纳流程。
func (s *questionService) AcceptAnswer(ctx context.Context, callerID string, questionID, answerID uint64) (*vo.QuestionResponse, error) {
	question, err := s.questionRepo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	// 采纳是提问者的专属权利，管理员也不能代劳
	if question.AuthorID != callerID {
		s.logger.Warn("非问题作者尝试采纳回答",
			zap.String("callerID", callerID),
			zap.Uint64("questionID", questionID),
		)
		return nil, myErrors.ErrForbidden
	}

	answer, err := s.answerRepo.GetAnswerByID(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if answer.QuestionID != questionID {
		s.logger.Warn("采纳的回答不属于该问题",
			zap.Uint64("questionID", questionID),
			zap.Uint64("answerID", answerID),
			zap.Uint64("answerQuestionID", answer.QuestionID),
		)
		return nil, myErrors.ErrAnswerMismatch
	}

	// 换选同一条回答是幂等操作
	alreadyAccepted := question.AcceptedAnswerID != nil && *question.AcceptedAnswerID == answerID

	if !alreadyAccepted {
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			// 1. 撤销旧的被采纳回答（换选场景）
			if question.AcceptedAnswerID != nil {
				if repoErr := s.answerRepo.SetAccepted(ctx, tx, *question.AcceptedAnswerID, false); repoErr != nil {
					return fmt.Errorf("撤销旧的被采纳回答失败: %w", repoErr)
				}
			}
			// 2. 标记新的被采纳回答
			if repoErr := s.answerRepo.SetAccepted(ctx, tx, answerID, true); repoErr != nil {
				return fmt.Errorf("标记被采纳回答失败: %w", repoErr)
			}
			// 3. 更新问题上的指针
			if repoErr := s.questionRepo.SetAcceptedAnswer(ctx, tx, questionID, &answerID); repoErr != nil {
				return fmt.Errorf("更新问题被采纳回答指针失败: %w", repoErr)
			}
			return nil
		})
		if err != nil {
			s.logger.Error("采纳回答事务失败",
				zap.Error(err),
				zap.Uint64("questionID", questionID),
				zap.Uint64("answerID", answerID),
			)
			return nil, err
		}

		// 事务成功后为回答作者创建通知，失败只记录不影响主流程
		notification := newAnswerAcceptedNotification(answer.AuthorID, question.Title, questionID)
		if notifyErr := s.notificationSvc.Notify(ctx, answer.AuthorID, callerID, notification); notifyErr != nil {
			s.logger.Error("创建采纳通知失败",
				zap.Error(notifyErr),
				zap.Uint64("answerID", answerID),
				zap.String("answerAuthorID", answer.AuthorID),
			)
		}

		// 异步发送采纳事件，声望服务据此给回答作者加分
		if s.kafkaSvc != nil {
			go func(qID, aID uint64, authorID string) {
				bgCtx := context.Background()
				if kafkaErr := s.kafkaSvc.SendAnswerAcceptedEvent(bgCtx, qID, aID, authorID); kafkaErr != nil {
					s.logger.Error("发送采纳回答事件失败", zap.Error(kafkaErr), zap.Uint64("answerID", aID))
				}
			}(questionID, answerID, answer.AuthorID)
		}
	}

	updated, err := s.questionRepo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	return vo.MapQuestionToResponseVO(updated), nil
}
