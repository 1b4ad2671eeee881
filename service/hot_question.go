package service

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/qa_service/config"
	"github.com/Xushengqwer/qa_service/constant"
	"github.com/Xushengqwer/qa_service/models/vo"
	"github.com/Xushengqwer/qa_service/myErrors"
	"github.com/Xushengqwer/qa_service/repo/mysql"
	"github.com/Xushengqwer/qa_service/repo/redis"
)

// HotQuestionService 定义了热门问题榜单的查询接口。
// - 数据优先来自 Redis 快照（定时任务重建）；缓存未命中时回源 MySQL。
type HotQuestionService interface {
	// GetHotQuestions 按票数从高到低返回热门问题列表。
	GetHotQuestions(ctx context.Context) (*vo.HotQuestionsVO, error)
}

// hotQuestionService 是 HotQuestionService 接口的具体实现。
type hotQuestionService struct {
	cache         redis.HotQuestionCache
	questionBatch mysql.QuestionBatchRepository
	listSize      int
	logger        *core.ZapLogger
}

// NewHotQuestionService 是 hotQuestionService 的构造函数。
func NewHotQuestionService(
	cache redis.HotQuestionCache,
	questionBatch mysql.QuestionBatchRepository,
	hotCfg config.HotQuestionConfig,
	logger *core.ZapLogger,
) HotQuestionService {
	listSize := hotCfg.ListSize
	if listSize <= 0 {
		listSize = constant.HotQuestionsDefaultListSize
	}
	return &hotQuestionService{
		cache:         cache,
		questionBatch: questionBatch,
		listSize:      listSize,
		logger:        logger,
	}
}

// GetHotQuestions 实现带回源的榜单查询。
func (s *hotQuestionService) GetHotQuestions(ctx context.Context) (*vo.HotQuestionsVO, error) {
	questions, err := s.cache.GetHotQuestions(ctx)
	if err == nil {
		return &vo.HotQuestionsVO{Questions: questions}, nil
	}

	if !errors.Is(err, myErrors.ErrCacheMiss) {
		// Redis 故障时同样回源，保证接口可用性
		s.logger.Error("读取热门问题缓存失败，回源数据库", zap.Error(err))
	} else {
		s.logger.Info("热门问题缓存未命中，回源数据库", zap.Int("listSize", s.listSize))
	}

	fromDB, dbErr := s.questionBatch.GetTopQuestionsByVotes(ctx, s.listSize)
	if dbErr != nil {
		s.logger.Error("热门问题回源查询失败", zap.Error(dbErr))
		return nil, dbErr
	}
	return &vo.HotQuestionsVO{Questions: vo.MapQuestionsToResponseVOs(fromDB)}, nil
}
