package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/qa_service/models/dto"
	"github.com/Xushengqwer/qa_service/models/vo"
	"github.com/Xushengqwer/qa_service/repo/mysql"
)

// QuestionListService 定义了问题列表与标签聚合相关的查询接口。
// - 与写路径 (QuestionService) 分开，读路径不需要事务与事件依赖。
type QuestionListService interface {
	// ListQuestions 按条件分页查询问题列表。
	// - 支持标签筛选、标题/描述子串搜索（大小写不敏感）、是否已有回答筛选。
	// - totalPages = ceil(total / limit)。
	ListQuestions(ctx context.Context, req *dto.ListQuestionsRequest) (*vo.QuestionPageVO, error)

	// PopularTags 获取被引用次数最多的标签列表。
	// - limit <= 0 时使用默认值 20。
	PopularTags(ctx context.Context, limit int) (*vo.PopularTagsVO, error)
}

// questionListService 是 QuestionListService 接口的具体实现。
type questionListService struct {
	questionRepo mysql.QuestionRepository
	logger       *core.ZapLogger
}

// NewQuestionListService 是 questionListService 的构造函数。
func NewQuestionListService(questionRepo mysql.QuestionRepository, logger *core.ZapLogger) QuestionListService {
	return &questionListService{
		questionRepo: questionRepo,
		logger:       logger,
	}
}

// ListQuestions 实现分页查询与分页元信息的计算。
func (s *questionListService) ListQuestions(ctx context.Context, req *dto.ListQuestionsRequest) (*vo.QuestionPageVO, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}

	questions, total, err := s.questionRepo.ListQuestions(ctx, req)
	if err != nil {
		s.logger.Error("问题列表查询失败", zap.Error(err), zap.Any("params", req))
		return nil, err
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	return &vo.QuestionPageVO{
		Questions:  vo.MapQuestionsToResponseVOs(questions),
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// PopularTags 实现热门标签聚合。
func (s *questionListService) PopularTags(ctx context.Context, limit int) (*vo.PopularTagsVO, error) {
	rows, err := s.questionRepo.PopularTags(ctx, limit)
	if err != nil {
		return nil, err
	}

	tags := make([]*vo.TagCountVO, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, &vo.TagCountVO{Tag: row.TagName, Count: row.Count})
	}
	return &vo.PopularTagsVO{Tags: tags}, nil
}
