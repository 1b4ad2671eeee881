package mysql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/qa_service/models/dto"
	"github.com/Xushengqwer/qa_service/models/entities"
)

// TagCount 是热门标签聚合查询的单行结果。
type TagCount struct {
	TagName string
	Count   int64
}

// QuestionRepository 定义了问题数据在 MySQL 中的持久化操作接口。
// 接口的设计旨在将数据访问逻辑与业务逻辑（服务层）解耦。
type QuestionRepository interface {
	// CreateQuestion 持久化一个新的问题记录（连同其标签关联）。
	// - 这是问题生命周期的起点，对应用户发布问题的操作。
	CreateQuestion(ctx context.Context, db *gorm.DB, question *entities.Question) error

	// GetQuestionByID 根据单个 ID 检索问题信息，标签按创建顺序预加载。
	// - 如果未找到问题，返回 commonerrors.ErrRepoNotFound 错误。
	GetQuestionByID(ctx context.Context, id uint64) (*entities.Question, error)

	// UpdateQuestion 更新指定问题的标题/描述。
	// - 传入 nil 表示不更新对应字段；总是会刷新 updated_at。
	UpdateQuestion(ctx context.Context, db *gorm.DB, questionID uint64, title *string, description *string) error

	// ReplaceTags 用新的标签列表整体替换问题现有的标签关联。
	ReplaceTags(ctx context.Context, db *gorm.DB, questionID uint64, tags []string) error

	// DeleteQuestion 对指定问题执行软删除，并硬删除其标签关联。
	// - 级联删除回答由 AnswerRepository.DeleteByQuestionID 在同一事务内完成。
	DeleteQuestion(ctx context.Context, db *gorm.DB, id uint64) error

	// ListQuestions 按条件分页查询问题列表。
	// - 筛选: 标签等值、标题/描述子串（大小写不敏感）、是否已有回答。
	// - 排序: newest (created_at DESC) 或 oldest (created_at ASC)。
	// - 返回: 问题列表（标签已预加载）、符合条件的总记录数、错误。
	ListQuestions(ctx context.Context, params *dto.ListQuestionsRequest) ([]*entities.Question, int64, error)

	// ListQuestionsByAuthor 获取指定作者的全部问题，按创建时间倒序。
	ListQuestionsByAuthor(ctx context.Context, authorID string) ([]*entities.Question, error)

	// IncrementVotes 原子地对问题票数应用带符号的增量，并返回最新票数。
	// - 未找到问题时返回 commonerrors.ErrRepoNotFound。
	IncrementVotes(ctx context.Context, questionID uint64, delta int64) (int64, error)

	// AdjustAnswerCount 在回答创建/删除的事务中维护问题的回答计数。
	AdjustAnswerCount(ctx context.Context, db *gorm.DB, questionID uint64, delta int64) error

	// SetAcceptedAnswer 更新问题的被采纳回答指针，answerID 为 nil 表示清空。
	SetAcceptedAnswer(ctx context.Context, db *gorm.DB, questionID uint64, answerID *uint64) error

	// PopularTags 聚合全部在线问题的标签引用次数。
	// - 按次数降序排列，次数相同时先出现的标签在前，截取到 limit 条。
	PopularTags(ctx context.Context, limit int) ([]TagCount, error)

	// CountByAuthor 统计指定作者的提问数。
	CountByAuthor(ctx context.Context, authorID string) (int64, error)

	// SumVotesByAuthor 汇总指定作者全部问题的票数。
	SumVotesByAuthor(ctx context.Context, authorID string) (int64, error)
}

// questionRepository 是 QuestionRepository 接口针对 MySQL 的具体实现。
type questionRepository struct {
	db     *gorm.DB        // GORM 数据库实例
	logger *core.ZapLogger // 日志记录器实例
}

// NewQuestionRepository 是 questionRepository 的构造函数。
func NewQuestionRepository(db *gorm.DB, logger *core.ZapLogger) QuestionRepository {
	return &questionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateQuestion 实现问题的数据库插入操作。
// question.Tags 中的关联记录会随主记录一并写入。
func (r *questionRepository) CreateQuestion(ctx context.Context, db *gorm.DB, question *entities.Question) error {
	if err := db.WithContext(ctx).Create(question).Error; err != nil {
		// 在仓库层，通常直接返回数据库错误，由服务层决定如何处理或包装。
		return err
	}
	return nil
}

// GetQuestionByID 实现根据单个 ID 获取问题。
func (r *questionRepository) GetQuestionByID(ctx context.Context, id uint64) (*entities.Question, error) {
	var question entities.Question

	err := r.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&question, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取问题未找到", zap.Uint64("questionID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取问题数据库查询失败", zap.Uint64("questionID", id), zap.Error(err))
		return nil, err
	}

	return &question, nil
}

// UpdateQuestion 实现问题标题/描述的更新。
// 参数为指针类型，如果传入 nil，则对应字段不会被更新。
func (r *questionRepository) UpdateQuestion(ctx context.Context, db *gorm.DB, questionID uint64, title *string, description *string) error {
	updateMap := make(map[string]interface{})

	if title != nil {
		updateMap["title"] = *title
	}
	if description != nil {
		updateMap["description"] = *description
	}

	if len(updateMap) == 0 {
		r.logger.Info("没有提供任何有效的字段来更新问题 (所有可选参数均为nil)",
			zap.Uint64("questionID", questionID),
		)
		return nil
	}

	// 总是更新 updated_at 字段
	updateMap["updated_at"] = time.Now()

	result := db.WithContext(ctx).
		Model(&entities.Question{}).
		Where("id = ? AND deleted_at IS NULL", questionID).
		Updates(updateMap)

	if result.Error != nil {
		r.logger.Error("更新问题数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("questionID", questionID),
		)
		return result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新问题但未找到记录或记录已被删除", zap.Uint64("questionID", questionID))
		return commonerrors.ErrRepoNotFound
	}

	return nil
}

// ReplaceTags 先清空再按顺序重建问题的标签关联。
// 必须在与问题更新相同的事务内调用。
func (r *questionRepository) ReplaceTags(ctx context.Context, db *gorm.DB, questionID uint64, tags []string) error {
	if err := db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Delete(&entities.QuestionTag{}).Error; err != nil {
		return fmt.Errorf("清空问题标签失败: %w", err)
	}

	if len(tags) == 0 {
		return nil
	}

	rows := make([]entities.QuestionTag, 0, len(tags))
	for i, tag := range tags {
		rows = append(rows, entities.QuestionTag{
			QuestionID: questionID,
			TagName:    tag,
			Position:   i,
		})
	}
	if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("重建问题标签失败: %w", err)
	}
	return nil
}

// DeleteQuestion 实现问题的软删除与标签关联的硬删除。
// db 参数是执行此操作的数据库句柄 (可以是普通连接，也可以是事务 tx)。
func (r *questionRepository) DeleteQuestion(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}

	// 标签表不参与软删除，直接清掉，避免热门标签聚合计入已删问题
	if err := db.WithContext(ctx).
		Where("question_id = ?", id).
		Delete(&entities.QuestionTag{}).Error; err != nil {
		return err
	}
	return nil
}

// ListQuestions 实现按条件分页查询问题列表。
func (r *questionRepository) ListQuestions(ctx context.Context, params *dto.ListQuestionsRequest) ([]*entities.Question, int64, error) {
	var questions []*entities.Question
	var totalCount int64

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 10
	}

	// --- 构建基础查询 ---
	query := r.db.WithContext(ctx).Model(&entities.Question{})
	countQuery := r.db.WithContext(ctx).Model(&entities.Question{}) // 用于计数的查询

	// --- 应用筛选条件 ---
	applyFilters := func(q *gorm.DB) *gorm.DB {
		if params.Tag != nil && *params.Tag != "" {
			q = q.Where("EXISTS (SELECT 1 FROM question_tags WHERE question_tags.question_id = questions.id AND question_tags.tag_name = ?)", *params.Tag)
		}
		if params.Search != nil && *params.Search != "" {
			// 大小写不敏感的子串匹配，标题或描述命中其一即可
			pattern := "%" + strings.ToLower(*params.Search) + "%"
			q = q.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
		}
		if params.Answered != nil {
			if *params.Answered {
				q = q.Where("answer_count > 0")
			} else {
				q = q.Where("answer_count = 0")
			}
		}
		return q
	}
	query = applyFilters(query)
	countQuery = applyFilters(countQuery)

	// --- 执行计数查询 ---
	// 在应用所有筛选条件后，但在应用分页和排序之前执行计数
	if err := countQuery.Count(&totalCount).Error; err != nil {
		r.logger.Error("问题列表：计数查询失败", zap.Error(err), zap.Any("params", params))
		return nil, 0, fmt.Errorf("计数问题失败: %w", err)
	}

	// 如果总数为0，无需执行后续的列表查询
	if totalCount == 0 {
		return questions, 0, nil
	}

	// --- 应用排序和分页 ---
	if params.Sort == "oldest" {
		query = query.Order("created_at ASC").Order("id ASC")
	} else {
		query = query.Order("created_at DESC").Order("id DESC")
	}
	query = query.Offset((page - 1) * limit).Limit(limit)

	// --- 执行列表查询 ---
	err := query.
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Find(&questions).Error
	if err != nil {
		r.logger.Error("问题列表：列表查询失败",
			zap.Error(err),
			zap.Any("params", params),
			zap.Int("page", page),
			zap.Int("limit", limit),
		)
		return nil, 0, fmt.Errorf("查询问题列表失败: %w", err)
	}

	return questions, totalCount, nil
}

// ListQuestionsByAuthor 获取指定作者的全部问题，按创建时间倒序。
func (r *questionRepository) ListQuestionsByAuthor(ctx context.Context, authorID string) ([]*entities.Question, error) {
	var questions []*entities.Question
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").Order("id DESC").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Find(&questions).Error
	if err != nil {
		r.logger.Error("按作者获取问题列表失败", zap.Error(err), zap.String("authorID", authorID))
		return nil, err
	}
	return questions, nil
}

// IncrementVotes 以单条 UPDATE 应用票数增量，随后回读最新值。
// 没有按用户去重：同一用户重复投票会被如数累计（既有产品行为）。
func (r *questionRepository) IncrementVotes(ctx context.Context, questionID uint64, delta int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Question{}).
		Where("id = ? AND deleted_at IS NULL", questionID).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))

	if result.Error != nil {
		r.logger.Error("更新问题票数失败", zap.Error(result.Error), zap.Uint64("questionID", questionID))
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, commonerrors.ErrRepoNotFound
	}

	var votes int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Question{}).
		Where("id = ?", questionID).
		Pluck("votes", &votes).Error; err != nil {
		return 0, err
	}
	return votes, nil
}

// AdjustAnswerCount 维护问题的冗余回答计数。
func (r *questionRepository) AdjustAnswerCount(ctx context.Context, db *gorm.DB, questionID uint64, delta int64) error {
	result := db.WithContext(ctx).
		Model(&entities.Question{}).
		Where("id = ? AND deleted_at IS NULL", questionID).
		UpdateColumn("answer_count", gorm.Expr("answer_count + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// SetAcceptedAnswer 更新问题的被采纳回答指针。
func (r *questionRepository) SetAcceptedAnswer(ctx context.Context, db *gorm.DB, questionID uint64, answerID *uint64) error {
	result := db.WithContext(ctx).
		Model(&entities.Question{}).
		Where("id = ? AND deleted_at IS NULL", questionID).
		Updates(map[string]interface{}{
			"accepted_answer_id": answerID,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		r.logger.Error("更新问题被采纳回答失败", zap.Error(result.Error), zap.Uint64("questionID", questionID))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// PopularTags 聚合标签引用次数。
// 排序: 次数降序；次数相同时按标签首次出现的顺序 (MIN(question_tags.id))，
// 自增主键保证了这等价于插入顺序。
func (r *questionRepository) PopularTags(ctx context.Context, limit int) ([]TagCount, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows []TagCount
	err := r.db.WithContext(ctx).
		Model(&entities.QuestionTag{}).
		Select("question_tags.tag_name AS tag_name, COUNT(*) AS count").
		Joins("JOIN questions ON questions.id = question_tags.question_id AND questions.deleted_at IS NULL").
		Group("question_tags.tag_name").
		Order("count DESC").
		Order("MIN(question_tags.id) ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("热门标签聚合查询失败", zap.Error(err), zap.Int("limit", limit))
		return nil, err
	}
	return rows, nil
}

// CountByAuthor 统计指定作者的提问数。
func (r *questionRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Question{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

// SumVotesByAuthor 汇总指定作者全部问题的票数。
func (r *questionRepository) SumVotesByAuthor(ctx context.Context, authorID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entities.Question{}).
		Where("author_id = ?", authorID).
		Select("COALESCE(SUM(votes), 0)").
		Scan(&total).Error
	return total, err
}
