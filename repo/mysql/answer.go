package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/qa_service/models/entities"
)

// AnswerRepository 定义了回答数据在 MySQL 中的持久化操作接口。
type AnswerRepository interface {
	// CreateAnswer 持久化一个新的回答记录。
	// - 与父问题回答计数的维护处于同一事务，由服务层编排。
	CreateAnswer(ctx context.Context, db *gorm.DB, answer *entities.Answer) error

	// GetAnswerByID 根据单个 ID 检索回答。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound 错误。
	GetAnswerByID(ctx context.Context, id uint64) (*entities.Answer, error)

	// UpdateContent 更新回答内容，并刷新 updated_at。
	UpdateContent(ctx context.Context, answerID uint64, content string) error

	// DeleteAnswer 对指定回答执行软删除。
	DeleteAnswer(ctx context.Context, db *gorm.DB, id uint64) error

	// DeleteByQuestionID 软删除指定问题下的全部回答，返回受影响行数。
	// - 问题删除的级联步骤，必须与问题删除处于同一事务。
	DeleteByQuestionID(ctx context.Context, db *gorm.DB, questionID uint64) (int64, error)

	// ListByQuestionID 获取问题下的全部回答。
	// - 排序: 被采纳的在前，其后按票数降序，再按创建时间降序。
	ListByQuestionID(ctx context.Context, questionID uint64) ([]*entities.Answer, error)

	// ListAnswersByAuthor 获取指定作者的全部回答，按创建时间倒序。
	ListAnswersByAuthor(ctx context.Context, authorID string) ([]*entities.Answer, error)

	// IncrementVotes 原子地对回答票数应用带符号的增量，并返回最新票数。
	IncrementVotes(ctx context.Context, answerID uint64, delta int64) (int64, error)

	// SetAccepted 更新回答的采纳标记。
	// - 采纳流程的一部分，与问题指针更新处于同一事务。
	SetAccepted(ctx context.Context, db *gorm.DB, answerID uint64, accepted bool) error

	// CountByAuthor 统计指定作者的回答数。
	CountByAuthor(ctx context.Context, authorID string) (int64, error)

	// CountAcceptedByAuthor 统计指定作者被采纳的回答数。
	CountAcceptedByAuthor(ctx context.Context, authorID string) (int64, error)

	// SumVotesByAuthor 汇总指定作者全部回答的票数。
	SumVotesByAuthor(ctx context.Context, authorID string) (int64, error)
}

// answerRepository 是 AnswerRepository 接口针对 MySQL 的具体实现。
type answerRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewAnswerRepository 是 answerRepository 的构造函数。
func NewAnswerRepository(db *gorm.DB, logger *core.ZapLogger) AnswerRepository {
	return &answerRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAnswer 实现回答的数据库插入操作。
func (r *answerRepository) CreateAnswer(ctx context.Context, db *gorm.DB, answer *entities.Answer) error {
	if err := db.WithContext(ctx).Create(answer).Error; err != nil {
		return err
	}
	return nil
}

// GetAnswerByID 实现根据单个 ID 获取回答。
func (r *answerRepository) GetAnswerByID(ctx context.Context, id uint64) (*entities.Answer, error) {
	var answer entities.Answer
	err := r.db.WithContext(ctx).First(&answer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取回答未找到", zap.Uint64("answerID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取回答数据库查询失败", zap.Uint64("answerID", id), zap.Error(err))
		return nil, err
	}
	return &answer, nil
}

// UpdateContent 实现回答内容的更新。
func (r *answerRepository) UpdateContent(ctx context.Context, answerID uint64, content string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Answer{}).
		Where("id = ? AND deleted_at IS NULL", answerID).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		r.logger.Error("更新回答内容失败", zap.Error(result.Error), zap.Uint64("answerID", answerID))
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新回答但未找到记录或记录已被删除", zap.Uint64("answerID", answerID))
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// DeleteAnswer 实现回答的软删除。
func (r *answerRepository) DeleteAnswer(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.Answer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// DeleteByQuestionID 软删除指定问题下的全部回答。
func (r *answerRepository) DeleteByQuestionID(ctx context.Context, db *gorm.DB, questionID uint64) (int64, error) {
	result := db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Delete(&entities.Answer{})
	if result.Error != nil {
		r.logger.Error("级联删除问题回答失败", zap.Error(result.Error), zap.Uint64("questionID", questionID))
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ListByQuestionID 获取问题下的全部回答，采纳的在前。
func (r *answerRepository) ListByQuestionID(ctx context.Context, questionID uint64) ([]*entities.Answer, error) {
	var answers []*entities.Answer
	err := r.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("is_accepted DESC").
		Order("votes DESC").
		Order("created_at DESC").
		Find(&answers).Error
	if err != nil {
		r.logger.Error("获取问题回答列表失败", zap.Error(err), zap.Uint64("questionID", questionID))
		return nil, err
	}
	return answers, nil
}

// ListAnswersByAuthor 获取指定作者的全部回答。
func (r *answerRepository) ListAnswersByAuthor(ctx context.Context, authorID string) ([]*entities.Answer, error) {
	var answers []*entities.Answer
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").Order("id DESC").
		Find(&answers).Error
	if err != nil {
		r.logger.Error("按作者获取回答列表失败", zap.Error(err), zap.String("authorID", authorID))
		return nil, err
	}
	return answers, nil
}

// IncrementVotes 以单条 UPDATE 应用票数增量，随后回读最新值。
func (r *answerRepository) IncrementVotes(ctx context.Context, answerID uint64, delta int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Answer{}).
		Where("id = ? AND deleted_at IS NULL", answerID).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if result.Error != nil {
		r.logger.Error("更新回答票数失败", zap.Error(result.Error), zap.Uint64("answerID", answerID))
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, commonerrors.ErrRepoNotFound
	}

	var votes int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Answer{}).
		Where("id = ?", answerID).
		Pluck("votes", &votes).Error; err != nil {
		return 0, err
	}
	return votes, nil
}

// SetAccepted 更新回答的采纳标记。
func (r *answerRepository) SetAccepted(ctx context.Context, db *gorm.DB, answerID uint64, accepted bool) error {
	result := db.WithContext(ctx).
		Model(&entities.Answer{}).
		Where("id = ? AND deleted_at IS NULL", answerID).
		Updates(map[string]interface{}{
			"is_accepted": accepted,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// CountByAuthor 统计指定作者的回答数。
func (r *answerRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Answer{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

// CountAcceptedByAuthor 统计指定作者被采纳的回答数。
func (r *answerRepository) CountAcceptedByAuthor(ctx context.Context, authorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Answer{}).
		Where("author_id = ? AND is_accepted = ?", authorID, true).
		Count(&count).Error
	return count, err
}

// SumVotesByAuthor 汇总指定作者全部回答的票数。
func (r *answerRepository) SumVotesByAuthor(ctx context.Context, authorID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entities.Answer{}).
		Where("author_id = ?", authorID).
		Select("COALESCE(SUM(votes), 0)").
		Scan(&total).Error
	return total, err
}
