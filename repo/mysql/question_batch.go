// File: repo/mysql/question_batch.go
package mysql

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/qa_service/models/entities"
)

// QuestionBatchRepository 定义了面向缓存重建与缓存回源的批量读取操作。
type QuestionBatchRepository interface {
	// GetTopQuestionsByVotes 按票数倒序批量检索前 N 个问题（含标签）。
	// - 为热门问题缓存的重建提供数据源，通过单次查询减少数据库负载。
	GetTopQuestionsByVotes(ctx context.Context, limit int) ([]*entities.Question, error)

	// GetQuestionsByIDs 根据 ID 列表批量检索问题（含标签）。
	// - 使用 "WHERE id IN (...)" 进行查询，软删除的记录自动排除。
	GetQuestionsByIDs(ctx context.Context, ids []uint64) ([]*entities.Question, error)
}

type questionBatchRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewQuestionBatchRepository 创建一个 QuestionBatchRepository 实例。
func NewQuestionBatchRepository(db *gorm.DB, logger *core.ZapLogger) QuestionBatchRepository {
	return &questionBatchRepository{db: db, logger: logger}
}

// GetTopQuestionsByVotes 实现按票数获取热门问题。
func (r *questionBatchRepository) GetTopQuestionsByVotes(ctx context.Context, limit int) ([]*entities.Question, error) {
	if limit <= 0 {
		return []*entities.Question{}, nil
	}

	var questions []*entities.Question
	err := r.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_tags.position ASC")
		}).
		Order("votes DESC").Order("id ASC").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		r.logger.Error("GetTopQuestionsByVotes: 查询热门问题失败。", zap.Error(err), zap.Int("limit", limit))
		return nil, err
	}

	r.logger.Debug("GetTopQuestionsByVotes: 查询热门问题成功。", zap.Int("找到数量", len(questions)))
	return questions, nil
}

// GetQuestionsByIDs 实现根据 ID 列表批量获取问题。
func (r *questionBatchRepository) GetQuestionsByIDs(ctx context.Context, ids []uint64) ([]*entities.Question, error) {
	var questions []*entities.Question

	if len(ids) == 0 {
		r.logger.Debug("GetQuestionsByIDs: ids 为空，返回空列表。")
		return questions, nil
	}

	err := r.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_tags.position ASC")
		}).
		Where("id IN ?", ids).
		Find(&questions).Error
	if err != nil {
		r.logger.Error("GetQuestionsByIDs: 查询问题失败。", zap.Error(err))
		return nil, err
	}

	r.logger.Debug("GetQuestionsByIDs: 查询问题成功。", zap.Int("找到数量", len(questions)))
	return questions, nil
}
