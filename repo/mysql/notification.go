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

// NotificationRepository 定义了通知数据在 MySQL 中的持久化操作接口。
type NotificationRepository interface {
	// Create 持久化一条新通知。
	Create(ctx context.Context, notification *entities.Notification) error

	// BulkCreate 批量持久化多条通知（广播场景），单次分批写入。
	BulkCreate(ctx context.Context, notifications []*entities.Notification) error

	// GetByID 根据 ID 检索通知。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound 错误。
	GetByID(ctx context.Context, id uint64) (*entities.Notification, error)

	// ListByUser 获取指定用户的全部通知，按创建时间倒序。
	ListByUser(ctx context.Context, userID string) ([]*entities.Notification, error)

	// UnreadCount 统计指定用户的未读通知数。
	UnreadCount(ctx context.Context, userID string) (int64, error)

	// MarkRead 将单条通知置为已读。
	MarkRead(ctx context.Context, id uint64) error

	// MarkAllRead 将指定用户的全部未读通知置为已读，返回受影响行数。
	MarkAllRead(ctx context.Context, userID string) (int64, error)

	// Delete 软删除单条通知。
	Delete(ctx context.Context, id uint64) error

	// DeleteReadBefore 清理指定时间点之前创建的已读通知，返回清理行数。
	// - 由定时任务调用。
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// notificationRepository 是 NotificationRepository 接口针对 MySQL 的具体实现。
type notificationRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewNotificationRepository 是 notificationRepository 的构造函数。
func NewNotificationRepository(db *gorm.DB, logger *core.ZapLogger) NotificationRepository {
	return &notificationRepository{
		db:     db,
		logger: logger,
	}
}

// Create 实现单条通知的插入。
func (r *notificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		r.logger.Error("创建通知失败", zap.Error(err), zap.String("userID", notification.UserID))
		return err
	}
	return nil
}

// BulkCreate 实现通知的分批批量插入。
func (r *notificationRepository) BulkCreate(ctx context.Context, notifications []*entities.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(notifications, 500).Error; err != nil {
		r.logger.Error("批量创建通知失败", zap.Error(err), zap.Int("count", len(notifications)))
		return err
	}
	return nil
}

// GetByID 实现根据 ID 获取通知。
func (r *notificationRepository) GetByID(ctx context.Context, id uint64) (*entities.Notification, error) {
	var notification entities.Notification
	err := r.db.WithContext(ctx).First(&notification, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取通知数据库查询失败", zap.Uint64("notificationID", id), zap.Error(err))
		return nil, err
	}
	return &notification, nil
}

// ListByUser 获取指定用户的全部通知。
func (r *notificationRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Notification, error) {
	var notifications []*entities.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&notifications).Error
	if err != nil {
		r.logger.Error("获取用户通知列表失败", zap.Error(err), zap.String("userID", userID))
		return nil, err
	}
	return notifications, nil
}

// UnreadCount 统计指定用户的未读通知数。
func (r *notificationRepository) UnreadCount(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead 将单条通知置为已读。
func (r *notificationRepository) MarkRead(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]interface{}{
			"is_read":    true,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// MarkAllRead 将指定用户的全部未读通知置为已读。
func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"is_read":    true,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		r.logger.Error("批量标记通知已读失败", zap.Error(result.Error), zap.String("userID", userID))
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete 软删除单条通知。
func (r *notificationRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&entities.Notification{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// DeleteReadBefore 清理过期的已读通知。
func (r *notificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&entities.Notification{})
	if result.Error != nil {
		r.logger.Error("清理已读通知失败", zap.Error(result.Error), zap.Time("cutoff", cutoff))
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
