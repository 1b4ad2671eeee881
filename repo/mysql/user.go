package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/qa_service/models/entities"
	"github.com/Xushengqwer/qa_service/models/enums"
)

// UserRepository 定义了用户数据在 MySQL 中的持久化操作接口。
type UserRepository interface {
	// CreateUser 持久化一个新用户。ID 为空时自动生成 UUID。
	CreateUser(ctx context.Context, user *entities.User) error

	// GetUserByID 根据 ID 检索用户。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound 错误。
	GetUserByID(ctx context.Context, id string) (*entities.User, error)

	// ListUsers 获取全部用户，按创建时间倒序。
	ListUsers(ctx context.Context) ([]*entities.User, error)

	// ListNonAdminUserIDs 获取全部非管理员用户的 ID 列表（广播场景）。
	ListNonAdminUserIDs(ctx context.Context) ([]string, error)

	// SetBanned 更新用户的封禁状态。
	SetBanned(ctx context.Context, userID string, banned bool) error

	// AddReputation 原子地对用户声望应用带符号的增量。
	AddReputation(ctx context.Context, userID string, delta int64) error
}

// userRepository 是 UserRepository 接口针对 MySQL 的具体实现。
type userRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewUserRepository 是 userRepository 的构造函数。
func NewUserRepository(db *gorm.DB, logger *core.ZapLogger) UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser 实现用户的数据库插入操作。
func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		r.logger.Error("创建用户失败", zap.Error(err), zap.String("username", user.Username))
		return err
	}
	return nil
}

// GetUserByID 实现根据 ID 获取用户。
func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取用户未找到", zap.String("userID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取用户数据库查询失败", zap.String("userID", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// ListUsers 获取全部用户。
func (r *userRepository) ListUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		r.logger.Error("获取用户列表失败", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// ListNonAdminUserIDs 获取全部非管理员用户的 ID 列表。
func (r *userRepository) ListNonAdminUserIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("role <> ?", enums.RoleAdmin).
		Pluck("id", &ids).Error
	if err != nil {
		r.logger.Error("获取非管理员用户 ID 列表失败", zap.Error(err))
		return nil, err
	}
	return ids, nil
}

// SetBanned 更新用户的封禁状态。
func (r *userRepository) SetBanned(ctx context.Context, userID string, banned bool) error {
	result := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"banned":     banned,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		r.logger.Error("更新用户封禁状态失败", zap.Error(result.Error), zap.String("userID", userID))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// AddReputation 以单条 UPDATE 应用声望增量。
func (r *userRepository) AddReputation(ctx context.Context, userID string, delta int64) error {
	result := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		UpdateColumn("reputation", gorm.Expr("reputation + ?", delta))
	if result.Error != nil {
		r.logger.Error("更新用户声望失败", zap.Error(result.Error), zap.String("userID", userID))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
