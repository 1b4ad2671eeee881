package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/qa_service/models/dto"
	"github.com/Xushengqwer/qa_service/models/entities"
	"github.com/Xushengqwer/qa_service/models/enums"
	"github.com/Xushengqwer/qa_service/models/vo"
	"github.com/Xushengqwer/qa_service/myErrors"
	"github.com/Xushengqwer/qa_service/repo/mysql"
)

// NotificationService 定义了通知相关的业务逻辑接口。
// - 通知只有收件人本人可见、可操作；广播是管理员面向全体普通用户的批量创建。
type NotificationService interface {
	// ListByUser 获取当前用户的全部通知，按创建时间倒序。
	ListByUser(ctx context.Context, userID string) (*vo.NotificationListVO, error)

	// UnreadCount 获取当前用户的未读通知数。
	UnreadCount(ctx context.Context, userID string) (*vo.UnreadCountVO, error)

	// MarkRead 将单条通知标记为已读。
	// - 只有收件人本人可以操作，否则返回 myErrors.ErrForbidden。
	MarkRead(ctx context.Context, userID string, notificationID uint64) error

	// MarkAllRead 将当前用户的全部未读通知标记为已读。
	MarkAllRead(ctx context.Context, userID string) error

	// Delete 删除单条通知。
	// - 只有收件人本人可以操作，否则返回 myErrors.ErrForbidden。
	Delete(ctx context.Context, userID string, notificationID uint64) error

	// Broadcast 管理员向全体非管理员用户广播一条通知，单次批量写入。
	// - 返回实际创建的通知条数。
	Broadcast(ctx context.Context, req *dto.BroadcastRequest) (int64, error)

	// Notify 创建一条单人通知，收件人与触发者相同时静默跳过。
	// - 由问题/回答服务在领域事件（新回答、采纳）后调用。
	Notify(ctx context.Context, recipientID, actorID string, notification *entities.Notification) error
}

// notificationService 是 NotificationService 接口的具体实现。
type notificationService struct {
	notificationRepo mysql.NotificationRepository
	userRepo         mysql.UserRepository
	logger           *core.ZapLogger
}

// NewNotificationService 是 notificationService 的构造函数。
func NewNotificationService(
	notificationRepo mysql.NotificationRepository,
	userRepo mysql.UserRepository,
	logger *core.ZapLogger,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// newAnswerNotification 构造"有人回答了你的问题"通知。
func newAnswerNotification(recipientID, answererUsername, questionTitle string, questionID uint64) *entities.Notification {
	return &entities.Notification{
		UserID:  recipientID,
		Type:    enums.NotificationTypeAnswer,
		Message: fmt.Sprintf("%s answered your question \"%s\"", answererUsername, questionTitle),
		Link:    fmt.Sprintf("/questions/%d", questionID),
	}
}

// newAnswerAcceptedNotification 构造"你的回答被采纳"通知。
func newAnswerAcceptedNotification(recipientID, questionTitle string, questionID uint64) *entities.Notification {
	return &entities.Notification{
		UserID:  recipientID,
		Type:    enums.NotificationTypeAnswerAccepted,
		Message: fmt.Sprintf("Your answer to \"%s\" has been accepted!", questionTitle),
		Link:    fmt.Sprintf("/questions/%d", questionID),
	}
}

// ListByUser 实现通知列表查询。
func (s *notificationService) ListByUser(ctx context.Context, userID string) (*vo.NotificationListVO, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &vo.NotificationListVO{
		Notifications: vo.MapNotificationsToResponseVOs(notifications),
	}, nil
}

// UnreadCount 实现未读数查询。
func (s *notificationService) UnreadCount(ctx context.Context, userID string) (*vo.UnreadCountVO, error) {
	count, err := s.notificationRepo.UnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &vo.UnreadCountVO{UnreadCount: count}, nil
}

// MarkRead 实现单条通知的已读标记，带收件人校验。
func (s *notificationService) MarkRead(ctx context.Context, userID string, notificationID uint64) error {
	notification, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification.UserID != userID {
		s.logger.Warn("用户尝试标记他人的通知为已读",
			zap.String("userID", userID),
			zap.Uint64("notificationID", notificationID),
			zap.String("ownerID", notification.UserID),
		)
		return myErrors.ErrForbidden
	}
	if notification.IsRead {
		// 重复标记是幂等操作
		return nil
	}
	return s.notificationRepo.MarkRead(ctx, notificationID)
}

// MarkAllRead 实现当前用户全部通知的已读标记。
func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	affected, err := s.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return err
	}
	s.logger.Info("批量标记通知已读完成", zap.String("userID", userID), zap.Int64("affected", affected))
	return nil
}

// Delete 实现通知删除，带收件人校验。
func (s *notificationService) Delete(ctx context.Context, userID string, notificationID uint64) error {
	notification, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification.UserID != userID {
		s.logger.Warn("用户尝试删除他人的通知",
			zap.String("userID", userID),
			zap.Uint64("notificationID", notificationID),
			zap.String("ownerID", notification.UserID),
		)
		return myErrors.ErrForbidden
	}
	return s.notificationRepo.Delete(ctx, notificationID)
}

// Broadcast 实现管理员平台广播。
func (s *notificationService) Broadcast(ctx context.Context, req *dto.BroadcastRequest) (int64, error) {
	notificationType := req.Type
	if notificationType == "" {
		notificationType = enums.NotificationTypeAdminMessage
	}

	// 管理员不给自己（及其他管理员）发广播
	recipientIDs, err := s.userRepo.ListNonAdminUserIDs(ctx)
	if err != nil {
		return 0, err
	}
	if len(recipientIDs) == 0 {
		s.logger.Info("广播目标用户为空，跳过写入")
		return 0, nil
	}

	notifications := make([]*entities.Notification, 0, len(recipientIDs))
	for _, recipientID := range recipientIDs {
		notifications = append(notifications, &entities.Notification{
			UserID:  recipientID,
			Type:    notificationType,
			Message: req.Message,
		})
	}

	if err := s.notificationRepo.BulkCreate(ctx, notifications); err != nil {
		return 0, err
	}

	s.logger.Info("平台广播通知写入完成",
		zap.Int("recipientCount", len(notifications)),
		zap.String("type", string(notificationType)),
	)
	return int64(len(notifications)), nil
}

// Notify 实现单人通知的创建，自己触发的事件不通知自己。
func (s *notificationService) Notify(ctx context.Context, recipientID, actorID string, notification *entities.Notification) error {
	if recipientID == actorID {
		s.logger.Debug("事件触发者即收件人，跳过通知", zap.String("userID", recipientID))
		return nil
	}
	notification.UserID = recipientID
	return s.notificationRepo.Create(ctx, notification)
}
