package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/qa_service/models/events"
	"github.com/Xushengqwer/qa_service/service"
)

// todo  未配置死信队列

// MessageHandler 定义了处理 Kafka 消息的接口
type MessageHandler interface {
	Handle(ctx context.Context, msg kafka.Message) error
}

// ReputationChangedHandler 消费外部声望服务产出的声望变更事件，
// 把带符号的增量落到本服务的用户表。
type ReputationChangedHandler struct {
	logger      *core.ZapLogger
	userService service.UserService
}

func NewReputationChangedHandler(logger *core.ZapLogger, userService service.UserService) *ReputationChangedHandler {
	return &ReputationChangedHandler{
		logger:      logger,
		userService: userService,
	}
}

func (h *ReputationChangedHandler) Handle(ctx context.Context, msg kafka.Message) error {
	h.logger.Debug("ReputationChangedHandler: 开始处理 Kafka 消息", zap.String("topic", msg.Topic))

	var event events.ReputationChangedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("ReputationChangedHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 不重试无法解析的消息
	}

	if event.UserID == "" {
		h.logger.Warn("ReputationChangedHandler: 事件缺少 userID，丢弃", zap.String("event_id", event.EventID))
		return nil
	}

	h.logger.Info("ReputationChangedHandler: 成功解析声望变更消息",
		zap.String("event_id", event.EventID),
		zap.String("user_id", event.UserID),
		zap.Int64("delta", event.Delta),
		zap.String("reason", event.Reason))

	updateCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := h.userService.ApplyReputationChange(updateCtx, event.UserID, event.Delta)
	if err != nil {
		h.logger.Error("ReputationChangedHandler: 更新用户声望失败",
			zap.Error(err),
			zap.String("user_id", event.UserID),
			zap.Int64("delta", event.Delta))
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			h.logger.Warn("ReputationChangedHandler: 目标用户不存在或已删除，丢弃事件", zap.String("user_id", event.UserID))
			return nil // 不再重试
		}
		return fmt.Errorf("ReputationChangedHandler: 调用 ApplyReputationChange 失败: %w", err)
	}

	h.logger.Info("ReputationChangedHandler: 成功更新用户声望",
		zap.String("user_id", event.UserID),
		zap.Int64("delta", event.Delta))
	return nil
}
