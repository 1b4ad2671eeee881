package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/qa_service/constant"
	"github.com/Xushengqwer/qa_service/repo/mysql"
)

// NotificationCleanupTask 负责定时清理数据库中过期的已读通知。
// 未读通知永不清理，避免用户错过消息。
type NotificationCleanupTask struct {
	notificationRepo mysql.NotificationRepository
	cron             *cron.Cron
	logger           *core.ZapLogger
}

// NewNotificationCleanupTask 初始化并启动已读通知清理的定时任务。
func NewNotificationCleanupTask(notificationRepo mysql.NotificationRepository, logger *core.ZapLogger) *NotificationCleanupTask {
	task := &NotificationCleanupTask{
		notificationRepo: notificationRepo,
		cron:             cron.New(), // 默认分钟级精度
		logger:           logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *NotificationCleanupTask) startCronJob() {
	schedule := constant.NotificationCleanupCronSpec
	t.logger.Info("准备启动已读通知清理定时任务",
		zap.String("schedule", schedule),
		zap.Duration("retention", constant.NotificationRetention))

	entryID, err := t.cron.AddFunc(schedule, func() {
		t.logger.Info("已读通知清理任务开始执行...")
		startTime := time.Now()
		// 清理是单条批量 DELETE，2 分钟超时已留有充分余量。
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		cutoff := time.Now().Add(-constant.NotificationRetention)
		deleted, err := t.notificationRepo.DeleteReadBefore(ctx, cutoff)
		if err != nil {
			t.logger.Error("清理过期已读通知失败", zap.Error(err), zap.Time("cutoff", cutoff))
		} else {
			t.logger.Info("清理过期已读通知完成",
				zap.Int64("deletedCount", deleted),
				zap.Time("cutoff", cutoff))
		}

		duration := time.Since(startTime)
		t.logger.Info("已读通知清理任务执行完毕", zap.Duration("duration", duration))
	})

	if err != nil {
		t.logger.Fatal("添加已读通知清理 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("已读通知清理定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// Stop 优雅地停止 cron 调度器。
func (t *NotificationCleanupTask) Stop() context.Context {
	t.logger.Info("正在停止已读通知清理定时任务...")
	stopCtx := t.cron.Stop()
	t.logger.Info("已读通知清理定时任务已停止调度。等待正在执行的任务完成...")
	return stopCtx
}
