package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/qa_service/config"
	"github.com/Xushengqwer/qa_service/constant"
	"github.com/Xushengqwer/qa_service/repo/redis"
)

// HotQuestionsCacheTask 负责定时重建 Redis 中的热门问题榜单快照。
// 快照由 ZSet（排名）和 Hash（问题摘要）两部分组成，读路径只依赖快照本身。
type HotQuestionsCacheTask struct {
	hotCache redis.HotQuestionCache
	cron     *cron.Cron
	listSize int
	schedule string
	logger   *core.ZapLogger
}

// NewHotQuestionsCacheTask 初始化并启动热门问题榜单的定时刷新任务。
// - hotCache: 实现了 redis.HotQuestionCache 接口的实例。
// - cfg: 榜单相关配置，未填写的字段回退到 constant 中的默认值。
func NewHotQuestionsCacheTask(hotCache redis.HotQuestionCache, cfg config.HotQuestionConfig, logger *core.ZapLogger) *HotQuestionsCacheTask {
	listSize := cfg.ListSize
	if listSize <= 0 {
		listSize = constant.HotQuestionsDefaultListSize
	}
	schedule := cfg.RefreshCron
	if schedule == "" {
		schedule = constant.HotQuestionsDefaultCronSpec
	}

	task := &HotQuestionsCacheTask{
		hotCache: hotCache,
		cron:     cron.New(), // 默认分钟级精度
		listSize: listSize,
		schedule: schedule,
		logger:   logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *HotQuestionsCacheTask) startCronJob() {
	t.logger.Info("准备启动热门问题榜单刷新定时任务",
		zap.String("schedule", t.schedule),
		zap.Int("listSize", t.listSize))

	entryID, err := t.cron.AddFunc(t.schedule, func() {
		t.logger.Info("热门问题榜单刷新任务开始执行...")
		startTime := time.Now()
		// 单次重建包含一次数据库查询和两组 Redis 管道写入，5 分钟足以覆盖并留有余量。
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := t.hotCache.RebuildHotList(ctx, t.listSize); err != nil {
			// 重建失败时旧快照仍然可用，读路径会继续命中上一次的榜单或回退数据库。
			t.logger.Error("重建热门问题榜单快照失败", zap.Error(err))
		}

		duration := time.Since(startTime)
		t.logger.Info("热门问题榜单刷新任务执行完毕", zap.Duration("duration", duration))
	})

	if err != nil {
		t.logger.Fatal("添加热门问题榜单刷新 cron 作业失败", zap.Error(err), zap.String("schedule", t.schedule))
	}

	t.cron.Start()
	t.logger.Info("热门问题榜单刷新定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// Stop 优雅地停止 cron 调度器。
// 返回一个 context，调用者可以使用它来等待正在运行的任务完成。
func (t *HotQuestionsCacheTask) Stop() context.Context {
	t.logger.Info("正在停止热门问题榜单刷新定时任务...")
	stopCtx := t.cron.Stop()
	t.logger.Info("热门问题榜单刷新定时任务已停止调度。等待正在执行的任务完成...")
	return stopCtx
}
