package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/qa_service/constant"
	"github.com/Xushengqwer/qa_service/models/vo"
	"github.com/Xushengqwer/qa_service/myErrors"
	"github.com/Xushengqwer/qa_service/repo/mysql"
)

// HotQuestionCache 定义了热门问题榜单的缓存操作接口。
// - 目标: 提供 Redis 缓存层，加速热门问题列表的访问，减轻数据库压力。
// - 榜单由后台定时任务周期性地从 MySQL 重建。
type HotQuestionCache interface {
	// RebuildHotList 从 MySQL 读取票数最高的前 N 个问题，重建热榜缓存。
	// - ZSet (`HotQuestionsRankKey`) 保存问题 ID 与票数快照。
	// - Hash (`HotQuestionsHashKey`) 保存问题摘要 VO 的 JSON 序列化形式。
	// - 采用临时 Key + RENAME 策略，保证重建期间读请求不会看到半成品数据。
	RebuildHotList(ctx context.Context, n int) error

	// GetHotQuestions 按票数从高到低返回缓存中的热门问题列表。
	// - 如果缓存未命中（榜单不存在），返回 myErrors.ErrCacheMiss，上层服务需要处理回源。
	GetHotQuestions(ctx context.Context) ([]*vo.QuestionResponse, error)
}

// hotQuestionCacheImpl 是 HotQuestionCache 接口的 Redis 实现。
type hotQuestionCacheImpl struct {
	redisClient   *redis.Client
	logger        *core.ZapLogger
	questionBatch mysql.QuestionBatchRepository
}

// NewHotQuestionCache 是 hotQuestionCacheImpl 的构造函数。
func NewHotQuestionCache(
	redisClient *redis.Client,
	logger *core.ZapLogger,
	questionBatch mysql.QuestionBatchRepository,
) HotQuestionCache {
	return &hotQuestionCacheImpl{
		redisClient:   redisClient,
		logger:        logger,
		questionBatch: questionBatch,
	}
}

// RebuildHotList 实现热榜缓存的重建逻辑。
func (c *hotQuestionCacheImpl) RebuildHotList(ctx context.Context, n int) error {
	startTime := time.Now()
	if n <= 0 {
		n = constant.HotQuestionsDefaultListSize
		c.logger.Warn("RebuildHotList: 榜单大小配置无效，使用默认值", zap.Int("defaultListSize", n))
	}

	finalRankKey := constant.HotQuestionsRankKey
	finalHashKey := constant.HotQuestionsHashKey
	suffix := "_temp_" + strconv.FormatInt(time.Now().UnixNano(), 10)
	tempRankKey := finalRankKey + suffix
	tempHashKey := finalHashKey + suffix

	c.logger.Info("开始重建热门问题榜单缓存 (采用临时Key+RENAME策略)",
		zap.Int("size_n", n),
		zap.String("rankKey", finalRankKey),
		zap.String("hashKey", finalHashKey),
	)

	// 1. 从 MySQL 获取票数最高的前 N 个问题。
	questions, dbErr := c.questionBatch.GetTopQuestionsByVotes(ctx, n)
	if dbErr != nil {
		c.logger.Error("从 MySQL 获取热门问题失败，本次缓存重建中止，现有缓存将保留。", zap.Error(dbErr))
		return fmt.Errorf("从数据库获取热门问题数据失败: %w", dbErr)
	}

	// 2. 如果数据库中没有任何问题，直接清空榜单缓存。
	if len(questions) == 0 {
		c.logger.Info("数据库中没有问题数据，将清空热门问题榜单缓存。")
		if delErr := c.redisClient.Del(ctx, finalRankKey, finalHashKey).Err(); delErr != nil {
			c.logger.Error("清空热门问题榜单缓存失败", zap.Error(delErr))
			return fmt.Errorf("清空热门问题榜单缓存失败: %w", delErr)
		}
		return nil
	}

	// 3. 准备 ZSet 成员与 Hash 字段。
	zMembers := make([]redis.Z, 0, len(questions))
	summaries := make(map[string]interface{}, len(questions))
	marshalErrors := 0
	for _, question := range questions {
		questionVO := vo.MapQuestionToResponseVO(question)
		jsonData, jsonErr := json.Marshal(questionVO)
		if jsonErr != nil {
			c.logger.Error("序列化热门问题 VO 失败，跳过该问题", zap.Error(jsonErr), zap.Uint64("questionID", question.ID))
			marshalErrors++
			continue
		}
		idStr := strconv.FormatUint(question.ID, 10)
		zMembers = append(zMembers, redis.Z{Score: float64(question.Votes), Member: idStr})
		summaries[idStr] = jsonData
	}

	if len(zMembers) == 0 {
		c.logger.Error("未能准备任何有效的热门问题数据进行缓存，现有缓存将保留。",
			zap.Int("fetchedFromDB", len(questions)),
			zap.Int("marshalErrors", marshalErrors),
		)
		return errors.New("未能准备有效的热门问题数据进行缓存，操作中止")
	}

	// 4. 将数据写入临时 Key。
	pipe := c.redisClient.Pipeline()
	pipe.Del(ctx, tempRankKey, tempHashKey)
	pipe.ZAdd(ctx, tempRankKey, zMembers...)
	pipe.HMSet(ctx, tempHashKey, summaries)
	if _, execErr := pipe.Exec(ctx); execErr != nil {
		c.logger.Error("执行 Redis Pipeline (写入临时榜单) 失败，现有缓存将保留。", zap.Error(execErr))
		c.redisClient.Del(ctx, tempRankKey, tempHashKey)
		return fmt.Errorf("写入临时热门问题缓存失败: %w", execErr)
	}

	// 5. 原子地激活新榜单。
	renamePipe := c.redisClient.Pipeline()
	renamePipe.Rename(ctx, tempRankKey, finalRankKey)
	renamePipe.Rename(ctx, tempHashKey, finalHashKey)
	if _, renameErr := renamePipe.Exec(ctx); renameErr != nil {
		c.logger.Error("执行 Redis RENAME (激活新榜单) 失败，新缓存可能在临时Key中。",
			zap.Error(renameErr),
			zap.String("tempRankKey", tempRankKey),
			zap.String("tempHashKey", tempHashKey),
		)
		c.redisClient.Del(ctx, tempRankKey, tempHashKey)
		return fmt.Errorf("激活新的热门问题榜单失败: %w", renameErr)
	}

	c.logger.Info("成功重建热门问题榜单缓存",
		zap.Int("cachedCount", len(zMembers)),
		zap.Int("marshalErrors", marshalErrors),
		zap.Duration("duration", time.Since(startTime)),
	)
	return nil
}

// GetHotQuestions 实现热门问题列表的缓存读取。
func (c *hotQuestionCacheImpl) GetHotQuestions(ctx context.Context) ([]*vo.QuestionResponse, error) {
	rankKey := constant.HotQuestionsRankKey
	hashKey := constant.HotQuestionsHashKey

	// 1. 从 ZSet 获取按票数倒序的问题 ID 列表。
	idStrs, err := c.redisClient.ZRevRange(ctx, rankKey, 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.logger.Info("热门问题榜单 ZSet 不存在，缓存未命中", zap.String("key", rankKey))
			return nil, myErrors.ErrCacheMiss
		}
		c.logger.Error("从 Redis 获取热门问题 ID 列表失败", zap.Error(err), zap.String("key", rankKey))
		return nil, fmt.Errorf("获取热门问题榜单 (key: %s) 失败: %w", rankKey, err)
	}

	// ZREVRANGE 对不存在的 Key 返回空列表而非 redis.Nil，同样视为未命中。
	if len(idStrs) == 0 {
		c.logger.Info("热门问题榜单 ZSet 为空，缓存未命中", zap.String("key", rankKey))
		return nil, myErrors.ErrCacheMiss
	}

	// 2. 从 Hash 批量获取问题摘要 JSON。
	values, err := c.redisClient.HMGet(ctx, hashKey, idStrs...).Result()
	if err != nil {
		c.logger.Error("从 Redis Hash 批量获取热门问题摘要失败", zap.Error(err), zap.String("hashKey", hashKey))
		return nil, fmt.Errorf("批量获取热门问题摘要 (key: %s) 失败: %w", hashKey, err)
	}

	// 3. 反序列化，按榜单顺序组装结果。
	results := make([]*vo.QuestionResponse, 0, len(idStrs))
	cacheMissCount := 0
	unmarshalErrorCount := 0
	for i, val := range values {
		if val == nil {
			cacheMissCount++
			c.logger.Debug("热门问题摘要 Hash 缓存未命中", zap.String("field", idStrs[i]), zap.String("hashKey", hashKey))
			continue
		}
		jsonStr, ok := val.(string)
		if !ok {
			unmarshalErrorCount++
			c.logger.Error("热门问题摘要缓存中的值类型不是预期的字符串，跳过",
				zap.String("field", idStrs[i]),
				zap.Any("valueType", fmt.Sprintf("%T", val)),
			)
			continue
		}
		var questionVO vo.QuestionResponse
		if jsonErr := json.Unmarshal([]byte(jsonStr), &questionVO); jsonErr != nil {
			unmarshalErrorCount++
			c.logger.Error("反序列化热门问题摘要缓存数据失败，跳过",
				zap.Error(jsonErr),
				zap.String("field", idStrs[i]),
				zap.String("hashKey", hashKey),
			)
			continue
		}
		results = append(results, &questionVO)
	}

	c.logger.Debug("热门问题榜单缓存读取完成",
		zap.Int("rank_id_count", len(idStrs)),
		zap.Int("returned_count", len(results)),
		zap.Int("cache_miss_count", cacheMissCount),
		zap.Int("unmarshal_error_count", unmarshalErrorCount),
	)
	return results, nil
}
