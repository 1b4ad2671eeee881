package constant

// Redis Key 相关常量 (导出)
const (
	// HotQuestionsRankKey 是热门问题榜单的 Key 名称。
	// 这是一个 Sorted Set (ZSet)，成员是问题 ID (questionID)，分数是票数 (votes)。
	// 由定时任务从 MySQL 中按票数取 Top N 重建，作为热门问题接口的数据源。
	// Redis 类型: Sorted Set
	// 示例成员与分数: Member="123", Score=42
	HotQuestionsRankKey = "hot_question_rank"

	// HotQuestionsHashKey 是热门问题摘要信息的 Hash Key 名称。
	// Field 是问题 ID，Value 是问题实体的 JSON 序列化结果。
	// 与 HotQuestionsRankKey 同批写入，保证榜单与摘要来自同一份快照。
	// Redis 类型: Hash
	HotQuestionsHashKey = "hot_question_summaries"
)
