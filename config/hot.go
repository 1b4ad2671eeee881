package config

// HotQuestionConfig 包含热门问题榜单缓存相关的配置。
type HotQuestionConfig struct {
	// ListSize 是热门问题榜单的长度，即定时任务每次从数据库按票数取出并
	// 写入 Redis 快照的问题数量。对外接口返回的条数不会超过这个值。
	ListSize int `mapstructure:"listSize" json:"listSize" yaml:"listSize"`

	// RefreshCron 是刷新榜单快照的 cron 表达式（robfig/cron 标准 5 段格式）。
	// 例如 "*/10 * * * *" 表示每 10 分钟重建一次快照。
	RefreshCron string `mapstructure:"refreshCron" json:"refreshCron" yaml:"refreshCron"`
}
