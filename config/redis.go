package config

// RedisConfig 描述连接 Redis 所需的全部参数。
// - 热门问题榜单缓存是本服务唯一的 Redis 使用方，单实例即可满足。
type RedisConfig struct {
	Address  string `mapstructure:"address" json:"address" yaml:"address"`    // host:port
	Password string `mapstructure:"password" json:"password" yaml:"password"` // 为空表示无密码
	DB       int    `mapstructure:"db" json:"db" yaml:"db"`                   // 逻辑库编号
	PoolSize int    `mapstructure:"poolSize" json:"poolSize" yaml:"poolSize"` // 连接池大小，0 表示使用客户端默认值
}
