package config

type KafkaConfig struct {
	Brokers         []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics          Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
	ConsumerGroupID string   `mapstructure:"consumer_group_id" json:"consumer_group_id" yaml:"consumer_group_id"`
}

type Topics struct {
	QuestionDeleted   string `mapstructure:"questionDeleted" yaml:"questionDeleted"`     // 问题删除主题，供搜索等下游同步
	AnswerAccepted    string `mapstructure:"answerAccepted" yaml:"answerAccepted"`       // 采纳回答主题，供声望服务消费
	ReputationChanged string `mapstructure:"reputationChanged" yaml:"reputationChanged"` // 声望变更主题，由声望服务产出、本服务消费
}
