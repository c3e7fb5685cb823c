package config

type KafkaConfig struct {
	Brokers         []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics          Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
	ConsumerGroupID string   `mapstructure:"consumer_group_id" json:"consumer_group_id" yaml:"consumer_group_id"`
}

type Topics struct {
	NotificationCreated string `mapstructure:"notificationCreated" yaml:"notificationCreated"` //  新通知主题（下游推送服务消费）
	NotificationRead    string `mapstructure:"notificationRead" yaml:"notificationRead"`       //  通知已读主题
	UserRegistered      string `mapstructure:"userRegistered" yaml:"userRegistered"`           //  用户注册主题（本服务消费）
	InvitecodeUsed      string `mapstructure:"invitecodeUsed" yaml:"invitecodeUsed"`           //  邀请码被使用主题（本服务消费）
}
