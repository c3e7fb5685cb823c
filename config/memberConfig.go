package config

import "github.com/Xushengqwer/go-common/config"

// MemberConfig 是成员服务的完整配置，由 core.LoadConfig 从 YAML 文件加载。
type MemberConfig struct {
	ZapConfig        config.ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig    config.GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig     config.ServerConfig  `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig     config.TracerConfig  `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	MySQLConfig      MySQLConfig          `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
	RedisConfig      RedisConfig          `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	KafkaConfig      KafkaConfig          `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	COSConfig        COSConfig            `mapstructure:"exportCosConfig" json:"exportCosConfig" yaml:"exportCosConfig"`
	SessionConfig    SessionConfig        `mapstructure:"sessionConfig" json:"sessionConfig" yaml:"sessionConfig"`
	SiteConfig       SiteConfig           `mapstructure:"siteConfig" json:"siteConfig" yaml:"siteConfig"`
	HomeConfig       HomeConfig           `mapstructure:"homeConfig" json:"homeConfig" yaml:"homeConfig"`
	InvitecodeConfig InvitecodeConfig     `mapstructure:"invitecode" json:"invitecode" yaml:"invitecode"`
	ExportConfig     ExportConfig         `mapstructure:"exportConfig" json:"exportConfig" yaml:"exportConfig"`
	CronConfig       CronConfig           `mapstructure:"cronConfig" json:"cronConfig" yaml:"cronConfig"`
}
