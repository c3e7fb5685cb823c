package config

// RedisConfig 包含会话、CSRF 令牌与用户名索引所用 Redis 的连接配置
type RedisConfig struct {
	Addr     string `mapstructure:"addr" json:"addr" yaml:"addr"`
	Password string `mapstructure:"password" json:"-" yaml:"password"`
	DB       int    `mapstructure:"db" json:"db" yaml:"db"`

	// PoolSize 连接池大小，0 表示使用 go-redis 默认值 (10 * GOMAXPROCS)
	PoolSize int `mapstructure:"poolSize" json:"poolSize" yaml:"poolSize"`

	// DialTimeout 建立连接的超时时间（秒）
	DialTimeout int `mapstructure:"dialTimeout" json:"dialTimeout" yaml:"dialTimeout"`
}
