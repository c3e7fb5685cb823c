package config

// SourceConfig 代表一个数据库源（主库或从库）的配置
type SourceConfig struct {
	DSN string `mapstructure:"dsn" yaml:"dsn"`
	// 以下连接池设置可覆盖共享设置，使用指针以区分是否设置
	MaxIdleConns    *int `mapstructure:"max_idle_conns,omitempty" yaml:"max_idle_conns,omitempty"`
	MaxOpenConns    *int `mapstructure:"max_open_conns,omitempty" yaml:"max_open_conns,omitempty"`
	ConnMaxLifetime *int `mapstructure:"conn_max_lifetime,omitempty" yaml:"conn_max_lifetime,omitempty"` // 秒
}

// MySQLConfig 包含主库和从库的配置
// 成员主页全部是读请求，配置从库后读流量由 dbresolver 分流，积分转账等写操作始终落主库。
type MySQLConfig struct {
	Write SourceConfig   `mapstructure:"write" yaml:"write"`
	Read  []SourceConfig `mapstructure:"read" yaml:"read"` // 为空表示不启用读写分离

	SharedMaxIdleConns    int `mapstructure:"max_idle_conns" yaml:"max_idle_conn"`
	SharedMaxOpenConns    int `mapstructure:"max_open_conn" yaml:"max_open_conn"`
	SharedConnMaxLifetime int `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"` // 秒
}
