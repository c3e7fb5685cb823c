package config

// SiteConfig 站点级选项
type SiteConfig struct {
	SiteName        string `mapstructure:"siteName" json:"siteName" yaml:"siteName"`
	ServePath       string `mapstructure:"servePath" json:"servePath" yaml:"servePath"`
	StaticServePath string `mapstructure:"staticServePath" json:"staticServePath" yaml:"staticServePath"`
	// SkinDir 页面模板所在目录，模板名 /home/home.ftl 对应 {SkinDir}/home/home.tmpl
	SkinDir string `mapstructure:"skinDir" json:"skinDir" yaml:"skinDir"`
	Locale  string `mapstructure:"locale" json:"locale" yaml:"locale"`

	// AllowAnonymousView 为 false 时，未登录访客访问成员主页会被重定向到登录页
	AllowAnonymousView bool   `mapstructure:"allowAnonymousView" json:"allowAnonymousView" yaml:"allowAnonymousView"`
	LoginPath          string `mapstructure:"loginPath" json:"loginPath" yaml:"loginPath"`

	// KeyOfSymphony 是 cron 接口的共享密钥 (?key=...)
	KeyOfSymphony string `mapstructure:"keyOfSymphony" json:"-" yaml:"keyOfSymphony"`

	// DefaultAvatarURL 用户未设置头像时使用
	DefaultAvatarURL string `mapstructure:"defaultAvatarURL" json:"defaultAvatarURL" yaml:"defaultAvatarURL"`
}

// SessionConfig 会话 Cookie 与签名配置
type SessionConfig struct {
	CookieName string `mapstructure:"cookieName" json:"cookieName" yaml:"cookieName"`
	Secret     string `mapstructure:"secret" json:"-" yaml:"secret"`
	// TTLHours 会话有效期（小时）
	TTLHours int `mapstructure:"ttlHours" json:"ttlHours" yaml:"ttlHours"`
}

// InvitecodeConfig 对应 invitecode.* 配置项
type InvitecodeConfig struct {
	// Expired 邀请码有效期（毫秒），过期时间 = 签发时间(ID) + Expired
	Expired int64 `mapstructure:"expired" json:"expired" yaml:"expired"`
	// BuySum 使用积分兑换一个邀请码的价格
	BuySum int `mapstructure:"buySum" json:"buySum" yaml:"buySum"`
}

// ExportConfig 帖子导出配置
type ExportConfig struct {
	// Sum 导出一次需要扣除的积分
	Sum int `mapstructure:"sum" json:"sum" yaml:"sum"`
	// ObjectKeyPrefix 导出文件在 COS 中的对象键前缀
	ObjectKeyPrefix string `mapstructure:"objectKeyPrefix" json:"objectKeyPrefix" yaml:"objectKeyPrefix"`
}

// CronConfig 进程内定时任务配置（与 /cron/* 接口执行同样的维护逻辑）
type CronConfig struct {
	Enabled             bool   `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	ResetUnverifiedSpec string `mapstructure:"resetUnverifiedSpec" json:"resetUnverifiedSpec" yaml:"resetUnverifiedSpec"`
	LoadNamesSpec       string `mapstructure:"loadNamesSpec" json:"loadNamesSpec" yaml:"loadNamesSpec"`
	// UnverifiedTTLHours 未验证账号保留时长，超过后被清理
	UnverifiedTTLHours int `mapstructure:"unverifiedTTLHours" json:"unverifiedTTLHours" yaml:"unverifiedTTLHours"`
}
