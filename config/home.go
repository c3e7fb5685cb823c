package config

// HomeConfig 是成员主页各列表的分页配置。
// 键名与社区历史配置 (symphony.properties) 保持一致，路由描述符通过 Lookup 按键名取值。
type HomeConfig struct {
	ArticlesCnt                 int `mapstructure:"userHomeArticlesCnt" json:"userHomeArticlesCnt" yaml:"userHomeArticlesCnt"`
	ArticlesWindowSize          int `mapstructure:"userHomeArticlesWindowSize" json:"userHomeArticlesWindowSize" yaml:"userHomeArticlesWindowSize"`
	CmtsCnt                     int `mapstructure:"userHomeCmtsCnt" json:"userHomeCmtsCnt" yaml:"userHomeCmtsCnt"`
	CmtsWindowSize              int `mapstructure:"userHomeCmtsWindowSize" json:"userHomeCmtsWindowSize" yaml:"userHomeCmtsWindowSize"`
	FollowingUsersCnt           int `mapstructure:"userHomeFollowingUsersCnt" json:"userHomeFollowingUsersCnt" yaml:"userHomeFollowingUsersCnt"`
	FollowingUsersWindowSize    int `mapstructure:"userHomeFollowingUsersWindowSize" json:"userHomeFollowingUsersWindowSize" yaml:"userHomeFollowingUsersWindowSize"`
	FollowingTagsCnt            int `mapstructure:"userHomeFollowingTagsCnt" json:"userHomeFollowingTagsCnt" yaml:"userHomeFollowingTagsCnt"`
	FollowingTagsWindowSize     int `mapstructure:"userHomeFollowingTagsWindowSize" json:"userHomeFollowingTagsWindowSize" yaml:"userHomeFollowingTagsWindowSize"`
	FollowingArticlesCnt        int `mapstructure:"userHomeFollowingArticlesCnt" json:"userHomeFollowingArticlesCnt" yaml:"userHomeFollowingArticlesCnt"`
	FollowingArticlesWindowSize int `mapstructure:"userHomeFollowingArticlesWindowSize" json:"userHomeFollowingArticlesWindowSize" yaml:"userHomeFollowingArticlesWindowSize"`
	FollowersCnt                int `mapstructure:"userHomeFollowersCnt" json:"userHomeFollowersCnt" yaml:"userHomeFollowersCnt"`
	FollowersWindowSize         int `mapstructure:"userHomeFollowersWindowSize" json:"userHomeFollowersWindowSize" yaml:"userHomeFollowersWindowSize"`
	PointsCnt                   int `mapstructure:"userHomePointsCnt" json:"userHomePointsCnt" yaml:"userHomePointsCnt"`
	PointsWindowSize            int `mapstructure:"userHomePointsWindowSize" json:"userHomePointsWindowSize" yaml:"userHomePointsWindowSize"`
	BreezemoonsCnt              int `mapstructure:"userHomeBreezemoonsCnt" json:"userHomeBreezemoonsCnt" yaml:"userHomeBreezemoonsCnt"`
	BreezemoonsWindowSize       int `mapstructure:"userHomeBreezemoonsWindowSize" json:"userHomeBreezemoonsWindowSize" yaml:"userHomeBreezemoonsWindowSize"`
}

// 未配置时的兜底值
const (
	defaultHomePageSize   = 20
	defaultHomeWindowSize = 10
)

// Lookup 按配置键名返回整数值；未知键或未配置 (<=0) 时返回兜底值。
func (h HomeConfig) Lookup(key string) int {
	var v int
	isWindow := false
	switch key {
	case "userHomeArticlesCnt":
		v = h.ArticlesCnt
	case "userHomeArticlesWindowSize":
		v, isWindow = h.ArticlesWindowSize, true
	case "userHomeCmtsCnt":
		v = h.CmtsCnt
	case "userHomeCmtsWindowSize":
		v, isWindow = h.CmtsWindowSize, true
	case "userHomeFollowingUsersCnt":
		v = h.FollowingUsersCnt
	case "userHomeFollowingUsersWindowSize":
		v, isWindow = h.FollowingUsersWindowSize, true
	case "userHomeFollowingTagsCnt":
		v = h.FollowingTagsCnt
	case "userHomeFollowingTagsWindowSize":
		v, isWindow = h.FollowingTagsWindowSize, true
	case "userHomeFollowingArticlesCnt":
		v = h.FollowingArticlesCnt
	case "userHomeFollowingArticlesWindowSize":
		v, isWindow = h.FollowingArticlesWindowSize, true
	case "userHomeFollowersCnt":
		v = h.FollowersCnt
	case "userHomeFollowersWindowSize":
		v, isWindow = h.FollowersWindowSize, true
	case "userHomePointsCnt":
		v = h.PointsCnt
	case "userHomePointsWindowSize":
		v, isWindow = h.PointsWindowSize, true
	case "userHomeBreezemoonsCnt":
		v = h.BreezemoonsCnt
	case "userHomeBreezemoonsWindowSize":
		v, isWindow = h.BreezemoonsWindowSize, true
	}
	if v > 0 {
		return v
	}
	if isWindow {
		return defaultHomeWindowSize
	}
	return defaultHomePageSize
}
