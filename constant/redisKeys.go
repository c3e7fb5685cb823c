package constant

import "time"

// Redis Key 相关常量 (导出)
const (
	// SessionKeyPrefix 是会话记录的 Key 前缀。
	// 会话 JWT 中携带 sid，服务端以 "member:session:{sid}" 保存对应的用户 ID，
	// 删除该 Key 即可让会话立即失效。
	// Redis 类型: String，值为用户 ID
	SessionKeyPrefix = "member:session:"

	// CSRFTokenKeyPrefix 是 CSRF 令牌的 Key 前缀，每个会话一个令牌。
	// 示例 Key: "member:csrf:{sid}"
	// Redis 类型: String
	CSRFTokenKeyPrefix = "member:csrf:"

	// UserNamesKey 是用户名索引。
	// 所有成员分数都为 0，按字典序排列，用 ZRANGEBYLEX 做前缀补全。
	// 成员格式为 "{小写用户名}\x00{用户名}"，以便忽略大小写匹配同时保留原始大小写。
	// Redis 类型: Sorted Set
	UserNamesKey = "member:user_names"
)

const (
	// CSRFTokenTTL CSRF 令牌有效期，每次渲染页面时续期
	CSRFTokenTTL = 12 * time.Hour

	// UserNamesPrefixLimit 前缀补全最多返回的条数
	UserNamesPrefixLimit = 5
)
