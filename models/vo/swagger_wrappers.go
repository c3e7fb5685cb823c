package vo

// 以下结构体只用于生成接口文档，描述 JSON 接口 {statusCode, msg, ...} 的具体形状。

// StatusResponseWrapper 只包含 statusCode 与 msg 的响应
type StatusResponseWrapper struct {
	StatusCode bool   `json:"statusCode" example:"true"`
	Msg        string `json:"msg,omitempty" example:""` // 失败原因
}

// BuyInvitecodeResponseWrapper 积分兑换邀请码的响应
type BuyInvitecodeResponseWrapper struct {
	StatusCode bool   `json:"statusCode" example:"true"`
	Msg        string `json:"msg" example:"ABCDEFGH12345678 该邀请码将于 2026-10-26 12:00 过期"`
	Invitecode string `json:"invitecode,omitempty" example:"ABCDEFGH12345678"`
	ExpireTime string `json:"expireTime,omitempty" example:"2026-10-26 12:00"`
}

// InvitecodeStateResponseWrapper 邀请码状态查询的响应，statusCode 为状态值或 -1
type InvitecodeStateResponseWrapper struct {
	StatusCode int    `json:"statusCode" example:"1"`
	Msg        string `json:"msg" example:"该邀请码可以使用，将于 2026-10-26 12:00 过期"`
}

// ExportResponseWrapper 帖子导出的响应
type ExportResponseWrapper struct {
	StatusCode bool   `json:"statusCode" example:"true"`
	Msg        string `json:"msg,omitempty" example:""`
	URL        string `json:"url,omitempty" example:"https://static.example.com/export/1700000000000/xxx.json"`
}

// UserNamesResponseWrapper 用户名补全的响应
type UserNamesResponseWrapper struct {
	StatusCode bool           `json:"statusCode" example:"true"`
	UserNames  []UserNameItem `json:"userNames"`
}

// EmotionsResponseWrapper 常用表情的响应
type EmotionsResponseWrapper struct {
	StatusCode bool   `json:"statusCode" example:"true"`
	Emotions   string `json:"emotions" example:"smile,joy,heart"`
}
