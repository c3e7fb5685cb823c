package dto

// PointTransferRequest 积分转账请求体，也接受同名表单参数
type PointTransferRequest struct {
	UserName string `json:"userName" example:"bob"` // 收款人用户名，也可使用 toUserName
	Amount   int    `json:"amount" example:"100"`   // 转账积分，正整数
}

// InvitecodeStateRequest 邀请码状态查询请求体
type InvitecodeStateRequest struct {
	Invitecode string `json:"invitecode" example:"ABCD1234"` // 邀请码，首尾空白会被忽略
}
