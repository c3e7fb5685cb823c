package myErrors

import "errors"

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// 业务规则错误
var (
	ErrUserNotFound        = errors.New("用户不存在")
	ErrUserBlocked         = errors.New("用户已被封禁")
	ErrInvitecodeNotFound  = errors.New("邀请码不存在")
	ErrInsufficientBalance = errors.New("积分余额不足")
	ErrSelfTransfer        = errors.New("不能给自己转账")
	ErrInvalidAmount       = errors.New("转账金额无效")
	ErrTransferFailed      = errors.New("积分转账失败")
)

// 会话与令牌错误
var (
	ErrSessionNotFound = errors.New("会话不存在或已失效")
	ErrInvalidToken    = errors.New("会话令牌无效")
	ErrCSRFMismatch    = errors.New("CSRF 令牌不匹配")
)
