package constant

// 请求上下文 (gin.Context) 中的属性键
const (
	// ProfileUserKey 被访问的成员主页所属用户，由 UserBlockCheck 写入
	ProfileUserKey = "profileUser"
	// ViewerKey 当前登录的访问者，由会话中间件写入，匿名访问时不存在
	ViewerKey = "viewer"
	// AvatarViewModeKey 访问者的头像浏览模式
	AvatarViewModeKey = "avatarViewMode"
	// RequestKey 校验通过的请求体 (*dto.PointTransferRequest)
	RequestKey = "request"
	// ToUserKey 积分转账的收款用户，由 PointTransferValidation 写入
	ToUserKey = "toUser"
	// PageKey 待渲染页面，After 中间件在渲染前修改其数据模型
	PageKey = "pendingPage"
	// StopwatchKey 请求计时起点
	StopwatchKey = "stopwatchStart"
)

// 系统账户
const SYS = "sys"

// 角色 ID
const (
	RoleAdmin   = "adminRole"
	RoleDefault = "defaultRole"
	RoleVisitor = "visitorRole"
)

// 站点选项
const (
	OptionCategoryMisc      = "misc"
	OptionAllowRegister     = "miscAllowRegister"
	AllowRegisterOpen       = "0"
	AllowRegisterClosed     = "1"
	AllowRegisterInviteOnly = "2"
)

// 时间显示格式
const DateTimeLayout = "2006-01-02 15:04"

// SessionIDKey 当前会话 ID，CSRF 令牌按会话存储
const SessionIDKey = "sessionId"

// 权限 ID
const (
	PermissionExchangeInvitecode = "commonExchangeInvitecode"
	PermissionTransferPoint      = "commonTransferPoint"
	PermissionExportData         = "commonExportData"
	PermissionAddBreezemoon      = "commonAddBreezemoon"
	PermissionFollowUser         = "commonFollowUser"
)

// AllPermissions 页面权限表中列出的全部权限
var AllPermissions = []string{
	PermissionExchangeInvitecode,
	PermissionTransferPoint,
	PermissionExportData,
	PermissionAddBreezemoon,
	PermissionFollowUser,
}
