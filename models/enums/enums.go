// Package enums 定义社区实体中使用的枚举值。数值与社区数据库中已有的存量数据保持一致。
package enums

// FollowingType 关注关系的类型
type FollowingType int

const (
	FollowingUser         FollowingType = 0
	FollowingTag          FollowingType = 1
	FollowingArticle      FollowingType = 2
	FollowingArticleWatch FollowingType = 3
)

// AvatarViewMode 头像浏览模式
type AvatarViewMode int

const (
	AvatarViewModeOriginal AvatarViewMode = 0
	// AvatarViewModeStatic 动图只展示静态首帧，匿名访问者的默认值
	AvatarViewModeStatic AvatarViewMode = 1
)

// Anonymous 帖子/回帖是否匿名发布
type Anonymous int

const (
	AnonymousPublic    Anonymous = 0
	AnonymousAnonymous Anonymous = 1
)

// UserStatus 账号状态
type UserStatus int

const (
	UserStatusValid       UserStatus = 0
	UserStatusBlocked     UserStatus = 1
	UserStatusNotVerified UserStatus = 2
)

// InvitecodeStatus 邀请码状态
type InvitecodeStatus int

const (
	InvitecodeStatusUsed    InvitecodeStatus = 0
	InvitecodeStatusUnused  InvitecodeStatus = 1
	InvitecodeStatusStopUse InvitecodeStatus = 2
)

// ContentStatus 帖子、回帖、清风明月的状态
type ContentStatus int

const (
	ContentStatusValid   ContentStatus = 0
	ContentStatusInvalid ContentStatus = 1
)

// PointtransferType 积分流水类型
type PointtransferType int

const (
	TransferTypeInit            PointtransferType = 0
	TransferTypeAddArticle      PointtransferType = 1
	TransferTypeAddComment      PointtransferType = 2
	TransferTypeUpdateArticle   PointtransferType = 3
	TransferTypeArticleReward   PointtransferType = 4
	TransferTypeCommentReward   PointtransferType = 5
	TransferTypeInvitedRegister PointtransferType = 6
	TransferTypeAccount2Account PointtransferType = 9
	TransferTypeCharge          PointtransferType = 12
	TransferTypeDataExport      PointtransferType = 21
	TransferTypeBuyInvitecode   PointtransferType = 25
)

// NotificationDataType 通知的数据类型
type NotificationDataType int

const (
	NotificationArticle         NotificationDataType = 0
	NotificationAt              NotificationDataType = 2
	NotificationCommented       NotificationDataType = 3
	NotificationPointCharge     NotificationDataType = 5
	NotificationPointTransfer   NotificationDataType = 6
	NotificationInvitecodeUsed  NotificationDataType = 13
	NotificationNewFollower     NotificationDataType = 15
	NotificationPointExport     NotificationDataType = 24
	NotificationSysAnnounceMisc NotificationDataType = 30
)

// EmotionType 表情类型
type EmotionType int

const (
	EmotionTypeEmoji EmotionType = 0
)

// DisplayType 积分流水相对于主页所属用户的方向
type DisplayType string

const (
	DisplayTypeIn  DisplayType = "in"
	DisplayTypeOut DisplayType = "out"
)
