package entities

import "github.com/Xushengqwer/member_service/models/enums"

// Pointtransfer 积分流水，只追加不修改。
// FromBalance/ToBalance 记录转账完成后双方的余额，系统账户一侧恒为 0。
type Pointtransfer struct {
	ID          string                  `gorm:"primaryKey;type:varchar(19)" json:"oId"`
	FromID      string                  `gorm:"type:varchar(19);not null;index" json:"fromId"`
	ToID        string                  `gorm:"type:varchar(19);not null;index" json:"toId"`
	Type        enums.PointtransferType `gorm:"not null" json:"type"`
	Sum         int                     `gorm:"not null" json:"sum"`
	FromBalance int                     `gorm:"not null" json:"fromBalance"`
	ToBalance   int                     `gorm:"not null" json:"toBalance"`
	DataID      string                  `gorm:"type:varchar(255)" json:"dataId"`
	Time        int64                   `gorm:"not null;index" json:"time"`
}

func (Pointtransfer) TableName() string { return "symphony_pointtransfer" }

// Invitecode 邀请码。ID 即签发时间（毫秒），过期时间 = ID + invitecode.expired
type Invitecode struct {
	ID          string                 `gorm:"primaryKey;type:varchar(19)" json:"oId"`
	Code        string                 `gorm:"type:varchar(32);not null;uniqueIndex" json:"code"`
	GeneratorID string                 `gorm:"type:varchar(19);not null;index" json:"generatorId"`
	UserID      string                 `gorm:"type:varchar(19)" json:"userId"`
	Status      enums.InvitecodeStatus `gorm:"not null" json:"status"`
	Memo        string                 `gorm:"type:varchar(255)" json:"memo"`
}

func (Invitecode) TableName() string { return "symphony_invitecode" }

// Notification 站内通知
type Notification struct {
	ID       string                     `gorm:"primaryKey;type:varchar(19)" json:"oId"`
	UserID   string                     `gorm:"type:varchar(19);not null;index:idx_notification_user,priority:1" json:"userId"`
	DataID   string                     `gorm:"type:varchar(64)" json:"dataId"`
	DataType enums.NotificationDataType `gorm:"not null;index:idx_notification_user,priority:2" json:"dataType"`
	HasRead  bool                       `gorm:"not null;default:false;index:idx_notification_user,priority:3" json:"hasRead"`
}

func (Notification) TableName() string { return "symphony_notification" }
