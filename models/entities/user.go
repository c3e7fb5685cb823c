package entities

import "github.com/Xushengqwer/member_service/models/enums"

// User 社区用户。ID 为毫秒时间戳字符串，账号创建时间由 ID 解析得到。
type User struct {
	ID             string               `gorm:"primaryKey;type:varchar(19)" json:"oId"`
	Name           string               `gorm:"type:varchar(64);uniqueIndex;not null" json:"userName"`
	Email          string               `gorm:"type:varchar(255);index" json:"userEmail"`
	Nickname       string               `gorm:"type:varchar(64)" json:"userNickname"`
	Intro          string               `gorm:"type:varchar(255)" json:"userIntro"`
	URL            string               `gorm:"type:varchar(255)" json:"userURL"`
	AvatarURL      string               `gorm:"type:varchar(255)" json:"userAvatarURL"`
	AvatarViewMode enums.AvatarViewMode `gorm:"not null;default:0" json:"userAvatarViewMode"`
	Role           string               `gorm:"type:varchar(32);not null;index" json:"userRole"`
	Status         enums.UserStatus     `gorm:"not null;default:0;index" json:"userStatus"`
	Point          int                  `gorm:"not null;default:0" json:"userPoint"`
	UsedPoint      int                  `gorm:"not null;default:0" json:"userUsedPoint"`
	City           string               `gorm:"type:varchar(64)" json:"userCity"`
	Skin           string               `gorm:"type:varchar(32)" json:"userSkin"`
}

func (User) TableName() string { return "symphony_user" }

// Role 角色。Permissions 为逗号分隔的权限 ID 列表。
type Role struct {
	ID          string `gorm:"primaryKey;type:varchar(32)" json:"oId"`
	Name        string `gorm:"type:varchar(64);not null" json:"roleName"`
	Description string `gorm:"type:varchar(255)" json:"roleDescription"`
	Permissions string `gorm:"type:text" json:"permissions"`
}

func (Role) TableName() string { return "symphony_role" }

// Option 站点选项
type Option struct {
	ID       string `gorm:"primaryKey;type:varchar(64)" json:"oId"`
	Category string `gorm:"type:varchar(32);index" json:"optionCategory"`
	Value    string `gorm:"type:text" json:"optionValue"`
}

func (Option) TableName() string { return "symphony_option" }

// Emotion 用户常用表情
type Emotion struct {
	ID      string            `gorm:"primaryKey;type:varchar(19)" json:"oId"`
	UserID  string            `gorm:"type:varchar(19);index" json:"emotionUserId"`
	Content string            `gorm:"type:varchar(64)" json:"emotionContent"`
	Type    enums.EmotionType `gorm:"not null;default:0" json:"emotionType"`
	Sort    int               `gorm:"not null;default:0" json:"emotionSort"`
}

func (Emotion) TableName() string { return "symphony_emotion" }
