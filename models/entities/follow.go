package entities

import "github.com/Xushengqwer/member_service/models/enums"

// Follow 关注关系，(FollowerID, FollowingID, FollowingType) 唯一
type Follow struct {
	ID            string              `gorm:"primaryKey;type:varchar(19)" json:"oId"`
	FollowerID    string              `gorm:"type:varchar(19);not null;uniqueIndex:uk_follow,priority:1" json:"followerId"`
	FollowingID   string              `gorm:"type:varchar(19);not null;uniqueIndex:uk_follow,priority:2;index" json:"followingId"`
	FollowingType enums.FollowingType `gorm:"not null;uniqueIndex:uk_follow,priority:3" json:"followingType"`
}

func (Follow) TableName() string { return "symphony_follow" }
