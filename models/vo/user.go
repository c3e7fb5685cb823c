package vo

import (
	"html"
	"time"

	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
)

// HomeUser 是成员主页上展示的被访问用户，所有字符串字段都经过 HTML 转义。
type HomeUser struct {
	OID            string               `json:"oId"`
	UserName       string               `json:"userName"`
	UserNickname   string               `json:"userNickname"`
	UserIntro      string               `json:"userIntro"`
	UserURL        string               `json:"userURL"`
	UserAvatarURL  string               `json:"userAvatarURL"`
	UserRole       string               `json:"userRole"`
	RoleName       string               `json:"roleName"`
	UserCity       string               `json:"userCity"`
	UserPoint      int                  `json:"userPoint"`
	UserStatus     enums.UserStatus     `json:"userStatus"`
	AvatarViewMode enums.AvatarViewMode `json:"userAvatarViewMode"`
	UserCreateTime time.Time            `json:"userCreateTime"`
}

// NewHomeUser 从用户实体构造主页用户。头像、角色名与创建时间由组装器另行填充。
func NewHomeUser(u *entities.User) *HomeUser {
	h := &HomeUser{
		OID:            u.ID,
		UserName:       u.Name,
		UserNickname:   u.Nickname,
		UserIntro:      u.Intro,
		UserURL:        u.URL,
		UserAvatarURL:  u.AvatarURL,
		UserRole:       u.Role,
		UserCity:       u.City,
		UserPoint:      u.Point,
		UserStatus:     u.Status,
		AvatarViewMode: u.AvatarViewMode,
	}
	h.Escape()
	return h
}

// Escape 转义所有字符串字段。对已转义的值重复调用结果不变。
func (h *HomeUser) Escape() {
	for _, p := range []*string{
		&h.OID, &h.UserName, &h.UserNickname, &h.UserIntro, &h.UserURL,
		&h.UserAvatarURL, &h.UserRole, &h.RoleName, &h.UserCity,
	} {
		*p = EscapeHTML(*p)
	}
}

// EscapeHTML 先反转义再转义，保证幂等
func EscapeHTML(s string) string {
	return html.EscapeString(html.UnescapeString(s))
}

// CurrentUser 页头中的当前登录用户
type CurrentUser struct {
	OID           string `json:"oId"`
	UserName      string `json:"userName"`
	UserAvatarURL string `json:"userAvatarURL"`
	UserRole      string `json:"userRole"`
	UserPoint     int    `json:"userPoint"`
}

// UserRow 关注用户 / 粉丝列表中的一行
type UserRow struct {
	Followable
	OID           string `json:"oId"`
	UserName      string `json:"userName"`
	UserNickname  string `json:"userNickname"`
	UserIntro     string `json:"userIntro"`
	UserAvatarURL string `json:"userAvatarURL"`
	UserPoint     int    `json:"userPoint"`
}

func (r *UserRow) FollowTargetID() string { return r.OID }

// UserNameItem 用户名自动补全的一项
type UserNameItem struct {
	UserName      string `json:"userName"`
	UserAvatarURL string `json:"userAvatarURL"`
}
