package service

import (
	"strings"

	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/models/vo"
)

// 主页头像默认尺寸
const defaultAvatarSize = "210"

// AvatarQueryService 头像地址计算
type AvatarQueryService interface {
	// GetAvatarURLByUser 返回指定尺寸的头像地址。STATIC 模式下动图会被转换为静态图。
	GetAvatarURLByUser(mode enums.AvatarViewMode, user *entities.User, size string) string

	// GetAvatarURL 返回主页默认尺寸的头像地址
	GetAvatarURL(mode enums.AvatarViewMode, user *entities.User) string

	// FillUserAvatarURL 为主页用户填充默认尺寸的头像地址
	FillUserAvatarURL(mode enums.AvatarViewMode, user *vo.HomeUser, source *entities.User)
}

type avatarQueryService struct {
	defaultAvatarURL string
}

func NewAvatarQueryService(defaultAvatarURL string) AvatarQueryService {
	return &avatarQueryService{defaultAvatarURL: defaultAvatarURL}
}

func (s *avatarQueryService) GetAvatarURL(mode enums.AvatarViewMode, user *entities.User) string {
	return s.GetAvatarURLByUser(mode, user, defaultAvatarSize)
}

func (s *avatarQueryService) FillUserAvatarURL(mode enums.AvatarViewMode, user *vo.HomeUser, source *entities.User) {
	user.UserAvatarURL = s.GetAvatarURL(mode, source)
}

func (s *avatarQueryService) GetAvatarURLByUser(mode enums.AvatarViewMode, user *entities.User, size string) string {
	raw := s.defaultAvatarURL
	if user != nil && strings.TrimSpace(user.AvatarURL) != "" {
		raw = strings.TrimSpace(user.AvatarURL)
	}
	if raw == "" {
		return ""
	}

	base := raw
	if i := strings.Index(base, "?"); i >= 0 {
		base = base[:i]
	}

	params := "?imageView2/1/w/" + size + "/h/" + size + "/interlace/0/q/100"
	if mode == enums.AvatarViewModeStatic && strings.HasSuffix(strings.ToLower(base), ".gif") {
		params += "/format/jpg"
	}
	return base + params
}
