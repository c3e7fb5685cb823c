package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/myErrors"
)

// Viewer 从会话 Cookie 或 Authorization: Bearer 头解析当前访问者，写入 viewer、sessionId 与 avatarViewMode。
// 解析失败按匿名访问处理，不会终止请求。
func (f *Filters) Viewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		mode := enums.AvatarViewModeStatic
		if token := f.sessionToken(c); token != "" {
			user, sid, err := f.sessionSvc.CurrentUser(c.Request.Context(), token)
			switch {
			case err == nil:
				c.Set(constant.ViewerKey, user)
				c.Set(constant.SessionIDKey, sid)
				mode = user.AvatarViewMode
			case errors.Is(err, myErrors.ErrSessionNotFound), errors.Is(err, myErrors.ErrInvalidToken):
			default:
				f.logger.Warn("解析会话失败，按匿名访问处理", zap.Error(err))
			}
		}
		c.Set(constant.AvatarViewModeKey, mode)
		c.Next()
	}
}

func (f *Filters) sessionToken(c *gin.Context) string {
	if name := f.sessionSvc.CookieName(); name != "" {
		if v, err := c.Cookie(name); err == nil && v != "" {
			return v
		}
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}
