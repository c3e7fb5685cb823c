package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/constant"
)

// CSRFToken 把当前会话的 CSRF 令牌写入待渲染页面，匿名访客为空串
func (f *Filters) CSRFToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		page := PageFrom(c)
		if page == nil {
			return
		}
		token := ""
		if sid := SessionIDFrom(c); sid != "" {
			var err error
			if token, err = f.sessionSvc.CSRFToken(c.Request.Context(), sid); err != nil {
				f.logger.Error("生成 CSRF 令牌失败", zap.Error(err))
				token = ""
			}
		}
		page.DataModel["csrfToken"] = token
	}
}

// PermissionGrant 把访问者角色的权限表写入待渲染页面
func (f *Filters) PermissionGrant() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		page := PageFrom(c)
		if page == nil {
			return
		}
		role := constant.RoleVisitor
		if viewer := ViewerFrom(c); viewer != nil {
			role = viewer.Role
		}
		page.DataModel["permissions"] = f.roleSvc.GetPermissionsGrant(c.Request.Context(), role)
	}
}
