package middleware

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/envelope"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/myErrors"
	"github.com/Xushengqwer/member_service/render"
)

// AnonymousViewCheck 站点禁止匿名浏览时，把未登录访客重定向到登录页
func (f *Filters) AnonymousViewCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		if f.site.AllowAnonymousView || ViewerFrom(c) != nil {
			c.Next()
			return
		}
		loginPath := f.site.ServePath + f.site.LoginPath
		target := loginPath + "?goto=" + url.QueryEscape(f.site.ServePath+c.Request.URL.RequestURI())
		c.Redirect(http.StatusFound, target)
		c.Abort()
	}
}

// UserBlockCheck 路径中的 userName 不存在或非正常状态时渲染 404 页面，否则写入 profileUser
func (f *Filters) UserBlockCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		userName := c.Param("userName")
		user, err := f.userSvc.GetUserByName(c.Request.Context(), userName)
		if err != nil {
			if !errors.Is(err, myErrors.ErrUserNotFound) {
				f.logger.Error("查询主页用户失败", zap.String("userName", userName), zap.Error(err))
			}
			SetPage(c, render.NotFoundPage())
			c.Abort()
			return
		}
		if user.Status != enums.UserStatusValid {
			SetPage(c, render.NotFoundPage())
			c.Abort()
			return
		}
		c.Set(constant.ProfileUserKey, user)
		c.Next()
	}
}

// LoginCheck 未登录时返回 403
func (f *Filters) LoginCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ViewerFrom(c) == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, envelope.FalseResult())
			return
		}
		c.Next()
	}
}

// CSRFCheck 校验请求头 csrfToken / X-CSRF-Token 或参数 csrfToken
func (f *Filters) CSRFCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("csrfToken")
		if token == "" {
			token = c.GetHeader("X-CSRF-Token")
		}
		if token == "" {
			token = c.Query("csrfToken")
		}
		if token == "" && c.ContentType() != "application/json" {
			token = c.PostForm("csrfToken")
		}

		err := f.sessionSvc.CheckCSRF(c.Request.Context(), SessionIDFrom(c), token)
		if err != nil {
			if !errors.Is(err, myErrors.ErrCSRFMismatch) {
				f.logger.Error("校验 CSRF 令牌失败", zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusForbidden, envelope.FalseResult().SetMsg(f.langSvc.Get("invalidCSRFLabel")))
			return
		}
		c.Next()
	}
}

// PermissionCheck 访问者的角色没有指定权限时返回 403
func (f *Filters) PermissionCheck(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer := ViewerFrom(c)
		role := constant.RoleVisitor
		if viewer != nil {
			role = viewer.Role
		}
		if !f.roleSvc.UserHasPermission(c.Request.Context(), role, permission) {
			c.AbortWithStatusJSON(http.StatusForbidden, envelope.FalseResult().SetMsg(f.langSvc.Get("noPermissionLabel")))
			return
		}
		c.Next()
	}
}
