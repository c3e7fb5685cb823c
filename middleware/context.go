// Package middleware 实现成员主页与积分接口的前置/后置过滤器。
// 前置过滤器在 c.Next() 之前判定并可终止请求；后置过滤器在 c.Next() 之后修改待渲染页面，
// 最外层的 RenderPage 最后完成渲染。
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/models/dto"
	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/render"
)

// ViewerFrom 返回当前登录的访问者，匿名访问时为 nil
func ViewerFrom(c *gin.Context) *entities.User {
	if v, ok := c.Get(constant.ViewerKey); ok {
		if u, ok := v.(*entities.User); ok {
			return u
		}
	}
	return nil
}

// ProfileUserFrom 返回 UserBlockCheck 写入的主页所属用户
func ProfileUserFrom(c *gin.Context) *entities.User {
	if v, ok := c.Get(constant.ProfileUserKey); ok {
		if u, ok := v.(*entities.User); ok {
			return u
		}
	}
	return nil
}

// ToUserFrom 返回 PointTransferValidation 写入的收款用户
func ToUserFrom(c *gin.Context) *entities.User {
	if v, ok := c.Get(constant.ToUserKey); ok {
		if u, ok := v.(*entities.User); ok {
			return u
		}
	}
	return nil
}

// TransferRequestFrom 返回 PointTransferValidation 校验通过的转账请求
func TransferRequestFrom(c *gin.Context) *dto.PointTransferRequest {
	if v, ok := c.Get(constant.RequestKey); ok {
		if req, ok := v.(*dto.PointTransferRequest); ok {
			return req
		}
	}
	return nil
}

// AvatarViewModeFrom 匿名访问时为 STATIC
func AvatarViewModeFrom(c *gin.Context) enums.AvatarViewMode {
	if v, ok := c.Get(constant.AvatarViewModeKey); ok {
		if m, ok := v.(enums.AvatarViewMode); ok {
			return m
		}
	}
	return enums.AvatarViewModeStatic
}

// SessionIDFrom 当前会话 ID，匿名访问时为空串
func SessionIDFrom(c *gin.Context) string {
	return c.GetString(constant.SessionIDKey)
}

// SetPage 设置待渲染页面
func SetPage(c *gin.Context, page *render.Page) {
	c.Set(constant.PageKey, page)
}

// PageFrom 返回待渲染页面，handler 没有产出页面时为 nil
func PageFrom(c *gin.Context) *render.Page {
	if v, ok := c.Get(constant.PageKey); ok {
		if p, ok := v.(*render.Page); ok {
			return p
		}
	}
	return nil
}
