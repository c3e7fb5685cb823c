package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/envelope"
	"github.com/Xushengqwer/member_service/lang"
	"github.com/Xushengqwer/member_service/middleware"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/models/vo"
	"github.com/Xushengqwer/member_service/service"
)

// UserController 帖子导出、用户名补全与表情
type UserController struct {
	exportSvc  service.PostExportService
	userSvc    service.UserQueryService
	avatarSvc  service.AvatarQueryService
	emotionSvc service.EmotionQueryService
	langSvc    lang.LangPropsService
	logger     *zap.Logger
}

func NewUserController(
	exportSvc service.PostExportService,
	userSvc service.UserQueryService,
	avatarSvc service.AvatarQueryService,
	emotionSvc service.EmotionQueryService,
	langSvc lang.LangPropsService,
	logger *zap.Logger,
) *UserController {
	return &UserController{
		exportSvc:  exportSvc,
		userSvc:    userSvc,
		avatarSvc:  avatarSvc,
		emotionSvc: emotionSvc,
		langSvc:    langSvc,
		logger:     logger,
	}
}

// ExportPosts 导出自己的帖子
// @Summary      导出帖子
// @Description  导出当前用户的全部帖子与回帖，成功时返回下载地址并扣除积分。
// @Tags         users (用户)
// @Produce      json
// @Success      200 {object} vo.ExportResponseWrapper "statusCode=true 时包含 url"
// @Failure      403 {object} vo.StatusResponseWrapper "未登录"
// @Router       /export/posts [post]
func (ctrl *UserController) ExportPosts(c *gin.Context) {
	viewer := middleware.ViewerFrom(c)
	ret := envelope.FalseResult()

	url := ctrl.exportSvc.ExportPosts(c.Request.Context(), viewer.ID)
	switch {
	case url == service.ExportInsufficientBalance:
		ret.SetMsg(ctrl.langSvc.Get("insufficientBalanceLabel"))
	case strings.TrimSpace(url) == "":
		// 导出失败，不附带 msg
	default:
		ret.SetStatus(true)
		ret["url"] = url
	}
	envelope.Render(c, ret)
}

// ListUserNames 用户名补全
// @Summary      用户名补全
// @Description  name 为空时返回全部管理员，否则按前缀匹配用户名。需要登录。
// @Tags         users (用户)
// @Produce      json
// @Param        name query string false "用户名前缀"
// @Success      200 {object} vo.UserNamesResponseWrapper "用户名与 20px 头像"
// @Failure      403 {string} string "未登录"
// @Router       /users/names [get]
func (ctrl *UserController) ListUserNames(c *gin.Context) {
	if middleware.ViewerFrom(c) == nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	ctx := c.Request.Context()
	ret := envelope.FalseResult()

	var names []vo.UserNameItem
	prefix := strings.TrimSpace(c.Query("name"))
	if prefix == "" {
		admins, err := ctrl.userSvc.GetAdmins(ctx)
		if err != nil {
			ctrl.logger.Error("查询管理员失败", zap.Error(err))
			envelope.Render(c, ret.SetMsg(ctrl.langSvc.Get("systemErrorLabel")))
			return
		}
		names = make([]vo.UserNameItem, 0, len(admins))
		for _, admin := range admins {
			names = append(names, vo.UserNameItem{
				UserName:      admin.Name,
				UserAvatarURL: ctrl.avatarSvc.GetAvatarURLByUser(enums.AvatarViewModeStatic, admin, "20"),
			})
		}
	} else {
		var err error
		if names, err = ctrl.userSvc.GetUserNamesByPrefix(ctx, prefix); err != nil {
			ctrl.logger.Error("按前缀查询用户名失败", zap.String("prefix", prefix), zap.Error(err))
			envelope.Render(c, ret.SetMsg(ctrl.langSvc.Get("systemErrorLabel")))
			return
		}
	}

	ret.SetStatus(true)
	ret["userNames"] = names
	envelope.Render(c, ret)
}

// GetEmotions 当前用户的常用表情
// @Summary      常用表情
// @Description  匿名访问时 emotions 为空串。
// @Tags         users (用户)
// @Produce      json
// @Success      200 {object} vo.EmotionsResponseWrapper "逗号分隔的表情"
// @Router       /users/emotions [get]
func (ctrl *UserController) GetEmotions(c *gin.Context) {
	ret := envelope.FalseResult().SetStatus(true)
	viewer := middleware.ViewerFrom(c)
	if viewer == nil {
		ret["emotions"] = ""
		envelope.Render(c, ret)
		return
	}
	emotions, err := ctrl.emotionSvc.GetEmojis(c.Request.Context(), viewer.ID)
	if err != nil {
		ctrl.logger.Error("查询常用表情失败", zap.String("userID", viewer.ID), zap.Error(err))
		envelope.Render(c, envelope.FalseResult().SetMsg(ctrl.langSvc.Get("systemErrorLabel")))
		return
	}
	ret["emotions"] = emotions
	envelope.Render(c, ret)
}
