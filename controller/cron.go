package controller

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/envelope"
	"github.com/Xushengqwer/member_service/lang"
	"github.com/Xushengqwer/member_service/service"
)

// CronController 由外部调度器触发的维护接口，使用共享密钥 key 鉴权
type CronController struct {
	key      string
	userSvc  service.UserQueryService
	userMgmt service.UserMgmtService
	langSvc  lang.LangPropsService
	logger   *zap.Logger
}

func NewCronController(key string, userSvc service.UserQueryService, userMgmt service.UserMgmtService, langSvc lang.LangPropsService, logger *zap.Logger) *CronController {
	return &CronController{key: key, userSvc: userSvc, userMgmt: userMgmt, langSvc: langSvc, logger: logger}
}

// keyMatched 未配置密钥时拒绝所有调用
func (ctrl *CronController) keyMatched(c *gin.Context) bool {
	key := c.Query("key")
	return ctrl.key != "" && subtle.ConstantTimeCompare([]byte(key), []byte(ctrl.key)) == 1
}

// ResetUnverifiedUsers 清理未验证账号
// @Summary      清理未验证账号
// @Tags         cron (定时任务)
// @Produce      json
// @Param        key query string true "共享密钥"
// @Success      200 {object} vo.StatusResponseWrapper "statusCode=true"
// @Failure      403 {string} string "密钥错误"
// @Router       /cron/users/reset-unverified [get]
func (ctrl *CronController) ResetUnverifiedUsers(c *gin.Context) {
	if !ctrl.keyMatched(c) {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	if _, err := ctrl.userMgmt.ResetUnverifiedUsers(c.Request.Context()); err != nil {
		ctrl.logger.Error("清理未验证账号失败", zap.Error(err))
		envelope.Render(c, envelope.FalseResult().SetMsg(ctrl.langSvc.Get("systemErrorLabel")))
		return
	}
	envelope.Render(c, envelope.FalseResult().SetStatus(true))
}

// LoadUserNames 重建用户名索引
// @Summary      重建用户名索引
// @Tags         cron (定时任务)
// @Produce      json
// @Param        key query string true "共享密钥"
// @Success      200 {object} vo.StatusResponseWrapper "statusCode=true"
// @Failure      403 {string} string "密钥错误"
// @Router       /cron/users/load-names [get]
func (ctrl *CronController) LoadUserNames(c *gin.Context) {
	if !ctrl.keyMatched(c) {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	if err := ctrl.userSvc.LoadUserNames(c.Request.Context()); err != nil {
		ctrl.logger.Error("重建用户名索引失败", zap.Error(err))
		envelope.Render(c, envelope.FalseResult().SetMsg(ctrl.langSvc.Get("systemErrorLabel")))
		return
	}
	envelope.Render(c, envelope.FalseResult().SetStatus(true))
}
