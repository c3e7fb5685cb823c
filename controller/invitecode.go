package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/config"
	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/envelope"
	"github.com/Xushengqwer/member_service/ids"
	"github.com/Xushengqwer/member_service/lang"
	"github.com/Xushengqwer/member_service/models/dto"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/myErrors"
	"github.com/Xushengqwer/member_service/service"
)

// InvitecodeController 邀请码状态查询
type InvitecodeController struct {
	invitecodeSvc service.InvitecodeQueryService
	langSvc       lang.LangPropsService
	invitecodeCfg config.InvitecodeConfig
	logger        *zap.Logger
}

func NewInvitecodeController(invitecodeSvc service.InvitecodeQueryService, langSvc lang.LangPropsService, invitecodeCfg config.InvitecodeConfig, logger *zap.Logger) *InvitecodeController {
	return &InvitecodeController{
		invitecodeSvc: invitecodeSvc,
		langSvc:       langSvc,
		invitecodeCfg: invitecodeCfg,
		logger:        logger,
	}
}

// GetInvitecodeState 查询邀请码状态
// @Summary      查询邀请码状态
// @Description  statusCode 为邀请码状态 (0 已使用, 1 未使用, 2 已停用)，不存在时为 -1。未使用时 msg 中包含过期时间。
// @Tags         invitecode (邀请码)
// @Accept       json
// @Produce      json
// @Param        csrfToken header string true "CSRF 令牌"
// @Param        request body dto.InvitecodeStateRequest true "邀请码"
// @Success      200 {object} vo.InvitecodeStateResponseWrapper "邀请码状态"
// @Failure      400 {string} string "请求体无法解析"
// @Failure      403 {object} vo.StatusResponseWrapper "未登录或 CSRF 令牌无效"
// @Router       /invitecode/state [post]
func (ctrl *InvitecodeController) GetInvitecodeState(c *gin.Context) {
	obj, err := envelope.ParseJSONObject(c)
	if err != nil {
		envelope.AbortBadRequest(c)
		return
	}
	req := dto.InvitecodeStateRequest{Invitecode: envelope.OptString(obj, "invitecode")}
	ret := envelope.FalseResult()

	invitecode := strings.TrimSpace(req.Invitecode)
	if invitecode == "" {
		envelope.Render(c, ret.SetStatus(-1).SetMsg(invitecode+" "+ctrl.langSvc.Get("notFoundInvitecodeLabel")))
		return
	}

	ic, err := ctrl.invitecodeSvc.GetInvitecode(c.Request.Context(), invitecode)
	if err != nil {
		if !errors.Is(err, myErrors.ErrInvitecodeNotFound) {
			ctrl.logger.Error("查询邀请码失败", zap.Error(err))
			envelope.Render(c, ret.SetMsg(ctrl.langSvc.Get("systemErrorLabel")))
			return
		}
		envelope.Render(c, ret.SetStatus(-1).SetMsg(ctrl.langSvc.Get("notFoundInvitecodeLabel")))
		return
	}

	ret.SetStatus(int(ic.Status))
	switch ic.Status {
	case enums.InvitecodeStatusUsed:
		ret.SetMsg(ctrl.langSvc.Get("invitecodeUsedLabel"))
	case enums.InvitecodeStatusUnused:
		issued, ok := ids.Time(ic.ID)
		if !ok {
			ctrl.logger.Warn("邀请码 ID 无法解析为签发时间", zap.String("id", ic.ID))
			ret.SetMsg(ctrl.langSvc.Get("notFoundInvitecodeLabel"))
			break
		}
		expire := issued.Add(time.Duration(ctrl.invitecodeCfg.Expired) * time.Millisecond)
		ret.SetMsg(ctrl.langSvc.GetWith("invitecodeOkLabel", map[string]string{"time": expire.Format(constant.DateTimeLayout)}))
	case enums.InvitecodeStatusStopUse:
		ret.SetMsg(ctrl.langSvc.Get("invitecodeStopLabel"))
	default:
		ret.SetMsg(ctrl.langSvc.Get("notFoundInvitecodeLabel"))
	}
	envelope.Render(c, ret)
}
