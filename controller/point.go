package controller

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/config"
	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/envelope"
	"github.com/Xushengqwer/member_service/lang"
	"github.com/Xushengqwer/member_service/middleware"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/service"
)

// PointController 积分转账与积分兑换邀请码
type PointController struct {
	ledger        service.PointtransferMgmtService
	notifySvc     service.NotificationMgmtService
	optionSvc     service.OptionQueryService
	invitecodeSvc service.InvitecodeMgmtService
	langSvc       lang.LangPropsService
	invitecodeCfg config.InvitecodeConfig
	logger        *zap.Logger
}

func NewPointController(
	ledger service.PointtransferMgmtService,
	notifySvc service.NotificationMgmtService,
	optionSvc service.OptionQueryService,
	invitecodeSvc service.InvitecodeMgmtService,
	langSvc lang.LangPropsService,
	invitecodeCfg config.InvitecodeConfig,
	logger *zap.Logger,
) *PointController {
	return &PointController{
		ledger:        ledger,
		notifySvc:     notifySvc,
		optionSvc:     optionSvc,
		invitecodeSvc: invitecodeSvc,
		langSvc:       langSvc,
		invitecodeCfg: invitecodeCfg,
		logger:        logger,
	}
}

// PointTransfer 积分转账
// @Summary      积分转账
// @Description  当前登录用户向另一用户转账积分。收款人、金额与余额已由前置校验检查。
// @Tags         point (积分)
// @Accept       json
// @Produce      json
// @Param        csrfToken header string true "CSRF 令牌"
// @Param        request body dto.PointTransferRequest true "收款人与金额"
// @Success      200 {object} vo.StatusResponseWrapper "statusCode=true 表示成功，否则 msg 为失败原因"
// @Failure      400 {string} string "请求体无法解析"
// @Failure      403 {object} vo.StatusResponseWrapper "未登录或 CSRF 令牌无效"
// @Router       /point/transfer [post]
func (ctrl *PointController) PointTransfer(c *gin.Context) {
	ctx := c.Request.Context()
	viewer := middleware.ViewerFrom(c)
	toUser := middleware.ToUserFrom(c)
	req := middleware.TransferRequestFrom(c)

	transferID, err := ctrl.ledger.Transfer(ctx, viewer.ID, toUser.ID, enums.TransferTypeAccount2Account, req.Amount, toUser.ID, time.Now().UnixMilli())
	if err != nil || transferID == "" {
		envelope.Render(c, envelope.FalseResult().SetMsg(ctrl.langSvc.Get("transferFailLabel")))
		return
	}

	// 通知失败不影响已完成的转账
	if err := ctrl.notifySvc.AddPointTransferNotification(ctx, toUser.ID, transferID); err != nil {
		ctrl.logger.Error("添加积分转账通知失败",
			zap.String("transferID", transferID),
			zap.String("toUserID", toUser.ID),
			zap.Error(err))
	}
	envelope.Render(c, envelope.FalseResult().SetStatus(true))
}

// BuyInvitecode 使用积分兑换邀请码
// @Summary      积分兑换邀请码
// @Description  仅在站点为邀请码注册模式 (allowRegister=2) 时生效，否则返回 statusCode=false 且不产生任何变更。
// @Tags         point (积分)
// @Produce      json
// @Param        csrfToken header string true "CSRF 令牌"
// @Success      200 {object} vo.BuyInvitecodeResponseWrapper "成功时包含邀请码与过期时间"
// @Failure      403 {object} vo.StatusResponseWrapper "未登录、CSRF 令牌无效或没有兑换权限"
// @Router       /point/buy-invitecode [post]
func (ctrl *PointController) BuyInvitecode(c *gin.Context) {
	ctx := c.Request.Context()
	ret := envelope.FalseResult()
	if ctrl.optionSvc.GetAllowRegister(ctx) != constant.AllowRegisterInviteOnly {
		envelope.Render(c, ret)
		return
	}

	viewer := middleware.ViewerFrom(c)
	// 先生成邀请码再扣积分：扣费失败时邀请码仍然保留
	code, err := ctrl.invitecodeSvc.UserGenInvitecode(ctx, viewer.ID, viewer.Name)
	if err != nil {
		ctrl.logger.Error("生成邀请码失败", zap.String("userID", viewer.ID), zap.Error(err))
		envelope.Render(c, ret.SetMsg(ctrl.langSvc.Get("exchangeFailedLabel")))
		return
	}

	now := time.Now()
	transferID, err := ctrl.ledger.Transfer(ctx, viewer.ID, constant.SYS, enums.TransferTypeBuyInvitecode, ctrl.invitecodeCfg.BuySum, code, now.UnixMilli())
	if err != nil || transferID == "" {
		envelope.Render(c, ret.SetMsg(ctrl.langSvc.Get("exchangeFailedLabel")))
		return
	}

	expireTime := now.Add(time.Duration(ctrl.invitecodeCfg.Expired) * time.Millisecond).Format(constant.DateTimeLayout)
	ret.SetStatus(true)
	ret.SetMsg(code + " " + ctrl.langSvc.GetWith("expireTipLabel", map[string]string{"time": expireTime}))
	ret["invitecode"] = code
	ret["expireTime"] = expireTime
	envelope.Render(c, ret)
}
