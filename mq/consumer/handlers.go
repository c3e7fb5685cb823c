package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/models/events"
	"github.com/Xushengqwer/member_service/myErrors"
	"github.com/Xushengqwer/member_service/service"
)

// UserRegisteredHandler 把新注册的用户名加入补全索引
type UserRegisteredHandler struct {
	logger  *zap.Logger
	userSvc service.UserQueryService
}

func NewUserRegisteredHandler(logger *zap.Logger, userSvc service.UserQueryService) *UserRegisteredHandler {
	return &UserRegisteredHandler{logger: logger, userSvc: userSvc}
}

func (h *UserRegisteredHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var event events.UserRegisteredEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("UserRegisteredHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 不重试无法解析的消息
	}
	name := strings.TrimSpace(event.UserName)
	if name == "" {
		h.logger.Warn("UserRegisteredHandler: 用户名为空，忽略", zap.String("event_id", event.EventID))
		return nil
	}
	if err := h.userSvc.AddUserName(ctx, name); err != nil {
		return fmt.Errorf("加入用户名索引失败 (user_id=%s): %w", event.UserID, err)
	}
	h.logger.Debug("UserRegisteredHandler: 用户名已加入索引", zap.String("user_id", event.UserID))
	return nil
}

// InvitecodeUsedHandler 把邀请码标记为已使用，并通知邀请码的生成者
type InvitecodeUsedHandler struct {
	logger        *zap.Logger
	invitecodeQry service.InvitecodeQueryService
	invitecodeSvc service.InvitecodeMgmtService
	notifySvc     service.NotificationMgmtService
}

func NewInvitecodeUsedHandler(
	logger *zap.Logger,
	invitecodeQry service.InvitecodeQueryService,
	invitecodeSvc service.InvitecodeMgmtService,
	notifySvc service.NotificationMgmtService,
) *InvitecodeUsedHandler {
	return &InvitecodeUsedHandler{
		logger:        logger,
		invitecodeQry: invitecodeQry,
		invitecodeSvc: invitecodeSvc,
		notifySvc:     notifySvc,
	}
}

func (h *InvitecodeUsedHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var event events.InvitecodeUsedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("InvitecodeUsedHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil
	}

	ic, err := h.invitecodeQry.GetInvitecode(ctx, event.Code)
	if err != nil {
		if errors.Is(err, myErrors.ErrInvitecodeNotFound) {
			h.logger.Warn("InvitecodeUsedHandler: 邀请码不存在，忽略", zap.String("event_id", event.EventID))
			return nil
		}
		return err
	}

	changed, err := h.invitecodeSvc.MarkUsed(ctx, event.Code, event.UserID)
	if err != nil {
		return err
	}
	if !changed {
		// 重复投递或邀请码已停用
		h.logger.Info("InvitecodeUsedHandler: 邀请码状态未变更", zap.String("event_id", event.EventID), zap.Int("status", int(ic.Status)))
		return nil
	}

	if ic.GeneratorID != "" {
		if err := h.notifySvc.AddNotification(ctx, ic.GeneratorID, event.UserID, enums.NotificationInvitecodeUsed); err != nil {
			h.logger.Warn("InvitecodeUsedHandler: 通知邀请码生成者失败", zap.String("generator_id", ic.GeneratorID), zap.Error(err))
		}
	}
	return nil
}
