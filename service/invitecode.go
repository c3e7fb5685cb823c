package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/ids"
	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/myErrors"
	"github.com/Xushengqwer/member_service/repo/mysql"
)

const (
	invitecodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	invitecodeLength   = 16
)

// InvitecodeQueryService 邀请码查询
type InvitecodeQueryService interface {
	// GetInvitecode 不存在时返回 myErrors.ErrInvitecodeNotFound
	GetInvitecode(ctx context.Context, code string) (*entities.Invitecode, error)
}

// InvitecodeMgmtService 邀请码写操作
type InvitecodeMgmtService interface {
	// UserGenInvitecode 为用户生成一个未使用的邀请码
	UserGenInvitecode(ctx context.Context, userID, userName string) (string, error)

	// MarkUsed 把未使用的邀请码标记为已被 userID 使用，返回是否发生了状态变更
	MarkUsed(ctx context.Context, code, userID string) (bool, error)
}

type invitecodeService struct {
	repo   mysql.InvitecodeRepository
	logger *zap.Logger
}

// NewInvitecodeQueryService 与 NewInvitecodeMgmtService 共用同一个实现
func NewInvitecodeQueryService(repo mysql.InvitecodeRepository, logger *zap.Logger) InvitecodeQueryService {
	return &invitecodeService{repo: repo, logger: logger}
}

func NewInvitecodeMgmtService(repo mysql.InvitecodeRepository, logger *zap.Logger) InvitecodeMgmtService {
	return &invitecodeService{repo: repo, logger: logger}
}

func (s *invitecodeService) GetInvitecode(ctx context.Context, code string) (*entities.Invitecode, error) {
	ic, err := s.repo.GetInvitecodeByCode(ctx, code)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrInvitecodeNotFound
		}
		return nil, err
	}
	return ic, nil
}

func (s *invitecodeService) UserGenInvitecode(ctx context.Context, userID, userName string) (string, error) {
	code, err := gonanoid.Generate(invitecodeAlphabet, invitecodeLength)
	if err != nil {
		return "", fmt.Errorf("生成邀请码失败: %w", err)
	}
	ic := &entities.Invitecode{
		ID:          ids.Next(),
		Code:        code,
		GeneratorID: userID,
		Status:      enums.InvitecodeStatusUnused,
		Memo:        "User [" + userName + "," + userID + "] generated",
	}
	if err := s.repo.CreateInvitecode(ctx, ic); err != nil {
		return "", fmt.Errorf("保存邀请码失败: %w", err)
	}
	s.logger.Info("用户生成邀请码", zap.String("userID", userID), zap.String("invitecodeID", ic.ID))
	return code, nil
}

func (s *invitecodeService) MarkUsed(ctx context.Context, code, userID string) (bool, error) {
	return s.repo.MarkUsed(ctx, code, userID)
}
