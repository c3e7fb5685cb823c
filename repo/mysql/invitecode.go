package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
)

// InvitecodeRepository 邀请码仓库
type InvitecodeRepository interface {
	CreateInvitecode(ctx context.Context, code *entities.Invitecode) error

	// GetInvitecodeByCode 未找到时返回 commonerrors.ErrRepoNotFound
	GetInvitecodeByCode(ctx context.Context, code string) (*entities.Invitecode, error)

	// MarkUsed 把未使用的邀请码标记为已被 userID 使用，返回是否发生了状态迁移
	MarkUsed(ctx context.Context, code, userID string) (bool, error)
}

type invitecodeRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewInvitecodeRepository(db *gorm.DB, logger *zap.Logger) InvitecodeRepository {
	return &invitecodeRepository{db: db, logger: logger}
}

func (r *invitecodeRepository) CreateInvitecode(ctx context.Context, code *entities.Invitecode) error {
	if err := r.db.WithContext(ctx).Create(code).Error; err != nil {
		r.logger.Error("写入邀请码失败", zap.String("generatorID", code.GeneratorID), zap.Error(err))
		return fmt.Errorf("写入邀请码失败: %w", err)
	}
	return nil
}

func (r *invitecodeRepository) GetInvitecodeByCode(ctx context.Context, code string) (*entities.Invitecode, error) {
	var ic entities.Invitecode
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&ic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("查询邀请码失败", zap.Error(err))
		return nil, fmt.Errorf("查询邀请码失败: %w", err)
	}
	return &ic, nil
}

func (r *invitecodeRepository) MarkUsed(ctx context.Context, code, userID string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entities.Invitecode{}).
		Where("code = ? AND status = ?", code, enums.InvitecodeStatusUnused).
		Updates(map[string]any{
			"status":  enums.InvitecodeStatusUsed,
			"user_id": userID,
		})
	if result.Error != nil {
		r.logger.Error("标记邀请码已使用失败", zap.String("userID", userID), zap.Error(result.Error))
		return false, fmt.Errorf("标记邀请码已使用失败: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
