package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/myErrors"
)

// PointtransferRepository 定义积分账本的持久化操作。
// 余额变更与流水写入必须在同一个事务中完成，因此写方法都接收调用方传入的 tx。
type PointtransferRepository interface {
	// Debit 从 userID 扣除 sum 积分并返回扣除后的余额。
	// 使用条件更新 (point >= sum)，余额不足时返回 myErrors.ErrInsufficientBalance，用户不存在时返回 commonerrors.ErrRepoNotFound。
	Debit(ctx context.Context, tx *gorm.DB, userID string, sum int) (int, error)

	// Credit 给 userID 增加 sum 积分并返回增加后的余额
	Credit(ctx context.Context, tx *gorm.DB, userID string, sum int) (int, error)

	// CreateTransfer 写入一条流水
	CreateTransfer(ctx context.Context, tx *gorm.DB, transfer *entities.Pointtransfer) error

	// ListUserTransfers 分页列出与 userID 相关（转出或转入）的流水（按时间倒序）及总数
	ListUserTransfers(ctx context.Context, userID string, offset, limit int) ([]*entities.Pointtransfer, int64, error)
}

type pointtransferRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewPointtransferRepository(db *gorm.DB, logger *zap.Logger) PointtransferRepository {
	return &pointtransferRepository{db: db, logger: logger}
}

func (r *pointtransferRepository) Debit(ctx context.Context, tx *gorm.DB, userID string, sum int) (int, error) {
	result := tx.WithContext(ctx).Model(&entities.User{}).
		Where("id = ? AND point >= ?", userID, sum).
		Updates(map[string]any{
			"point":      gorm.Expr("point - ?", sum),
			"used_point": gorm.Expr("used_point + ?", sum),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("扣减用户 %s 积分失败: %w", userID, result.Error)
	}
	if result.RowsAffected == 0 {
		// 区分用户不存在与余额不足
		if _, err := r.balanceOf(ctx, tx, userID); err != nil {
			return 0, err
		}
		return 0, myErrors.ErrInsufficientBalance
	}
	return r.balanceOf(ctx, tx, userID)
}

func (r *pointtransferRepository) Credit(ctx context.Context, tx *gorm.DB, userID string, sum int) (int, error) {
	result := tx.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", userID).
		Update("point", gorm.Expr("point + ?", sum))
	if result.Error != nil {
		return 0, fmt.Errorf("增加用户 %s 积分失败: %w", userID, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, commonerrors.ErrRepoNotFound
	}
	return r.balanceOf(ctx, tx, userID)
}

func (r *pointtransferRepository) balanceOf(ctx context.Context, tx *gorm.DB, userID string) (int, error) {
	var user entities.User
	err := tx.WithContext(ctx).Select("id", "point").Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, commonerrors.ErrRepoNotFound
		}
		return 0, fmt.Errorf("查询用户 %s 余额失败: %w", userID, err)
	}
	return user.Point, nil
}

func (r *pointtransferRepository) CreateTransfer(ctx context.Context, tx *gorm.DB, transfer *entities.Pointtransfer) error {
	if err := tx.WithContext(ctx).Create(transfer).Error; err != nil {
		return fmt.Errorf("写入积分流水失败: %w", err)
	}
	return nil
}

func (r *pointtransferRepository) ListUserTransfers(ctx context.Context, userID string, offset, limit int) ([]*entities.Pointtransfer, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Pointtransfer{}).
		Where("from_id = ? OR to_id = ?", userID, userID).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Error("统计积分流水失败", zap.String("userID", userID), zap.Error(err))
		return nil, 0, fmt.Errorf("统计积分流水失败: %w", err)
	}
	transfers := make([]*entities.Pointtransfer, 0)
	if total == 0 {
		return transfers, 0, nil
	}
	if err := query.Order("time DESC, id DESC").Offset(offset).Limit(limit).Find(&transfers).Error; err != nil {
		r.logger.Error("分页查询积分流水失败", zap.String("userID", userID), zap.Error(err))
		return nil, 0, fmt.Errorf("分页查询积分流水失败: %w", err)
	}
	return transfers, total, nil
}
