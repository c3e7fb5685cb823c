package mysql

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
)

// NotificationRepository 通知仓库
type NotificationRepository interface {
	CreateNotification(ctx context.Context, n *entities.Notification) error

	// MarkRead 把 userID 的某类未读通知全部置为已读，返回受影响条数
	MarkRead(ctx context.Context, userID string, dataType enums.NotificationDataType) (int64, error)

	// CountUnread 统计 userID 的某类未读通知
	CountUnread(ctx context.Context, userID string, dataType enums.NotificationDataType) (int64, error)
}

type notificationRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewNotificationRepository(db *gorm.DB, logger *zap.Logger) NotificationRepository {
	return &notificationRepository{db: db, logger: logger}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, n *entities.Notification) error {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		r.logger.Error("写入通知失败", zap.String("userID", n.UserID), zap.Int("dataType", int(n.DataType)), zap.Error(err))
		return fmt.Errorf("写入通知失败: %w", err)
	}
	return nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, userID string, dataType enums.NotificationDataType) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("user_id = ? AND data_type = ? AND has_read = ?", userID, dataType, false).
		Update("has_read", true)
	if result.Error != nil {
		r.logger.Error("标记通知已读失败", zap.String("userID", userID), zap.Error(result.Error))
		return 0, fmt.Errorf("标记通知已读失败: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID string, dataType enums.NotificationDataType) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("user_id = ? AND data_type = ? AND has_read = ?", userID, dataType, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("统计未读通知失败: %w", err)
	}
	return count, nil
}
