package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/ids"
	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/mq/producer"
	"github.com/Xushengqwer/member_service/repo/mysql"
)

// NotificationMgmtService 通知写操作。先落库，再尽力发布事件。
type NotificationMgmtService interface {
	// AddPointTransferNotification 给收款人添加一条积分转账通知
	AddPointTransferNotification(ctx context.Context, userID, transferID string) error

	// AddNotification 添加任意类型的通知
	AddNotification(ctx context.Context, userID, dataID string, dataType enums.NotificationDataType) error

	// MakeRead 把用户某类型的未读通知全部标记为已读
	MakeRead(ctx context.Context, userID string, dataType enums.NotificationDataType) error
}

type notificationMgmtService struct {
	repo      mysql.NotificationRepository
	publisher producer.EventPublisher
	logger    *zap.Logger
}

// NewNotificationMgmtService publisher 可以为 nil，此时只落库
func NewNotificationMgmtService(repo mysql.NotificationRepository, publisher producer.EventPublisher, logger *zap.Logger) NotificationMgmtService {
	return &notificationMgmtService{repo: repo, publisher: publisher, logger: logger}
}

func (s *notificationMgmtService) AddPointTransferNotification(ctx context.Context, userID, transferID string) error {
	return s.AddNotification(ctx, userID, transferID, enums.NotificationPointTransfer)
}

func (s *notificationMgmtService) AddNotification(ctx context.Context, userID, dataID string, dataType enums.NotificationDataType) error {
	n := &entities.Notification{
		ID:       ids.Next(),
		UserID:   userID,
		DataID:   dataID,
		DataType: dataType,
	}
	if err := s.repo.CreateNotification(ctx, n); err != nil {
		return fmt.Errorf("写入通知失败: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishNotificationCreated(ctx, n); err != nil {
			s.logger.Warn("发布通知创建事件失败",
				zap.String("notificationID", n.ID),
				zap.String("userID", userID),
				zap.Error(err))
		}
	}
	return nil
}

func (s *notificationMgmtService) MakeRead(ctx context.Context, userID string, dataType enums.NotificationDataType) error {
	count, err := s.repo.MarkRead(ctx, userID, dataType)
	if err != nil {
		return fmt.Errorf("标记通知已读失败: %w", err)
	}
	if count == 0 || s.publisher == nil {
		return nil
	}
	if err := s.publisher.PublishNotificationRead(ctx, userID, int(dataType), count); err != nil {
		s.logger.Warn("发布通知已读事件失败", zap.String("userID", userID), zap.Error(err))
	}
	return nil
}
