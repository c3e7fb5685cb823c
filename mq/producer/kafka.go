package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/config"
	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/events"
)

// EventPublisher 是服务层依赖的事件发布接口
type EventPublisher interface {
	PublishNotificationCreated(ctx context.Context, n *entities.Notification) error
	PublishNotificationRead(ctx context.Context, userID string, dataType int, count int64) error
}

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(cfg config.KafkaConfig, logger *zap.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: cfg.Topics,
	}
}

// SendEvent 把事件序列化为 JSON 发送到指定主题，key 决定分区
func (p *KafkaProducer) SendEvent(ctx context.Context, topic, key string, event any) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("序列化事件失败", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("发送 Kafka 消息",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: eventBytes,
	})
	if err != nil {
		p.logger.Error("写入 Kafka 消息失败", zap.Error(err), zap.String("topic", topic))
		return err
	}
	return nil
}

// PublishNotificationCreated 发布新通知事件，同一用户的事件落在同一分区以保持顺序
func (p *KafkaProducer) PublishNotificationCreated(ctx context.Context, n *entities.Notification) error {
	if p == nil {
		return nil
	}
	event := events.NotificationCreatedEvent{
		EventID:        uuid.New().String(),
		Timestamp:      time.Now(),
		NotificationID: n.ID,
		UserID:         n.UserID,
		DataID:         n.DataID,
		DataType:       int(n.DataType),
	}
	return p.SendEvent(ctx, p.topics.NotificationCreated, n.UserID, event)
}

// PublishNotificationRead 发布通知已读事件
func (p *KafkaProducer) PublishNotificationRead(ctx context.Context, userID string, dataType int, count int64) error {
	if p == nil {
		return nil
	}
	event := events.NotificationReadEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		UserID:    userID,
		DataType:  dataType,
		Count:     count,
	}
	return p.SendEvent(ctx, p.topics.NotificationRead, userID, event)
}

// Close 关闭底层 Writer，等待缓冲中的消息发送完毕
func (p *KafkaProducer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
