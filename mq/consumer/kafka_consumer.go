package consumer

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/member_service/config"
)

const (
	handleTimeout = 30 * time.Second
	fetchBackoff  = time.Second
)

// MessageHandler 处理一条 Kafka 消息。返回错误只会被记录，消息不会重新投递。
type MessageHandler interface {
	Handle(ctx context.Context, msg kafka.Message) error
}

// Consumer Kafka 消费者，一个实例只读一个主题
type Consumer struct {
	reader  *kafka.Reader
	handler MessageHandler
	logger  *zap.Logger
	topic   string
}

// NewConsumer 创建 Kafka Consumer 实例
func NewConsumer(cfg *appConfig.KafkaConfig, topicName string, handler MessageHandler, logger *zap.Logger) (*Consumer, error) {
	if topicName == "" {
		return nil, errors.New("kafka topic 名称不能为空")
	}
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers 配置不能为空")
	}

	logger.Info("初始化 Kafka 消费者",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", topicName),
		zap.String("group_id", cfg.ConsumerGroupID))

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       topicName,
		GroupID:     cfg.ConsumerGroupID,
		MinBytes:    1,
		MaxBytes:    1e6,
		MaxWait:     3 * time.Second,
		StartOffset: kafka.FirstOffset,
	})

	return &Consumer{
		reader:  reader,
		handler: handler,
		logger:  logger,
		topic:   topicName,
	}, nil
}

// Start 阻塞运行读取循环，直到 ctx 取消或 Reader 关闭。
// 消息在处理结束后才提交位点，进程在处理中途退出时消息会被重新消费。
func (c *Consumer) Start(ctx context.Context) {
	c.logger.Info("Kafka 消费者已启动", zap.String("topic", c.topic))
	defer c.logger.Info("Kafka 消费者已停止", zap.String("topic", c.topic))

	for ctx.Err() == nil {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if stopped(err) {
				return
			}
			c.logger.Error("拉取 Kafka 消息失败", zap.String("topic", c.topic), zap.Error(err))
			time.Sleep(fetchBackoff)
			continue
		}

		c.dispatch(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if stopped(err) {
				return
			}
			c.logger.Error("提交 Kafka 位点失败",
				zap.String("topic", msg.Topic),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
				zap.Error(err))
		}
	}
}

// dispatch 处理失败只记录日志
func (c *Consumer) dispatch(ctx context.Context, msg kafka.Message) {
	handleCtx, cancel := context.WithTimeout(ctx, handleTimeout)
	defer cancel()
	if err := c.handler.Handle(handleCtx, msg); err != nil {
		c.logger.Error("处理 Kafka 消息时发生错误",
			zap.String("topic", msg.Topic),
			zap.Int64("offset", msg.Offset),
			zap.ByteString("key", msg.Key),
			zap.Error(err))
	}
}

func stopped(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed)
}

// Close 关闭 Kafka Reader
func (c *Consumer) Close() error {
	c.logger.Info("正在关闭 Kafka 消费者...", zap.String("topic", c.topic))
	if err := c.reader.Close(); err != nil {
		c.logger.Error("关闭 Kafka Reader 失败", zap.Error(err), zap.String("topic", c.topic))
		return err
	}
	c.logger.Info("Kafka 消费者已成功关闭", zap.String("topic", c.topic))
	return nil
}
