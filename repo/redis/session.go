package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/myErrors"
)

// SessionRepository 保存会话 ID 到用户 ID 的映射。
// 会话令牌本身是签名的 JWT，服务端记录使会话可以被随时吊销。
type SessionRepository interface {
	// SaveSession 以 ttl 保存会话
	SaveSession(ctx context.Context, sid, userID string, ttl time.Duration) error

	// GetSessionUserID 返回会话对应的用户 ID，会话不存在时返回 myErrors.ErrSessionNotFound
	GetSessionUserID(ctx context.Context, sid string) (string, error)

	// DeleteSession 吊销会话，同时删除其 CSRF 令牌
	DeleteSession(ctx context.Context, sid string) error
}

type sessionRepository struct {
	redisClient *redis.Client
	logger      *zap.Logger
}

func NewSessionRepository(redisClient *redis.Client, logger *zap.Logger) SessionRepository {
	return &sessionRepository{redisClient: redisClient, logger: logger}
}

func (r *sessionRepository) SaveSession(ctx context.Context, sid, userID string, ttl time.Duration) error {
	if err := r.redisClient.Set(ctx, constant.SessionKeyPrefix+sid, userID, ttl).Err(); err != nil {
		r.logger.Error("保存会话失败", zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("保存会话失败: %w", err)
	}
	return nil
}

func (r *sessionRepository) GetSessionUserID(ctx context.Context, sid string) (string, error) {
	userID, err := r.redisClient.Get(ctx, constant.SessionKeyPrefix+sid).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", myErrors.ErrSessionNotFound
		}
		r.logger.Error("读取会话失败", zap.Error(err))
		return "", fmt.Errorf("读取会话失败: %w", err)
	}
	return userID, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, sid string) error {
	err := r.redisClient.Del(ctx, constant.SessionKeyPrefix+sid, constant.CSRFTokenKeyPrefix+sid).Err()
	if err != nil {
		r.logger.Error("删除会话失败", zap.Error(err))
		return fmt.Errorf("删除会话失败: %w", err)
	}
	return nil
}
