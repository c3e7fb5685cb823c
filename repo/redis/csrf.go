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

// CSRFTokenRepository 每个会话一个 CSRF 令牌
type CSRFTokenRepository interface {
	// GetOrCreateToken 返回会话现有的令牌并续期；不存在时保存 newToken 并返回它
	GetOrCreateToken(ctx context.Context, sid, newToken string, ttl time.Duration) (string, error)

	// GetToken 令牌不存在时返回 myErrors.ErrCacheMiss
	GetToken(ctx context.Context, sid string) (string, error)
}

type csrfTokenRepository struct {
	redisClient *redis.Client
	logger      *zap.Logger
}

func NewCSRFTokenRepository(redisClient *redis.Client, logger *zap.Logger) CSRFTokenRepository {
	return &csrfTokenRepository{redisClient: redisClient, logger: logger}
}

func (r *csrfTokenRepository) GetOrCreateToken(ctx context.Context, sid, newToken string, ttl time.Duration) (string, error) {
	key := constant.CSRFTokenKeyPrefix + sid

	// SET NX 保证并发渲染的两个页面拿到同一个令牌
	created, err := r.redisClient.SetNX(ctx, key, newToken, ttl).Result()
	if err != nil {
		r.logger.Error("写入 CSRF 令牌失败", zap.Error(err))
		return "", fmt.Errorf("写入 CSRF 令牌失败: %w", err)
	}
	if created {
		return newToken, nil
	}

	token, err := r.redisClient.Get(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("读取 CSRF 令牌失败: %w", err)
	}
	if err := r.redisClient.Expire(ctx, key, ttl).Err(); err != nil {
		r.logger.Warn("CSRF 令牌续期失败", zap.Error(err))
	}
	return token, nil
}

func (r *csrfTokenRepository) GetToken(ctx context.Context, sid string) (string, error) {
	token, err := r.redisClient.Get(ctx, constant.CSRFTokenKeyPrefix+sid).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", myErrors.ErrCacheMiss
		}
		return "", fmt.Errorf("读取 CSRF 令牌失败: %w", err)
	}
	return token, nil
}
