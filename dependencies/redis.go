package dependencies

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/member_service/config"
)

// InitRedis 初始化 Redis 客户端并 Ping 确认可用
func InitRedis(cfg *appConfig.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("Redis 地址 (redisConfig.addr) 未配置")
	}
	dialTimeout := 5 * time.Second
	if cfg.DialTimeout > 0 {
		dialTimeout = time.Duration(cfg.DialTimeout) * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    cfg.PoolSize,
		DialTimeout: dialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logger.Error("Redis Ping 失败", zap.String("addr", cfg.Addr), zap.Error(err))
		return nil, fmt.Errorf("连接 Redis 失败: %w", err)
	}
	logger.Info("成功连接到 Redis", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	return client, nil
}
