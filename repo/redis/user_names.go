package redis

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/constant"
)

// 成员中小写用户名与原始用户名之间的分隔符
const nameSep = "\x00"

// UserNameIndex 是基于 Sorted Set 的用户名前缀索引
type UserNameIndex interface {
	// Rebuild 用 names 整体替换索引
	Rebuild(ctx context.Context, names []string) error

	// Add 向索引中加入用户名
	Add(ctx context.Context, names ...string) error

	// Remove 从索引中移除用户名
	Remove(ctx context.Context, names ...string) error

	// SearchPrefix 忽略大小写地按前缀查找，最多返回 limit 个原始用户名
	SearchPrefix(ctx context.Context, prefix string, limit int64) ([]string, error)
}

type userNameIndex struct {
	redisClient *redis.Client
	logger      *zap.Logger
}

func NewUserNameIndex(redisClient *redis.Client, logger *zap.Logger) UserNameIndex {
	return &userNameIndex{redisClient: redisClient, logger: logger}
}

func member(name string) string {
	return strings.ToLower(name) + nameSep + name
}

func (i *userNameIndex) Rebuild(ctx context.Context, names []string) error {
	tmpKey := constant.UserNamesKey + ":rebuilding"

	pipe := i.redisClient.TxPipeline()
	pipe.Del(ctx, tmpKey)
	if len(names) > 0 {
		members := make([]redis.Z, 0, len(names))
		for _, n := range names {
			members = append(members, redis.Z{Score: 0, Member: member(n)})
		}
		pipe.ZAdd(ctx, tmpKey, members...)
		pipe.Rename(ctx, tmpKey, constant.UserNamesKey)
	} else {
		pipe.Del(ctx, constant.UserNamesKey)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		i.logger.Error("重建用户名索引失败", zap.Int("count", len(names)), zap.Error(err))
		return fmt.Errorf("重建用户名索引失败: %w", err)
	}
	i.logger.Info("用户名索引已重建", zap.Int("count", len(names)))
	return nil
}

func (i *userNameIndex) Add(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}
	members := make([]redis.Z, 0, len(names))
	for _, n := range names {
		members = append(members, redis.Z{Score: 0, Member: member(n)})
	}
	if err := i.redisClient.ZAdd(ctx, constant.UserNamesKey, members...).Err(); err != nil {
		return fmt.Errorf("写入用户名索引失败: %w", err)
	}
	return nil
}

func (i *userNameIndex) Remove(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}
	members := make([]any, 0, len(names))
	for _, n := range names {
		members = append(members, member(n))
	}
	if err := i.redisClient.ZRem(ctx, constant.UserNamesKey, members...).Err(); err != nil {
		return fmt.Errorf("移除用户名索引失败: %w", err)
	}
	return nil
}

func (i *userNameIndex) SearchPrefix(ctx context.Context, prefix string, limit int64) ([]string, error) {
	lower := strings.ToLower(prefix)
	// "\xff" 大于任何合法的用户名字符，区间即为所有以 lower 开头的成员
	members, err := i.redisClient.ZRangeByLex(ctx, constant.UserNamesKey, &redis.ZRangeBy{
		Min:    "[" + lower,
		Max:    "[" + lower + "\xff",
		Offset: 0,
		Count:  limit,
	}).Result()
	if err != nil {
		i.logger.Error("按前缀查询用户名失败", zap.String("prefix", prefix), zap.Error(err))
		return nil, fmt.Errorf("按前缀查询用户名失败: %w", err)
	}
	names := make([]string, 0, len(members))
	for _, m := range members {
		if idx := strings.Index(m, nameSep); idx >= 0 {
			names = append(names, m[idx+len(nameSep):])
		}
	}
	return names, nil
}
