package mysql

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
)

// FollowRepository 定义了关注关系的查询操作。关注/取关的写入由社交服务负责。
type FollowRepository interface {
	// Exists 判断 followerID 是否以 typ 类型关注了 followingID
	Exists(ctx context.Context, followerID, followingID string, typ enums.FollowingType) (bool, error)

	// FindFollowed 返回 followingIDs 中被 followerID 以 typ 类型关注的那些 ID
	FindFollowed(ctx context.Context, followerID string, followingIDs []string, typ enums.FollowingType) (map[string]struct{}, error)

	// ListFollowingIDs 分页列出 followerID 关注的对象 ID（按关注时间倒序）及总数
	ListFollowingIDs(ctx context.Context, followerID string, typ enums.FollowingType, offset, limit int) ([]string, int64, error)

	// ListFollowerIDs 分页列出关注了 followingID 的用户 ID（按关注时间倒序）及总数
	ListFollowerIDs(ctx context.Context, followingID string, typ enums.FollowingType, offset, limit int) ([]string, int64, error)
}

type followRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewFollowRepository(db *gorm.DB, logger *zap.Logger) FollowRepository {
	return &followRepository{db: db, logger: logger}
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID string, typ enums.FollowingType) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Follow{}).
		Where("follower_id = ? AND following_id = ? AND following_type = ?", followerID, followingID, typ).
		Count(&count).Error
	if err != nil {
		r.logger.Error("查询关注关系失败",
			zap.String("followerID", followerID),
			zap.String("followingID", followingID),
			zap.Int("type", int(typ)),
			zap.Error(err))
		return false, fmt.Errorf("查询关注关系失败: %w", err)
	}
	return count > 0, nil
}

func (r *followRepository) FindFollowed(ctx context.Context, followerID string, followingIDs []string, typ enums.FollowingType) (map[string]struct{}, error) {
	result := make(map[string]struct{}, len(followingIDs))
	if len(followingIDs) == 0 {
		return result, nil
	}
	var ids []string
	err := r.db.WithContext(ctx).Model(&entities.Follow{}).
		Where("follower_id = ? AND following_type = ? AND following_id IN ?", followerID, typ, followingIDs).
		Pluck("following_id", &ids).Error
	if err != nil {
		r.logger.Error("批量查询关注关系失败",
			zap.String("followerID", followerID),
			zap.Int("count", len(followingIDs)),
			zap.Error(err))
		return nil, fmt.Errorf("批量查询关注关系失败: %w", err)
	}
	for _, id := range ids {
		result[id] = struct{}{}
	}
	return result, nil
}

func (r *followRepository) ListFollowingIDs(ctx context.Context, followerID string, typ enums.FollowingType, offset, limit int) ([]string, int64, error) {
	return r.list(ctx, "follower_id", "following_id", followerID, typ, offset, limit)
}

func (r *followRepository) ListFollowerIDs(ctx context.Context, followingID string, typ enums.FollowingType, offset, limit int) ([]string, int64, error) {
	return r.list(ctx, "following_id", "follower_id", followingID, typ, offset, limit)
}

// list 按 whereCol 过滤、返回 pickCol 列
func (r *followRepository) list(ctx context.Context, whereCol, pickCol, id string, typ enums.FollowingType, offset, limit int) ([]string, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Follow{}).
		Where(whereCol+" = ? AND following_type = ?", id, typ).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Error("统计关注关系失败", zap.String(whereCol, id), zap.Error(err))
		return nil, 0, fmt.Errorf("统计关注关系失败: %w", err)
	}
	if total == 0 {
		return []string{}, 0, nil
	}

	var ids []string
	err := query.Order("id DESC").Offset(offset).Limit(limit).Pluck(pickCol, &ids).Error
	if err != nil {
		r.logger.Error("分页查询关注关系失败", zap.String(whereCol, id), zap.Error(err))
		return nil, 0, fmt.Errorf("分页查询关注关系失败: %w", err)
	}
	return ids, total, nil
}
