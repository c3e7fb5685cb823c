package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
)

// UserRepository 定义了用户数据在 MySQL 中的读取与维护操作。
type UserRepository interface {
	// GetUserByID 根据 ID 获取用户，未找到时返回 commonerrors.ErrRepoNotFound
	GetUserByID(ctx context.Context, id string) (*entities.User, error)

	// GetUserByName 根据用户名获取用户，未找到时返回 commonerrors.ErrRepoNotFound
	GetUserByName(ctx context.Context, name string) (*entities.User, error)

	// GetUsersByIDs 批量获取用户，返回以 ID 为键的映射，不存在的 ID 不出现在结果中
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*entities.User, error)

	// GetUsersByNames 按用户名批量获取用户，结果顺序与 names 一致，缺失的被跳过
	GetUsersByNames(ctx context.Context, names []string) ([]*entities.User, error)

	// ListUsersByRole 列出指定角色的全部有效用户
	ListUsersByRole(ctx context.Context, role string) ([]*entities.User, error)

	// ListValidUserNames 列出全部有效用户的用户名，用于重建用户名索引
	ListValidUserNames(ctx context.Context) ([]string, error)

	// DeleteUnverifiedBefore 删除 ID 早于 cutoffID 的未验证账号，返回被删除的用户名。
	// ID 即创建时间，因此按字符串长度 + 字典序比较等价于按时间比较。
	DeleteUnverifiedBefore(ctx context.Context, cutoffID string) ([]string, error)
}

type userRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewUserRepository 是 userRepository 的构造函数。
func NewUserRepository(db *gorm.DB, logger *zap.Logger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 查询用户失败", zap.String("userID", id), zap.Error(err))
		return nil, fmt.Errorf("查询用户 %s 失败: %w", id, err)
	}
	return &user, nil
}

func (r *userRepository) GetUserByName(ctx context.Context, name string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据用户名查询用户失败", zap.String("userName", name), zap.Error(err))
		return nil, fmt.Errorf("查询用户 %s 失败: %w", name, err)
	}
	return &user, nil
}

func (r *userRepository) GetUsersByIDs(ctx context.Context, ids []string) (map[string]*entities.User, error) {
	result := make(map[string]*entities.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var users []*entities.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		r.logger.Error("批量查询用户失败", zap.Int("count", len(ids)), zap.Error(err))
		return nil, fmt.Errorf("批量查询用户失败: %w", err)
	}
	for _, u := range users {
		result[u.ID] = u
	}
	return result, nil
}

func (r *userRepository) GetUsersByNames(ctx context.Context, names []string) ([]*entities.User, error) {
	if len(names) == 0 {
		return []*entities.User{}, nil
	}
	var found []*entities.User
	if err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&found).Error; err != nil {
		r.logger.Error("按用户名批量查询用户失败", zap.Int("count", len(names)), zap.Error(err))
		return nil, fmt.Errorf("按用户名批量查询用户失败: %w", err)
	}
	byName := make(map[string]*entities.User, len(found))
	for _, u := range found {
		byName[u.Name] = u
	}
	ordered := make([]*entities.User, 0, len(found))
	for _, n := range names {
		if u, ok := byName[n]; ok {
			ordered = append(ordered, u)
		}
	}
	return ordered, nil
}

func (r *userRepository) ListUsersByRole(ctx context.Context, role string) ([]*entities.User, error) {
	var users []*entities.User
	err := r.db.WithContext(ctx).
		Where("role = ? AND status = ?", role, enums.UserStatusValid).
		Order("id ASC").
		Find(&users).Error
	if err != nil {
		r.logger.Error("按角色查询用户失败", zap.String("role", role), zap.Error(err))
		return nil, fmt.Errorf("按角色查询用户失败: %w", err)
	}
	return users, nil
}

func (r *userRepository) ListValidUserNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("status = ?", enums.UserStatusValid).
		Order("id ASC").
		Pluck("name", &names).Error
	if err != nil {
		r.logger.Error("查询有效用户名失败", zap.Error(err))
		return nil, fmt.Errorf("查询有效用户名失败: %w", err)
	}
	return names, nil
}

func (r *userRepository) DeleteUnverifiedBefore(ctx context.Context, cutoffID string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var users []*entities.User
		err := tx.Where("status = ? AND (LENGTH(id) < ? OR (LENGTH(id) = ? AND id < ?))",
			enums.UserStatusNotVerified, len(cutoffID), len(cutoffID), cutoffID).
			Find(&users).Error
		if err != nil {
			return err
		}
		if len(users) == 0 {
			return nil
		}
		ids := make([]string, 0, len(users))
		for _, u := range users {
			ids = append(ids, u.ID)
			names = append(names, u.Name)
		}
		return tx.Where("id IN ?", ids).Delete(&entities.User{}).Error
	})
	if err != nil {
		r.logger.Error("清理未验证账号失败", zap.String("cutoffID", cutoffID), zap.Error(err))
		return nil, fmt.Errorf("清理未验证账号失败: %w", err)
	}
	return names, nil
}

// RoleRepository 角色只读仓库
type RoleRepository interface {
	// GetRoleByID 未找到时返回 commonerrors.ErrRepoNotFound
	GetRoleByID(ctx context.Context, id string) (*entities.Role, error)
}

type roleRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewRoleRepository(db *gorm.DB, logger *zap.Logger) RoleRepository {
	return &roleRepository{db: db, logger: logger}
}

func (r *roleRepository) GetRoleByID(ctx context.Context, id string) (*entities.Role, error) {
	var role entities.Role
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("查询角色失败", zap.String("roleID", id), zap.Error(err))
		return nil, fmt.Errorf("查询角色 %s 失败: %w", id, err)
	}
	return &role, nil
}

// OptionRepository 站点选项仓库
type OptionRepository interface {
	// GetOption 未找到时返回 commonerrors.ErrRepoNotFound
	GetOption(ctx context.Context, id string) (*entities.Option, error)
}

type optionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) OptionRepository {
	return &optionRepository{db: db}
}

func (r *optionRepository) GetOption(ctx context.Context, id string) (*entities.Option, error) {
	var opt entities.Option
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&opt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, fmt.Errorf("查询站点选项 %s 失败: %w", id, err)
	}
	return &opt, nil
}

// EmotionRepository 表情仓库
type EmotionRepository interface {
	ListEmotionsByUser(ctx context.Context, userID string, typ enums.EmotionType) ([]*entities.Emotion, error)
}

type emotionRepository struct {
	db *gorm.DB
}

func NewEmotionRepository(db *gorm.DB) EmotionRepository {
	return &emotionRepository{db: db}
}

func (r *emotionRepository) ListEmotionsByUser(ctx context.Context, userID string, typ enums.EmotionType) ([]*entities.Emotion, error) {
	var emotions []*entities.Emotion
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, typ).
		Order("sort ASC").
		Find(&emotions).Error
	if err != nil {
		return nil, fmt.Errorf("查询用户 %s 的表情失败: %w", userID, err)
	}
	return emotions, nil
}
