package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/models/vo"
	"github.com/Xushengqwer/member_service/myErrors"
	"github.com/Xushengqwer/member_service/repo/mysql"
	"github.com/Xushengqwer/member_service/repo/redis"
)

// UserQueryService 用户查询
type UserQueryService interface {
	// GetUser 按 ID 获取用户，不存在时返回 myErrors.ErrUserNotFound
	GetUser(ctx context.Context, id string) (*entities.User, error)

	// GetUserByName 按用户名获取用户，不存在时返回 myErrors.ErrUserNotFound
	GetUserByName(ctx context.Context, name string) (*entities.User, error)

	// GetAdmins 返回全部管理员
	GetAdmins(ctx context.Context) ([]*entities.User, error)

	// GetUserNamesByPrefix 按前缀补全用户名，附带 20px 静态头像
	GetUserNamesByPrefix(ctx context.Context, prefix string) ([]vo.UserNameItem, error)

	// LoadUserNames 从数据库重建用户名索引
	LoadUserNames(ctx context.Context) error

	// AddUserName 把新注册的用户名加入索引
	AddUserName(ctx context.Context, name string) error
}

type userQueryService struct {
	userRepo  mysql.UserRepository
	nameIndex redis.UserNameIndex
	avatarSvc AvatarQueryService
	logger    *zap.Logger
}

func NewUserQueryService(userRepo mysql.UserRepository, nameIndex redis.UserNameIndex, avatarSvc AvatarQueryService, logger *zap.Logger) UserQueryService {
	return &userQueryService{userRepo: userRepo, nameIndex: nameIndex, avatarSvc: avatarSvc, logger: logger}
}

func (s *userQueryService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userQueryService) GetUserByName(ctx context.Context, name string) (*entities.User, error) {
	user, err := s.userRepo.GetUserByName(ctx, name)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userQueryService) GetAdmins(ctx context.Context) ([]*entities.User, error) {
	return s.userRepo.ListUsersByRole(ctx, constant.RoleAdmin)
}

func (s *userQueryService) GetUserNamesByPrefix(ctx context.Context, prefix string) ([]vo.UserNameItem, error) {
	prefix = strings.TrimSpace(prefix)
	names, err := s.nameIndex.SearchPrefix(ctx, prefix, constant.UserNamesPrefixLimit)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.GetUsersByNames(ctx, names)
	if err != nil {
		return nil, err
	}
	items := make([]vo.UserNameItem, 0, len(users))
	for _, u := range users {
		items = append(items, vo.UserNameItem{
			UserName:      u.Name,
			UserAvatarURL: s.avatarSvc.GetAvatarURLByUser(enums.AvatarViewModeStatic, u, "20"),
		})
	}
	return items, nil
}

func (s *userQueryService) LoadUserNames(ctx context.Context) error {
	names, err := s.userRepo.ListValidUserNames(ctx)
	if err != nil {
		return fmt.Errorf("加载用户名失败: %w", err)
	}
	return s.nameIndex.Rebuild(ctx, names)
}

func (s *userQueryService) AddUserName(ctx context.Context, name string) error {
	return s.nameIndex.Add(ctx, name)
}

// UserMgmtService 用户维护
type UserMgmtService interface {
	// ResetUnverifiedUsers 删除超过保留时长仍未验证的账号，返回删除数量
	ResetUnverifiedUsers(ctx context.Context) (int, error)
}

type userMgmtService struct {
	userRepo  mysql.UserRepository
	nameIndex redis.UserNameIndex
	ttl       time.Duration
	logger    *zap.Logger
}

// NewUserMgmtService ttlHours <= 0 时使用默认保留时长
func NewUserMgmtService(userRepo mysql.UserRepository, nameIndex redis.UserNameIndex, ttlHours int, logger *zap.Logger) UserMgmtService {
	if ttlHours <= 0 {
		ttlHours = constant.DefaultUnverifiedTTLHours
	}
	return &userMgmtService{
		userRepo:  userRepo,
		nameIndex: nameIndex,
		ttl:       time.Duration(ttlHours) * time.Hour,
		logger:    logger,
	}
}

func (s *userMgmtService) ResetUnverifiedUsers(ctx context.Context) (int, error) {
	cutoff := fmt.Sprintf("%d", time.Now().Add(-s.ttl).UnixMilli())
	names, err := s.userRepo.DeleteUnverifiedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if len(names) > 0 {
		if err := s.nameIndex.Remove(ctx, names...); err != nil {
			// 索引会在下一次 load-names 时被整体重建
			s.logger.Warn("从用户名索引移除未验证账号失败", zap.Error(err))
		}
	}
	s.logger.Info("已清理未验证账号", zap.Int("count", len(names)))
	return len(names), nil
}
