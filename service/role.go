package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/repo/mysql"
)

// RoleQueryService 角色与权限查询
type RoleQueryService interface {
	// GetRole 角色不存在时返回 nil, nil
	GetRole(ctx context.Context, roleID string) (*entities.Role, error)

	// GetPermissionsGrant 返回全部已知权限到是否授予的映射
	GetPermissionsGrant(ctx context.Context, roleID string) map[string]bool

	// UserHasPermission 判断角色是否拥有某权限，管理员拥有全部权限
	UserHasPermission(ctx context.Context, roleID, permission string) bool
}

type roleQueryService struct {
	roleRepo mysql.RoleRepository
	logger   *zap.Logger
}

func NewRoleQueryService(roleRepo mysql.RoleRepository, logger *zap.Logger) RoleQueryService {
	return &roleQueryService{roleRepo: roleRepo, logger: logger}
}

func (s *roleQueryService) GetRole(ctx context.Context, roleID string) (*entities.Role, error) {
	role, err := s.roleRepo.GetRoleByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return role, nil
}

func (s *roleQueryService) granted(ctx context.Context, roleID string) map[string]struct{} {
	set := map[string]struct{}{}
	role, err := s.GetRole(ctx, roleID)
	if err != nil {
		s.logger.Error("查询角色权限失败", zap.String("roleID", roleID), zap.Error(err))
		return set
	}
	if role == nil {
		return set
	}
	for _, p := range strings.Split(role.Permissions, ",") {
		if p = strings.TrimSpace(p); p != "" {
			set[p] = struct{}{}
		}
	}
	return set
}

func (s *roleQueryService) GetPermissionsGrant(ctx context.Context, roleID string) map[string]bool {
	grant := make(map[string]bool, len(constant.AllPermissions))
	if roleID == constant.RoleAdmin {
		for _, p := range constant.AllPermissions {
			grant[p] = true
		}
		return grant
	}
	set := s.granted(ctx, roleID)
	for _, p := range constant.AllPermissions {
		_, ok := set[p]
		grant[p] = ok
	}
	return grant
}

func (s *roleQueryService) UserHasPermission(ctx context.Context, roleID, permission string) bool {
	if roleID == constant.RoleAdmin {
		return true
	}
	_, ok := s.granted(ctx, roleID)[permission]
	return ok
}
