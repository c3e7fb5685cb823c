package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/myErrors"
)

func TestUserQueryService_GetUserByName(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserQueryService(env.userRepo, env.nameIndex, env.avatarSvc, env.logger)
	ctx := context.Background()

	alice := env.createUser(t, "alice", 10)

	got, err := svc.GetUserByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	_, err = svc.GetUserByName(ctx, "nobody")
	assert.ErrorIs(t, err, myErrors.ErrUserNotFound)

	_, err = svc.GetUser(ctx, "42")
	assert.ErrorIs(t, err, myErrors.ErrUserNotFound)
}

func TestUserQueryService_NamesIndex(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserQueryService(env.userRepo, env.nameIndex, env.avatarSvc, env.logger)
	ctx := context.Background()

	env.createUser(t, "Alice", 0)
	env.createUser(t, "alex", 0)
	env.createUser(t, "bob", 0)
	env.createUser(t, "alpha", 0, withStatus(enums.UserStatusBlocked))

	require.NoError(t, svc.LoadUserNames(ctx))

	items, err := svc.GetUserNamesByPrefix(ctx, "al")
	require.NoError(t, err)
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.UserName)
		assert.Contains(t, it.UserAvatarURL, "/w/20/h/20/")
	}
	// 按索引的字典序返回，而不是数据库中的插入顺序
	assert.Equal(t, []string{"alex", "Alice"}, names)

	// 新注册用户通过 AddUserName 进入索引
	env.createUser(t, "albert", 0)
	require.NoError(t, svc.AddUserName(ctx, "albert"))
	items, err = svc.GetUserNamesByPrefix(ctx, "alb")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "albert", items[0].UserName)
}

func TestUserQueryService_GetAdmins(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserQueryService(env.userRepo, env.nameIndex, env.avatarSvc, env.logger)

	admin := env.createUser(t, "root", 0, withRole(constant.RoleAdmin))
	env.createUser(t, "member", 0)
	env.createUser(t, "oldadmin", 0, withRole(constant.RoleAdmin), withStatus(enums.UserStatusBlocked))

	admins, err := svc.GetAdmins(context.Background())
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, admin.ID, admins[0].ID)
}

func TestUserMgmtService_ResetUnverifiedUsers(t *testing.T) {
	env := newTestEnv(t)
	query := NewUserQueryService(env.userRepo, env.nameIndex, env.avatarSvc, env.logger)
	mgmt := NewUserMgmtService(env.userRepo, env.nameIndex, 24, env.logger)
	ctx := context.Background()

	stale := env.createUser(t, "stale", 0, withStatus(enums.UserStatusNotVerified), withCreatedAgo(48*time.Hour))
	fresh := env.createUser(t, "fresh", 0, withStatus(enums.UserStatusNotVerified))
	valid := env.createUser(t, "valid", 0, withCreatedAgo(72*time.Hour))
	require.NoError(t, env.nameIndex.Add(ctx, stale.Name, fresh.Name, valid.Name))

	n, err := mgmt.ResetUnverifiedUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = query.GetUser(ctx, stale.ID)
	assert.ErrorIs(t, err, myErrors.ErrUserNotFound)
	_, err = query.GetUser(ctx, fresh.ID)
	assert.NoError(t, err)
	_, err = query.GetUser(ctx, valid.ID)
	assert.NoError(t, err)

	names, err := env.nameIndex.SearchPrefix(ctx, "stale", 10)
	require.NoError(t, err)
	assert.Empty(t, names)

	// 再次执行不会删除任何账号
	n, err = mgmt.ResetUnverifiedUsers(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
