package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/member_service/config"
	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/ids"
	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/myErrors"
)

func TestAvatarQueryService(t *testing.T) {
	svc := NewAvatarQueryService(testDefaultAvatar)

	gif := &entities.User{AvatarURL: "https://img.example.com/a.gif?v=3"}
	assert.Equal(t, "https://img.example.com/a.gif?imageView2/1/w/48/h/48/interlace/0/q/100/format/jpg",
		svc.GetAvatarURLByUser(enums.AvatarViewModeStatic, gif, "48"))
	assert.Equal(t, "https://img.example.com/a.gif?imageView2/1/w/210/h/210/interlace/0/q/100",
		svc.GetAvatarURL(enums.AvatarViewModeOriginal, gif))

	assert.Equal(t, testDefaultAvatar+"?imageView2/1/w/20/h/20/interlace/0/q/100",
		svc.GetAvatarURLByUser(enums.AvatarViewModeStatic, nil, "20"))
	assert.Equal(t, testDefaultAvatar+"?imageView2/1/w/20/h/20/interlace/0/q/100",
		svc.GetAvatarURLByUser(enums.AvatarViewModeStatic, &entities.User{AvatarURL: "  "}, "20"))
}

func TestRoleQueryService(t *testing.T) {
	env := newTestEnv(t)
	env.createRoles(t)
	svc := NewRoleQueryService(env.roleRepo, env.logger)
	ctx := context.Background()

	grant := svc.GetPermissionsGrant(ctx, constant.RoleDefault)
	assert.Len(t, grant, len(constant.AllPermissions))
	assert.True(t, grant[constant.PermissionTransferPoint])
	assert.True(t, grant[constant.PermissionExchangeInvitecode])
	assert.False(t, grant[constant.PermissionExportData])

	for _, p := range constant.AllPermissions {
		assert.True(t, svc.UserHasPermission(ctx, constant.RoleAdmin, p))
	}
	assert.False(t, svc.UserHasPermission(ctx, "ghostRole", constant.PermissionTransferPoint))

	role, err := svc.GetRole(ctx, "ghostRole")
	require.NoError(t, err)
	assert.Nil(t, role)
}

func TestInvitecodeService(t *testing.T) {
	env := newTestEnv(t)
	query := NewInvitecodeQueryService(env.invitecodeRepo, env.logger)
	mgmt := NewInvitecodeMgmtService(env.invitecodeRepo, env.logger)
	ctx := context.Background()

	code, err := mgmt.UserGenInvitecode(ctx, "1700000000000", "alice")
	require.NoError(t, err)
	assert.Len(t, code, 16)

	ic, err := query.GetInvitecode(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, enums.InvitecodeStatusUnused, ic.Status)
	assert.Equal(t, "User [alice,1700000000000] generated", ic.Memo)

	changed, err := mgmt.MarkUsed(ctx, code, "1700000000001")
	require.NoError(t, err)
	assert.True(t, changed)
	changed, err = mgmt.MarkUsed(ctx, code, "1700000000002")
	require.NoError(t, err)
	assert.False(t, changed)

	ic, err = query.GetInvitecode(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, enums.InvitecodeStatusUsed, ic.Status)
	assert.Equal(t, "1700000000001", ic.UserID)

	_, err = query.GetInvitecode(ctx, "missing")
	assert.ErrorIs(t, err, myErrors.ErrInvitecodeNotFound)
}

func TestOptionAndEmotionQueryService(t *testing.T) {
	env := newTestEnv(t)
	options := NewOptionQueryService(env.optionRepo, env.logger)
	emotions := NewEmotionQueryService(env.emotionRepo, env.logger)
	ctx := context.Background()

	assert.Equal(t, constant.AllowRegisterOpen, options.GetAllowRegister(ctx))
	require.NoError(t, env.db.Create(&entities.Option{ID: constant.OptionAllowRegister, Category: constant.OptionCategoryMisc, Value: constant.AllowRegisterInviteOnly}).Error)
	assert.Equal(t, constant.AllowRegisterInviteOnly, options.GetAllowRegister(ctx))

	emojis, err := emotions.GetEmojis(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, strings.Join(defaultEmojis, ","), emojis)

	require.NoError(t, env.db.Create(&[]entities.Emotion{
		{ID: ids.Next(), UserID: "u1", Content: "heart", Sort: 2},
		{ID: ids.Next(), UserID: "u1", Content: "smile", Sort: 1},
	}).Error)
	emojis, err = emotions.GetEmojis(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "smile,heart", emojis)
}

// recordingPublisher 记录发布的事件
type recordingPublisher struct {
	mu      sync.Mutex
	created []*entities.Notification
	read    []int64
	err     error
}

func (p *recordingPublisher) PublishNotificationCreated(_ context.Context, n *entities.Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created = append(p.created, n)
	return p.err
}

func (p *recordingPublisher) PublishNotificationRead(_ context.Context, _ string, _ int, count int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.read = append(p.read, count)
	return p.err
}

func TestNotificationMgmtService(t *testing.T) {
	env := newTestEnv(t)
	publisher := &recordingPublisher{}
	svc := NewNotificationMgmtService(env.notificationRepo, publisher, env.logger)
	ctx := context.Background()

	require.NoError(t, svc.AddPointTransferNotification(ctx, "u1", "t1"))
	require.NoError(t, svc.AddNotification(ctx, "u1", "f1", enums.NotificationNewFollower))
	require.NoError(t, svc.AddNotification(ctx, "u1", "f2", enums.NotificationNewFollower))
	assert.Len(t, publisher.created, 3)

	require.NoError(t, svc.MakeRead(ctx, "u1", enums.NotificationNewFollower))
	assert.Equal(t, []int64{2}, publisher.read)

	// 没有未读通知时不再发布事件
	require.NoError(t, svc.MakeRead(ctx, "u1", enums.NotificationNewFollower))
	assert.Len(t, publisher.read, 1)

	unread, err := env.notificationRepo.CountUnread(ctx, "u1", enums.NotificationPointTransfer)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)

	// 发布失败不影响写库
	publisher.err = errors.New("broker down")
	require.NoError(t, svc.AddNotification(ctx, "u2", "x", enums.NotificationPointTransfer))

	// 未配置 Kafka 时只写库
	bare := NewNotificationMgmtService(env.notificationRepo, nil, env.logger)
	require.NoError(t, bare.AddNotification(ctx, "u3", "x", enums.NotificationPointTransfer))
}

func TestPostExportService(t *testing.T) {
	env := newTestEnv(t)
	ledger := NewPointtransferMgmtService(env.db, env.pointRepo, env.logger)
	notify := NewNotificationMgmtService(env.notificationRepo, nil, env.logger)
	storage := newMemoryStorage()
	cfg := config.ExportConfig{Sum: 50, ObjectKeyPrefix: "export/"}
	svc := NewPostExportService(cfg, storage, env.userRepo, env.contentRepo, ledger, notify, env.logger)
	ctx := context.Background()

	poor := env.createUser(t, "poor", 49)
	assert.Equal(t, ExportInsufficientBalance, svc.ExportPosts(ctx, poor.ID))
	assert.Zero(t, storage.count())

	alice := env.createUser(t, "alice", 150)
	article := env.createArticle(t, alice, "public", enums.AnonymousPublic)
	env.createArticle(t, alice, "secret", enums.AnonymousAnonymous)
	env.createComment(t, alice, article, "hi", enums.AnonymousPublic)

	url := svc.ExportPosts(ctx, alice.ID)
	require.NotEmpty(t, url)
	assert.True(t, strings.HasPrefix(url, "https://static.example.com/export/"+alice.ID+"/"))
	assert.Equal(t, 100, env.reloadUser(t, alice.ID).Point)
	require.Equal(t, 1, storage.count())

	for _, payload := range storage.objects {
		var archive postExportArchive
		require.NoError(t, json.Unmarshal(payload, &archive))
		assert.Equal(t, "alice", archive.UserName)
		assert.Len(t, archive.Articles, 2)
		assert.Len(t, archive.Comments, 1)
	}

	unread, err := env.notificationRepo.CountUnread(ctx, alice.ID, enums.NotificationPointExport)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)

	// 上传失败时不扣费
	storage.putErr = errors.New("cos down")
	assert.Empty(t, svc.ExportPosts(ctx, alice.ID))
	assert.Equal(t, 100, env.reloadUser(t, alice.ID).Point)

	// 未配置存储时返回空
	noStorage := NewPostExportService(cfg, nil, env.userRepo, env.contentRepo, ledger, notify, env.logger)
	assert.Empty(t, noStorage.ExportPosts(ctx, alice.ID))
}

// failingLedger 模拟扣费失败
type failingLedger struct {
	err error
}

func (l failingLedger) Transfer(context.Context, string, string, enums.PointtransferType, int, string, int64) (string, error) {
	return "", l.err
}

func TestPostExportService_ChargeFailureRemovesObject(t *testing.T) {
	env := newTestEnv(t)
	notify := NewNotificationMgmtService(env.notificationRepo, nil, env.logger)
	alice := env.createUser(t, "alice", 100)

	cases := []struct {
		name string
		err  error
		want string
	}{
		// 预检查通过后余额被并发扣减
		{"balance drained", myErrors.ErrInsufficientBalance, ExportInsufficientBalance},
		{"ledger error", errors.New("db down"), ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			storage := newMemoryStorage()
			svc := NewPostExportService(config.ExportConfig{Sum: 10}, storage, env.userRepo, env.contentRepo, failingLedger{err: tc.err}, notify, env.logger)
			assert.Equal(t, tc.want, svc.ExportPosts(context.Background(), alice.ID))
			assert.Zero(t, storage.count())
		})
	}
}
