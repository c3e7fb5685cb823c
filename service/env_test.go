package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/ids"
	"github.com/Xushengqwer/member_service/lang"
	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/repo/mysql"
	"github.com/Xushengqwer/member_service/repo/redis"
)

const testDefaultAvatar = "https://static.example.com/default.png"

type testEnv struct {
	db      *gorm.DB
	mr      *miniredis.Miniredis
	rdb     *goredis.Client
	langSvc lang.LangPropsService
	logger  *zap.Logger

	userRepo         mysql.UserRepository
	roleRepo         mysql.RoleRepository
	followRepo       mysql.FollowRepository
	contentRepo      mysql.ContentRepository
	pointRepo        mysql.PointtransferRepository
	invitecodeRepo   mysql.InvitecodeRepository
	notificationRepo mysql.NotificationRepository
	optionRepo       mysql.OptionRepository
	emotionRepo      mysql.EmotionRepository
	nameIndex        redis.UserNameIndex
	avatarSvc        AvatarQueryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormLogger.Default.LogMode(gormLogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(entities.All()...))

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	langSvc, err := lang.NewLangPropsService("zh_CN")
	require.NoError(t, err)

	logger := zap.NewNop()
	return &testEnv{
		db:               db,
		mr:               mr,
		rdb:              rdb,
		langSvc:          langSvc,
		logger:           logger,
		userRepo:         mysql.NewUserRepository(db, logger),
		roleRepo:         mysql.NewRoleRepository(db, logger),
		followRepo:       mysql.NewFollowRepository(db, logger),
		contentRepo:      mysql.NewContentRepository(db, logger),
		pointRepo:        mysql.NewPointtransferRepository(db, logger),
		invitecodeRepo:   mysql.NewInvitecodeRepository(db, logger),
		notificationRepo: mysql.NewNotificationRepository(db, logger),
		optionRepo:       mysql.NewOptionRepository(db),
		emotionRepo:      mysql.NewEmotionRepository(db),
		nameIndex:        redis.NewUserNameIndex(rdb, logger),
		avatarSvc:        NewAvatarQueryService(testDefaultAvatar),
	}
}

func (e *testEnv) createUser(t *testing.T, name string, point int, opts ...func(*entities.User)) *entities.User {
	t.Helper()
	u := &entities.User{
		ID:     ids.Next(),
		Name:   name,
		Role:   constant.RoleDefault,
		Status: enums.UserStatusValid,
		Point:  point,
	}
	for _, opt := range opts {
		opt(u)
	}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

func withRole(role string) func(*entities.User) {
	return func(u *entities.User) { u.Role = role }
}

func withStatus(status enums.UserStatus) func(*entities.User) {
	return func(u *entities.User) { u.Status = status }
}

// withCreatedAgo 把 ID（即创建时间）回拨 d
func withCreatedAgo(d time.Duration) func(*entities.User) {
	return func(u *entities.User) {
		u.ID = strconv.FormatInt(time.Now().Add(-d).UnixMilli(), 10)
	}
}

func (e *testEnv) createArticle(t *testing.T, author *entities.User, title string, anonymous enums.Anonymous) *entities.Article {
	t.Helper()
	a := &entities.Article{ID: ids.Next(), Title: title, AuthorID: author.ID, Anonymous: anonymous, Status: enums.ContentStatusValid}
	require.NoError(t, e.db.Create(a).Error)
	return a
}

func (e *testEnv) createComment(t *testing.T, author *entities.User, article *entities.Article, content string, anonymous enums.Anonymous) *entities.Comment {
	t.Helper()
	c := &entities.Comment{ID: ids.Next(), ArticleID: article.ID, AuthorID: author.ID, Content: content, Anonymous: anonymous, Status: enums.ContentStatusValid}
	require.NoError(t, e.db.Create(c).Error)
	return c
}

func (e *testEnv) follow(t *testing.T, follower, following string, kind enums.FollowingType) {
	t.Helper()
	require.NoError(t, e.db.Create(&entities.Follow{ID: ids.Next(), FollowerID: follower, FollowingID: following, FollowingType: kind}).Error)
}

func (e *testEnv) createRoles(t *testing.T) {
	t.Helper()
	require.NoError(t, e.db.Create(&[]entities.Role{
		{ID: constant.RoleAdmin, Name: "管理员"},
		{ID: constant.RoleDefault, Name: "普通成员", Permissions: constant.PermissionTransferPoint + "," + constant.PermissionExchangeInvitecode},
	}).Error)
}

func (e *testEnv) reloadUser(t *testing.T, id string) *entities.User {
	t.Helper()
	u, err := e.userRepo.GetUserByID(context.Background(), id)
	require.NoError(t, err)
	return u
}

// memoryStorage 是内存中的对象存储
type memoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: map[string][]byte{}}
}

func (s *memoryStorage) PutObject(_ context.Context, objectKey string, reader io.Reader, _ int64, _ string) (string, error) {
	if s.putErr != nil {
		return "", s.putErr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectKey] = buf.Bytes()
	return "https://static.example.com/" + objectKey, nil
}

func (s *memoryStorage) DeleteObject(_ context.Context, objectKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, objectKey)
	return nil
}

func (s *memoryStorage) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
