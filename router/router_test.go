package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	appConfig "github.com/Xushengqwer/member_service/config"
	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/controller"
	"github.com/Xushengqwer/member_service/ids"
	"github.com/Xushengqwer/member_service/lang"
	"github.com/Xushengqwer/member_service/middleware"
	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/render"
	"github.com/Xushengqwer/member_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/member_service/repo/redis"
	"github.com/Xushengqwer/member_service/service"
)

const (
	cronKey = "cron-secret"
	// 邀请码有效期 7 天（毫秒）
	invitecodeExpired = 7 * 24 * 60 * 60 * 1000
)

type testServer struct {
	engine     *gin.Engine
	db         *gorm.DB
	recorder   *render.Recorder
	sessionSvc service.SessionService
	userSvc    service.UserQueryService
}

func defaultSite() appConfig.SiteConfig {
	return appConfig.SiteConfig{
		SiteName:           "Symphony",
		ServePath:          "http://localhost",
		AllowAnonymousView: true,
		LoginPath:          "/login",
		KeyOfSymphony:      cronKey,
		DefaultAvatarURL:   "https://static.example.com/default.png",
	}
}

// newTestServer 按 main.go 的方式组装全部依赖，渲染器换成 Recorder
func newTestServer(t *testing.T, site appConfig.SiteConfig) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
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

	userRepo := mysql.NewUserRepository(db, logger)
	roleRepo := mysql.NewRoleRepository(db, logger)
	optionRepo := mysql.NewOptionRepository(db)
	emotionRepo := mysql.NewEmotionRepository(db)
	followRepo := mysql.NewFollowRepository(db, logger)
	contentRepo := mysql.NewContentRepository(db, logger)
	pointRepo := mysql.NewPointtransferRepository(db, logger)
	invitecodeRepo := mysql.NewInvitecodeRepository(db, logger)
	notificationRepo := mysql.NewNotificationRepository(db, logger)
	sessionRepo := redisrepo.NewSessionRepository(rdb, logger)
	csrfRepo := redisrepo.NewCSRFTokenRepository(rdb, logger)
	nameIndex := redisrepo.NewUserNameIndex(rdb, logger)

	someoneLabel := langSvc.Get("someoneLabel")
	avatarSvc := service.NewAvatarQueryService(site.DefaultAvatarURL)
	userSvc := service.NewUserQueryService(userRepo, nameIndex, avatarSvc, logger)
	userMgmtSvc := service.NewUserMgmtService(userRepo, nameIndex, 24, logger)
	roleSvc := service.NewRoleQueryService(roleRepo, logger)
	followSvc := service.NewFollowQueryService(followRepo, userRepo, contentRepo, avatarSvc, someoneLabel, logger)
	articleSvc := service.NewArticleQueryService(contentRepo, userRepo, avatarSvc, someoneLabel, logger)
	commentSvc := service.NewCommentQueryService(contentRepo, userRepo, avatarSvc, someoneLabel, logger)
	breezemoonSvc := service.NewBreezemoonQueryService(contentRepo, userRepo, avatarSvc, logger)
	linkForgeSvc := service.NewLinkForgeQueryService(contentRepo, logger)
	ledgerSvc := service.NewPointtransferMgmtService(db, pointRepo, logger)
	pointQuerySvc := service.NewPointtransferQueryService(pointRepo, userRepo, langSvc, logger)
	notifySvc := service.NewNotificationMgmtService(notificationRepo, nil, logger)
	invitecodeQuerySvc := service.NewInvitecodeQueryService(invitecodeRepo, logger)
	invitecodeMgmtSvc := service.NewInvitecodeMgmtService(invitecodeRepo, logger)
	optionSvc := service.NewOptionQueryService(optionRepo, logger)
	emotionSvc := service.NewEmotionQueryService(emotionRepo, logger)
	exportSvc := service.NewPostExportService(appConfig.ExportConfig{Sum: 50}, nil, userRepo, contentRepo, ledgerSvc, notifySvc, logger)
	sessionSvc := service.NewSessionService(appConfig.SessionConfig{CookieName: "sym-session", Secret: "test-secret"}, sessionRepo, csrfRepo, userRepo, logger)
	dataModelSvc := service.NewDataModelService(site, avatarSvc)
	homeSvc := service.NewHomeService(appConfig.HomeConfig{}, dataModelSvc, roleSvc, avatarSvc, followSvc, logger)

	invitecodeCfg := appConfig.InvitecodeConfig{Expired: invitecodeExpired, BuySum: 20}
	recorder := render.NewRecorder()
	engine := gin.New()
	RegisterRoutes(engine, Handlers{
		Filters:    middleware.NewFilters(site, sessionSvc, userSvc, roleSvc, langSvc, recorder, logger),
		Home:       controller.NewHomeController(homeSvc, articleSvc, commentSvc, followSvc, pointQuerySvc, breezemoonSvc, linkForgeSvc, notifySvc, logger),
		Point:      controller.NewPointController(ledgerSvc, notifySvc, optionSvc, invitecodeMgmtSvc, langSvc, invitecodeCfg, logger),
		Invitecode: controller.NewInvitecodeController(invitecodeQuerySvc, langSvc, invitecodeCfg, logger),
		User:       controller.NewUserController(exportSvc, userSvc, avatarSvc, emotionSvc, langSvc, logger),
		Cron:       controller.NewCronController(site.KeyOfSymphony, userSvc, userMgmtSvc, langSvc, logger),
	})

	require.NoError(t, db.Create(&[]entities.Role{
		{ID: constant.RoleAdmin, Name: "管理员"},
		{ID: constant.RoleDefault, Name: "普通成员", Permissions: constant.PermissionTransferPoint + "," + constant.PermissionExchangeInvitecode},
	}).Error)

	return &testServer{engine: engine, db: db, recorder: recorder, sessionSvc: sessionSvc, userSvc: userSvc}
}

func (s *testServer) createUser(t *testing.T, name string, point int) *entities.User {
	t.Helper()
	u := &entities.User{ID: ids.Next(), Name: name, Role: constant.RoleDefault, Status: enums.UserStatusValid, Point: point}
	require.NoError(t, s.db.Create(u).Error)
	return u
}

func (s *testServer) reloadUser(t *testing.T, id string) *entities.User {
	t.Helper()
	var u entities.User
	require.NoError(t, s.db.First(&u, "id = ?", id).Error)
	return &u
}

// session 是一个已登录访问者的令牌与 CSRF 令牌
type session struct {
	token string
	csrf  string
}

func (s *testServer) login(t *testing.T, user *entities.User) session {
	t.Helper()
	ctx := context.Background()
	token, err := s.sessionSvc.Login(ctx, user.ID)
	require.NoError(t, err)
	_, sid, err := s.sessionSvc.CurrentUser(ctx, token)
	require.NoError(t, err)
	csrf, err := s.sessionSvc.CSRFToken(ctx, sid)
	require.NoError(t, err)
	return session{token: token, csrf: csrf}
}

func (s *testServer) do(method, target string, body any, sess *session, withCSRF bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		raw, _ := json.Marshal(body)
		req = httptest.NewRequest(method, target, strings.NewReader(string(raw)))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.token)
		if withCSRF {
			req.Header.Set("csrfToken", sess.csrf)
		}
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestMemberHome(t *testing.T) {
	srv := newTestServer(t, defaultSite())
	alice := srv.createUser(t, "alice", 0)
	for i := 0; i < 3; i++ {
		require.NoError(t, srv.db.Create(&entities.Article{ID: ids.Next(), Title: fmt.Sprintf("post-%d", i), AuthorID: alice.ID, Status: enums.ContentStatusValid}).Error)
	}

	w := srv.do(http.MethodGet, "/member/alice", nil, nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	page := srv.recorder.Last()
	require.NotNil(t, page)
	assert.Equal(t, "/home/home.ftl", page.Template)
	assert.Equal(t, "home", page.DataModel["type"])
	assert.Len(t, page.DataModel["userHomeArticles"], 3)
	assert.Equal(t, int64(3), page.DataModel["paginationRecordCount"])
	assert.Contains(t, page.DataModel, "permissions")
	assert.NotContains(t, page.DataModel, "isFollowing")
	assert.Equal(t, false, page.DataModel["isMyArticle"])
}

func TestMemberHome_UnknownOrBlockedUser(t *testing.T) {
	srv := newTestServer(t, defaultSite())
	blocked := srv.createUser(t, "mallory", 0)
	require.NoError(t, srv.db.Model(&entities.User{}).Where("id = ?", blocked.ID).Update("status", enums.UserStatusBlocked).Error)

	for _, name := range []string{"nobody", "mallory"} {
		w := srv.do(http.MethodGet, "/member/"+name, nil, nil, false)
		assert.Equal(t, http.StatusNotFound, w.Code, name)
		page := srv.recorder.Last()
		require.NotNil(t, page)
		assert.Equal(t, render.NotFoundTemplate, page.Template)
	}
}

func TestMemberHome_AnonymousViewRedirect(t *testing.T) {
	site := defaultSite()
	site.AllowAnonymousView = false
	srv := newTestServer(t, site)
	alice := srv.createUser(t, "alice", 0)

	w := srv.do(http.MethodGet, "/member/alice/points", nil, nil, false)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "http://localhost/login?goto="+url.QueryEscape("http://localhost/member/alice/points"), w.Header().Get("Location"))
	assert.Equal(t, 0, srv.recorder.Count())

	sess := srv.login(t, alice)
	w = srv.do(http.MethodGet, "/member/alice/points", nil, &sess, false)
	assert.Equal(t, http.StatusOK, w.Code)

	// 链接锻造页不做匿名浏览检查
	w = srv.do(http.MethodGet, "/member/alice/forge/link", nil, nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMemberHome_AnonymousCommentsOwnerOnly(t *testing.T) {
	srv := newTestServer(t, defaultSite())
	alice := srv.createUser(t, "alice", 0)
	bob := srv.createUser(t, "bob", 0)
	article := &entities.Article{ID: ids.Next(), Title: "hello", AuthorID: bob.ID, Status: enums.ContentStatusValid}
	require.NoError(t, srv.db.Create(article).Error)
	require.NoError(t, srv.db.Create(&entities.Comment{ID: ids.Next(), ArticleID: article.ID, AuthorID: alice.ID, Content: "secret", Anonymous: enums.AnonymousAnonymous, Status: enums.ContentStatusValid}).Error)

	w := srv.do(http.MethodGet, "/member/alice/comments/anonymous", nil, nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	bobSess := srv.login(t, bob)
	w = srv.do(http.MethodGet, "/member/alice/comments/anonymous", nil, &bobSess, false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	aliceSess := srv.login(t, alice)
	w = srv.do(http.MethodGet, "/member/alice/comments/anonymous", nil, &aliceSess, false)
	require.Equal(t, http.StatusOK, w.Code)
	page := srv.recorder.Last()
	assert.Equal(t, "commentsAnonymous", page.DataModel["type"])
	assert.Len(t, page.DataModel["userHomeComments"], 1)
}

func TestMemberFollowers_MarksNewFollowerRead(t *testing.T) {
	srv := newTestServer(t, defaultSite())
	alice := srv.createUser(t, "alice", 0)
	bob := srv.createUser(t, "bob", 0)
	require.NoError(t, srv.db.Create(&entities.Follow{ID: ids.Next(), FollowerID: bob.ID, FollowingID: alice.ID, FollowingType: enums.FollowingUser}).Error)
	require.NoError(t, srv.db.Create(&entities.Notification{ID: ids.Next(), UserID: alice.ID, DataID: bob.ID, DataType: enums.NotificationNewFollower}).Error)

	unread := func() int64 {
		var n int64
		require.NoError(t, srv.db.Model(&entities.Notification{}).
			Where("user_id = ? AND data_type = ? AND has_read = ?", alice.ID, enums.NotificationNewFollower, false).
			Count(&n).Error)
		return n
	}

	bobSess := srv.login(t, bob)
	w := srv.do(http.MethodGet, "/member/alice/followers", nil, &bobSess, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), unread())
	assert.Equal(t, true, srv.recorder.Last().DataModel["isFollowing"])

	aliceSess := srv.login(t, alice)
	w = srv.do(http.MethodGet, "/member/alice/followers", nil, &aliceSess, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(0), unread())
	assert.Len(t, srv.recorder.Last().DataModel["userHomeFollowerUsers"], 1)
}

func TestMemberBreezemoons_CSRFToken(t *testing.T) {
	srv := newTestServer(t, defaultSite())
	alice := srv.createUser(t, "alice", 0)

	w := srv.do(http.MethodGet, "/member/alice/breezemoons", nil, nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", srv.recorder.Last().DataModel["csrfToken"])

	sess := srv.login(t, alice)
	w = srv.do(http.MethodGet, "/member/alice/breezemoons", nil, &sess, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sess.csrf, srv.recorder.Last().DataModel["csrfToken"])
}

func TestPointTransfer(t *testing.T) {
	srv := newTestServer(t, defaultSite())
	alice := srv.createUser(t, "alice", 100)
	bob := srv.createUser(t, "bob", 0)
	sess := srv.login(t, alice)

	w := srv.do(http.MethodPost, "/point/transfer", map[string]any{"userName": "bob", "amount": 30}, &sess, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["statusCode"])

	assert.Equal(t, 70, srv.reloadUser(t, alice.ID).Point)
	assert.Equal(t, 30, srv.reloadUser(t, bob.ID).Point)

	var n int64
	require.NoError(t, srv.db.Model(&entities.Notification{}).
		Where("user_id = ? AND data_type = ?", bob.ID, enums.NotificationPointTransfer).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestPointTransfer_Rejected(t *testing.T) {
	srv := newTestServer(t, defaultSite())
	alice := srv.createUser(t, "alice", 100)
	srv.createUser(t, "bob", 0)
	sess := srv.login(t, alice)

	cases := []struct {
		name string
		body map[string]any
		msg  string
	}{
		{"unknown recipient", map[string]any{"userName": "nobody", "amount": 10}, "notFoundUserLabel"},
		{"blank recipient", map[string]any{"amount": 10}, "notFoundUserLabel"},
		{"self", map[string]any{"userName": "alice", "amount": 10}, "cannotTransferSelfLabel"},
		{"zero amount", map[string]any{"userName": "bob", "amount": 0}, "amountInvalidLabel"},
		{"not a number", map[string]any{"userName": "bob", "amount": "ten"}, "amountInvalidLabel"},
		{"over balance", map[string]any{"userName": "bob", "amount": 101}, "insufficientBalanceLabel"},
	}
	langSvc, err := lang.NewLangPropsService("zh_CN")
	require.NoError(t, err)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := srv.do(http.MethodPost, "/point/transfer", tc.body, &sess, true)
			require.Equal(t, http.StatusOK, w.Code)
			out := decode(t, w)
			assert.Equal(t, false, out["statusCode"])
			assert.Equal(t, langSvc.Get(tc.msg), out["msg"])
		})
	}
	assert.Equal(t, 100, srv.reloadUser(t, alice.ID).Point)
}

func TestPointTransfer_Guards(t *testing.T) {
	srv := newTestServer(t, defaultSite())
	alice := srv.createUser(t, "alice", 100)
	srv.createUser(t, "bob", 0)
	sess := srv.login(t, alice)
	body := map[string]any{"userName": "bob", "amount": 1}

	// 未登录
	w := srv.do(http.MethodPost, "/point/transfer", body, nil, false)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 缺少 CSRF 令牌
	w = srv.do(http.MethodPost, "/point/transfer", body, &sess, false)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "页面已过期，请刷新后重试", decode(t, w)["msg"])

	// 空 JSON 请求体
	req := httptest.NewRequest(http.MethodPost, "/point/transfer", nil)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+sess.token)
	req.Header.Set("csrfToken", sess.csrf)
	rec := httptest.NewRecorder()
	srv.engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, 100, srv.reloadUser(t, alice.ID).Point)
}

func TestBuyInvitecode(t *testing.T) {
	srv := newTestServer(t, defaultSite())
	alice := srv.createUser(t, "alice", 100)
	sess := srv.login(t, alice)

	// 非邀请码注册模式下不做任何变更
	w := srv.do(http.MethodPost, "/point/buy-invitecode", nil, &sess, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["statusCode"])
	assert.Equal(t, 100, srv.reloadUser(t, alice.ID).Point)

	require.NoError(t, srv.db.Create(&entities.Option{ID: constant.OptionAllowRegister, Category: constant.OptionCategoryMisc, Value: constant.AllowRegisterInviteOnly}).Error)
	before := time.Now()
	w = srv.do(http.MethodPost, "/point/buy-invitecode", nil, &sess, true)
	after := time.Now()
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, true, out["statusCode"])
	code, _ := out["invitecode"].(string)
	assert.Len(t, code, 16)
	assert.Equal(t, 80, srv.reloadUser(t, alice.ID).Point)

	// 过期时间为兑换时刻加有效期，精确到分钟
	expireTime, _ := out["expireTime"].(string)
	ttl := time.Duration(invitecodeExpired) * time.Millisecond
	assert.Contains(t, []string{
		before.Add(ttl).Format(constant.DateTimeLayout),
		after.Add(ttl).Format(constant.DateTimeLayout),
	}, expireTime)
	langSvc, err := lang.NewLangPropsService("zh_CN")
	require.NoError(t, err)
	assert.Equal(t, code+" "+langSvc.GetWith("expireTipLabel", map[string]string{"time": expireTime}), out["msg"])

	var transfers []entities.Pointtransfer
	require.NoError(t, srv.db.Find(&transfers).Error)
	require.Len(t, transfers, 1)
	assert.Equal(t, alice.ID, transfers[0].FromID)
	assert.Equal(t, constant.SYS, transfers[0].ToID)
	assert.Equal(t, enums.TransferTypeBuyInvitecode, transfers[0].Type)
	assert.Equal(t, code, transfers[0].DataID)

	// 查询刚兑换的邀请码
	w = srv.do(http.MethodPost, "/invitecode/state", map[string]any{"invitecode": code}, &sess, true)
	require.Equal(t, http.StatusOK, w.Code)
	state := decode(t, w)
	assert.Equal(t, float64(enums.InvitecodeStatusUnused), state["statusCode"])
}

func TestBuyInvitecode_NoPermission(t *testing.T) {
	srv := newTestServer(t, defaultSite())
	u := &entities.User{ID: ids.Next(), Name: "guest", Role: constant.RoleVisitor, Status: enums.UserStatusValid, Point: 100}
	require.NoError(t, srv.db.Create(u).Error)
	sess := srv.login(t, u)

	w := srv.do(http.MethodPost, "/point/buy-invitecode", nil, &sess, true)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestInvitecodeState(t *testing.T) {
	srv := newTestServer(t, defaultSite())
	alice := srv.createUser(t, "alice", 0)
	sess := srv.login(t, alice)
	require.NoError(t, srv.db.Create(&[]entities.Invitecode{
		{ID: ids.Next(), Code: "usedcode00000000", Status: enums.InvitecodeStatusUsed},
		{ID: ids.Next(), Code: "stopcode00000000", Status: enums.InvitecodeStatusStopUse},
	}).Error)

	cases := []struct {
		code   string
		status float64
	}{
		{"usedcode00000000", float64(enums.InvitecodeStatusUsed)},
		{"stopcode00000000", float64(enums.InvitecodeStatusStopUse)},
		{"missing", -1},
		{"  ", -1},
	}
	for _, tc := range cases {
		w := srv.do(http.MethodPost, "/invitecode/state", map[string]any{"invitecode": tc.code}, &sess, true)
		require.Equal(t, http.StatusOK, w.Code)
		out := decode(t, w)
		assert.Equal(t, tc.status, out["statusCode"], tc.code)
		assert.NotEmpty(t, out["msg"], tc.code)
	}
}

func TestInvitecodeState_Unused(t *testing.T) {
	srv := newTestServer(t, defaultSite())
	alice := srv.createUser(t, "alice", 0)
	sess := srv.login(t, alice)
	const issuedAt = int64(1700000000000)
	require.NoError(t, srv.db.Create(&[]entities.Invitecode{
		{ID: strconv.FormatInt(issuedAt, 10), Code: "ABCD1234", Status: enums.InvitecodeStatusUnused},
		{ID: "legacy-1", Code: "LEGACY00", Status: enums.InvitecodeStatusUnused},
	}).Error)
	langSvc, err := lang.NewLangPropsService("zh_CN")
	require.NoError(t, err)

	// 首尾空白被忽略，msg 中的过期时间为签发时间加有效期
	w := srv.do(http.MethodPost, "/invitecode/state", map[string]any{"invitecode": "  ABCD1234  "}, &sess, true)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, float64(enums.InvitecodeStatusUnused), out["statusCode"])
	expire := time.UnixMilli(issuedAt).Add(time.Duration(invitecodeExpired) * time.Millisecond).Format(constant.DateTimeLayout)
	assert.Equal(t, langSvc.GetWith("invitecodeOkLabel", map[string]string{"time": expire}), out["msg"])
	assert.Contains(t, out["msg"], expire)

	// ID 无法解析出签发时间时不给出过期时间
	w = srv.do(http.MethodPost, "/invitecode/state", map[string]any{"invitecode": "LEGACY00"}, &sess, true)
	require.Equal(t, http.StatusOK, w.Code)
	out = decode(t, w)
	assert.Equal(t, langSvc.Get("notFoundInvitecodeLabel"), out["msg"])
	assert.NotContains(t, out["msg"], "0001-01-01")
}

func TestExportPosts(t *testing.T) {
	srv := newTestServer(t, defaultSite())
	poor := srv.createUser(t, "poor", 10)
	rich := srv.createUser(t, "rich", 100)

	w := srv.do(http.MethodPost, "/export/posts", nil, nil, false)
	assert.Equal(t, http.StatusForbidden, w.Code)

	poorSess := srv.login(t, poor)
	w = srv.do(http.MethodPost, "/export/posts", nil, &poorSess, false)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, false, out["statusCode"])
	assert.Equal(t, "积分余额不足", out["msg"])

	// 未配置对象存储时导出失败且不扣积分
	richSess := srv.login(t, rich)
	w = srv.do(http.MethodPost, "/export/posts", nil, &richSess, false)
	require.Equal(t, http.StatusOK, w.Code)
	out = decode(t, w)
	assert.Equal(t, false, out["statusCode"])
	assert.NotContains(t, out, "msg")
	assert.Equal(t, 100, srv.reloadUser(t, rich.ID).Point)
}

func TestUserNames(t *testing.T) {
	srv := newTestServer(t, defaultSite())
	admin := &entities.User{ID: ids.Next(), Name: "root", Role: constant.RoleAdmin, Status: enums.UserStatusValid}
	require.NoError(t, srv.db.Create(admin).Error)
	alice := srv.createUser(t, "alice", 0)
	srv.createUser(t, "alex", 0)
	srv.createUser(t, "bob", 0)
	require.NoError(t, srv.userSvc.LoadUserNames(context.Background()))

	w := srv.do(http.MethodGet, "/users/names?name=al", nil, nil, false)
	assert.Equal(t, http.StatusForbidden, w.Code)

	sess := srv.login(t, alice)
	w = srv.do(http.MethodGet, "/users/names?name=al", nil, &sess, false)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, true, out["statusCode"])
	assert.Len(t, out["userNames"], 2)

	w = srv.do(http.MethodGet, "/users/names", nil, &sess, false)
	require.Equal(t, http.StatusOK, w.Code)
	names, _ := decode(t, w)["userNames"].([]any)
	require.Len(t, names, 1)
	assert.Equal(t, "root", names[0].(map[string]any)["userName"])
}

func TestUserEmotions(t *testing.T) {
	srv := newTestServer(t, defaultSite())
	alice := srv.createUser(t, "alice", 0)
	require.NoError(t, srv.db.Create(&entities.Emotion{ID: ids.Next(), UserID: alice.ID, Content: "smile", Sort: 1}).Error)

	w := srv.do(http.MethodGet, "/users/emotions", nil, nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, true, out["statusCode"])
	assert.Equal(t, "", out["emotions"])

	sess := srv.login(t, alice)
	w = srv.do(http.MethodGet, "/users/emotions", nil, &sess, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "smile", decode(t, w)["emotions"])
}

func TestCronKey(t *testing.T) {
	srv := newTestServer(t, defaultSite())

	for _, path := range []string{"/cron/users/reset-unverified", "/cron/users/load-names"} {
		w := srv.do(http.MethodGet, path+"?key=wrong", nil, nil, false)
		assert.Equal(t, http.StatusForbidden, w.Code, path)

		w = srv.do(http.MethodGet, path+"?key="+cronKey, nil, nil, false)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, true, decode(t, w)["statusCode"], path)
	}
}
