package router

import (
	"net/http"
	"time"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	otelgin "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appConfig "github.com/Xushengqwer/member_service/config"
	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/controller"
	"github.com/Xushengqwer/member_service/middleware"
)

// Handlers 路由需要的过滤器与控制器
type Handlers struct {
	Filters    *middleware.Filters
	Home       *controller.HomeController
	Point      *controller.PointController
	Invitecode *controller.InvitecodeController
	User       *controller.UserController
	Cron       *controller.CronController
}

// SetupRouter 配置 Gin 引擎、全局中间件和路由。
func SetupRouter(logger *core.ZapLogger, cfg *appConfig.MemberConfig, h Handlers) *gin.Engine {
	logger.Info("开始设置 Gin 路由...")

	router := gin.New()

	// 1. OTel Middleware (最先，处理追踪上下文和 Span)
	router.Use(otelgin.Middleware(constant.ServiceName))

	// 2. Panic Recovery
	router.Use(commonMiddleware.ErrorHandlingMiddleware(logger))

	// 3. Request Logger (需要 TraceID)
	if baseLogger := logger.Logger(); baseLogger != nil {
		router.Use(commonMiddleware.RequestLoggerMiddleware(baseLogger))
	} else {
		logger.Warn("无法获取底层的 *zap.Logger，跳过 RequestLoggerMiddleware 注册")
	}

	// 4. Request Timeout，配置单位为秒
	requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
	router.Use(commonMiddleware.RequestTimeoutMiddleware(logger, requestTimeout))

	// 5. User Context (网关透传的用户信息)
	router.Use(commonMiddleware.UserContextMiddleware())

	logger.Debug("已注册全局中间件")

	RegisterRoutes(router, h)
	logger.Info("成员主页与积分接口路由已注册")

	swaggerURL := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))
	logger.Info("Swagger UI endpoint registered at /swagger/*any")

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	logger.Info("Gin 路由器设置完成")
	return router
}

// chain 拼接过滤器与 handler，每次返回新的切片
func chain(filters []gin.HandlerFunc, handlers ...gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(filters)+len(handlers))
	out = append(out, filters...)
	return append(out, handlers...)
}

// RegisterRoutes 注册全部业务路由及各自的过滤器链。
// 过滤器链的顺序：计时 → 页面渲染 → 后置过滤器（逆序执行）→ 前置过滤器 → handler。
func RegisterRoutes(engine *gin.Engine, h Handlers) {
	f := h.Filters
	r := engine.Group("", f.Viewer())

	// 成员主页
	home := []gin.HandlerFunc{f.Stopwatch(), f.RenderPage(), f.PermissionGrant(), f.AnonymousViewCheck(), f.UserBlockCheck()}
	homeWithCSRF := []gin.HandlerFunc{f.Stopwatch(), f.RenderPage(), f.CSRFToken(), f.PermissionGrant(), f.AnonymousViewCheck(), f.UserBlockCheck()}
	// 匿名内容与链接锻造不经过匿名浏览检查
	homeNoAnonCheck := []gin.HandlerFunc{f.Stopwatch(), f.RenderPage(), f.PermissionGrant(), f.UserBlockCheck()}

	member := r.Group("/member/:userName", gzip.Gzip(gzip.DefaultCompression))
	{
		member.GET("", chain(home, h.Home.ShowHome)...)
		member.GET("/comments", chain(home, h.Home.ShowHomeComments)...)
		member.GET("/comments/anonymous", chain(homeNoAnonCheck, h.Home.ShowHomeAnonymousComments)...)
		member.GET("/articles/anonymous", chain(homeNoAnonCheck, h.Home.ShowAnonymousArticles)...)
		member.GET("/following/users", chain(home, h.Home.ShowHomeFollowingUsers)...)
		member.GET("/following/tags", chain(home, h.Home.ShowHomeFollowingTags)...)
		member.GET("/following/articles", chain(home, h.Home.ShowHomeFollowingArticles)...)
		member.GET("/watching/articles", chain(home, h.Home.ShowHomeWatchingArticles)...)
		member.GET("/followers", chain(home, h.Home.ShowHomeFollowers)...)
		member.GET("/points", chain(home, h.Home.ShowHomePoints)...)
		member.GET("/breezemoons", chain(homeWithCSRF, h.Home.ShowHomeBreezemoons)...)
		member.GET("/forge/link", chain(homeNoAnonCheck, h.Home.ShowLinkForge)...)
	}

	// 积分与邀请码
	r.POST("/point/transfer", f.LoginCheck(), f.CSRFCheck(), f.PointTransferValidation(), h.Point.PointTransfer)
	r.POST("/point/buy-invitecode", f.LoginCheck(), f.CSRFCheck(), f.PermissionCheck(constant.PermissionExchangeInvitecode), h.Point.BuyInvitecode)
	r.POST("/invitecode/state", f.LoginCheck(), f.CSRFCheck(), h.Invitecode.GetInvitecodeState)

	// 辅助接口
	r.POST("/export/posts", f.LoginCheck(), h.User.ExportPosts)
	r.GET("/users/names", h.User.ListUserNames)
	r.GET("/users/emotions", h.User.GetEmotions)

	// 维护接口，密钥在 handler 内校验
	r.GET("/cron/users/reset-unverified", h.Cron.ResetUnverifiedUsers)
	r.GET("/cron/users/load-names", h.Cron.LoadUserNames)
}
