package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/Xushengqwer/member_service/docs"

	appConfig "github.com/Xushengqwer/member_service/config"
	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/controller"
	"github.com/Xushengqwer/member_service/dependencies"
	"github.com/Xushengqwer/member_service/lang"
	"github.com/Xushengqwer/member_service/middleware"
	"github.com/Xushengqwer/member_service/mq/consumer"
	"github.com/Xushengqwer/member_service/mq/producer"
	"github.com/Xushengqwer/member_service/render"
	"github.com/Xushengqwer/member_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/member_service/repo/redis"
	"github.com/Xushengqwer/member_service/router"
	"github.com/Xushengqwer/member_service/service"
	"github.com/Xushengqwer/member_service/tasks"

	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"

	"go.uber.org/zap"
)

// @title           Member Service API
// @version         1.0
// @description     成员服务，提供成员主页、积分转账、邀请码与帖子导出等功能。
// @termsOfService  http://swagger.io/terms/

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8083

// @schemes http https
func main() {
	// --- 配置和基础设置 ---
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置
	var cfg appConfig.MemberConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 2. 初始化 Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	zl := logger.Logger()
	defer func() {
		logger.Info("正在同步日志...")
		if err := zl.Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	logger.Info("Logger 初始化成功")

	// 3. 初始化 TracerProvider
	if cfg.TracerConfig.Enabled {
		tracerShutdown, err := sharedTracing.InitTracerProvider(
			constant.ServiceName,
			constant.ServiceVersion,
			cfg.TracerConfig,
		)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Info("正在关闭 TracerProvider...")
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			} else {
				logger.Info("TracerProvider 已成功关闭")
			}
		}()
		logger.Info("分布式追踪已初始化")
	} else {
		logger.Info("分布式追踪已禁用")
	}

	// --- 4. 初始化核心依赖 ---
	// 4.1 数据库 (MySQL)
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 数据库失败", zap.Error(dbErr))
	}
	logger.Info("MySQL 数据库连接成功")

	// 4.2 Redis
	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, zl)
	if redisErr != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(redisErr))
	}
	logger.Info("Redis 连接成功")

	// 4.3 COS 客户端，未配置时帖子导出不可用
	var storage dependencies.ObjectStorage
	if cfg.COSConfig.BucketName != "" {
		cosStorage, cosErr := dependencies.InitCOS(&cfg.COSConfig, zl)
		if cosErr != nil {
			logger.Fatal("初始化 COS 客户端失败", zap.Error(cosErr))
		}
		storage = cosStorage
		logger.Info("COS 客户端初始化成功")
	} else {
		logger.Warn("未配置导出存储桶，帖子导出功能将不可用")
	}

	// 4.4 Kafka 生产者
	var kafkaProducer *producer.KafkaProducer
	var publisher producer.EventPublisher
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, zl)
		publisher = kafkaProducer
		logger.Info("Kafka 生产者已初始化")
	} else {
		logger.Warn("未配置 Kafka brokers，通知事件将只写入数据库")
	}

	// 4.5 界面文案
	langSvc, langErr := lang.NewLangPropsService(cfg.SiteConfig.Locale)
	if langErr != nil {
		logger.Fatal("加载界面文案失败", zap.Error(langErr))
	}

	// --- 5. 初始化数据仓库层 (Repositories) ---
	userRepo := mysql.NewUserRepository(db, zl)
	roleRepo := mysql.NewRoleRepository(db, zl)
	optionRepo := mysql.NewOptionRepository(db)
	emotionRepo := mysql.NewEmotionRepository(db)
	followRepo := mysql.NewFollowRepository(db, zl)
	contentRepo := mysql.NewContentRepository(db, zl)
	pointRepo := mysql.NewPointtransferRepository(db, zl)
	invitecodeRepo := mysql.NewInvitecodeRepository(db, zl)
	notificationRepo := mysql.NewNotificationRepository(db, zl)
	logger.Debug("MySQL Repositories 初始化完成")

	sessionRepo := redisrepo.NewSessionRepository(rdb, zl)
	csrfRepo := redisrepo.NewCSRFTokenRepository(rdb, zl)
	nameIndex := redisrepo.NewUserNameIndex(rdb, zl)
	logger.Debug("Redis Repositories 初始化完成")

	// --- 6. 初始化服务层 (Services) ---
	someoneLabel := langSvc.Get("someoneLabel")
	avatarSvc := service.NewAvatarQueryService(cfg.SiteConfig.DefaultAvatarURL)
	userSvc := service.NewUserQueryService(userRepo, nameIndex, avatarSvc, zl)
	userMgmtSvc := service.NewUserMgmtService(userRepo, nameIndex, cfg.CronConfig.UnverifiedTTLHours, zl)
	roleSvc := service.NewRoleQueryService(roleRepo, zl)
	followSvc := service.NewFollowQueryService(followRepo, userRepo, contentRepo, avatarSvc, someoneLabel, zl)
	articleSvc := service.NewArticleQueryService(contentRepo, userRepo, avatarSvc, someoneLabel, zl)
	commentSvc := service.NewCommentQueryService(contentRepo, userRepo, avatarSvc, someoneLabel, zl)
	breezemoonSvc := service.NewBreezemoonQueryService(contentRepo, userRepo, avatarSvc, zl)
	linkForgeSvc := service.NewLinkForgeQueryService(contentRepo, zl)
	ledgerSvc := service.NewPointtransferMgmtService(db, pointRepo, zl)
	pointQuerySvc := service.NewPointtransferQueryService(pointRepo, userRepo, langSvc, zl)
	notifySvc := service.NewNotificationMgmtService(notificationRepo, publisher, zl)
	invitecodeQuerySvc := service.NewInvitecodeQueryService(invitecodeRepo, zl)
	invitecodeMgmtSvc := service.NewInvitecodeMgmtService(invitecodeRepo, zl)
	optionSvc := service.NewOptionQueryService(optionRepo, zl)
	emotionSvc := service.NewEmotionQueryService(emotionRepo, zl)
	exportSvc := service.NewPostExportService(cfg.ExportConfig, storage, userRepo, contentRepo, ledgerSvc, notifySvc, zl)
	sessionSvc := service.NewSessionService(cfg.SessionConfig, sessionRepo, csrfRepo, userRepo, zl)
	dataModelSvc := service.NewDataModelService(cfg.SiteConfig, avatarSvc)
	homeSvc := service.NewHomeService(cfg.HomeConfig, dataModelSvc, roleSvc, avatarSvc, followSvc, zl)
	logger.Debug("Services 初始化完成")

	// 启动时构建一次用户名补全索引，失败不影响服务启动
	warmCtx, warmCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := userSvc.LoadUserNames(warmCtx); err != nil {
		logger.Warn("启动时加载用户名索引失败", zap.Error(err))
	}
	warmCancel()

	// --- 7. 初始化过滤器与控制器 ---
	renderer := render.NewSkinRenderer(cfg.SiteConfig.SkinDir, zl)
	filters := middleware.NewFilters(cfg.SiteConfig, sessionSvc, userSvc, roleSvc, langSvc, renderer, zl)
	handlers := router.Handlers{
		Filters:    filters,
		Home:       controller.NewHomeController(homeSvc, articleSvc, commentSvc, followSvc, pointQuerySvc, breezemoonSvc, linkForgeSvc, notifySvc, zl),
		Point:      controller.NewPointController(ledgerSvc, notifySvc, optionSvc, invitecodeMgmtSvc, langSvc, cfg.InvitecodeConfig, zl),
		Invitecode: controller.NewInvitecodeController(invitecodeQuerySvc, langSvc, cfg.InvitecodeConfig, zl),
		User:       controller.NewUserController(exportSvc, userSvc, avatarSvc, emotionSvc, langSvc, zl),
		Cron:       controller.NewCronController(cfg.SiteConfig.KeyOfSymphony, userSvc, userMgmtSvc, langSvc, zl),
	}
	logger.Debug("Controllers 初始化完成")

	// --- 8. 初始化 Kafka 消费者 ---
	var consumers []*consumer.Consumer
	var consumerWg sync.WaitGroup
	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	if len(cfg.KafkaConfig.Brokers) > 0 {
		if cfg.KafkaConfig.ConsumerGroupID == "" {
			logger.Warn("Kafka ConsumerGroupID 未在配置中设置，将使用默认值 'member_service_group'")
			cfg.KafkaConfig.ConsumerGroupID = "member_service_group"
		}

		subscriptions := []struct {
			topic   string
			handler consumer.MessageHandler
		}{
			{cfg.KafkaConfig.Topics.UserRegistered, consumer.NewUserRegisteredHandler(zl, userSvc)},
			{cfg.KafkaConfig.Topics.InvitecodeUsed, consumer.NewInvitecodeUsedHandler(zl, invitecodeQuerySvc, invitecodeMgmtSvc, notifySvc)},
		}
		for _, sub := range subscriptions {
			if sub.topic == "" {
				logger.Warn("Kafka topic 未配置，跳过对应消费者")
				continue
			}
			cons, err := consumer.NewConsumer(&cfg.KafkaConfig, sub.topic, sub.handler, zl)
			if err != nil {
				logger.Fatal("初始化 Kafka 消费者失败", zap.String("topic", sub.topic), zap.Error(err))
			}
			consumers = append(consumers, cons)
		}

		logger.Info(fmt.Sprintf("准备启动 %d 个 Kafka 消费者...", len(consumers)))
		for _, c := range consumers {
			consumerWg.Add(1)
			go func(cons *consumer.Consumer) {
				defer consumerWg.Done()
				cons.Start(consumerCtx)
			}(c)
		}
	} else {
		logger.Warn("Kafka Brokers 未配置，跳过所有 Kafka 消费者初始化。")
	}

	// --- 9. 初始化定时任务 ---
	type stoppable interface{ Stop() context.Context }
	var cronTasks []stoppable
	if cfg.CronConfig.Enabled {
		resetTask, err := tasks.NewResetUnverifiedTask(cfg.CronConfig.ResetUnverifiedSpec, userMgmtSvc, zl)
		if err != nil {
			logger.Fatal("启动未验证账号清理任务失败", zap.Error(err))
		}
		namesTask, err := tasks.NewLoadNamesTask(cfg.CronConfig.LoadNamesSpec, userSvc, zl)
		if err != nil {
			logger.Fatal("启动用户名索引重建任务失败", zap.Error(err))
		}
		cronTasks = append(cronTasks, resetTask, namesTask)
		logger.Info("后台定时任务已初始化并启动")
	} else {
		logger.Info("进程内定时任务已禁用，维护逻辑由 /cron/* 接口触发")
	}

	// --- 10. 设置 Gin 路由器 ---
	ginRouter := router.SetupRouter(logger, &cfg, handlers)
	logger.Info("Gin 路由器已设置")

	// --- 11. 启动 HTTP 服务器 ---
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: ginRouter,
	}

	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
		logger.Info("HTTP 服务器已停止监听")
	}()

	// --- 12. 优雅关停 ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// a. 停止 HTTP 服务器
	logger.Info("正在关闭 HTTP 服务器...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	} else {
		logger.Info("HTTP 服务器已成功关闭")
	}

	// b. 关闭 Kafka 消费者
	logger.Info("正在发送停止信号给 Kafka 消费者...")
	consumerCancel()
	consumerWg.Wait()
	for _, c := range consumers {
		if err := c.Close(); err != nil {
			logger.Error("关闭某个 Kafka 消费者时出错", zap.Error(err))
		}
	}
	logger.Info("所有 Kafka 消费者已停止。")

	// c. 停止定时任务，等待正在执行的作业结束
	for _, t := range cronTasks {
		select {
		case <-t.Stop().Done():
		case <-shutdownCtx.Done():
			logger.Error("等待定时任务停止超时", zap.Error(shutdownCtx.Err()))
		}
	}
	logger.Info("所有定时任务已停止")

	// d. 关闭 Kafka 生产者
	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
		}
	}

	logger.Info("服务已成功关闭")
}
