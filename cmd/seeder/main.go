package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/member_service/config"
	"github.com/Xushengqwer/member_service/dependencies"
	"github.com/Xushengqwer/member_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/member_service/repo/redis"
	"github.com/Xushengqwer/member_service/service"
)

func main() {
	// --- 0. 解析命令行参数 ---
	var numUsers int
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numUsers, "n", 20, "要生成的用户数量 (默认: 20)")
	flag.Parse()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		fmt.Printf("无法获取配置文件的绝对路径 '%s': %v\n", configFile, err)
		absConfigFile = configFile
	}
	fmt.Printf("准备使用配置文件 '%s' 生成 %d 个测试用户及其主页数据...\n", absConfigFile, numUsers)

	if numUsers < 2 {
		fmt.Println("错误: 生成的用户数量至少为 2")
		os.Exit(1)
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.MemberConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}
	if cfg.MySQLConfig.Write.DSN == "" {
		fmt.Println("警告: MySQL Write DSN 为空，请检查配置文件中的 mysqlConfig.write.dsn")
	}

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	zl := logger.Logger()
	defer func() {
		_ = zl.Sync()
	}()

	// --- 3. 初始化 MySQL (包含自动迁移) ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}

	// --- 4. 初始化积分账本，初始积分与转账都通过账本写入，余额与流水保持一致 ---
	pointRepo := mysql.NewPointtransferRepository(db, zl)
	ledger := service.NewPointtransferMgmtService(db, pointRepo, zl)

	ctx := context.Background()
	startTime := time.Now()

	seeder := &Seeder{db: db, ledger: ledger, logger: zl}
	if err := seeder.Run(ctx, numUsers); err != nil {
		logger.Fatal("数据填充失败", zap.Error(err))
	}

	// --- 5. 重建用户名补全索引，Redis 不可用时跳过 ---
	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, zl)
	if redisErr != nil {
		logger.Warn("初始化 Redis 失败 (Seeder)，跳过用户名索引重建", zap.Error(redisErr))
	} else {
		userRepo := mysql.NewUserRepository(db, zl)
		nameIndex := redisRepo.NewUserNameIndex(rdb, zl)
		userSvc := service.NewUserQueryService(userRepo, nameIndex, service.NewAvatarQueryService(cfg.SiteConfig.DefaultAvatarURL), zl)
		if err := userSvc.LoadUserNames(ctx); err != nil {
			logger.Warn("重建用户名索引失败", zap.Error(err))
		}
	}

	fmt.Printf("数据填充完成！总耗时: %v\n", time.Since(startTime))
}
