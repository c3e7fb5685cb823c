package dependencies

import (
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	appConfig "github.com/Xushengqwer/member_service/config"
	"github.com/Xushengqwer/member_service/models/entities"
)

const (
	mysqlConnectRetries = 5
	mysqlRetryInterval  = 2 * time.Second
)

// poolSettings 连接池参数，ConnMaxLifetime 单位为秒
type poolSettings struct {
	MaxIdle  int
	MaxOpen  int
	Lifetime int
}

// resolvePool 以共享设置为基础，数据源自己的设置优先
func resolvePool(shared appConfig.MySQLConfig, source appConfig.SourceConfig) poolSettings {
	p := poolSettings{
		MaxIdle:  shared.SharedMaxIdleConns,
		MaxOpen:  shared.SharedMaxOpenConns,
		Lifetime: shared.SharedConnMaxLifetime,
	}
	if source.MaxIdleConns != nil {
		p.MaxIdle = *source.MaxIdleConns
	}
	if source.MaxOpenConns != nil {
		p.MaxOpen = *source.MaxOpenConns
	}
	if source.ConnMaxLifetime != nil {
		p.Lifetime = *source.ConnMaxLifetime
	}
	return p
}

// InitMySQL 连接主库，配置了从库时注册读写分离，然后执行自动迁移。
// 成员主页的分页查询走从库；积分转账、邀请码与通知的写入走主库。
func InitMySQL(cfg *appConfig.MemberConfig, logger *core.ZapLogger) (*gorm.DB, error) {
	mysqlCfg := cfg.MySQLConfig
	if mysqlCfg.Write.DSN == "" {
		return nil, fmt.Errorf("主数据库 DSN (mysql.write.dsn) 未配置")
	}

	db, err := openWithRetry(mysqlCfg.Write.DSN, &gorm.Config{Logger: core.NewGormLogger(logger, cfg.GormLogConfig)}, logger)
	if err != nil {
		return nil, err
	}

	if err := registerReplicas(db, mysqlCfg, logger); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("无法获取数据库对象: %w", err)
	}
	pool := resolvePool(mysqlCfg, mysqlCfg.Write)
	sqlDB.SetMaxIdleConns(pool.MaxIdle)
	sqlDB.SetMaxOpenConns(pool.MaxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(pool.Lifetime) * time.Second)
	logger.Info("主库连接池已配置",
		zap.Int("maxIdle", pool.MaxIdle),
		zap.Int("maxOpen", pool.MaxOpen),
		zap.Int("lifetimeSeconds", pool.Lifetime))

	// AutoMigrate 总是发往主库
	if err := db.AutoMigrate(entities.All()...); err != nil {
		logger.Error("数据库自动迁移失败", zap.Error(err))
		return nil, fmt.Errorf("数据库自动迁移失败: %w", err)
	}
	logger.Info("MySQL 初始化完成", zap.Int("tables", len(entities.All())))
	return db, nil
}

// openWithRetry 启动时数据库可能尚未就绪，打开并 Ping 成功才返回
func openWithRetry(dsn string, gormCfg *gorm.Config, logger *core.ZapLogger) (*gorm.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= mysqlConnectRetries; attempt++ {
		db, err := gorm.Open(mysql.Open(dsn), gormCfg)
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if err = sqlDB.Ping(); err == nil {
					logger.Info("成功连接到主数据库", zap.Int("attempt", attempt))
					return db, nil
				}
			} else {
				err = dbErr
			}
		}
		lastErr = err
		logger.Warn("连接主数据库失败", zap.Int("attempt", attempt), zap.Int("maxRetries", mysqlConnectRetries), zap.Error(err))
		if attempt < mysqlConnectRetries {
			time.Sleep(mysqlRetryInterval)
		}
	}
	return nil, fmt.Errorf("无法连接到主数据库: %w", lastErr)
}

// registerReplicas 没有有效从库 DSN 时不注册 dbresolver
func registerReplicas(db *gorm.DB, mysqlCfg appConfig.MySQLConfig, logger *core.ZapLogger) error {
	replicas := make([]gorm.Dialector, 0, len(mysqlCfg.Read))
	for i, replica := range mysqlCfg.Read {
		if replica.DSN == "" {
			logger.Warn("跳过空的从库 DSN", zap.Int("index", i))
			continue
		}
		replicas = append(replicas, mysql.Open(replica.DSN))
	}
	if len(replicas) == 0 {
		logger.Info("未配置从库，读写均走主库")
		return nil
	}

	// 从库共用第一个从库的连接池设置
	pool := resolvePool(mysqlCfg, mysqlCfg.Read[0])
	resolver := dbresolver.Register(dbresolver.Config{
		Sources:  []gorm.Dialector{mysql.Open(mysqlCfg.Write.DSN)},
		Replicas: replicas,
		Policy:   dbresolver.StrictRoundRobinPolicy(),
	}).
		SetMaxIdleConns(pool.MaxIdle).
		SetMaxOpenConns(pool.MaxOpen).
		SetConnMaxLifetime(time.Duration(pool.Lifetime) * time.Second)
	if err := db.Use(resolver); err != nil {
		return fmt.Errorf("配置 GORM 读写分离失败: %w", err)
	}
	logger.Info("已启用读写分离", zap.Int("replicas", len(replicas)))
	return nil
}
