package tasks

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/service"
)

// 单次任务执行的超时
const taskTimeout = 3 * time.Minute

// cronTask 封装一个只有单个作业的 cron 调度器
type cronTask struct {
	name   string
	cron   *cron.Cron
	logger *zap.Logger
}

func startCronTask(name, schedule string, job func(ctx context.Context), logger *zap.Logger) (*cronTask, error) {
	t := &cronTask{name: name, cron: cron.New(), logger: logger}
	logger.Info("准备启动定时任务", zap.String("task", name), zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		startTime := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
		defer cancel()

		job(ctx)
		logger.Info("定时任务执行完毕", zap.String("task", name), zap.Duration("duration", time.Since(startTime)))
	})
	if err != nil {
		return nil, err
	}

	t.cron.Start()
	logger.Info("定时任务已启动", zap.String("task", name), zap.Uint("cronEntryID", uint(entryID)))
	return t, nil
}

// Stop 停止调度，返回的 context 在正在执行的作业结束后关闭
func (t *cronTask) Stop() context.Context {
	t.logger.Info("正在停止定时任务...", zap.String("task", t.name))
	return t.cron.Stop()
}

// ResetUnverifiedTask 定时清理未验证账号，与 /cron/users/reset-unverified 执行同样的逻辑
type ResetUnverifiedTask struct {
	*cronTask
}

// NewResetUnverifiedTask schedule 为空时使用 @daily
func NewResetUnverifiedTask(schedule string, userMgmt service.UserMgmtService, logger *zap.Logger) (*ResetUnverifiedTask, error) {
	if schedule == "" {
		schedule = constant.DefaultResetUnverifiedSpec
	}
	t, err := startCronTask("reset-unverified", schedule, func(ctx context.Context) {
		if _, err := userMgmt.ResetUnverifiedUsers(ctx); err != nil {
			logger.Error("定时清理未验证账号失败", zap.Error(err))
		}
	}, logger)
	if err != nil {
		return nil, err
	}
	return &ResetUnverifiedTask{cronTask: t}, nil
}

// LoadNamesTask 定时重建用户名补全索引
type LoadNamesTask struct {
	*cronTask
}

// NewLoadNamesTask schedule 为空时每小时执行一次
func NewLoadNamesTask(schedule string, userSvc service.UserQueryService, logger *zap.Logger) (*LoadNamesTask, error) {
	if schedule == "" {
		schedule = constant.DefaultLoadNamesSpec
	}
	t, err := startCronTask("load-names", schedule, func(ctx context.Context) {
		if err := userSvc.LoadUserNames(ctx); err != nil {
			logger.Error("定时重建用户名索引失败", zap.Error(err))
		}
	}, logger)
	if err != nil {
		return nil, err
	}
	return &LoadNamesTask{cronTask: t}, nil
}
