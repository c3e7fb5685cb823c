package constant

// 定时任务的默认调度表达式 (robfig/cron)
const (
	DefaultResetUnverifiedSpec = "@daily"
	DefaultLoadNamesSpec       = "@every 1h"
	DefaultUnverifiedTTLHours  = 168
)
