// Package ids 生成社区实体使用的字符串 ID。
// ID 是十进制毫秒时间戳，同一毫秒内的多次调用会向后顺延，保证单进程内严格递增。
// 用户 ID 与邀请码 ID 的创建时间都从 ID 本身解析得到。
package ids

import (
	"strconv"
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	last int64
)

// Next 返回一个新的 ID
func Next() string {
	mu.Lock()
	defer mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= last {
		now = last + 1
	}
	last = now
	return strconv.FormatInt(now, 10)
}

// Time 把 ID 解析为时间；无法解析时返回零值时间和 false
func Time(id string) (time.Time, bool) {
	ms, err := strconv.ParseInt(id, 10, 64)
	if err != nil || ms < 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}
