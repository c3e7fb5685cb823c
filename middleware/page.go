package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/constant"
)

// Stopwatch 前半段记录起始时间（StopwatchStart），后半段输出耗时（StopwatchEnd）
func (f *Filters) Stopwatch() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Set(constant.StopwatchKey, start)
		c.Next()
		f.logger.Debug("请求耗时",
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)))
	}
}

// RenderPage 在所有后置过滤器执行完后渲染待渲染页面。响应已写出时不做任何事。
func (f *Filters) RenderPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		page := PageFrom(c)
		if page == nil || c.Writer.Written() {
			return
		}
		if err := f.renderer.Render(c, page.Status, page.Template, page.DataModel); err != nil {
			f.logger.Error("渲染页面失败", zap.String("template", page.Template), zap.Error(err))
			_ = c.Error(err)
			c.AbortWithStatus(http.StatusInternalServerError)
		}
	}
}
