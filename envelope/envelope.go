// Package envelope 处理 JSON 接口的请求体解析与统一响应结构 {statusCode, msg, ...}。
package envelope

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	StatusCodeKey = "statusCode"
	MsgKey        = "msg"
)

// ErrEmptyBody 请求体为空
var ErrEmptyBody = errors.New("请求体为空")

// Result 是 JSON 接口的响应体，handler 按需写入字段后整体输出
type Result map[string]any

// FalseResult 返回初始值 {statusCode: false}
func FalseResult() Result {
	return Result{StatusCodeKey: false}
}

// SetStatus 设置 statusCode，可以是 bool 或 int
func (r Result) SetStatus(code any) Result {
	r[StatusCodeKey] = code
	return r
}

// SetMsg 设置 msg
func (r Result) SetMsg(msg string) Result {
	r[MsgKey] = msg
	return r
}

// Render 以 200 输出响应体
func Render(c *gin.Context, r Result) {
	c.JSON(http.StatusOK, r)
}

// ParseJSONObject 解析请求体：Content-Type 为 JSON 时按 JSON 解码，
// 否则把表单参数（含查询参数）折叠成一个对象，多值参数取第一个值。
func ParseJSONObject(c *gin.Context) (map[string]any, error) {
	if c.ContentType() == binding.MIMEJSON {
		if c.Request.Body == nil || c.Request.ContentLength == 0 {
			return nil, ErrEmptyBody
		}
		obj := map[string]any{}
		if err := c.ShouldBindJSON(&obj); err != nil {
			return nil, fmt.Errorf("解析 JSON 请求体失败: %w", err)
		}
		return obj, nil
	}

	if err := c.Request.ParseForm(); err != nil {
		return nil, fmt.Errorf("解析表单失败: %w", err)
	}
	obj := make(map[string]any, len(c.Request.Form))
	for k, vs := range c.Request.Form {
		if len(vs) > 0 {
			obj[k] = vs[0]
		}
	}
	return obj, nil
}

// AbortBadRequest 以 400 和空响应体终止请求
func AbortBadRequest(c *gin.Context) {
	c.AbortWithStatus(http.StatusBadRequest)
}

// OptString 读取字符串字段，非字符串的标量会被格式化，缺失时返回空串
func OptString(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// OptInt 读取整数字段。JSON 数字必须是整数；字符串会被去除首尾空白后解析。
func OptInt(obj map[string]any, key string) (int, bool) {
	switch v := obj[key].(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
