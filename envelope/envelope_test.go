package envelope

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, contentType, body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	c.Request = req
	return c
}

func TestFalseResult(t *testing.T) {
	r := FalseResult()
	assert.Equal(t, false, r[StatusCodeKey])
	_, hasMsg := r[MsgKey]
	assert.False(t, hasMsg)

	r.SetStatus(-1).SetMsg("不存在")
	assert.Equal(t, -1, r[StatusCodeKey])
	assert.Equal(t, "不存在", r[MsgKey])
}

func TestParseJSONObject(t *testing.T) {
	t.Run("JSON 请求体", func(t *testing.T) {
		c := newContext(http.MethodPost, "/point/transfer", "application/json; charset=utf-8", `{"userName":"bob","amount":100}`)
		obj, err := ParseJSONObject(c)
		require.NoError(t, err)
		assert.Equal(t, "bob", OptString(obj, "userName"))
		amount, ok := OptInt(obj, "amount")
		assert.True(t, ok)
		assert.Equal(t, 100, amount)
	})

	t.Run("非法 JSON", func(t *testing.T) {
		c := newContext(http.MethodPost, "/point/transfer", "application/json", `{"userName":`)
		_, err := ParseJSONObject(c)
		assert.Error(t, err)
	})

	t.Run("空 JSON 请求体", func(t *testing.T) {
		c := newContext(http.MethodPost, "/point/transfer", "application/json", "")
		_, err := ParseJSONObject(c)
		assert.ErrorIs(t, err, ErrEmptyBody)
	})

	t.Run("表单折叠", func(t *testing.T) {
		c := newContext(http.MethodPost, "/invitecode/state?x=1", "application/x-www-form-urlencoded", "invitecode=ABCD&invitecode=EFGH")
		obj, err := ParseJSONObject(c)
		require.NoError(t, err)
		assert.Equal(t, "ABCD", obj["invitecode"])
		assert.Equal(t, "1", obj["x"])
	})
}

func TestOptInt(t *testing.T) {
	obj := map[string]any{"a": 1.5, "b": " 42 ", "c": "x", "d": true, "e": float64(7)}
	_, ok := OptInt(obj, "a")
	assert.False(t, ok)
	n, ok := OptInt(obj, "b")
	assert.True(t, ok)
	assert.Equal(t, 42, n)
	_, ok = OptInt(obj, "c")
	assert.False(t, ok)
	_, ok = OptInt(obj, "d")
	assert.False(t, ok)
	_, ok = OptInt(obj, "missing")
	assert.False(t, ok)
	n, _ = OptInt(obj, "e")
	assert.Equal(t, 7, n)
}
