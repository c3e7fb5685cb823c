package render

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/vo"
)

func TestSkinRenderer_TemplatePath(t *testing.T) {
	r := NewSkinRenderer("skins/classic", zap.NewNop())
	assert.Equal(t, filepath.Join("skins", "classic", "home", "home.tmpl"), r.TemplatePath("/home/home.ftl"))
	assert.Equal(t, filepath.Join("skins", "classic", "error", "404.tmpl"), r.TemplatePath(NotFoundTemplate))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSkinRenderer_Render(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "common", "header.tmpl"), `{{define "header"}}<h1>{{.siteName}}</h1>{{end}}`)
	writeFile(t, filepath.Join(dir, "home", "home.tmpl"), `{{template "header" .}}<p>{{.user}}</p>`)
	r := NewSkinRenderer(dir, zap.NewNop())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	require.NoError(t, r.Render(c, http.StatusOK, "/home/home.ftl", map[string]any{"siteName": "Symphony", "user": "<b>alice</b>"}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>Symphony</h1><p>&lt;b&gt;alice&lt;/b&gt;</p>", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	assert.Error(t, r.Render(c, http.StatusOK, "/home/missing.ftl", map[string]any{}))
	assert.Empty(t, w.Body.String())
}

func TestSkinRenderer_EscapedUserFieldsRenderOnce(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "home", "home.tmpl"),
		`<h2>{{safe .user.UserNickname}}</h2><a href="/member/{{plain .user.UserName}}">{{safe .user.UserName}}</a>`)
	r := NewSkinRenderer(dir, zap.NewNop())

	user := vo.NewHomeUser(&entities.User{ID: "1700000000000", Name: "a&b", Nickname: "Tom & Jerry <3"})
	require.Equal(t, "Tom &amp; Jerry &lt;3", user.UserNickname)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	require.NoError(t, r.Render(c, http.StatusOK, "/home/home.ftl", map[string]any{"user": user}))
	assert.Equal(t, `<h2>Tom &amp; Jerry &lt;3</h2><a href="/member/a&amp;b">a&amp;b</a>`, w.Body.String())
}

func TestRecorder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := NewRecorder()
	assert.Nil(t, rec.Last())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	page := NotFoundPage()
	require.NoError(t, rec.Render(c, page.Status, page.Template, page.DataModel))

	assert.Equal(t, 1, rec.Count())
	assert.Equal(t, NotFoundTemplate, rec.Last().Template)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}
