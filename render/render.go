// Package render 把模板名与数据模型渲染为 HTML 页面。
// 模板名沿用社区皮肤的命名（如 /home/home.ftl），由 SkinRenderer 映射到皮肤目录下的 html/template 文件。
package render

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotFoundTemplate 404 页面模板
const NotFoundTemplate = "/error/404.ftl"

// Renderer 页面渲染器
type Renderer interface {
	Render(c *gin.Context, status int, templateName string, dataModel map[string]any) error
}

// Page 是 handler 产出、由 RenderPage 中间件最终渲染的待渲染页面
type Page struct {
	Template  string
	Status    int
	DataModel map[string]any
}

// NewPage 创建状态码为 200 的待渲染页面
func NewPage(templateName string, dataModel map[string]any) *Page {
	if dataModel == nil {
		dataModel = map[string]any{}
	}
	return &Page{Template: templateName, Status: http.StatusOK, DataModel: dataModel}
}

// NotFoundPage 创建 404 页面
func NotFoundPage() *Page {
	return &Page{Template: NotFoundTemplate, Status: http.StatusNotFound, DataModel: map[string]any{}}
}

// funcs 中 safe 与 plain 只用于 .user 下已转义的字段：
// 文本位置用 safe 原样输出，属性位置用 plain 还原后交给 html/template 转义一次。
var funcs = template.FuncMap{
	"safe":  func(s string) template.HTML { return template.HTML(s) },
	"plain": html.UnescapeString,
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02 15:04")
	},
}

// SkinRenderer 从皮肤目录加载模板。每个页面模板与 common/ 下的公共片段一起解析，解析结果按模板名缓存。
type SkinRenderer struct {
	skinDir string
	logger  *zap.Logger

	mu        sync.RWMutex
	templates map[string]*template.Template
}

func NewSkinRenderer(skinDir string, logger *zap.Logger) *SkinRenderer {
	return &SkinRenderer{
		skinDir:   skinDir,
		logger:    logger,
		templates: map[string]*template.Template{},
	}
}

// TemplatePath 把 /home/home.ftl 映射为 {skinDir}/home/home.tmpl
func (r *SkinRenderer) TemplatePath(templateName string) string {
	name := strings.TrimPrefix(templateName, "/")
	name = strings.TrimSuffix(name, filepath.Ext(name)) + ".tmpl"
	return filepath.Join(r.skinDir, filepath.FromSlash(name))
}

func (r *SkinRenderer) lookup(templateName string) (*template.Template, error) {
	r.mu.RLock()
	t, ok := r.templates[templateName]
	r.mu.RUnlock()
	if ok {
		return t, nil
	}

	page := r.TemplatePath(templateName)
	t, err := template.New(filepath.Base(page)).Funcs(funcs).ParseFiles(page)
	if err != nil {
		return nil, fmt.Errorf("加载模板 %s 失败: %w", templateName, err)
	}
	commons, err := filepath.Glob(filepath.Join(r.skinDir, "common", "*.tmpl"))
	if err != nil {
		return nil, err
	}
	if len(commons) > 0 {
		if t, err = t.ParseFiles(commons...); err != nil {
			return nil, fmt.Errorf("加载公共模板失败: %w", err)
		}
	}

	r.mu.Lock()
	r.templates[templateName] = t
	r.mu.Unlock()
	return t, nil
}

func (r *SkinRenderer) Render(c *gin.Context, status int, templateName string, dataModel map[string]any) error {
	t, err := r.lookup(templateName)
	if err != nil {
		return err
	}
	// 先渲染到缓冲区，模板执行出错时不会向客户端写出半个页面
	var buf bytes.Buffer
	if err := t.Execute(&buf, dataModel); err != nil {
		return fmt.Errorf("渲染模板 %s 失败: %w", templateName, err)
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
	return nil
}

// Recorder 记录每次渲染的模板名与数据模型，并以 JSON 输出数据模型
type Recorder struct {
	mu    sync.Mutex
	pages []Page
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Render(c *gin.Context, status int, templateName string, dataModel map[string]any) error {
	r.mu.Lock()
	r.pages = append(r.pages, Page{Template: templateName, Status: status, DataModel: dataModel})
	r.mu.Unlock()
	c.JSON(status, dataModel)
	return nil
}

// Last 返回最近一次渲染的页面，没有渲染过时返回 nil
func (r *Recorder) Last() *Page {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.pages) == 0 {
		return nil
	}
	p := r.pages[len(r.pages)-1]
	return &p
}

// Count 渲染次数
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pages)
}
