// Package lang 提供界面文案。文案以 YAML 形式嵌入二进制，启动时加载后只读。
package lang

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLocale 未配置或配置了不存在的语言时使用
const DefaultLocale = "zh_CN"

//go:embed bundles/*.yaml
var bundleFS embed.FS

// LangPropsService 按键读取当前语言的文案
type LangPropsService interface {
	// Get 返回文案；键不存在时返回键本身
	Get(key string) string
	// GetWith 返回文案，并把其中的 ${name} 占位符替换为 vars 中的值
	GetWith(key string, vars map[string]string) string
}

type langPropsService struct {
	labels map[string]string
}

// NewLangPropsService 加载指定语言的文案包
func NewLangPropsService(locale string) (LangPropsService, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	labels, err := loadBundle(locale)
	if err != nil {
		if locale == DefaultLocale {
			return nil, err
		}
		labels, err = loadBundle(DefaultLocale)
		if err != nil {
			return nil, err
		}
	}
	return &langPropsService{labels: labels}, nil
}

func loadBundle(locale string) (map[string]string, error) {
	raw, err := bundleFS.ReadFile(path.Join("bundles", locale+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("读取语言包 %s 失败: %w", locale, err)
	}
	labels := map[string]string{}
	if err := yaml.Unmarshal(raw, &labels); err != nil {
		return nil, fmt.Errorf("解析语言包 %s 失败: %w", locale, err)
	}
	return labels, nil
}

func (s *langPropsService) Get(key string) string {
	if v, ok := s.labels[key]; ok {
		return v
	}
	return key
}

func (s *langPropsService) GetWith(key string, vars map[string]string) string {
	label := s.Get(key)
	for name, value := range vars {
		label = strings.ReplaceAll(label, "${"+name+"}", value)
	}
	return label
}
