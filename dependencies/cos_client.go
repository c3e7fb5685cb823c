package dependencies

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tencentyun/cos-go-sdk-v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/config"
)

// ObjectStorage 是帖子导出文件的对象存储
type ObjectStorage interface {
	// PutObject 从 io.Reader 上传对象，并返回其公开可访问的 URL
	PutObject(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error)
	// DeleteObject 删除对象
	DeleteObject(ctx context.Context, objectKey string) error
}

type cosStorage struct {
	client        *cos.Client
	publicURLBase *url.URL
	logger        *zap.Logger
}

// InitCOS 初始化腾讯云 COS 客户端。出站请求经过 otelhttp Transport，导出上传会出现在调用链路中。
func InitCOS(cfg *config.COSConfig, logger *zap.Logger) (ObjectStorage, error) {
	if cfg == nil {
		return nil, fmt.Errorf("COS 配置不能为nil")
	}
	if cfg.SecretID == "" || cfg.SecretKey == "" || cfg.BucketName == "" || cfg.AppID == "" || cfg.Region == "" {
		return nil, fmt.Errorf("COS 配置不完整，缺少关键字段 (SecretID, SecretKey, BucketName, AppID, Region)")
	}

	bucketURLStr := fmt.Sprintf("https://%s-%s.cos.%s.myqcloud.com", cfg.BucketName, cfg.AppID, cfg.Region)
	bucketURL, err := url.Parse(bucketURLStr)
	if err != nil {
		return nil, fmt.Errorf("解析 COS 存储桶 URL '%s' 失败: %w", bucketURLStr, err)
	}

	publicURLBase := bucketURL
	if cfg.BaseURL != "" {
		pu, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("解析 COS 公共访问 BaseURL '%s' 失败: %w", cfg.BaseURL, err)
		}
		publicURLBase = pu
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: bucketURL}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	})

	logger.Info("COS 客户端初始化成功",
		zap.String("bucket", cfg.BucketName),
		zap.String("region", cfg.Region),
		zap.String("publicURLBase", publicURLBase.String()),
	)
	return &cosStorage{client: client, publicURLBase: publicURLBase, logger: logger}, nil
}

// publicURL 拼接对象的公共访问 URL
func (s *cosStorage) publicURL(objectKey string) string {
	basePath := s.publicURLBase.Path
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	u := *s.publicURLBase
	u.Path = basePath + strings.TrimPrefix(objectKey, "/")
	return u.String()
}

func (s *cosStorage) PutObject(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error) {
	opts := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType:   contentType,
			ContentLength: size,
		},
	}
	resp, err := s.client.Object.Put(ctx, objectKey, reader, opts)
	if err != nil {
		s.logger.Error("上传导出文件到 COS 失败", zap.String("objectKey", objectKey), zap.Error(err))
		return "", fmt.Errorf("上传 '%s' 到 COS 失败: %w", objectKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		s.logger.Error("COS 上传返回非200状态码",
			zap.String("objectKey", objectKey),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return "", fmt.Errorf("COS 上传失败，状态码: %d", resp.StatusCode)
	}

	u := s.publicURL(objectKey)
	s.logger.Info("导出文件上传成功", zap.String("objectKey", objectKey), zap.String("url", u))
	return u, nil
}

func (s *cosStorage) DeleteObject(ctx context.Context, objectKey string) error {
	resp, err := s.client.Object.Delete(ctx, objectKey)
	if err != nil {
		s.logger.Error("从 COS 删除对象失败", zap.String("objectKey", objectKey), zap.Error(err))
		return fmt.Errorf("从 COS 删除 '%s' 失败: %w", objectKey, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("COS 删除失败，状态码: %d", resp.StatusCode)
	}
	return nil
}
