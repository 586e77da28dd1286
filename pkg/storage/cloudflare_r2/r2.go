package cloudflare_r2

import (
	"context"
	"fmt"
	"time"

	"github.com/haierkeys/notes-app-service/pkg/storage/s3compat"

	"go.uber.org/zap"
)

type Config struct {
	AccountID       string
	BucketName      string
	AccessKeyID     string
	AccessKeySecret string
	CustomPath      string
	URLExpiry       time.Duration
}

type R2 struct {
	*s3compat.Bucket
	Config *Config
	logger *zap.Logger
}

// Option configuration option function type
// Option 配置选项函数类型
type Option func(*R2)

// WithLogger sets the logger
// WithLogger 设置日志器
func WithLogger(logger *zap.Logger) Option {
	return func(r *R2) {
		r.logger = logger
	}
}

// Endpoint 返回账户对应的 R2 S3 API 地址
func Endpoint(accountID string) string {
	return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)
}

// NewClient creates an R2 storage instance
// NewClient 创建 R2 存储实例
func NewClient(conf *Config, opts ...Option) (*R2, error) {
	r := &R2{Config: conf, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	client, err := s3compat.NewS3Client(context.TODO(), "cloudflare_r2", s3compat.ClientOptions{
		Region:          "auto",
		AccessKeyID:     conf.AccessKeyID,
		AccessKeySecret: conf.AccessKeySecret,
		Endpoint:        Endpoint(conf.AccountID),
	})
	if err != nil {
		return nil, err
	}

	r.Bucket = s3compat.New("cloudflare_r2", client, conf.BucketName, conf.CustomPath, conf.URLExpiry, r.logger)
	return r, nil
}
