package minio

import (
	"context"
	"time"

	"github.com/haierkeys/notes-app-service/pkg/storage/s3compat"

	"go.uber.org/zap"
)

type Config struct {
	BucketName      string
	Endpoint        string
	Region          string
	AccessKeyID     string
	AccessKeySecret string
	CustomPath      string
	URLExpiry       time.Duration
}

type MinIO struct {
	*s3compat.Bucket
	Config *Config
	logger *zap.Logger
}

// Option 配置选项函数类型
type Option func(*MinIO)

// WithLogger 设置日志器
func WithLogger(logger *zap.Logger) Option {
	return func(m *MinIO) {
		m.logger = logger
	}
}

// NewClient 创建 MinIO 存储实例，MinIO 只支持 path-style 访问
func NewClient(conf *Config, opts ...Option) (*MinIO, error) {
	m := &MinIO{Config: conf, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}

	region := conf.Region
	if region == "" {
		region = "us-east-1"
	}

	client, err := s3compat.NewS3Client(context.TODO(), "minio", s3compat.ClientOptions{
		Region:          region,
		AccessKeyID:     conf.AccessKeyID,
		AccessKeySecret: conf.AccessKeySecret,
		Endpoint:        conf.Endpoint,
		UsePathStyle:    true,
	})
	if err != nil {
		return nil, err
	}

	m.Bucket = s3compat.New("minio", client, conf.BucketName, conf.CustomPath, conf.URLExpiry, m.logger)
	return m, nil
}
