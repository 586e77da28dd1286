package aws_s3

import (
	"context"
	"time"

	"github.com/haierkeys/notes-app-service/pkg/storage/s3compat"

	"go.uber.org/zap"
)

type Config struct {
	Region          string
	BucketName      string
	AccessKeyID     string
	AccessKeySecret string
	CustomPath      string
	URLExpiry       time.Duration
}

type S3 struct {
	*s3compat.Bucket
	Config *Config
	logger *zap.Logger
}

// Option 配置选项函数类型
type Option func(*S3)

// WithLogger 设置日志器
func WithLogger(logger *zap.Logger) Option {
	return func(s *S3) {
		s.logger = logger
	}
}

// NewClient 创建 S3 存储实例
func NewClient(conf *Config, opts ...Option) (*S3, error) {
	s := &S3{Config: conf, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	client, err := s3compat.NewS3Client(context.TODO(), "aws_s3", s3compat.ClientOptions{
		Region:          conf.Region,
		AccessKeyID:     conf.AccessKeyID,
		AccessKeySecret: conf.AccessKeySecret,
	})
	if err != nil {
		return nil, err
	}

	s.Bucket = s3compat.New("aws_s3", client, conf.BucketName, conf.CustomPath, conf.URLExpiry, s.logger)
	return s, nil
}
