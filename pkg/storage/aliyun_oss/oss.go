package aliyun_oss

import (
	"context"
	"io"
	"time"

	"github.com/haierkeys/notes-app-service/pkg/fileurl"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Config struct {
	Endpoint        string
	BucketName      string
	AccessKeyID     string
	AccessKeySecret string
	CustomPath      string
	URLExpiry       time.Duration
}

type OSS struct {
	Client *oss.Client
	Bucket *oss.Bucket
	Config *Config
	logger *zap.Logger
}

// Option 配置选项函数类型
type Option func(*OSS)

// WithLogger 设置日志器
func WithLogger(logger *zap.Logger) Option {
	return func(o *OSS) {
		o.logger = logger
	}
}

// NewClient 创建阿里云 OSS 存储实例
func NewClient(conf *Config, opts ...Option) (*OSS, error) {
	client, err := oss.New(conf.Endpoint, conf.AccessKeyID, conf.AccessKeySecret)
	if err != nil {
		return nil, errors.Wrap(err, "aliyun_oss")
	}

	bucket, err := client.Bucket(conf.BucketName)
	if err != nil {
		return nil, errors.Wrap(err, "aliyun_oss")
	}

	o := &OSS{
		Client: client,
		Bucket: bucket,
		Config: conf,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

func (p *OSS) key(fileKey string) string {
	return fileurl.ObjectKey(p.Config.CustomPath, fileKey)
}

// SendFile 上传文件
func (p *OSS) SendFile(ctx context.Context, fileKey string, file io.Reader, cType string) (string, error) {
	objectKey := p.key(fileKey)

	options := []oss.Option{oss.WithContext(ctx)}
	if cType != "" {
		options = append(options, oss.ContentType(cType))
	}

	if err := p.Bucket.PutObject(objectKey, file, options...); err != nil {
		return "", errors.Wrap(err, "aliyun_oss")
	}
	return objectKey, nil
}

// GetURL 生成签名的 GET 链接
func (p *OSS) GetURL(ctx context.Context, fileKey string) (string, error) {
	expiry := p.Config.URLExpiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	url, err := p.Bucket.SignURL(p.key(fileKey), oss.HTTPGet, int64(expiry/time.Second))
	if err != nil {
		return "", errors.Wrap(err, "aliyun_oss")
	}
	return url, nil
}

func (p *OSS) Delete(ctx context.Context, fileKey string) error {
	err := p.Bucket.DeleteObject(p.key(fileKey), oss.WithContext(ctx))
	return errors.Wrap(err, "aliyun_oss")
}
