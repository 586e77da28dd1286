package s3compat

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// ClientOptions 构建 s3.Client 所需的参数
type ClientOptions struct {
	Region          string
	AccessKeyID     string
	AccessKeySecret string
	// Endpoint 为空时使用 AWS 默认地址
	Endpoint     string
	UsePathStyle bool
}

// NewS3Client 使用静态凭证创建 s3.Client
func NewS3Client(ctx context.Context, label string, o ClientOptions) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(o.AccessKeyID, o.AccessKeySecret, "")),
		config.WithRegion(o.Region),
	)
	if err != nil {
		return nil, errors.Wrap(err, label)
	}

	client := s3.NewFromConfig(cfg, func(opts *s3.Options) {
		opts.UsePathStyle = o.UsePathStyle
		if o.Endpoint != "" {
			opts.BaseEndpoint = aws.String(o.Endpoint)
		}
	})
	return client, nil
}
