// Package s3compat implements put, presigned get and delete against any
// S3-compatible API. aws_s3, minio and cloudflare_r2 only differ in how the
// client is built.
package s3compat

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/haierkeys/notes-app-service/pkg/fileurl"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Bucket 绑定到单个存储桶的 S3 客户端
type Bucket struct {
	Name       string
	CustomPath string
	Expiry     time.Duration
	Client     *s3.Client
	Presign    *s3.PresignClient
	Logger     *zap.Logger
	// Label prefixes wrapped errors, e.g. "aws_s3"
	Label string
}

// New 创建 Bucket
func New(label string, client *s3.Client, name, customPath string, expiry time.Duration, logger *zap.Logger) *Bucket {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bucket{
		Name:       name,
		CustomPath: customPath,
		Expiry:     expiry,
		Client:     client,
		Presign:    s3.NewPresignClient(client),
		Logger:     logger,
		Label:      label,
	}
}

// Key 返回带自定义前缀的对象键
func (b *Bucket) Key(key string) string {
	return fileurl.ObjectKey(b.CustomPath, key)
}

// SendFile 上传文件
// The body is buffered so the SDK can compute a payload hash and length
// for plain-HTTP endpoints such as a local MinIO.
func (b *Bucket) SendFile(ctx context.Context, key string, file io.Reader, cType string) (string, error) {
	objectKey := b.Key(key)

	content, err := io.ReadAll(file)
	if err != nil {
		return "", errors.Wrap(err, b.Label)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(b.Name),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(content),
		ContentLength: aws.Int64(int64(len(content))),
	}
	if cType != "" {
		input.ContentType = aws.String(cType)
	}

	if _, err := b.Client.PutObject(ctx, input); err != nil {
		return "", errors.Wrap(err, b.Label)
	}

	b.Logger.Debug("object stored", zap.String("bucket", b.Name), zap.String("key", objectKey), zap.Int("size", len(content)))
	return objectKey, nil
}

// GetURL 生成预签名的 GET 链接
func (b *Bucket) GetURL(ctx context.Context, key string) (string, error) {
	req, err := b.Presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.Name),
		Key:    aws.String(b.Key(key)),
	}, s3.WithPresignExpires(b.Expiry))
	if err != nil {
		return "", errors.Wrap(err, b.Label)
	}
	return req.URL, nil
}

// Delete 删除对象，S3 对不存在的对象同样返回成功
func (b *Bucket) Delete(ctx context.Context, key string) error {
	_, err := b.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.Name),
		Key:    aws.String(b.Key(key)),
	})
	return errors.Wrap(err, b.Label)
}
