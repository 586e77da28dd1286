// Package storage is the object storage gateway: put, get (as a URL) and
// remove of image blobs keyed by note name.
package storage

import (
	"context"
	"io"
	"time"

	"github.com/haierkeys/notes-app-service/pkg/code"
	"github.com/haierkeys/notes-app-service/pkg/storage/aliyun_oss"
	"github.com/haierkeys/notes-app-service/pkg/storage/aws_s3"
	"github.com/haierkeys/notes-app-service/pkg/storage/cloudflare_r2"
	"github.com/haierkeys/notes-app-service/pkg/storage/local_fs"
	"github.com/haierkeys/notes-app-service/pkg/storage/minio"
	"github.com/haierkeys/notes-app-service/pkg/storage/webdav"
	"github.com/haierkeys/notes-app-service/pkg/util"

	"go.uber.org/zap"
)

type Type = string
type CloudType = Type

const OSS CloudType = "oss"
const R2 CloudType = "r2"
const S3 CloudType = "s3"
const LOCAL Type = "localfs"
const MinIO CloudType = "minio"
const WebDAV CloudType = "webdav"

var StorageTypeMap = map[Type]bool{
	OSS:    true,
	R2:     true,
	S3:     true,
	LOCAL:  true,
	MinIO:  true,
	WebDAV: true,
}

// DefaultURLExpiry 预签名链接的默认有效期
const DefaultURLExpiry = 15 * time.Minute

// Config Unified storage configuration
// Config 统一存储配置
type Config struct {
	Type Type `yaml:"type" default:"localfs"`

	// Common settings
	CustomPath string `yaml:"custom-path"`
	// URLExpiry 预签名 GET 链接有效期，支持 15m、1h、1d
	URLExpiry string `yaml:"url-expiry" default:"15m"`
	// PublicURL WebDAV / 本地存储对外访问的基础地址
	PublicURL string `yaml:"public-url"`

	// Cloud Storage (S3/OSS/MinIO/R2)
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	BucketName      string `yaml:"bucket-name"`
	AccessKeyID     string `yaml:"access-key-id"`
	AccessKeySecret string `yaml:"access-key-secret"`
	AccountID       string `yaml:"account-id"` // Cloudflare R2 specific

	// WebDAV
	User     string `yaml:"user"`
	Password string `yaml:"password"`

	// Local FS
	SavePath       string `yaml:"save-path" default:"storage/uploads"`
	HttpfsIsEnable bool   `yaml:"httpfs-is-enable" default:"true"`
}

// Storager 对象存储接口
type Storager interface {
	// SendFile 上传对象，返回实际写入的对象键
	SendFile(ctx context.Context, key string, file io.Reader, cType string) (string, error)
	// GetURL 返回可直接访问对象的 URL
	GetURL(ctx context.Context, key string) (string, error)
	// Delete 删除对象，对象不存在时不报错
	Delete(ctx context.Context, key string) error
}

// NewClient 按 Type 创建存储客户端
func NewClient(config *Config, logger *zap.Logger) (Storager, error) {
	if config == nil {
		return nil, code.ErrorInvalidStorageType
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	expiry := util.ParseDurationOr(config.URLExpiry, DefaultURLExpiry)

	switch config.Type {
	case LOCAL:
		return local_fs.NewClient(&local_fs.Config{
			SavePath:   config.SavePath,
			CustomPath: config.CustomPath,
			PublicURL:  config.PublicURL,
		})
	case OSS:
		return aliyun_oss.NewClient(&aliyun_oss.Config{
			Endpoint:        config.Endpoint,
			BucketName:      config.BucketName,
			AccessKeyID:     config.AccessKeyID,
			AccessKeySecret: config.AccessKeySecret,
			CustomPath:      config.CustomPath,
			URLExpiry:       expiry,
		}, aliyun_oss.WithLogger(logger))
	case R2:
		return cloudflare_r2.NewClient(&cloudflare_r2.Config{
			AccountID:       config.AccountID,
			BucketName:      config.BucketName,
			AccessKeyID:     config.AccessKeyID,
			AccessKeySecret: config.AccessKeySecret,
			CustomPath:      config.CustomPath,
			URLExpiry:       expiry,
		}, cloudflare_r2.WithLogger(logger))
	case S3:
		return aws_s3.NewClient(&aws_s3.Config{
			Region:          config.Region,
			BucketName:      config.BucketName,
			AccessKeyID:     config.AccessKeyID,
			AccessKeySecret: config.AccessKeySecret,
			CustomPath:      config.CustomPath,
			URLExpiry:       expiry,
		}, aws_s3.WithLogger(logger))
	case MinIO:
		return minio.NewClient(&minio.Config{
			Endpoint:        config.Endpoint,
			Region:          config.Region,
			BucketName:      config.BucketName,
			AccessKeyID:     config.AccessKeyID,
			AccessKeySecret: config.AccessKeySecret,
			CustomPath:      config.CustomPath,
			URLExpiry:       expiry,
		}, minio.WithLogger(logger))
	case WebDAV:
		return webdav.NewClient(&webdav.Config{
			Endpoint:   config.Endpoint,
			User:       config.User,
			Password:   config.Password,
			CustomPath: config.CustomPath,
			PublicURL:  config.PublicURL,
		})
	}
	return nil, code.ErrorInvalidStorageType
}
