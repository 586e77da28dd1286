package webdav

import (
	"context"
	"io"
	"os"
	"path"
	"strings"

	"github.com/haierkeys/notes-app-service/pkg/fileurl"

	"github.com/pkg/errors"
	"github.com/studio-b12/gowebdav"
)

// Config 结构体用于存储 WebDAV 连接信息。
type Config struct {
	Endpoint   string
	User       string
	Password   string
	CustomPath string
	// PublicURL 浏览器访问对象时使用的基础地址，为空时使用 Endpoint
	PublicURL string
}

// WebDAV 结构体表示 WebDAV 客户端。
type WebDAV struct {
	Client *gowebdav.Client
	Config *Config
}

// NewClient 创建一个新的 WebDAV 客户端实例。
func NewClient(conf *Config) (*WebDAV, error) {
	c := gowebdav.NewClient(conf.Endpoint, conf.User, conf.Password)
	return &WebDAV{
		Client: c,
		Config: conf,
	}, nil
}

func (w *WebDAV) key(fileKey string) string {
	return fileurl.ObjectKey(w.Config.CustomPath, fileKey)
}

// SendFile 将文件写入 WebDAV 服务器，必要时创建父目录
func (w *WebDAV) SendFile(ctx context.Context, fileKey string, file io.Reader, cType string) (string, error) {
	objectKey := w.key(fileKey)

	if dir := path.Dir(objectKey); dir != "." && dir != "/" {
		if err := w.Client.MkdirAll(dir, 0755); err != nil {
			return "", errors.Wrap(err, "webdav")
		}
	}

	if err := w.Client.WriteStream(objectKey, file, os.ModePerm); err != nil {
		return "", errors.Wrap(err, "webdav")
	}
	return objectKey, nil
}

// GetURL 拼接公开访问地址，WebDAV 没有签名链接
func (w *WebDAV) GetURL(ctx context.Context, fileKey string) (string, error) {
	base := w.Config.PublicURL
	if base == "" {
		base = w.Config.Endpoint
	}
	return strings.TrimRight(base, "/") + "/" + gowebdav.PathEscape(w.key(fileKey)), nil
}

// Delete 删除文件，文件不存在时视为成功
func (w *WebDAV) Delete(ctx context.Context, fileKey string) error {
	err := w.Client.Remove(w.key(fileKey))
	if err != nil && !gowebdav.IsErrNotFound(err) {
		return errors.Wrap(err, "webdav")
	}
	return nil
}
