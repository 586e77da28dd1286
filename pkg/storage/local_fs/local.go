package local_fs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/haierkeys/notes-app-service/pkg/fileurl"

	"github.com/pkg/errors"
)

// URLPrefix 本地存储对象的 HTTP 访问前缀
const URLPrefix = "/storage"

type Config struct {
	SavePath   string
	CustomPath string
	// PublicURL 不为空时替换 URLPrefix 作为访问前缀
	PublicURL string
}

type LocalFS struct {
	Config *Config
}

func NewClient(conf *Config) (*LocalFS, error) {
	if conf.SavePath == "" {
		return nil, errors.New("local_fs: save-path is empty")
	}
	return &LocalFS{Config: conf}, nil
}

func (p *LocalFS) key(fileKey string) string {
	return fileurl.ObjectKey(p.Config.CustomPath, fileKey)
}

// FilePath returns where the object is stored on disk.
// Keys are cleaned so they cannot escape SavePath.
func (p *LocalFS) FilePath(fileKey string) string {
	clean := filepath.Clean("/" + filepath.FromSlash(p.key(fileKey)))
	return filepath.Join(p.Config.SavePath, clean)
}

// SendFile 将文件写入 SavePath
func (p *LocalFS) SendFile(ctx context.Context, fileKey string, file io.Reader, cType string) (string, error) {
	dst := p.FilePath(fileKey)

	if err := fileurl.CreatePath(dst, os.ModePerm); err != nil {
		return "", errors.Wrap(err, "local_fs")
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", errors.Wrap(err, "local_fs")
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", errors.Wrap(err, "local_fs")
	}
	return p.key(fileKey), nil
}

// GetURL 返回由 HTTP 服务器提供的访问地址
func (p *LocalFS) GetURL(ctx context.Context, fileKey string) (string, error) {
	prefix := URLPrefix
	if p.Config.PublicURL != "" {
		prefix = strings.TrimRight(p.Config.PublicURL, "/")
	}

	return prefix + "/" + fileurl.EscapeKey(p.key(fileKey)), nil
}

func (p *LocalFS) Delete(ctx context.Context, fileKey string) error {
	err := os.Remove(p.FilePath(fileKey))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "local_fs")
	}
	return nil
}
