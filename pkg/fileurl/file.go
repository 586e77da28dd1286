package fileurl

import (
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// IsExist determines if the given path exists
// IsExist 判断所给路径是否存在
func IsExist(dst string) bool {
	_, err := os.Stat(dst)
	if err != nil {
		return os.IsExist(err)
	}
	return true
}

// CreatePath creates the parent directory of dst
// CreatePath 创建 dst 的父目录
func CreatePath(dst string, perm os.FileMode) error {
	return os.MkdirAll(filepath.Dir(dst), perm)
}

// PathSuffixCheckAdd checks path suffix, adds it if not exists
// PathSuffixCheckAdd 检查路径后缀，如果没有则添加
func PathSuffixCheckAdd(path string, suffix string) string {
	if !strings.HasSuffix(path, suffix) {
		path = path + suffix
	}
	return path
}

// ObjectKey joins the configured custom path prefix and a key.
// An empty prefix leaves the key untouched.
// ObjectKey 拼接自定义路径前缀与对象键
func ObjectKey(customPath, key string) string {
	customPath = strings.Trim(customPath, "/")
	key = strings.TrimLeft(key, "/")
	if customPath == "" {
		return key
	}
	return PathSuffixCheckAdd(customPath, "/") + key
}

// ContentType guesses a MIME type from the file name, defaulting to octet-stream
// ContentType 根据文件名推断 MIME 类型
func ContentType(name string) string {
	if t := mime.TypeByExtension(strings.ToLower(path.Ext(name))); t != "" {
		return t
	}
	return "application/octet-stream"
}

// EscapeKey 逐段转义对象键，用于拼接访问地址
// "notes/a#b" -> "notes/a%23b"
func EscapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
