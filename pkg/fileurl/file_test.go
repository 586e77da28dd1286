package fileurl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name       string
		customPath string
		key        string
		want       string
	}{
		{"no prefix", "", "My Note", "My Note"},
		{"prefix without slash", "notes", "My Note", "notes/My Note"},
		{"prefix with slashes", "/notes/", "My Note", "notes/My Note"},
		{"key with leading slash", "notes", "/a.png", "notes/a.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectKey(tt.customPath, tt.key))
		})
	}
}

func TestEscapeKey(t *testing.T) {
	assert.Equal(t, "notes/a%23b", EscapeKey("notes/a#b"))
	assert.Equal(t, "x%3Fy%20z", EscapeKey("x?y z"))
	assert.Equal(t, "plain/N1", EscapeKey("plain/N1"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/png", ContentType("pic.PNG"))
	assert.Equal(t, "application/octet-stream", ContentType("no-extension"))
}

func TestCreatePathAndIsExist(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "a", "b", "file.txt")

	assert.False(t, IsExist(dst))
	assert.NoError(t, CreatePath(dst, os.ModePerm))
	assert.True(t, IsExist(filepath.Dir(dst)))
}
