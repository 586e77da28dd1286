package local_fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS_PutGetRemove(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	client, err := NewClient(&Config{SavePath: dir, CustomPath: "images"})
	require.NoError(t, err)

	key, err := client.SendFile(ctx, "Trip to Lisbon", strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "images/Trip to Lisbon", key)

	data, err := os.ReadFile(filepath.Join(dir, "images", "Trip to Lisbon"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	url, err := client.GetURL(ctx, "Trip to Lisbon")
	require.NoError(t, err)
	assert.Equal(t, "/storage/images/Trip%20to%20Lisbon", url)

	require.NoError(t, client.Delete(ctx, "Trip to Lisbon"))
	_, err = os.Stat(filepath.Join(dir, "images", "Trip to Lisbon"))
	assert.True(t, os.IsNotExist(err))

	// 再次删除不存在的对象不报错
	assert.NoError(t, client.Delete(ctx, "Trip to Lisbon"))
}

func TestLocalFS_KeyCannotEscape(t *testing.T) {
	dir := t.TempDir()
	client, err := NewClient(&Config{SavePath: dir})
	require.NoError(t, err)

	p := client.FilePath("../../etc/passwd")
	assert.True(t, strings.HasPrefix(p, dir), p)
}

func TestLocalFS_PublicURL(t *testing.T) {
	client, err := NewClient(&Config{SavePath: t.TempDir(), PublicURL: "https://cdn.example.com/"})
	require.NoError(t, err)

	url, err := client.GetURL(context.Background(), "n1")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/n1", url)
}

func TestNewClient_EmptySavePath(t *testing.T) {
	_, err := NewClient(&Config{})
	assert.Error(t, err)
}
