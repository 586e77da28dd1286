package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	pkgapp "github.com/haierkeys/notes-app-service/pkg/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg, err := NewDefaultConfig()
	require.NoError(t, err)
	cfg.Storage.SavePath = t.TempDir()

	a, err := NewApp(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Shutdown(context.Background()) })
	return a
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, zap.NewNop())
	assert.Error(t, err)

	cfg, err := NewDefaultConfig()
	require.NoError(t, err)
	_, err = NewApp(cfg, nil)
	assert.Error(t, err)

	cfg.Storage.Type = "ftp"
	_, err = NewApp(cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestApp_BoardPerUser(t *testing.T) {
	a := newTestApp(t)

	assert.Same(t, a.Board(1), a.Board(1))
	assert.NotSame(t, a.Board(1), a.Board(2))
	assert.Equal(t, 2, a.Sessions.Len())
}

func TestApp_TokenManagerUsesConfig(t *testing.T) {
	a := newTestApp(t)

	token, err := a.TokenManager.Generate(5, "ann", "")
	require.NoError(t, err)

	user, err := pkgapp.ParseTokenWithKey(token, a.GetAuthTokenKey())
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.UID)
	assert.Equal(t, 7*24*time.Hour, a.TokenManager.Expiry())
}

func TestApp_CheckVersion(t *testing.T) {
	a := newTestApp(t)

	a.SetCheckVersionInfo(pkgapp.CheckVersionInfo{VersionIsNew: false, VersionNewName: "v0.0.1"})
	assert.Equal(t, "", a.CheckVersion().VersionNewName)

	a.SetCheckVersionInfo(pkgapp.CheckVersionInfo{VersionIsNew: true, VersionNewName: "v9.0.0"})
	cv := a.CheckVersion()
	assert.Equal(t, "9.0.0", cv.VersionNewName)
	assert.Equal(t, ReleaseURL+"9.0.0", cv.VersionNewLink)
}

func TestApp_ShutdownWaitsForTasks(t *testing.T) {
	a := newTestApp(t)

	var ran atomic.Int32
	require.NoError(t, a.SubmitTaskAsync(context.Background(), func(ctx context.Context) error {
		time.Sleep(20 * time.Millisecond)
		ran.Add(1)
		return nil
	}))

	finish := a.TrackOperation()
	go func() {
		time.Sleep(10 * time.Millisecond)
		finish()
	}()

	require.NoError(t, a.Shutdown(context.Background()))
	assert.Equal(t, int32(1), ran.Load())
	assert.True(t, a.IsShuttingDown())

	// 重复关闭直接返回
	assert.NoError(t, a.Shutdown(context.Background()))
	assert.Error(t, a.SubmitTask(context.Background(), func(ctx context.Context) error { return nil }))
}
