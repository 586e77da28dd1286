package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfig_DefaultsFillGaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "config.yaml")
	writeFile(t, path, `
server:
  http-port: ":9500"
graphql:
  endpoint: "https://example.test/graphql"
storage:
  type: minio
  bucket-name: notes
app:
  worker-pool:
    max-workers: 3
`)

	cfg, realpath, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, path, realpath)
	assert.Equal(t, ":9500", cfg.Server.HttpPort)
	assert.Equal(t, ":9001", cfg.Server.PrivateHttpListen)
	assert.Equal(t, "https://example.test/graphql", cfg.GraphQL.Endpoint)
	assert.Equal(t, "30s", cfg.GraphQL.Timeout)
	assert.Equal(t, "minio", cfg.Storage.Type)
	assert.Equal(t, "15m", cfg.Storage.URLExpiry)
	assert.Equal(t, ":9100", cfg.MockAPI.Listen)
	assert.Equal(t, "sqlite", cfg.MockAPI.Database.Type)

	wp := cfg.GetWorkerPoolConfig()
	assert.Equal(t, 3, wp.MaxWorkers)
	assert.Equal(t, 256, wp.QueueSize)

	assert.Equal(t, 7*24*time.Hour, cfg.GetTokenExpiry())
	assert.Equal(t, 2*time.Hour, cfg.GetSessionIdleTime())
	assert.Equal(t, time.Minute, cfg.GetContextTimeout())
	assert.True(t, cfg.IsDefaultSecret())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "server: [")
	_, _, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_DotEnvNextToConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "log:\n  level: info\n")
	writeFile(t, filepath.Join(dir, ".env"), EnvGraphQLAPIKey+"=from-dotenv\n")
	t.Cleanup(func() { _ = os.Unsetenv(EnvGraphQLAPIKey) })

	cfg, _, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.GraphQL.APIKey)
}

func TestApplyEnv(t *testing.T) {
	cfg, err := NewDefaultConfig()
	require.NoError(t, err)

	env := map[string]string{
		EnvAuthTokenKey:           "s3cret",
		EnvStorageType:            "s3",
		EnvStorageAccessKeySecret: "sk",
		EnvMockAPIKey:             "",
	}
	cfg.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	assert.Equal(t, "s3cret", cfg.Security.AuthTokenKey)
	assert.False(t, cfg.IsDefaultSecret())
	assert.Equal(t, "s3", cfg.Storage.Type)
	assert.Equal(t, "sk", cfg.Storage.AccessKeySecret)
	assert.Equal(t, "", cfg.MockAPI.APIKey)
	assert.Equal(t, ":9000", cfg.Server.HttpPort)
}

func TestSave_RoundTrip(t *testing.T) {
	cfg, err := NewDefaultConfig()
	require.NoError(t, err)
	cfg.File = filepath.Join(t.TempDir(), "out.yaml")
	cfg.GraphQL.Endpoint = "http://backend.test/graphql"
	require.NoError(t, cfg.Save())

	back, _, err := LoadConfig(cfg.File)
	require.NoError(t, err)
	assert.Equal(t, "http://backend.test/graphql", back.GraphQL.Endpoint)
}
