package storage_test

import (
	"testing"

	"github.com/haierkeys/notes-app-service/pkg/code"
	"github.com/haierkeys/notes-app-service/pkg/storage"
	"github.com/haierkeys/notes-app-service/pkg/storage/local_fs"
	"github.com/haierkeys/notes-app-service/pkg/storage/minio"
	"github.com/haierkeys/notes-app-service/pkg/storage/webdav"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name   string
		cfg    *storage.Config
		assert func(t *testing.T, s storage.Storager)
	}{
		{
			name: "local",
			cfg:  &storage.Config{Type: storage.LOCAL, SavePath: t.TempDir()},
			assert: func(t *testing.T, s storage.Storager) {
				assert.IsType(t, &local_fs.LocalFS{}, s)
			},
		},
		{
			name: "minio",
			cfg: &storage.Config{
				Type:            storage.MinIO,
				Endpoint:        "http://127.0.0.1:9000",
				BucketName:      "notes",
				AccessKeyID:     "id",
				AccessKeySecret: "secret",
				URLExpiry:       "1h",
			},
			assert: func(t *testing.T, s storage.Storager) {
				m, ok := s.(*minio.MinIO)
				require.True(t, ok)
				assert.Equal(t, "1h0m0s", m.Bucket.Expiry.String())
			},
		},
		{
			name: "webdav",
			cfg:  &storage.Config{Type: storage.WebDAV, Endpoint: "http://127.0.0.1:8080"},
			assert: func(t *testing.T, s storage.Storager) {
				assert.IsType(t, &webdav.WebDAV{}, s)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := storage.NewClient(tt.cfg, nil)
			require.NoError(t, err)
			tt.assert(t, s)
		})
	}
}

func TestNewClient_Invalid(t *testing.T) {
	_, err := storage.NewClient(&storage.Config{Type: "invalid"}, nil)
	assert.ErrorIs(t, err, code.ErrorInvalidStorageType)

	_, err = storage.NewClient(nil, nil)
	assert.ErrorIs(t, err, code.ErrorInvalidStorageType)
}
