package dao

import (
	"context"
	"io"
	"time"

	"github.com/haierkeys/notes-app-service/internal/domain"
	"github.com/haierkeys/notes-app-service/pkg/code"
	"github.com/haierkeys/notes-app-service/pkg/logger"
	"github.com/haierkeys/notes-app-service/pkg/metrics"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// blobRepository 实现 domain.BlobRepository 接口
type blobRepository struct {
	dao *Dao
}

// NewBlobRepository 创建 BlobRepository 实例
func NewBlobRepository(dao *Dao) domain.BlobRepository {
	return &blobRepository{dao: dao}
}

func (r *blobRepository) observe(op, key string, start time.Time, err error) {
	metrics.Observe(metrics.GatewayStorage, op, start, err)
	if err != nil {
		r.dao.logger.Warn("storage operation failed",
			zap.String(logger.FieldOperation, op),
			zap.String(logger.FieldKey, key),
			zap.Error(err))
	}
}

func (r *blobRepository) Put(ctx context.Context, key string, reader io.Reader, contentType string) (err error) {
	if r.dao.Storage == nil {
		return code.ErrorStorageNotConfigured
	}
	defer func(start time.Time) { r.observe("put", key, start, err) }(time.Now())

	_, err = r.dao.Storage.SendFile(ctx, key, reader, contentType)
	return errors.Wrap(err, "blobRepository.Put")
}

func (r *blobRepository) URL(ctx context.Context, key string) (url string, err error) {
	if r.dao.Storage == nil {
		return "", code.ErrorStorageNotConfigured
	}
	defer func(start time.Time) { r.observe("get", key, start, err) }(time.Now())

	url, err = r.dao.Storage.GetURL(ctx, key)
	return url, errors.Wrap(err, "blobRepository.URL")
}

func (r *blobRepository) Remove(ctx context.Context, key string) (err error) {
	if r.dao.Storage == nil {
		return code.ErrorStorageNotConfigured
	}
	defer func(start time.Time) { r.observe("remove", key, start, err) }(time.Now())

	err = r.dao.Storage.Delete(ctx, key)
	return errors.Wrap(err, "blobRepository.Remove")
}
