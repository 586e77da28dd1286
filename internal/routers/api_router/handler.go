// Package api_router 提供 HTTP API 路由处理器
package api_router

import (
	"context"
	"errors"
	"net/http"

	"github.com/haierkeys/notes-app-service/internal/app"
	"github.com/haierkeys/notes-app-service/internal/dto"
	"github.com/haierkeys/notes-app-service/internal/middleware"
	"github.com/haierkeys/notes-app-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ImageField 表单中图片文件的字段名
const ImageField = "image"

// Handler 基础 Handler 结构体，封装 App Container
// 所有 API Handler 都应该嵌入此结构体以获得依赖注入能力
type Handler struct {
	App *app.App
}

// NewHandler 创建基础 Handler 实例
func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// logError 记录带 TraceID 的错误日志
func (h *Handler) logError(ctx context.Context, method string, err error) {
	h.App.Logger().Error(method,
		zap.Error(err),
		zap.String(logger.FieldTraceID, middleware.GetTraceID(ctx)),
	)
}

// ImageFromForm 读取 multipart 中的图片，未选择文件时返回 nil
// The returned closer must be called once the upload has finished.
func ImageFromForm(c *gin.Context) (*dto.ImageUpload, func(), error) {
	noop := func() {}

	fh, err := c.FormFile(ImageField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}
	if fh.Filename == "" || fh.Size == 0 {
		return nil, noop, nil
	}

	file, err := fh.Open()
	if err != nil {
		return nil, noop, err
	}

	return &dto.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      file,
	}, func() { _ = file.Close() }, nil
}
