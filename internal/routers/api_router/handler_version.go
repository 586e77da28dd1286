package api_router

import (
	"github.com/haierkeys/notes-app-service/internal/app"
	"github.com/haierkeys/notes-app-service/internal/dto"
	pkgapp "github.com/haierkeys/notes-app-service/pkg/app"
	"github.com/haierkeys/notes-app-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// VersionHandler version info API router handler
// VersionHandler 版本信息 API 路由处理器
type VersionHandler struct {
	*Handler
}

// NewVersionHandler creates VersionHandler instance
// NewVersionHandler 创建 VersionHandler 实例
func NewVersionHandler(a *app.App) *VersionHandler {
	return &VersionHandler{
		Handler: NewHandler(a),
	}
}

// ServerVersion retrieves server version information
// ServerVersion 返回当前版本与最近一次版本检查的结果
func (h *VersionHandler) ServerVersion(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	versionInfo := h.App.Version()
	checkInfo := h.App.CheckVersion()
	response.ToResponse(code.Success.WithData(dto.VersionDTO{
		Version:        versionInfo.Version,
		GitTag:         versionInfo.GitTag,
		BuildTime:      versionInfo.BuildTime,
		VersionIsNew:   checkInfo.VersionIsNew,
		VersionNewName: checkInfo.VersionNewName,
		VersionNewLink: checkInfo.VersionNewLink,
	}))
}
