package api_router

import (
	"time"

	"github.com/haierkeys/notes-app-service/internal/app"
	"github.com/haierkeys/notes-app-service/internal/dao"
	"github.com/haierkeys/notes-app-service/internal/dto"
	pkgapp "github.com/haierkeys/notes-app-service/pkg/app"
	"github.com/haierkeys/notes-app-service/pkg/code"
	"github.com/haierkeys/notes-app-service/pkg/timex"

	"github.com/gin-gonic/gin"
)

// startTime 进程启动时间，用于计算运行时长
var startTime = time.Now()

// HealthHandler 健康检查处理器
type HealthHandler struct {
	*Handler
}

// NewHealthHandler 创建健康检查处理器实例
func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(a)}
}

// Check 健康检查接口
// 通过一次 listNotes 查询确认远程接口可用；图片地址不在检查范围内
func (h *HealthHandler) Check(c *gin.Context) {
	response := dto.HealthDTO{
		Status:    "healthy",
		Version:   h.App.Version().Version,
		GraphQL:   "connected",
		Storage:   h.App.Config().Storage.Type,
		Sessions:  h.App.Sessions.Len(),
		Uptime:    time.Since(startTime).Seconds(),
		Timestamp: timex.Now().ISO(),
	}

	ctx := c.Request.Context()

	// 检查远程接口
	if _, err := dao.NewNoteRepository(h.App.Dao).List(ctx); err != nil {
		h.logError(ctx, "HealthHandler.Check", err)
		response.Status = "unhealthy"
		response.GraphQL = "error"
		pkgapp.NewResponse(c).ToResponse(code.Failed.WithData(response))
		return
	}

	pkgapp.NewResponse(c).ToResponse(code.Success.WithData(response))
}
