// Package web_router 提供服务端渲染的笔记页面与登录页
package web_router

import (
	"context"
	"embed"
	"html/template"
	"io/fs"

	"github.com/haierkeys/notes-app-service/internal/app"
	"github.com/haierkeys/notes-app-service/internal/middleware"
	pkgapp "github.com/haierkeys/notes-app-service/pkg/app"
	"github.com/haierkeys/notes-app-service/pkg/logger"
	"github.com/haierkeys/notes-app-service/pkg/timex"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 页面路径
const (
	IndexPath   = "/"
	SignInPath  = "/signin"
	SignOutPath = "/signout"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Templates 解析内嵌的页面模板
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"parseDate": timex.ParseDate,
	}).ParseFS(templateFiles, "templates/*.html")
}

// StaticFS 内嵌的静态资源
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Handler 页面处理器基础结构
type Handler struct {
	App *app.App
}

// NewHandler 创建页面处理器
func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// pageData 页面公共数据
func (h *Handler) pageData(c *gin.Context, flash string) gin.H {
	data := gin.H{
		"Lang":    pkgapp.GetLang(c),
		"AppName": app.Name,
		"Version": h.App.Version().Version,
		"Flash":   flash,
	}
	if user := pkgapp.GetUser(c); user != nil {
		data["User"] = user.Nickname
	}
	return data
}

func (h *Handler) logError(ctx context.Context, method string, err error) {
	h.App.Logger().Error(method,
		zap.Error(err),
		zap.String(logger.FieldTraceID, middleware.GetTraceID(ctx)),
	)
}
