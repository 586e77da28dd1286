package routers

import (
	"net/http"
	"time"

	"github.com/haierkeys/notes-app-service/internal/app"
	"github.com/haierkeys/notes-app-service/internal/middleware"
	"github.com/haierkeys/notes-app-service/internal/routers/api_router"
	"github.com/haierkeys/notes-app-service/internal/routers/web_router"
	"github.com/haierkeys/notes-app-service/pkg/limiter"
	"github.com/haierkeys/notes-app-service/pkg/storage"
	"github.com/haierkeys/notes-app-service/pkg/storage/local_fs"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          web_router.SignInPath,
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
)

// NewRouter 创建主路由：笔记页面、登录页、JSON 接口与本地存储文件
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) (*gin.Engine, error) {

	// 获取配置
	cfg := appContainer.Config()
	lg := appContainer.Logger()

	tmpl, err := web_router.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	r.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header)) // Trace ID 中间件
	r.Use(middleware.AccessLogWithLogger(lg))
	r.Use(middleware.RecoveryWithLogger(lg))
	r.Use(middleware.AppInfoWithConfig(app.Name, appContainer.Version().Version))
	r.Use(middleware.LangWithTranslator(uni))

	cacheMiddleware := func(c *gin.Context) {
		// 设置强缓存，缓存一天
		c.Header("Cache-Control", "public, max-age=86400")
		c.Next()
	}
	r.Group("/static", cacheMiddleware).StaticFS("/", http.FS(web_router.StaticFS()))

	// 本地存储的图片由本服务直接提供
	if cfg.Storage.Type == storage.LOCAL && cfg.Storage.HttpfsIsEnable && cfg.Storage.PublicURL == "" {
		r.StaticFS(local_fs.URLPrefix, http.Dir(cfg.Storage.SavePath))
	}

	web := r.Group("")
	{
		web.Use(middleware.RateLimiter(methodLimiters))
		web.Use(middleware.ContextTimeout(cfg.GetContextTimeout()))

		authHandler := web_router.NewAuthHandler(appContainer)
		pageHandler := web_router.NewPageHandler(appContainer)

		web.GET(web_router.SignInPath, authHandler.SignInPage)
		web.POST(web_router.SignInPath, authHandler.SignIn)

		session := web.Group("", middleware.SessionAuthWithConfig(cfg.Security.AuthTokenKey, web_router.SignInPath))
		session.GET(web_router.IndexPath, pageHandler.Index)
		session.POST("/notes", pageHandler.Create)
		session.POST("/notes/:id/delete", pageHandler.Delete)
		session.POST(web_router.SignOutPath, authHandler.SignOut)
	}

	api := r.Group("/api")
	{
		api.Use(middleware.CorsWithConfig(cfg.Security.CorsAllowOrigins))
		api.Use(middleware.ContextTimeout(cfg.GetContextTimeout()))

		noteHandler := api_router.NewNoteHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)
		versionHandler := api_router.NewVersionHandler(appContainer)

		// 无需认证
		api.GET("/health", healthHandler.Check)
		api.GET("/version", versionHandler.ServerVersion)

		auth := api.Group("", middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey))
		auth.GET("/notes", noteHandler.List)
		auth.POST("/note", noteHandler.Create)
		auth.DELETE("/note", noteHandler.Delete)
	}

	// 预检请求没有对应路由，由 NoRoute 链上的跨域中间件应答
	r.Use(middleware.CorsWithConfig(cfg.Security.CorsAllowOrigins))
	r.NoRoute(middleware.NoFound())

	return r, nil
}
