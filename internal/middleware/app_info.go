package middleware

import (
	"github.com/haierkeys/notes-app-service/pkg/app"

	"github.com/gin-gonic/gin"
)

// Context keys set by AppInfoWithConfig.
const (
	AppNameKey    = "app_name"
	AppVersionKey = "app_version"
	AccessHostKey = "access_host"
)

// AppInfoWithConfig 在上下文中记录应用名称、版本与访问地址，页面模板会读取它们
func AppInfoWithConfig(name, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(AppNameKey, name)
		c.Set(AppVersionKey, version)
		c.Set(AccessHostKey, app.GetAccessHost(c))

		c.Next()
	}
}
