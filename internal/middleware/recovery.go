package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/haierkeys/notes-app-service/pkg/app"
	"github.com/haierkeys/notes-app-service/pkg/code"
	"github.com/haierkeys/notes-app-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryWithLogger 创建带日志器的 Recovery 中间件（支持依赖注入）
func RecoveryWithLogger(lg *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		defer func() {
			err := recover()
			if err == nil {
				return
			}

			var errorMsg string
			fields := []zap.Field{
				zap.String(logger.FieldTraceID, GetTraceIDFromGin(c)),
				zap.String("router", path),
				zap.String(logger.FieldMethod, c.Request.Method),
				zap.String("query", query),
				zap.String("ip", c.ClientIP()),
				zap.String("user-agent", c.Request.UserAgent()),
			}

			switch v := err.(type) {
			case string:
				errorMsg = v
				lg.Error("Recovered from panic", append(fields,
					zap.String("panic_value", v),
					zap.String("stack", string(debug.Stack())))...)
			case error:
				errorMsg = v.Error()
				lg.Error("Recovered from panic", append(fields,
					zap.Error(v),
					zap.String("stack", string(debug.Stack())))...)
			default:
				// 其它类型的 panic
				errorMsg = fmt.Sprintf("%v", v)
				lg.Error("Recovered from unknown panic", append(fields,
					zap.String("panic_value", errorMsg),
					zap.String("stack", string(debug.Stack())))...)
			}

			app.NewResponse(c).ToResponse(code.ErrorServerInternal.WithDetails(errorMsg))
			c.Abort()
		}()

		c.Next()
	}
}
