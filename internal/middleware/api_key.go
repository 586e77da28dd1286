package middleware

import (
	"net/http"

	"github.com/haierkeys/notes-app-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader GraphQL 请求使用的 API Key 请求头
const APIKeyHeader = "x-api-key"

// APIKeyWithConfig GraphQL 接口的 API Key 校验，apiKey 为空时不校验
// Rejections use the GraphQL error envelope so clients read them like any
// other operation failure.
func APIKeyWithConfig(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}

		if c.GetHeader(APIKeyHeader) != apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"data": nil,
				"errors": []gin.H{{
					"message":   code.ErrorGraphQLUnauthorized.Msg(),
					"errorType": "UnauthorizedException",
				}},
			})
			return
		}
		c.Next()
	}
}
