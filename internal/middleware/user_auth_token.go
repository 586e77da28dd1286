package middleware

import (
	"strings"

	"github.com/haierkeys/notes-app-service/pkg/app"
	"github.com/haierkeys/notes-app-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// SessionCookieName 页面会话 Cookie 名称
const SessionCookieName = "notes_session"

// requestToken 依次从查询参数与请求头中读取 Token
func requestToken(c *gin.Context) string {
	var token string

	if s, exist := c.GetQuery("authorization"); exist {
		token = s
	} else if s, exist := c.GetQuery("Authorization"); exist {
		token = s
	} else if s := c.GetHeader("Authorization"); len(s) != 0 {
		token = s
	} else if s, exist := c.GetQuery("token"); exist {
		token = s
	} else if s = c.GetHeader("Token"); len(s) != 0 {
		token = s
	}

	token = strings.TrimSpace(token)
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token
}

// UserAuthTokenWithConfig 用户 Token 认证中间件（使用注入的密钥）
func UserAuthTokenWithConfig(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := app.NewResponse(c)

		token := requestToken(c)
		if token == "" {
			if s, err := c.Cookie(SessionCookieName); err == nil {
				token = s
			}
		}

		if token == "" {
			response.ToResponse(code.ErrorNotUserAuthToken)
			c.Abort()
			return
		}

		user, err := app.ParseTokenWithKey(token, secretKey)
		if err != nil {
			response.ToResponse(code.ErrorInvalidUserAuthToken)
			c.Abort()
			return
		}
		c.Set(app.UserTokenKey, user)

		c.Next()
	}
}
