package middleware

import (
	"net/http"

	"github.com/haierkeys/notes-app-service/pkg/app"

	"github.com/gin-gonic/gin"
)

// SessionAuthWithConfig 页面会话认证：未登录或凭证失效时跳转到登录页
// An invalid cookie is cleared before redirecting.
func SessionAuthWithConfig(secretKey, signInPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, signInPath)
			c.Abort()
			return
		}

		user, err := app.ParseTokenWithKey(token, secretKey)
		if err != nil {
			ClearSessionCookie(c)
			c.Redirect(http.StatusFound, signInPath)
			c.Abort()
			return
		}
		c.Set(app.UserTokenKey, user)

		c.Next()
	}
}

// SetSessionCookie 写入 HttpOnly 会话 Cookie
func SetSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", c.Request.TLS != nil, true)
}

// ClearSessionCookie 清除会话 Cookie
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", c.Request.TLS != nil, true)
}
