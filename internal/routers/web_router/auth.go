package web_router

import (
	"net/http"

	"github.com/haierkeys/notes-app-service/internal/app"
	"github.com/haierkeys/notes-app-service/internal/dto"
	"github.com/haierkeys/notes-app-service/internal/middleware"
	pkgapp "github.com/haierkeys/notes-app-service/pkg/app"
	"github.com/haierkeys/notes-app-service/pkg/code"
	"github.com/haierkeys/notes-app-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler 登录与退出
type AuthHandler struct {
	*Handler
}

// NewAuthHandler 创建 AuthHandler 实例
func NewAuthHandler(a *app.App) *AuthHandler {
	return &AuthHandler{Handler: NewHandler(a)}
}

// SignInPage 渲染登录页，已登录时直接跳转到笔记页
func (h *AuthHandler) SignInPage(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookieName); err == nil && token != "" {
		if h.App.TokenManager.Validate(token) == nil {
			c.Redirect(http.StatusFound, IndexPath)
			return
		}
	}
	c.HTML(http.StatusOK, "signin.html", h.pageData(c, ""))
}

// SignIn 校验提交的 Token，写入会话 Cookie
func (h *AuthHandler) SignIn(c *gin.Context) {
	lang := pkgapp.GetLang(c)
	params := &dto.SignInRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("AuthHandler.SignIn.BindAndValid err", zap.Error(errs))
		c.HTML(http.StatusBadRequest, "signin.html", h.pageData(c, code.ErrorNotUserAuthToken.Lang.GetMessageIn(lang)))
		return
	}

	user, err := h.App.TokenManager.Parse(params.Token)
	if err != nil {
		h.App.Logger().Warn("AuthHandler.SignIn.Parse err",
			zap.String("ip", pkgapp.GetRequestIP(c)),
			zap.Error(err))
		c.HTML(http.StatusUnauthorized, "signin.html", h.pageData(c, code.ErrorInvalidUserAuthToken.Lang.GetMessageIn(lang)))
		return
	}

	middleware.SetSessionCookie(c, params.Token, int(h.App.TokenManager.Expiry().Seconds()))
	h.App.Logger().Info("user signed in", zap.Int64(logger.FieldUID, user.UID))
	c.Redirect(http.StatusSeeOther, IndexPath)
}

// SignOut 清除会话 Cookie 并丢弃该用户的页面状态
func (h *AuthHandler) SignOut(c *gin.Context) {
	if uid := pkgapp.GetUID(c); uid != 0 {
		h.App.Sessions.Drop(uid)
	}
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, SignInPath)
}
