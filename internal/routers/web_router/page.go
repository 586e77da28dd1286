package web_router

import (
	"context"
	"net/http"

	"github.com/haierkeys/notes-app-service/internal/app"
	"github.com/haierkeys/notes-app-service/internal/dto"
	"github.com/haierkeys/notes-app-service/internal/routers/api_router"
	pkgapp "github.com/haierkeys/notes-app-service/pkg/app"
	"github.com/haierkeys/notes-app-service/pkg/code"
	apperrors "github.com/haierkeys/notes-app-service/pkg/errors"
	"github.com/haierkeys/notes-app-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PageHandler 笔记页面处理器
type PageHandler struct {
	*Handler
}

// NewPageHandler 创建 PageHandler 实例
func NewPageHandler(a *app.App) *PageHandler {
	return &PageHandler{Handler: NewHandler(a)}
}

// Index 渲染笔记页面
// 每次加载都重新拉取列表；拉取失败时保留上一次的列表并显示错误提示
func (h *PageHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	board := h.App.Board(pkgapp.GetUID(c))

	flash := board.TakeFlash()
	if err := board.Fetch(ctx); err != nil {
		h.logError(ctx, "PageHandler.Index.Fetch", err)
		flash = apperrors.Message(err, pkgapp.GetLang(c))
	}

	data := h.pageData(c, flash)
	data["Notes"] = board.Notes()
	c.HTML(http.StatusOK, "index.html", data)
}

// Create 提交创建表单
// 先上传图片，再创建笔记，最后刷新列表；任何一步失败都以提示形式显示在页面上
func (h *PageHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	board := h.App.Board(pkgapp.GetUID(c))
	lang := pkgapp.GetLang(c)

	defer c.Redirect(http.StatusSeeOther, IndexPath)

	params := &dto.NoteCreateRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("PageHandler.Create.BindAndValid err", zap.Error(errs))
		board.SetFlash(code.ErrorInvalidParams.Lang.GetMessageIn(lang) + ": " + errs.ErrorsToString())
		return
	}

	image, closeImage, err := api_router.ImageFromForm(c)
	if err != nil {
		h.logError(ctx, "PageHandler.Create.ImageFromForm", err)
		board.SetFlash(code.ErrorInvalidParams.Lang.GetMessageIn(lang))
		return
	}
	defer closeImage()

	if err := board.Create(ctx, params, image); err != nil {
		h.logError(ctx, "PageHandler.Create", err)
		board.SetFlash(apperrors.Message(err, lang))
	}
}

// Delete 删除笔记
// 条目立即从列表中移除，随后在后台依次删除图片与笔记；后台失败只记录日志，不恢复条目
func (h *PageHandler) Delete(c *gin.Context) {
	board := h.App.Board(pkgapp.GetUID(c))
	lang := pkgapp.GetLang(c)

	defer c.Redirect(http.StatusSeeOther, IndexPath)

	id := c.Param("id")
	name := c.PostForm("name")

	note, found := board.Forget(id)
	if name == "" && found {
		name = note.Name
	}
	if name == "" {
		board.Settle(id)
		board.SetFlash(code.ErrorNoteNotFound.Lang.GetMessageIn(lang))
		return
	}

	lg := h.App.Logger().With(
		zap.String(logger.FieldNoteID, id),
		zap.String(logger.FieldNoteName, name),
	)

	// 请求结束后继续执行，不随请求取消
	ctx := context.WithoutCancel(c.Request.Context())
	done := h.App.TrackOperation()
	err := h.App.SubmitTaskAsync(ctx, func(ctx context.Context) error {
		defer done()
		defer board.Settle(id)
		if err := h.App.NoteService.Delete(ctx, id, name); err != nil {
			lg.Warn("PageHandler.Delete background delete failed", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		done()
		board.Settle(id)
		lg.Error("PageHandler.Delete.SubmitTaskAsync err", zap.Error(err))
		board.SetFlash(apperrors.Message(apperrors.NewAppError(code.ErrorWorkerPoolBusy, err), lang))
	}
}
