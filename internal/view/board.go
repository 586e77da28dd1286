// Package view holds the per-session state behind the notes page: the list
// currently shown to one signed-in user and the operations the page offers.
package view

import (
	"context"
	"sync"

	"github.com/haierkeys/notes-app-service/internal/dto"
	"github.com/haierkeys/notes-app-service/internal/service"
	"github.com/haierkeys/notes-app-service/pkg/code"
	apperrors "github.com/haierkeys/notes-app-service/pkg/errors"
	"github.com/haierkeys/notes-app-service/pkg/logger"
	"github.com/haierkeys/notes-app-service/pkg/metrics"

	"go.uber.org/zap"
)

// Board 单个会话的笔记列表
// The last successful fetch wins. Notes whose delete is still in flight are
// left out of fetched lists until Settle is called for them.
type Board struct {
	mu      sync.Mutex
	notes   []*dto.NoteDTO
	pending map[string]struct{}
	flash   string

	svc    service.NoteService
	logger *zap.Logger
}

// NewBoard 创建空列表
func NewBoard(svc service.NoteService, lg *zap.Logger) *Board {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &Board{
		notes:   []*dto.NoteDTO{},
		pending: map[string]struct{}{},
		svc:     svc,
		logger:  lg,
	}
}

// Fetch 重新拉取列表；失败时保留原列表并返回错误
// 页面每次加载都会调用
func (b *Board) Fetch(ctx context.Context) error {
	notes, err := b.svc.List(ctx)
	if err != nil {
		b.logger.Warn("board fetch failed", zap.Error(err))
		return err
	}

	b.mu.Lock()
	kept := make([]*dto.NoteDTO, 0, len(notes))
	for _, n := range notes {
		if _, deleting := b.pending[n.ID]; deleting {
			continue
		}
		kept = append(kept, n)
	}
	b.notes = kept
	b.mu.Unlock()

	metrics.BoardNotes.Set(float64(len(kept)))
	return nil
}

// Create 创建笔记后刷新列表
// A refresh failure is returned after the note itself has been created.
func (b *Board) Create(ctx context.Context, params *dto.NoteCreateRequest, image *dto.ImageUpload) error {
	if _, err := b.svc.Create(ctx, params, image); err != nil {
		return err
	}
	return b.Fetch(ctx)
}

// Forget 从本地列表中移除笔记，不发起任何远程调用
// The id stays hidden from later fetches until Settle(id).
func (b *Board) Forget(id string) (*dto.NoteDTO, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pending[id] = struct{}{}

	for i, n := range b.notes {
		if n.ID != id {
			continue
		}
		kept := make([]*dto.NoteDTO, 0, len(b.notes)-1)
		kept = append(kept, b.notes[:i]...)
		kept = append(kept, b.notes[i+1:]...)
		b.notes = kept
		return n, true
	}
	return nil, false
}

// Settle 远程删除结束后调用，之后的拉取以后端结果为准
func (b *Board) Settle(id string) {
	b.mu.Lock()
	delete(b.pending, id)
	b.mu.Unlock()
}

// Delete 先从本地列表移除，再删除图片和笔记；远程失败不回滚
// name 为空时取本地列表中的笔记名称
func (b *Board) Delete(ctx context.Context, id, name string) error {
	note, found := b.Forget(id)
	defer b.Settle(id)
	if name == "" && found {
		name = note.Name
	}
	if name == "" {
		return apperrors.NewAppError(code.ErrorNoteNotFound, nil)
	}

	if err := b.svc.Delete(ctx, id, name); err != nil {
		b.logger.Warn("board delete failed",
			zap.String(logger.FieldNoteID, id),
			zap.String(logger.FieldNoteName, name),
			zap.Error(err))
		return err
	}
	return nil
}

// Lookup 按 ID 查找本地列表中的笔记
func (b *Board) Lookup(id string) (*dto.NoteDTO, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, n := range b.notes {
		if n.ID == id {
			c := *n
			return &c, true
		}
	}
	return nil, false
}

// Notes 返回当前列表的副本
func (b *Board) Notes() []*dto.NoteDTO {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]*dto.NoteDTO, 0, len(b.notes))
	for _, n := range b.notes {
		c := *n
		out = append(out, &c)
	}
	return out
}

// SetFlash 设置下一次页面渲染时显示的提示
func (b *Board) SetFlash(msg string) {
	b.mu.Lock()
	b.flash = msg
	b.mu.Unlock()
}

// TakeFlash 取出并清空提示
func (b *Board) TakeFlash() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	msg := b.flash
	b.flash = ""
	return msg
}
