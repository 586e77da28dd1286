package service

import (
	"context"

	"github.com/haierkeys/notes-app-service/internal/domain"
	"github.com/haierkeys/notes-app-service/internal/dto"
	"github.com/haierkeys/notes-app-service/pkg/code"
	apperrors "github.com/haierkeys/notes-app-service/pkg/errors"
	"github.com/haierkeys/notes-app-service/pkg/fileurl"
	"github.com/haierkeys/notes-app-service/pkg/logger"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// NoteService 定义笔记业务服务接口
type NoteService interface {
	// List 获取笔记列表，并为带图片的笔记解析图片地址
	// Any failed resolution fails the whole call.
	List(ctx context.Context) ([]*dto.NoteDTO, error)

	// Create 创建笔记，带图片时先以笔记名称为键上传图片
	Create(ctx context.Context, params *dto.NoteCreateRequest, image *dto.ImageUpload) (*dto.NoteDTO, error)

	// Delete 先删除以 name 为键的图片，再删除 id 对应的笔记
	Delete(ctx context.Context, id, name string) error
}

// listKey 列表请求在 singleflight 中的键
const listKey = "listNotes"

// noteService 实现 NoteService 接口
type noteService struct {
	noteRepo domain.NoteRepository
	blobRepo domain.BlobRepository
	sf       singleflight.Group
	logger   *zap.Logger
}

// NewNoteService 创建 NoteService 实例
func NewNoteService(noteRepo domain.NoteRepository, blobRepo domain.BlobRepository, lg *zap.Logger) NoteService {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &noteService{
		noteRepo: noteRepo,
		blobRepo: blobRepo,
		logger:   lg,
	}
}

func (s *noteService) List(ctx context.Context) ([]*dto.NoteDTO, error) {
	// 并发的列表请求合并为一次远程调用
	v, err, _ := s.sf.Do(listKey, func() (interface{}, error) {
		return s.list(ctx)
	})
	if err != nil {
		return nil, err
	}

	// 共享结果需复制后再交给调用方
	var out []*dto.NoteDTO
	if err := copier.CopyWithOption(&out, v.([]*dto.NoteDTO), copier.Option{DeepCopy: true}); err != nil {
		return nil, apperrors.NewAppError(code.ErrorNoteListFailed, err)
	}
	return out, nil
}

func (s *noteService) list(ctx context.Context) ([]*dto.NoteDTO, error) {
	notes, err := s.noteRepo.List(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(code.ErrorNoteListFailed, err)
	}

	out := make([]*dto.NoteDTO, 0, len(notes))
	if err := copier.Copy(&out, notes); err != nil {
		return nil, apperrors.NewAppError(code.ErrorNoteListFailed, err)
	}

	// fire all, then await all
	var g errgroup.Group
	for _, note := range out {
		if note.Image == "" {
			continue
		}
		note := note
		g.Go(func() error {
			url, err := s.blobRepo.URL(ctx, note.Name)
			if err != nil {
				return err
			}
			note.Image = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperrors.NewAppError(code.ErrorImageResolveFailed, err)
	}

	return out, nil
}

func (s *noteService) Create(ctx context.Context, params *dto.NoteCreateRequest, image *dto.ImageUpload) (*dto.NoteDTO, error) {
	input := &domain.NoteInput{
		Name:        params.Name,
		Description: params.Description,
	}

	if image != nil && image.Filename != "" {
		input.Image = image.Filename

		contentType := image.ContentType
		if contentType == "" {
			contentType = fileurl.ContentType(image.Filename)
		}
		if err := s.blobRepo.Put(ctx, params.Name, image.Reader, contentType); err != nil {
			return nil, apperrors.NewAppError(code.ErrorImageUploadFailed, err)
		}
	}

	note, err := s.noteRepo.Create(ctx, input)
	if err != nil {
		return nil, apperrors.NewAppError(code.ErrorNoteCreateFailed, err)
	}
	// 写入前开始的列表请求不再被之后的刷新复用
	s.sf.Forget(listKey)

	s.logger.Info("note created",
		zap.String(logger.FieldNoteName, input.Name),
		zap.Bool("image", input.Image != ""))

	out := &dto.NoteDTO{}
	if note != nil {
		if err := copier.Copy(out, note); err != nil {
			return nil, apperrors.NewAppError(code.ErrorNoteCreateFailed, err)
		}
	}
	return out, nil
}

func (s *noteService) Delete(ctx context.Context, id, name string) error {
	if err := s.blobRepo.Remove(ctx, name); err != nil {
		return apperrors.NewAppError(code.ErrorImageRemoveFailed, err)
	}

	if err := s.noteRepo.Delete(ctx, id); err != nil {
		return apperrors.NewAppError(code.ErrorNoteDeleteFailed, err)
	}
	s.sf.Forget(listKey)

	s.logger.Info("note deleted",
		zap.String(logger.FieldNoteID, id),
		zap.String(logger.FieldNoteName, name))
	return nil
}
