package dao

import (
	"context"
	"time"

	"github.com/haierkeys/notes-app-service/internal/domain"
	"github.com/haierkeys/notes-app-service/pkg/graphql"
	"github.com/haierkeys/notes-app-service/pkg/logger"
	"github.com/haierkeys/notes-app-service/pkg/metrics"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// noteRepository 实现 domain.NoteRepository 接口
type noteRepository struct {
	dao *Dao
}

// NewNoteRepository 创建 NoteRepository 实例
func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

// toDomain 将 GraphQL 结果转换为领域模型
func (r *noteRepository) toDomain(m *noteResult) *domain.Note {
	if m == nil {
		return nil
	}
	note := &domain.Note{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Description != nil {
		note.Description = *m.Description
	}
	if m.Image != nil {
		note.Image = *m.Image
	}
	return note
}

func (r *noteRepository) do(ctx context.Context, op, query string, vars map[string]interface{}, out interface{}) error {
	start := time.Now()
	err := r.dao.GraphQL.Do(ctx, &graphql.Request{
		Query:         query,
		OperationName: op,
		Variables:     vars,
	}, out)
	metrics.Observe(metrics.GatewayGraphQL, op, start, err)

	if err != nil {
		r.dao.logger.Warn("graphql operation failed",
			zap.String(logger.FieldOperation, op),
			zap.Duration(logger.FieldDuration, time.Since(start)),
			zap.Error(err))
	}
	return err
}

// List 获取全部笔记，单次请求，不跟随 nextToken 翻页
func (r *noteRepository) List(ctx context.Context) ([]*domain.Note, error) {
	var out listNotesResult
	if err := r.do(ctx, opListNotes, listNotesQuery, nil, &out); err != nil {
		return nil, errors.Wrap(err, "noteRepository.List")
	}

	notes := make([]*domain.Note, 0, len(out.ListNotes.Items))
	for _, item := range out.ListNotes.Items {
		// 后端可能返回 null 条目（例如已删除但未清理的记录）
		if item == nil {
			continue
		}
		notes = append(notes, r.toDomain(item))
	}
	return notes, nil
}

// Create 创建笔记，image 为空字符串时原样发送
func (r *noteRepository) Create(ctx context.Context, input *domain.NoteInput) (*domain.Note, error) {
	vars := map[string]interface{}{
		"input": map[string]interface{}{
			"name":        input.Name,
			"description": input.Description,
			"image":       input.Image,
		},
	}

	var out createNoteResult
	if err := r.do(ctx, opCreateNote, createNoteMutation, vars, &out); err != nil {
		return nil, errors.Wrap(err, "noteRepository.Create")
	}
	return r.toDomain(out.CreateNote), nil
}

// Delete 按 ID 删除笔记
func (r *noteRepository) Delete(ctx context.Context, id string) error {
	vars := map[string]interface{}{
		"input": map[string]interface{}{"id": id},
	}

	var out deleteNoteResult
	if err := r.do(ctx, opDeleteNote, deleteNoteMutation, vars, &out); err != nil {
		return errors.Wrap(err, "noteRepository.Delete")
	}
	return nil
}
