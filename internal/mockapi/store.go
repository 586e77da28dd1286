package mockapi

import (
	"context"

	"github.com/haierkeys/notes-app-service/internal/domain"
	"github.com/haierkeys/notes-app-service/pkg/code"
	"github.com/haierkeys/notes-app-service/pkg/timex"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Store 笔记持久化
type Store struct {
	db *gorm.DB
}

// NewStore 创建 Store 并迁移表结构
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Note{}); err != nil {
		return nil, errors.Wrap(err, "auto migrate note failed")
	}
	return &Store{db: db}, nil
}

// List 按创建时间升序返回全部笔记
func (s *Store) List(ctx context.Context) ([]*Note, error) {
	var notes []*Note
	err := s.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&notes).Error
	if err != nil {
		return nil, errors.Wrap(err, "list notes failed")
	}
	return notes, nil
}

// Create 新建笔记，ID 由服务端生成
func (s *Store) Create(ctx context.Context, in *domain.NoteInput) (*Note, error) {
	n := &Note{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		CreatedAt:   timex.Now(),
		UpdatedAt:   timex.Now(),
	}
	if err := s.db.WithContext(ctx).Create(n).Error; err != nil {
		return nil, errors.Wrap(err, "create note failed")
	}
	return n, nil
}

// Delete 删除笔记并返回被删除的记录
func (s *Store) Delete(ctx context.Context, id string) (*Note, error) {
	var n Note
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&n).Error; err != nil {
			return err
		}
		return tx.Delete(&Note{}, "id = ?", id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.ErrorNoteNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "delete note failed")
	}
	return &n, nil
}

// Count 笔记总数
func (s *Store) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&Note{}).Count(&total).Error
	return total, err
}
