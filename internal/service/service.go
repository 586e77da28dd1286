// Package service 实现业务逻辑层
package service

import (
	"github.com/haierkeys/notes-app-service/internal/dao"

	"go.uber.org/zap"
)

// Service 聚合所有业务服务
type Service struct {
	Note NoteService
}

// New 基于 Dao 创建全部业务服务
func New(d *dao.Dao, logger *zap.Logger) *Service {
	return &Service{
		Note: NewNoteService(dao.NewNoteRepository(d), dao.NewBlobRepository(d), logger),
	}
}
