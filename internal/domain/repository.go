// Package domain 定义领域模型和接口
package domain

import (
	"context"
	"io"
)

// NoteRepository 远程笔记仓储接口，对应后端的三个 GraphQL 操作
type NoteRepository interface {
	// List 获取全部笔记（listNotes）
	List(ctx context.Context) ([]*Note, error)

	// Create 创建笔记（createNote）
	Create(ctx context.Context, input *NoteInput) (*Note, error)

	// Delete 按 ID 删除笔记（deleteNote）
	Delete(ctx context.Context, id string) error
}

// BlobRepository 图片对象存储接口，对象键为笔记名称
type BlobRepository interface {
	// Put 上传图片
	Put(ctx context.Context, key string, r io.Reader, contentType string) error

	// URL 获取可访问图片的地址
	URL(ctx context.Context, key string) (string, error)

	// Remove 删除图片，对象不存在时不报错
	Remove(ctx context.Context, key string) error
}
