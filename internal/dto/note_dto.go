package dto

import "io"

// NoteDTO 返回给页面与 JSON 接口的笔记
type NoteDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// NoteCreateRequest 创建笔记表单，image 文件通过 multipart 单独读取
type NoteCreateRequest struct {
	Name        string `form:"name" json:"name" binding:"required,max=255"`
	Description string `form:"description" json:"description" binding:"required"`
}

// NoteDeleteRequest 删除笔记参数
// Name 可省略，省略时由当前列表按 ID 补全
type NoteDeleteRequest struct {
	ID   string `form:"id" uri:"id" json:"id" binding:"required"`
	Name string `form:"name" json:"name"`
}

// ImageUpload 表单中附带的图片
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}
