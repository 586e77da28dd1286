// Package domain 定义领域模型和接口
package domain

// Note 笔记领域模型
// CreatedAt/UpdatedAt keep the ISO-8601 strings delivered by the backend.
type Note struct {
	ID          string
	Name        string
	Description string
	// Image 上传时为图片文件名（对象键为笔记名称），展示前替换为可访问的 URL
	Image     string
	CreatedAt string
	UpdatedAt string
}

// HasImage 判断笔记是否关联了图片
func (n *Note) HasImage() bool {
	return n != nil && n.Image != ""
}

// NoteInput createNote 的输入
type NoteInput struct {
	Name        string
	Description string
	Image       string
}
