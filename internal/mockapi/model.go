package mockapi

import (
	"github.com/haierkeys/notes-app-service/pkg/timex"
)

// Note 笔记表
type Note struct {
	ID          string     `gorm:"column:id;primaryKey;size:36"`
	Name        string     `gorm:"column:name;size:255;not null;index"`
	Description string     `gorm:"column:description;type:text"`
	Image       string     `gorm:"column:image;size:255"`
	CreatedAt   timex.Time `gorm:"column:created_at;index;autoCreateTime:false"`
	UpdatedAt   timex.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

// noteItem is the wire shape of a note, matching the managed backend's schema.
// Empty optional fields are sent as null.
type noteItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
	Typename    string  `json:"__typename"`
}

func (n *Note) toItem() *noteItem {
	return &noteItem{
		ID:          n.ID,
		Name:        n.Name,
		Description: nullable(n.Description),
		Image:       nullable(n.Image),
		CreatedAt:   n.CreatedAt.ISO(),
		UpdatedAt:   n.UpdatedAt.ISO(),
		Typename:    "Note",
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
