package media

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type File struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	Filename string `gorm:"not null" json:"filename"`
	Path     string `gorm:"not null" json:"path"`
	URL      string `gorm:"not null" json:"url"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`

	CreatedAt time.Time `json:"created_at"`
}

func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
