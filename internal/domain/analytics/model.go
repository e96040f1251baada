package analytics

import (
	"time"

	"gorm.io/datatypes"
)

const (
	EventView  = "view"
	EventClick = "click"
	EventOrder = "order"
)

type Event struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Type      string         `gorm:"index;not null" json:"type"`
	ProductID *uint          `gorm:"index" json:"productId,omitempty"`
	UserEmail string         `json:"userEmail,omitempty"`
	Metadata  datatypes.JSON `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type Subscriber struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Email string `gorm:"not null;uniqueIndex" json:"email"`

	CreatedAt time.Time `json:"created_at"`
}
