package content

import "time"

const (
	TypeText  = "text"
	TypeImage = "image"
	TypeCSS   = "css"
	TypeJSON  = "json"
)

// LayoutKey is the reserved key whose value holds the JSON-encoded home
// page layout.
const LayoutKey = "home_layout"

// ContentEntry is a generic key/value record. The value is opaque to the
// store; for LayoutKey it is a JSON array of blocks.
type ContentEntry struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"not null;uniqueIndex" json:"key"`
	Value string `gorm:"type:text" json:"value"`
	Type  string `gorm:"not null;default:'text'" json:"type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
