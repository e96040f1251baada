package catalog

import "time"

type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	ImageURL    string  `gorm:"column:image_url" json:"imageUrl"`
	Category    string  `gorm:"index" json:"category"`
	Stock       int     `gorm:"not null;default:0" json:"stock"`
	Featured    bool    `gorm:"not null;default:false" json:"featured"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
