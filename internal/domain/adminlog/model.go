package adminlog

import (
	"log"
	"time"

	"gorm.io/gorm"
)

// Entry is an append-only audit record. Rows are never updated or deleted.
type Entry struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	AdminEmail string `gorm:"index" json:"adminEmail"`
	Action     string `gorm:"not null" json:"action"`
	Entity     string `gorm:"index" json:"entity"`
	EntityID   uint   `json:"entityId"`
	Detail     string `json:"detail"`

	CreatedAt time.Time `json:"created_at"`
}

func (Entry) TableName() string {
	return "admin_logs"
}

// Record writes an audit entry, logging and swallowing any failure so the
// primary operation never fails because of it.
func Record(db *gorm.DB, adminEmail, action, entity string, entityID uint, detail string) {
	e := Entry{
		AdminEmail: adminEmail,
		Action:     action,
		Entity:     entity,
		EntityID:   entityID,
		Detail:     detail,
	}
	if err := db.Create(&e).Error; err != nil {
		log.Printf("adminlog: failed to record %s %s: %v", action, entity, err)
	}
}
