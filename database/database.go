package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"soapworks/internal/domain/adminlog"
	"soapworks/internal/domain/analytics"
	"soapworks/internal/domain/catalog"
	"soapworks/internal/domain/content"
	"soapworks/internal/domain/media"
	"soapworks/internal/domain/orders"
	"soapworks/internal/domain/users"
)

// Connect opens the Postgres store and synchronizes the schema. The caller
// owns the returned handle and passes it into handler constructors; there
// is no package-level connection.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate auto-migrates every domain model. Split out from Connect so tests
// can run it against their own database.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&users.User{},
		&users.VerificationToken{},

		&catalog.Product{},

		&orders.Order{},
		&orders.Payment{},

		&content.ContentEntry{},

		&analytics.Event{},
		&analytics.Subscriber{},

		&adminlog.Entry{},
		&media.File{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool on shutdown.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
