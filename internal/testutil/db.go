package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"soapworks/database"
	"soapworks/internal/domain/users"
)

// OpenDB returns a fresh in-memory database with the full schema. Max one
// open connection, because each sqlite :memory: connection is its own
// database.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatal(err)
	}
	return db
}

// SeedUser inserts a verified user with a bcrypt-hashed password.
func SeedUser(t *testing.T, db *gorm.DB, email, password, role string) users.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	h := string(hashed)

	u := users.User{
		Name:         "Test User",
		Email:        email,
		Password:     &h,
		AuthProvider: "local",
		Role:         role,
		IsVerified:   true,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatal(err)
	}
	return u
}
