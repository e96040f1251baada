package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"soapworks/internal/domain/catalog"
	"soapworks/internal/domain/users"
)

// Seed upserts the admin account from the environment and installs a
// starter catalog when the products table is empty. Safe to run on every
// startup.
func Seed(db *gorm.DB, adminEmail, adminPassword string) error {
	if adminEmail != "" && adminPassword != "" {
		if err := seedAdmin(db, adminEmail, adminPassword); err != nil {
			return err
		}
	}
	return seedProducts(db)
}

func seedAdmin(db *gorm.DB, email, password string) error {
	var existing users.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	h := string(hashed)

	admin := users.User{
		Name:         "Admin",
		Email:        email,
		Password:     &h,
		AuthProvider: "local",
		Role:         users.RoleAdmin,
		IsVerified:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("seeded admin account %s", email)
	return nil
}

func seedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&catalog.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	starter := []catalog.Product{
		{Name: "Lavender Dream", Description: "Cold-pressed olive oil bar with French lavender buds", Price: 120, Category: "floral", Stock: 40, Featured: true},
		{Name: "Neem & Tulsi", Description: "Traditional herbal bar for sensitive skin", Price: 90, Category: "herbal", Stock: 60},
		{Name: "Charcoal Detox", Description: "Activated charcoal and tea tree deep-cleanse bar", Price: 140, Category: "clarifying", Stock: 35},
		{Name: "Honey Oat Scrub", Description: "Raw honey and steel-cut oats, gentle exfoliation", Price: 110, Category: "exfoliating", Stock: 50, Featured: true},
	}
	if err := db.Create(&starter).Error; err != nil {
		return err
	}
	log.Printf("seeded %d starter products", len(starter))
	return nil
}
