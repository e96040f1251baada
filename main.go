package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"soapworks/config"
	"soapworks/database"
	routes "soapworks/internal/app/http"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	db, err := database.Connect(config.DB_URL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Println("Failed to close database:", err)
		}
	}()

	if err := database.Seed(db, config.SEED_ADMIN_EMAIL, config.SEED_ADMIN_PASSWORD); err != nil {
		log.Fatal("Failed to seed database: ", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/uploads", config.UPLOAD_DIR)

	routes.RegisterRoutes(r, db)

	if err := r.Run(":" + config.PORT); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
