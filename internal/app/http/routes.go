package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminapi "soapworks/internal/api/admin"
	analyticsapi "soapworks/internal/api/analytics"
	authapi "soapworks/internal/api/auth"
	catalogapi "soapworks/internal/api/catalog"
	contentapi "soapworks/internal/api/content"
	ordersapi "soapworks/internal/api/orders"
	paymentsapi "soapworks/internal/api/payments"
	uploadsapi "soapworks/internal/api/uploads"
	"soapworks/internal/app/http/middleware"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	authH := authapi.NewHandler(db)
	catalogH := catalogapi.NewHandler(db)
	ordersH := ordersapi.NewHandler(db)
	paymentsH := paymentsapi.NewHandler(db)
	contentH := contentapi.NewHandler(db)
	analyticsH := analyticsapi.NewHandler(db)
	uploadsH := uploadsapi.NewHandler(db)
	adminH := adminapi.NewHandler(db)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public storefront reads.
	r.GET("/home", contentH.Home)
	r.GET("/products", catalogH.List)
	r.GET("/products/:id", catalogH.Get)
	r.GET("/admin/content", contentH.GetContent)
	r.GET("/verify", authH.VerifyEmail)

	if authapi.GoogleEnabled() {
		r.GET("/auth/google", authH.GoogleStart)
		r.GET("/auth/google/callback", authH.GoogleCallback)
	}

	// Public writes go through the input sanitizer.
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/register", authH.Register)
	public.POST("/login", authH.Login)
	public.POST("/resend-verification", authH.ResendVerification)
	public.POST("/payments", paymentsH.Create)
	public.POST("/events", analyticsH.CreateEvent)
	public.POST("/subscribe", analyticsH.Subscribe)

	// Order creation links a user when a valid token is present but never
	// requires one.
	public.POST("/orders", middleware.OptionalAuthMiddleware(), ordersH.Create)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", authH.Me)
	auth.GET("/orders", ordersH.List)

	// Admin back office
	admin := r.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.POST("/products", catalogH.Create)
	admin.PUT("/products/:id", catalogH.Update)
	admin.DELETE("/products/:id", catalogH.Delete)

	admin.POST("/admin/content", contentH.SetContent)
	admin.PUT("/admin/content/layout", contentH.SaveLayout)

	admin.GET("/payments", paymentsH.List)
	admin.PUT("/payments/:id/status", paymentsH.UpdateStatus)

	admin.POST("/admin/upload", uploadsH.Upload)
	admin.GET("/admin/media", uploadsH.List)

	admin.GET("/admin/dashboard", adminH.Dashboard)
	admin.GET("/admin/users", adminH.ListUsers)
	admin.GET("/admin/logs", adminH.ListLogs)

	admin.GET("/admin/analytics/overview", analyticsH.Overview)
	admin.GET("/admin/analytics/by-product", analyticsH.ByProduct)
	admin.GET("/admin/analytics/revenue-by-location", analyticsH.RevenueByLocation)
}
