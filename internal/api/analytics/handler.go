package analytics

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"soapworks/internal/domain/analytics"
	"soapworks/internal/domain/orders"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// POST /events — best-effort ingest. The storefront fires these on page
// views and clicks; a failed insert is logged and the caller still gets
// an ok so tracking can never break the shop.
func (h *Handler) CreateEvent(c *gin.Context) {
	var input struct {
		Type      string          `json:"type"`
		ProductID *uint           `json:"productId"`
		UserEmail string          `json:"userEmail"`
		Metadata  json.RawMessage `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing event type"})
		return
	}

	event := analytics.Event{
		Type:      input.Type,
		ProductID: input.ProductID,
		UserEmail: input.UserEmail,
	}
	if len(input.Metadata) > 0 {
		event.Metadata = []byte(input.Metadata)
	}

	if err := h.DB.Create(&event).Error; err != nil {
		log.Printf("analytics: event insert failed: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /subscribe
func (h *Handler) Subscribe(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email"})
		return
	}

	sub := analytics.Subscriber{Email: input.Email}
	if err := h.DB.Where("email = ?", input.Email).FirstOrCreate(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscribed"})
}

type typeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// GET /admin/analytics/overview (admin) — aggregates computed per request;
// nothing is cached.
func (h *Handler) Overview(c *gin.Context) {
	var totalOrders int64
	var totalRevenue float64
	var totalSubscribers int64

	if err := h.DB.Model(&orders.Order{}).Count(&totalOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute overview"})
		return
	}
	if err := h.DB.Model(&orders.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&totalRevenue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute overview"})
		return
	}
	if err := h.DB.Model(&analytics.Subscriber{}).Count(&totalSubscribers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute overview"})
		return
	}

	var eventsByType []typeCount
	if err := h.DB.Model(&analytics.Event{}).
		Select("type, COUNT(*) AS count").
		Group("type").
		Scan(&eventsByType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute overview"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_orders":      totalOrders,
		"total_revenue":     totalRevenue,
		"total_subscribers": totalSubscribers,
		"events_by_type":    eventsByType,
	})
}

type productCount struct {
	ProductID uint  `json:"productId"`
	Count     int64 `json:"count"`
}

// GET /admin/analytics/by-product (admin)
func (h *Handler) ByProduct(c *gin.Context) {
	var rows []productCount
	if err := h.DB.Model(&analytics.Event{}).
		Select("product_id, COUNT(*) AS count").
		Where("product_id IS NOT NULL").
		Group("product_id").
		Order("count DESC").
		Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute product stats"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type locationRevenue struct {
	Location string  `json:"location"`
	Revenue  float64 `json:"revenue"`
	Orders   int64   `json:"orders"`
}

// GET /admin/analytics/revenue-by-location (admin)
func (h *Handler) RevenueByLocation(c *gin.Context) {
	var rows []locationRevenue
	if err := h.DB.Model(&orders.Order{}).
		Select("location, COALESCE(SUM(total), 0) AS revenue, COUNT(*) AS orders").
		Group("location").
		Order("revenue DESC").
		Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute revenue stats"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
