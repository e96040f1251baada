package orders

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authapi "soapworks/internal/api/auth"
	"soapworks/internal/domain/analytics"
	"soapworks/internal/domain/orders"
	"soapworks/internal/domain/users"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// POST /orders — runs behind OptionalAuthMiddleware: a valid bearer token
// links the order to the account, anything else still creates it unlinked.
func (h *Handler) Create(c *gin.Context) {
	var input struct {
		Items         json.RawMessage `json:"items" binding:"required"`
		Total         float64         `json:"total" binding:"required"`
		Location      string          `json:"location"`
		CustomerEmail string          `json:"customerEmail"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var items []json.RawMessage
	if err := json.Unmarshal(input.Items, &items); err != nil || len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order must contain at least one item"})
		return
	}

	order := orders.Order{
		Items:         []byte(input.Items),
		Total:         input.Total,
		Location:      input.Location,
		CustomerEmail: input.CustomerEmail,
		Status:        orders.StatusPlaced,
	}

	if v, ok := c.Get("user_id"); ok {
		if userID, ok := v.(uint); ok {
			order.UserID = &userID
		}
	}

	if err := h.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	// Side channels never fail the order.
	if order.CustomerEmail != "" {
		if err := authapi.SendOrderConfirmation(order.CustomerEmail, order.ID, order.Total); err != nil {
			log.Printf("orders: confirmation email for order %d failed: %v", order.ID, err)
		}
	}
	event := analytics.Event{Type: analytics.EventOrder, UserEmail: order.CustomerEmail}
	if err := h.DB.Create(&event).Error; err != nil {
		log.Printf("orders: analytics event for order %d failed: %v", order.ID, err)
	}

	c.JSON(http.StatusCreated, order)
}

// GET /orders (auth) — own orders, or every order for admins.
func (h *Handler) List(c *gin.Context) {
	role := c.GetString("role")

	q := h.DB.Model(&orders.Order{}).Order("created_at DESC")
	if role != users.RoleAdmin {
		v, ok := c.Get("user_id")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		q = q.Where("user_id = ?", v)
	}

	list := make([]orders.Order, 0)
	if err := q.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, list)
}
