package payments

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"soapworks/internal/domain/adminlog"
	"soapworks/internal/domain/orders"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// POST /payments — the shopper reports a manual UPI or bank transfer; the
// record starts Pending until an admin confirms it.
func (h *Handler) Create(c *gin.Context) {
	var input struct {
		OrderID   uint    `json:"orderId" binding:"required"`
		Method    string  `json:"method" binding:"required"`
		Reference string  `json:"reference"`
		Amount    float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Method != orders.MethodUPI && input.Method != orders.MethodBank {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment method"})
		return
	}

	var order orders.Order
	if err := h.DB.First(&order, input.OrderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return
	}

	payment := orders.Payment{
		OrderID:   order.ID,
		Method:    input.Method,
		Reference: input.Reference,
		Amount:    input.Amount,
		Status:    orders.PaymentPending,
	}
	if err := h.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// PUT /payments/:id/status (admin) — setting a status the payment already
// has is a successful no-op.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment id"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch input.Status {
	case orders.PaymentPending, orders.PaymentCompleted, orders.PaymentFailed:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment status"})
		return
	}

	var payment orders.Payment
	if err := h.DB.First(&payment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payment"})
		return
	}

	if payment.Status != input.Status {
		payment.Status = input.Status
		if err := h.DB.Save(&payment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
			return
		}
		adminlog.Record(h.DB, c.GetString("email"), "update", "payment", payment.ID,
			fmt.Sprintf("status -> %s", payment.Status))
	}

	c.JSON(http.StatusOK, payment)
}

// GET /payments (admin)
func (h *Handler) List(c *gin.Context) {
	list := make([]orders.Payment, 0)
	if err := h.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}
	c.JSON(http.StatusOK, list)
}
