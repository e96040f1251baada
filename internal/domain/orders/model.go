package orders

import (
	"time"

	"gorm.io/datatypes"

	"soapworks/internal/domain/users"
)

const (
	StatusPlaced    = "Placed"
	StatusConfirmed = "Confirmed"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

// Order keeps the cart snapshot as an opaque JSON array. Each item carries
// productId, name, price, quantity, and an optional customization payload
// from the custom-soap configurator.
type Order struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        *uint          `gorm:"index" json:"userId,omitempty"`
	User          *users.User    `json:"-"`
	Items         datatypes.JSON `gorm:"not null" json:"items"`
	Total         float64        `gorm:"not null" json:"total"`
	Location      string         `json:"location"`
	CustomerEmail string         `gorm:"index" json:"customerEmail"`
	Status        string         `gorm:"not null;default:'Placed'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

const (
	PaymentPending   = "Pending"
	PaymentCompleted = "Completed"
	PaymentFailed    = "Failed"
)

const (
	MethodUPI  = "upi"
	MethodBank = "bank"
)

type Payment struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index;not null" json:"orderId"`
	Order     Order   `json:"-"`
	Method    string  `gorm:"not null" json:"method"`
	Reference string  `json:"reference"`
	Amount    float64 `gorm:"not null" json:"amount"`
	Status    string  `gorm:"not null;default:'Pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
