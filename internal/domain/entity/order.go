package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

// ValidOrderStatus reporta si s es un estado de orden conocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// Order referencia exactamente un User y un Product. TotalPrice se congela al
// momento de la creación (Quantity × Product.Price) y no se recalcula si el
// precio del producto cambia después.
type Order struct {
	ID         int64
	UserID     int64
	ProductID  int64
	Quantity   int
	TotalPrice decimal.Decimal
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Relaciones cargadas bajo demanda (nil si no se pidieron).
	User    *User
	Product *Product
}
