package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para colocar una orden.
type CreateOrderRequest struct {
	UserID    int64  `json:"user_id" validate:"required,gt=0"`
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Status    string `json:"status" validate:"omitempty,oneof=pending paid shipped delivered"`
}

// UpdateOrderRequest patch parcial de una orden. Los campos omitidos no se tocan.
type UpdateOrderRequest struct {
	UserID     *int64           `json:"user_id" validate:"omitempty,gt=0"`
	ProductID  *int64           `json:"product_id" validate:"omitempty,gt=0"`
	Quantity   *int             `json:"quantity" validate:"omitempty,gt=0"`
	TotalPrice *decimal.Decimal `json:"total_price"`
	Status     *string          `json:"status" validate:"omitempty,oneof=pending paid shipped delivered"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
