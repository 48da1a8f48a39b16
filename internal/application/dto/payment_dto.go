package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcessPaymentRequest entrada para procesar un pago.
type ProcessPaymentRequest struct {
	ProductID     int64  `json:"product_id" validate:"required,gt=0"`
	UserID        int64  `json:"user_id" validate:"required,gt=0"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=credit_card paypal"`
	Status        string `json:"status" validate:"omitempty,oneof=pending paid shipped delivered"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID            int64           `json:"id"`
	OrderID       int64           `json:"order_id"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	Reference     string          `json:"reference"`
	CreatedAt     time.Time       `json:"created_at"`
}

// PaymentListResponse lista paginada de pagos.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
}
