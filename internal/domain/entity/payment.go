package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pago.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Métodos de pago aceptados.
const (
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodPaypal     = "paypal"
)

// ValidPaymentMethod reporta si m es un método de pago conocido.
func ValidPaymentMethod(m string) bool {
	return m == PaymentMethodCreditCard || m == PaymentMethodPaypal
}

// Payment referencia exactamente una Order ya confirmada. Amount es igual al
// TotalPrice de la orden al momento de procesar; el registro es inmutable una
// vez escrito.
type Payment struct {
	ID            int64
	OrderID       int64
	Amount        decimal.Decimal
	Status        string
	PaymentMethod *string // credit_card, paypal; nil si no se informó
	Reference     string  // uuid de seguimiento asignado al procesar
	CreatedAt     time.Time

	// Relación cargada bajo demanda.
	Order *Order
}
