package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Price es la única fuente del
// precio unitario al momento de crear una orden; el núcleo de órdenes nunca
// lo modifica.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, siempre > 0
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
