package payment

import (
	"context"

	apporder "github.com/jhoicas/commerce-api/internal/application/order"
	"github.com/jhoicas/commerce-api/internal/domain/entity"
)

// OrderPlacer interfaz para integrar el procesamiento de pagos con el
// coordinador transaccional de órdenes. La orden se crea de forma atómica
// antes de escribir el pago, así un Payment nunca referencia una orden
// inexistente.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, in apporder.PlaceOrderInput) (*entity.Order, error)
}
