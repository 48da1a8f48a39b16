package order

import (
	"context"

	"github.com/jhoicas/commerce-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el flujo de órdenes:
// commit si fn retorna nil, rollback en cualquier otro caso, y liberación del
// scope en toda salida.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
