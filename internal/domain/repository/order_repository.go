package repository

import (
	"context"

	"github.com/jhoicas/commerce-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
// Create asigna el ID generado por el store sobre el struct recibido.
// GetByIDWithRelations carga además User y Product referenciados; retorna
// (nil, nil) cuando la orden no existe.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	GetByIDWithRelations(ctx context.Context, id int64) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
}
