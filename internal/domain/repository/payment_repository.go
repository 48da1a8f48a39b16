package repository

import (
	"context"

	"github.com/jhoicas/commerce-api/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para Payment (DIP).
// Los pagos son inmutables: no hay Update ni Delete.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id int64) (*entity.Payment, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Payment, error)
}
