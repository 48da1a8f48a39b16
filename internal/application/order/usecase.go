package order

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/commerce-api/internal/domain"
	"github.com/jhoicas/commerce-api/internal/domain/entity"
	"github.com/jhoicas/commerce-api/internal/domain/order"
	"github.com/jhoicas/commerce-api/internal/domain/repository"
)

// UseCase coordina la transacción de colocación y actualización de órdenes:
// abre el scope transaccional, valida invariantes contra datos leídos dentro
// del mismo scope, computa el precio total y escribe la orden con
// Commit/Rollback.
type UseCase struct {
	txRunner TxRunner
}

// NewUseCase construye el coordinador.
func NewUseCase(txRunner TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner}
}

// PlaceOrderInput entrada para colocar una orden. Status vacío equivale a
// "pending".
type PlaceOrderInput struct {
	UserID    int64
	ProductID int64
	Quantity  int
	Status    string
}

// PlaceOrder crea una orden de forma atómica: valida la cantidad, busca
// usuario y producto dentro de la transacción (la lectura queda consistente
// con la escritura), computa TotalPrice = Quantity × Product.Price, valida el
// total y persiste. Cualquier fallo hace rollback; los errores de validación
// y de "no encontrado" pasan al caller sin envolver, el resto se envuelve en
// TransactionError con la causa.
func (uc *UseCase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*entity.Order, error) {
	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	if !entity.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: estado de orden desconocido %q", domain.ErrInvalidInput, status)
	}

	var created *entity.Order
	err := uc.txRunner.Run(ctx, func(
		userRepo repository.UserRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		if err := order.ValidateQuantity(in.Quantity); err != nil {
			return err
		}

		user, err := userRepo.GetByID(ctx, in.UserID)
		if err != nil {
			return err
		}
		if err := order.ValidateUserExists(user); err != nil {
			return err
		}

		product, err := productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if err := order.ValidateProductExists(product); err != nil {
			return err
		}

		totalPrice := product.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))
		if err := order.ValidateTotalPrice(totalPrice); err != nil {
			return err
		}

		now := time.Now()
		o := &entity.Order{
			UserID:     user.ID,
			ProductID:  product.ID,
			Quantity:   in.Quantity,
			TotalPrice: totalPrice,
			Status:     status,
			CreatedAt:  now,
			UpdatedAt:  now,
			User:       user,
			Product:    product,
		}
		if err := orderRepo.Create(ctx, o); err != nil {
			return err
		}
		created = o
		return nil
	})
	if err != nil {
		log.Error().Err(err).
			Int64("user_id", in.UserID).
			Int64("product_id", in.ProductID).
			Msg("colocación de orden revertida")
		return nil, domain.WrapTransaction(err)
	}
	return created, nil
}

// UpdateOrderPatch campos parciales para actualizar una orden. nil significa
// "no tocar" (omitido ≠ poner en vacío).
type UpdateOrderPatch struct {
	UserID     *int64
	ProductID  *int64
	Quantity   *int
	TotalPrice *decimal.Decimal
	Status     *string
}

// UpdateOrder aplica un patch parcial sobre la orden dentro de una
// transacción. Solo persiste si al menos un campo cambió; el commit de no-op
// es válido y retorna la orden sin modificar. Al cambiar UserID o ProductID se
// vuelve a buscar el agregado referenciado dentro de la misma tx en lugar de
// mutar la relación cargada (evita persistir un objeto con campos viejos y el
// id sobrescrito).
func (uc *UseCase) UpdateOrder(ctx context.Context, orderID int64, patch UpdateOrderPatch) (*entity.Order, error) {
	if patch.Status != nil && !entity.ValidOrderStatus(*patch.Status) {
		return nil, fmt.Errorf("%w: estado de orden desconocido %q", domain.ErrInvalidInput, *patch.Status)
	}

	var updated *entity.Order
	err := uc.txRunner.Run(ctx, func(
		userRepo repository.UserRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		o, err := orderRepo.GetByIDWithRelations(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrOrderNotFound
		}

		dirty := false

		if patch.UserID != nil && o.UserID != *patch.UserID {
			user, err := userRepo.GetByID(ctx, *patch.UserID)
			if err != nil {
				return err
			}
			if err := order.ValidateUserExists(user); err != nil {
				return err
			}
			o.UserID = user.ID
			o.User = user
			dirty = true
		}

		if patch.ProductID != nil && o.ProductID != *patch.ProductID {
			product, err := productRepo.GetByID(ctx, *patch.ProductID)
			if err != nil {
				return err
			}
			if err := order.ValidateProductExists(product); err != nil {
				return err
			}
			o.ProductID = product.ID
			o.Product = product
			dirty = true
		}

		if patch.Quantity != nil && o.Quantity != *patch.Quantity {
			if err := order.ValidateQuantity(*patch.Quantity); err != nil {
				return err
			}
			o.Quantity = *patch.Quantity
			dirty = true
		}

		if patch.TotalPrice != nil && !o.TotalPrice.Equal(*patch.TotalPrice) {
			if err := order.ValidateTotalPrice(*patch.TotalPrice); err != nil {
				return err
			}
			o.TotalPrice = *patch.TotalPrice
			dirty = true
		}

		if patch.Status != nil && o.Status != *patch.Status {
			o.Status = *patch.Status
			dirty = true
		}

		if dirty {
			o.UpdatedAt = time.Now()
			if err := orderRepo.Update(ctx, o); err != nil {
				return err
			}
		}
		updated = o
		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("order_id", orderID).Msg("actualización de orden revertida")
		return nil, domain.WrapTransaction(err)
	}
	return updated, nil
}
