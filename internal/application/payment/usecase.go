package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	apporder "github.com/jhoicas/commerce-api/internal/application/order"
	"github.com/jhoicas/commerce-api/internal/domain"
	"github.com/jhoicas/commerce-api/internal/domain/entity"
	"github.com/jhoicas/commerce-api/internal/domain/repository"
)

// UseCase procesa pagos: crea la orden vía el coordinador transaccional y
// luego persiste el Payment que la referencia. No hay integración con una
// pasarela real; el éxito del cobro se simula incondicionalmente.
type UseCase struct {
	orders      OrderPlacer
	productRepo repository.ProductRepository
	paymentRepo repository.PaymentRepository
}

// NewUseCase construye el caso de uso de pagos.
func NewUseCase(orders OrderPlacer, productRepo repository.ProductRepository, paymentRepo repository.PaymentRepository) *UseCase {
	return &UseCase{orders: orders, productRepo: productRepo, paymentRepo: paymentRepo}
}

// ProcessPaymentInput entrada para procesar un pago. PaymentMethod y Status
// son opcionales; Status vacío deja la orden en "pending".
type ProcessPaymentInput struct {
	ProductID     int64
	UserID        int64
	Quantity      int
	PaymentMethod string
	Status        string
}

// ProcessPayment busca el producto (lectura fuera del scope de la orden),
// computa el total, invoca PlaceOrder y persiste el Payment con
// Amount = TotalPrice y Status = "completed". Los fallos de PlaceOrder
// propagan sin cambios: en ese punto no hay ningún Payment escrito que
// revertir.
func (uc *UseCase) ProcessPayment(ctx context.Context, in ProcessPaymentInput) (*entity.Payment, error) {
	if in.PaymentMethod != "" && !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, fmt.Errorf("%w: método de pago desconocido %q", domain.ErrInvalidInput, in.PaymentMethod)
	}

	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, domain.WrapTransaction(err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	order, err := uc.orders.PlaceOrder(ctx, apporder.PlaceOrderInput{
		UserID:    in.UserID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Status:    in.Status,
	})
	if err != nil {
		return nil, err
	}

	var method *string
	if in.PaymentMethod != "" {
		m := in.PaymentMethod
		method = &m
	}
	p := &entity.Payment{
		OrderID:       order.ID,
		Amount:        order.TotalPrice,
		Status:        entity.PaymentStatusCompleted,
		PaymentMethod: method,
		Reference:     uuid.New().String(),
		CreatedAt:     time.Now(),
		Order:         order,
	}
	if err := uc.paymentRepo.Create(ctx, p); err != nil {
		// La orden ya quedó confirmada; el pago fallido se reporta como fallo
		// transaccional con la causa.
		log.Error().Err(err).Int64("order_id", order.ID).Msg("persistencia de pago falló tras confirmar la orden")
		return nil, domain.WrapTransaction(err)
	}
	return p, nil
}

// GetPayment obtiene un pago por ID.
func (uc *UseCase) GetPayment(ctx context.Context, id int64) (*entity.Payment, error) {
	p, err := uc.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrPaymentNotFound
	}
	return p, nil
}

// ListPayments lista pagos con paginación.
func (uc *UseCase) ListPayments(ctx context.Context, limit, offset int) ([]*entity.Payment, error) {
	return uc.paymentRepo.List(ctx, limit, offset)
}
