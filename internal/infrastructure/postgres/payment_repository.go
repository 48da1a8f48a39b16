package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/commerce-api/internal/domain/entity"
	"github.com/jhoicas/commerce-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL.
// Los pagos son inmutables una vez escritos: solo insert y lecturas.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de persistencia para pagos. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un nuevo pago y asigna el ID generado.
func (r *PaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (order_id, amount, status, payment_method, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		payment.OrderID, payment.Amount, payment.Status, payment.PaymentMethod,
		payment.Reference, payment.CreatedAt,
	).Scan(&payment.ID)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID. Retorna (nil, nil) si no existe.
func (r *PaymentRepo) GetByID(ctx context.Context, id int64) (*entity.Payment, error) {
	query := `
		SELECT id, order_id, amount, status, payment_method, reference, created_at
		FROM payments WHERE id = $1`
	var p entity.Payment
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.OrderID, &p.Amount, &p.Status, &p.PaymentMethod, &p.Reference, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// List lista pagos con paginación, más recientes primero.
func (r *PaymentRepo) List(ctx context.Context, limit, offset int) ([]*entity.Payment, error) {
	query := `
		SELECT id, order_id, amount, status, payment_method, reference, created_at
		FROM payments ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.Amount, &p.Status, &p.PaymentMethod, &p.Reference, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
