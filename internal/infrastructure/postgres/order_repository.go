package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/commerce-api/internal/domain/entity"
	"github.com/jhoicas/commerce-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una nueva orden y asigna el ID generado por el store.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (user_id, product_id, quantity, total_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		order.UserID, order.ProductID, order.Quantity, order.TotalPrice, order.Status,
		order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID sin cargar relaciones. Retorna (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	query := `
		SELECT id, user_id, product_id, quantity, total_price, status, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.UserID, &o.ProductID, &o.Quantity, &o.TotalPrice, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// GetByIDWithRelations obtiene la orden junto con el User y el Product
// referenciados (un solo round-trip). Retorna (nil, nil) si no existe.
func (r *OrderRepo) GetByIDWithRelations(ctx context.Context, id int64) (*entity.Order, error) {
	query := `
		SELECT o.id, o.user_id, o.product_id, o.quantity, o.total_price, o.status, o.created_at, o.updated_at,
		       u.id, u.username, u.email, u.password_hash, u.role, u.created_at, u.updated_at,
		       p.id, p.name, p.description, p.price, p.created_at, p.updated_at
		FROM orders o
		JOIN users u ON u.id = o.user_id
		JOIN products p ON p.id = o.product_id
		WHERE o.id = $1`
	var o entity.Order
	var u entity.User
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.UserID, &o.ProductID, &o.Quantity, &o.TotalPrice, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt,
		&p.ID, &p.Name, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order with relations: %w", err)
	}
	o.User = &u
	o.Product = &p
	return &o, nil
}

// Update persiste los campos mutables de una orden existente.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	query := `
		UPDATE orders SET user_id = $2, product_id = $3, quantity = $4, total_price = $5, status = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		order.ID, order.UserID, order.ProductID, order.Quantity, order.TotalPrice, order.Status, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update order %d: fila no encontrada", order.ID)
	}
	return nil
}
