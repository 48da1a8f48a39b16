package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apporder "github.com/jhoicas/commerce-api/internal/application/order"
	"github.com/jhoicas/commerce-api/internal/domain"
	"github.com/jhoicas/commerce-api/internal/domain/entity"
	"github.com/jhoicas/commerce-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional: el TxRunner toma un snapshot
// del store antes de fn y lo restaura si fn falla, imitando commit/rollback.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	users    map[int64]*entity.User
	products map[int64]*entity.Product
	orders   map[int64]*entity.Order
	nextID   int64

	// errores inyectables
	createOrderErr error
	updateOrderErr error
	getUserErr     error
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[int64]*entity.User),
		products: make(map[int64]*entity.Product),
		orders:   make(map[int64]*entity.Order),
		nextID:   1,
	}
}

func (s *memStore) snapshot() map[int64]entity.Order {
	snap := make(map[int64]entity.Order, len(s.orders))
	for id, o := range s.orders {
		snap[id] = *o
	}
	return snap
}

func (s *memStore) restore(snap map[int64]entity.Order, nextID int64) {
	s.orders = make(map[int64]*entity.Order, len(snap))
	for id, o := range snap {
		cp := o
		s.orders[id] = &cp
	}
	s.nextID = nextID
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	u.ID = r.s.nextID
	r.s.nextID++
	r.s.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	if r.s.getUserErr != nil {
		return nil, r.s.getUserErr
	}
	return r.s.users[id], nil
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(ctx context.Context, p *entity.Product) error {
	p.ID = r.s.nextID
	r.s.nextID++
	r.s.products[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.s.products[id], nil
}

func (r *memProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *memProductRepo) Update(ctx context.Context, p *entity.Product) error { return nil }
func (r *memProductRepo) Delete(ctx context.Context, id int64) error          { return nil }

type memOrderRepo struct{ s *memStore }

func (r *memOrderRepo) Create(ctx context.Context, o *entity.Order) error {
	if r.s.createOrderErr != nil {
		return r.s.createOrderErr
	}
	o.ID = r.s.nextID
	r.s.nextID++
	cp := *o
	r.s.orders[o.ID] = &cp
	return nil
}

func (r *memOrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *memOrderRepo) GetByIDWithRelations(ctx context.Context, id int64) (*entity.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	cp.User = r.s.users[o.UserID]
	cp.Product = r.s.products[o.ProductID]
	return &cp, nil
}

func (r *memOrderRepo) Update(ctx context.Context, o *entity.Order) error {
	if r.s.updateOrderErr != nil {
		return r.s.updateOrderErr
	}
	if _, ok := r.s.orders[o.ID]; !ok {
		return errors.New("orden inexistente en update")
	}
	cp := *o
	r.s.orders[o.ID] = &cp
	return nil
}

type memTxRunner struct {
	s *memStore
	// cuenta de transacciones revertidas, para asertar atomicidad
	rollbacks int
}

func (t *memTxRunner) Run(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	snap := t.s.snapshot()
	nextID := t.s.nextID
	err := fn(&memUserRepo{s: t.s}, &memProductRepo{s: t.s}, &memOrderRepo{s: t.s})
	if err != nil {
		t.s.restore(snap, nextID)
		t.rollbacks++
		return err
	}
	return nil
}

// fixture crea un store con un usuario (id 1) y un producto (id 2, precio 500.00).
func fixture(t *testing.T) (*memStore, *memTxRunner, *apporder.UseCase) {
	t.Helper()
	s := newMemStore()
	user := &entity.User{Username: "carlos", Email: "carlos@example.com", Role: entity.RoleClient}
	require.NoError(t, (&memUserRepo{s: s}).Create(context.Background(), user))
	product := &entity.Product{Name: "Teclado", Price: decimal.RequireFromString("500.00")}
	require.NoError(t, (&memProductRepo{s: s}).Create(context.Background(), product))
	runner := &memTxRunner{s: s}
	return s, runner, apporder.NewUseCase(runner)
}

// ──────────────────────────────────────────────────────────────────────────────
// PlaceOrder
// ──────────────────────────────────────────────────────────────────────────────

func TestPlaceOrder_Exitoso(t *testing.T) {
	s, runner, uc := fixture(t)

	o, err := uc.PlaceOrder(context.Background(), apporder.PlaceOrderInput{
		UserID:    1,
		ProductID: 2,
		Quantity:  2,
	})
	require.NoError(t, err)
	require.NotNil(t, o)

	// TotalPrice = 2 × 500.00 = 1000.00, estado por defecto pending
	assert.True(t, o.TotalPrice.Equal(decimal.RequireFromString("1000.00")),
		"TotalPrice esperado 1000.00, fue %s", o.TotalPrice)
	assert.Equal(t, entity.OrderStatusPending, o.Status)
	assert.NotZero(t, o.ID)
	require.NotNil(t, o.User)
	require.NotNil(t, o.Product)
	assert.Equal(t, "carlos", o.User.Username)

	// Persistida y sin rollback
	assert.Len(t, s.orders, 1)
	assert.Equal(t, 0, runner.rollbacks)
}

func TestPlaceOrder_EstadoExplicito(t *testing.T) {
	_, _, uc := fixture(t)

	o, err := uc.PlaceOrder(context.Background(), apporder.PlaceOrderInput{
		UserID:    1,
		ProductID: 2,
		Quantity:  1,
		Status:    entity.OrderStatusPaid,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, o.Status)
}

func TestPlaceOrder_EstadoDesconocido(t *testing.T) {
	s, runner, uc := fixture(t)

	_, err := uc.PlaceOrder(context.Background(), apporder.PlaceOrderInput{
		UserID:    1,
		ProductID: 2,
		Quantity:  1,
		Status:    "cancelada",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	// Rechazado antes de abrir transacción
	assert.Equal(t, 0, runner.rollbacks)
	assert.Empty(t, s.orders)
}

func TestPlaceOrder_CantidadInvalida(t *testing.T) {
	s, runner, uc := fixture(t)

	for _, qty := range []int{0, -3} {
		_, err := uc.PlaceOrder(context.Background(), apporder.PlaceOrderInput{
			UserID:    1,
			ProductID: 2,
			Quantity:  qty,
		})
		require.Error(t, err)
		// Pasa sin envolver: es un error intencional, no un fallo de tx
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		assert.False(t, errors.Is(err, domain.ErrTransactionFailed))
	}
	assert.Empty(t, s.orders)
	assert.Equal(t, 2, runner.rollbacks)
}

func TestPlaceOrder_UsuarioInexistente(t *testing.T) {
	s, _, uc := fixture(t)

	_, err := uc.PlaceOrder(context.Background(), apporder.PlaceOrderInput{
		UserID:    999,
		ProductID: 2,
		Quantity:  1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
	assert.False(t, errors.Is(err, domain.ErrTransactionFailed))
	assert.Empty(t, s.orders)
}

func TestPlaceOrder_ProductoInexistente(t *testing.T) {
	s, _, uc := fixture(t)

	_, err := uc.PlaceOrder(context.Background(), apporder.PlaceOrderInput{
		UserID:    1,
		ProductID: 999,
		Quantity:  1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProductNotFound))
	assert.Empty(t, s.orders)
}

func TestPlaceOrder_TotalCeroPorPrecioCero(t *testing.T) {
	s, _, uc := fixture(t)
	gratis := &entity.Product{Name: "Gratis", Price: decimal.Zero}
	require.NoError(t, (&memProductRepo{s: s}).Create(context.Background(), gratis))

	_, err := uc.PlaceOrder(context.Background(), apporder.PlaceOrderInput{
		UserID:    1,
		ProductID: gratis.ID,
		Quantity:  3,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, s.orders)
}

func TestPlaceOrder_FalloDeEscrituraRevierte(t *testing.T) {
	s, runner, uc := fixture(t)
	cause := errors.New("connection reset by peer")
	s.createOrderErr = cause

	_, err := uc.PlaceOrder(context.Background(), apporder.PlaceOrderInput{
		UserID:    1,
		ProductID: 2,
		Quantity:  2,
	})
	require.Error(t, err)

	// Fallo inesperado del store: se envuelve conservando la causa
	assert.True(t, errors.Is(err, domain.ErrTransactionFailed))
	var txErr *domain.TransactionError
	require.True(t, errors.As(err, &txErr))
	assert.Equal(t, cause, txErr.Cause)

	// Nada persistido, rollback ejecutado
	assert.Empty(t, s.orders)
	assert.Equal(t, 1, runner.rollbacks)
}

func TestPlaceOrder_FalloDeLecturaRevierte(t *testing.T) {
	s, runner, uc := fixture(t)
	s.getUserErr = errors.New("timeout")

	_, err := uc.PlaceOrder(context.Background(), apporder.PlaceOrderInput{
		UserID:    1,
		ProductID: 2,
		Quantity:  1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTransactionFailed))
	assert.Empty(t, s.orders)
	assert.Equal(t, 1, runner.rollbacks)
}

// El orden de validación es fijo: la cantidad se rechaza antes de buscar al
// usuario, aun cuando el usuario tampoco exista.
func TestPlaceOrder_OrdenDeValidacion(t *testing.T) {
	_, _, uc := fixture(t)

	_, err := uc.PlaceOrder(context.Background(), apporder.PlaceOrderInput{
		UserID:    999, // inexistente
		ProductID: 999, // inexistente
		Quantity:  0,   // inválida: debe reportarse primero
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.False(t, errors.Is(err, domain.ErrUserNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateOrder
// ──────────────────────────────────────────────────────────────────────────────

func placeFixtureOrder(t *testing.T, uc *apporder.UseCase) *entity.Order {
	t.Helper()
	o, err := uc.PlaceOrder(context.Background(), apporder.PlaceOrderInput{
		UserID:    1,
		ProductID: 2,
		Quantity:  2,
	})
	require.NoError(t, err)
	return o
}

func TestUpdateOrder_SoloEstado(t *testing.T) {
	s, _, uc := fixture(t)
	o := placeFixtureOrder(t, uc)

	status := entity.OrderStatusShipped
	updated, err := uc.UpdateOrder(context.Background(), o.ID, apporder.UpdateOrderPatch{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, updated.Status)

	// El resto de campos queda intacto
	assert.Equal(t, o.Quantity, updated.Quantity)
	assert.True(t, o.TotalPrice.Equal(updated.TotalPrice))
	assert.Equal(t, entity.OrderStatusShipped, s.orders[o.ID].Status)
}

func TestUpdateOrder_SinCambiosEsNoOp(t *testing.T) {
	s, _, uc := fixture(t)
	o := placeFixtureOrder(t, uc)
	// inyectado después de crear: si Update se llamara, el test fallaría
	s.updateOrderErr = errors.New("no debería escribirse")

	sameStatus := o.Status
	sameQty := o.Quantity
	updated, err := uc.UpdateOrder(context.Background(), o.ID, apporder.UpdateOrderPatch{
		Status:   &sameStatus,
		Quantity: &sameQty,
	})
	require.NoError(t, err)
	assert.Equal(t, o.ID, updated.ID)
	assert.Equal(t, o.UpdatedAt, updated.UpdatedAt, "no debe tocar UpdatedAt en no-op")
}

func TestUpdateOrder_PatchVacioEsNoOp(t *testing.T) {
	_, _, uc := fixture(t)
	o := placeFixtureOrder(t, uc)

	updated, err := uc.UpdateOrder(context.Background(), o.ID, apporder.UpdateOrderPatch{})
	require.NoError(t, err)
	assert.Equal(t, o.ID, updated.ID)
	assert.Equal(t, o.Status, updated.Status)
}

func TestUpdateOrder_OrdenInexistente(t *testing.T) {
	_, _, uc := fixture(t)

	status := entity.OrderStatusPaid
	_, err := uc.UpdateOrder(context.Background(), 4040, apporder.UpdateOrderPatch{Status: &status})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOrderNotFound))
	assert.False(t, errors.Is(err, domain.ErrTransactionFailed))
}

func TestUpdateOrder_EstadoDesconocido(t *testing.T) {
	_, runner, uc := fixture(t)
	o := placeFixtureOrder(t, uc)

	bad := "devuelto"
	_, err := uc.UpdateOrder(context.Background(), o.ID, apporder.UpdateOrderPatch{Status: &bad})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	// Rechazado antes de abrir transacción (solo la de PlaceOrder corrió)
	assert.Equal(t, 0, runner.rollbacks)
}

func TestUpdateOrder_CambioDeProductoRecargaRelacion(t *testing.T) {
	s, _, uc := fixture(t)
	o := placeFixtureOrder(t, uc)

	otro := &entity.Product{Name: "Mouse", Price: decimal.RequireFromString("80.00")}
	require.NoError(t, (&memProductRepo{s: s}).Create(context.Background(), otro))

	updated, err := uc.UpdateOrder(context.Background(), o.ID, apporder.UpdateOrderPatch{
		ProductID: &otro.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, otro.ID, updated.ProductID)
	require.NotNil(t, updated.Product)
	// La relación es el agregado recargado, no el viejo con el id pisado
	assert.Equal(t, "Mouse", updated.Product.Name)
	// TotalPrice no se recalcula en update salvo patch explícito
	assert.True(t, updated.TotalPrice.Equal(o.TotalPrice))
}

func TestUpdateOrder_CambioAProductoInexistenteRevierte(t *testing.T) {
	s, runner, uc := fixture(t)
	o := placeFixtureOrder(t, uc)

	fantasma := int64(777)
	status := entity.OrderStatusPaid
	_, err := uc.UpdateOrder(context.Background(), o.ID, apporder.UpdateOrderPatch{
		ProductID: &fantasma,
		Status:    &status,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProductNotFound))

	// Rollback: el estado no debe haber cambiado aunque venía en el patch
	assert.Equal(t, entity.OrderStatusPending, s.orders[o.ID].Status)
	assert.Equal(t, 1, runner.rollbacks)
}

func TestUpdateOrder_CambioAUsuarioInexistenteRevierte(t *testing.T) {
	s, _, uc := fixture(t)
	o := placeFixtureOrder(t, uc)

	fantasma := int64(888)
	_, err := uc.UpdateOrder(context.Background(), o.ID, apporder.UpdateOrderPatch{
		UserID: &fantasma,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
	assert.Equal(t, int64(1), s.orders[o.ID].UserID)
}

func TestUpdateOrder_CantidadInvalidaRevierte(t *testing.T) {
	s, _, uc := fixture(t)
	o := placeFixtureOrder(t, uc)

	neg := -1
	_, err := uc.UpdateOrder(context.Background(), o.ID, apporder.UpdateOrderPatch{Quantity: &neg})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, 2, s.orders[o.ID].Quantity)
}

func TestUpdateOrder_FalloDeEscrituraRevierte(t *testing.T) {
	s, runner, uc := fixture(t)
	o := placeFixtureOrder(t, uc)
	cause := errors.New("deadlock detected")
	s.updateOrderErr = cause

	status := entity.OrderStatusDelivered
	_, err := uc.UpdateOrder(context.Background(), o.ID, apporder.UpdateOrderPatch{Status: &status})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTransactionFailed))
	var txErr *domain.TransactionError
	require.True(t, errors.As(err, &txErr))
	assert.Equal(t, cause, txErr.Cause)

	assert.Equal(t, entity.OrderStatusPending, s.orders[o.ID].Status)
	assert.Equal(t, 1, runner.rollbacks)
}
