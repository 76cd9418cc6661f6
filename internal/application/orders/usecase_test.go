package orders_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apporders "github.com/tu-usuario/tienda-api/internal/application/orders"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	domorders "github.com/tu-usuario/tienda-api/internal/domain/orders"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
	"github.com/tu-usuario/tienda-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. El TxRunner falso simula el
// rollback real: toma un snapshot del estado antes de ejecutar el callback y lo
// restaura si este falla.
// ──────────────────────────────────────────────────────────────────────────────

type memDB struct {
	products  map[string]*entity.Product
	movements map[string][]*entity.Movement
	orders    map[string]*entity.Order
}

func newMemDB() *memDB {
	return &memDB{
		products:  map[string]*entity.Product{},
		movements: map[string][]*entity.Movement{},
		orders:    map[string]*entity.Order{},
	}
}

func (db *memDB) snapshot() *memDB {
	snap := newMemDB()
	for id, p := range db.products {
		cp := *p
		snap.products[id] = &cp
	}
	for id, movs := range db.movements {
		snap.movements[id] = append([]*entity.Movement(nil), movs...)
	}
	for id, o := range db.orders {
		cp := *o
		snap.orders[id] = &cp
	}
	return snap
}

func (db *memDB) restore(snap *memDB) {
	db.products = snap.products
	db.movements = snap.movements
	db.orders = snap.orders
}

type memProductRepo struct{ db *memDB }

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.db.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.db.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.db.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) UpdateBalances(id string, stock, warehouseQty int64) error {
	p, ok := r.db.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	p.WarehouseQty = warehouseQty
	return nil
}

func (r *memProductRepo) DebitStock(id string, qty int64) (*entity.Product, error) {
	p, ok := r.db.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Stock < qty {
		return nil, domain.ErrInsufficientStock
	}
	p.Stock -= qty
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) CreditStock(id string, qty int64) (*entity.Product, error) {
	p, ok := r.db.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Stock += qty
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) { return nil, nil }

func (r *memProductRepo) SetActive(id string, active bool) error {
	p, ok := r.db.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Active = active
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.db.products, id)
	return nil
}

type memMovementRepo struct{ db *memDB }

func (r *memMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.db.movements[m.ProductID] = append(r.db.movements[m.ProductID], &cp)
	return nil
}

func (r *memMovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	return r.db.movements[productID], nil
}

type memOrderRepo struct{ db *memDB }

func (r *memOrderRepo) Create(o *entity.Order) error {
	cp := *o
	r.db.orders[o.ID] = &cp
	return nil
}

func (r *memOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.db.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *memOrderRepo) Update(o *entity.Order) error {
	if _, ok := r.db.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *o
	r.db.orders[o.ID] = &cp
	return nil
}

func (r *memOrderRepo) Delete(id string) error {
	delete(r.db.orders, id)
	return nil
}

func (r *memOrderRepo) ListAll() ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.db.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *memOrderRepo) ListByBuyer(string) ([]*entity.Order, error)   { return nil, nil }
func (r *memOrderRepo) ListByCreator(string) ([]*entity.Order, error) { return nil, nil }
func (r *memOrderRepo) ListBySeller(string) ([]*entity.Order, error)  { return nil, nil }

func (r *memOrderRepo) CountByProduct(productID string) (int, error) {
	count := 0
	for _, o := range r.db.orders {
		for _, it := range o.Items {
			if it.ProductID == productID {
				count++
				break
			}
		}
	}
	return count, nil
}

type memTxRunner struct{ db *memDB }

func (t *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	snap := t.db.snapshot()
	if err := fn(&memProductRepo{t.db}, &memMovementRepo{t.db}); err != nil {
		t.db.restore(snap)
		return err
	}
	return nil
}

func (t *memTxRunner) RunOrder(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	orderRepo repository.OrderRepository,
) error) error {
	snap := t.db.snapshot()
	if err := fn(&memProductRepo{t.db}, &memMovementRepo{t.db}, &memOrderRepo{t.db}); err != nil {
		t.db.restore(snap)
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func strptr(s string) *string { return &s }

func newTestUseCase(db *memDB) *apporders.OrderUseCase {
	tx := &memTxRunner{db}
	return apporders.NewOrderUseCase(tx, tx, &memOrderRepo{db}, logger.Nop())
}

func seedProduct(db *memDB, id string, stock int64, price int64, sellerID *string) {
	db.products[id] = &entity.Product{
		ID:       id,
		Name:     gofakeit.ProductName(),
		Price:    decimal.NewFromInt(price),
		Stock:    stock,
		Location: entity.LocationStock,
		SellerID: sellerID,
		Active:   true,
	}
}

func validShipping() entity.Shipping {
	return entity.Shipping{
		Name:    gofakeit.Name(),
		City:    gofakeit.City(),
		Address: gofakeit.Street(),
		Phone:   "300 123-4567",
	}
}

func createInput(items ...domorders.RequestedItem) apporders.CreateOrderInput {
	return apporders.CreateOrderInput{
		CreatedBy:     "user-1",
		Items:         items,
		Shipping:      validShipping(),
		PaymentMethod: entity.PaymentNequi,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateOrder
// ──────────────────────────────────────────────────────────────────────────────

// Ejemplo completo del flujo: stock 10, pedido de 3 unidades a $100 → stock 7 y
// total 300; al eliminar el pedido el stock vuelve a 10.
func TestCreateOrder_FlujoCompletoConReversa(t *testing.T) {
	db := newMemDB()
	seedProduct(db, "A", 10, 100, nil)
	uc := newTestUseCase(db)
	ctx := context.Background()

	order, err := uc.CreateOrder(ctx, createInput(domorders.RequestedItem{ProductID: "A", Quantity: 3}))
	require.NoError(t, err)

	assert.Equal(t, int64(7), db.products["A"].Stock, "la reserva debe descontar el stock")
	require.Len(t, order.Items, 1)
	assert.True(t, decimal.NewFromInt(300).Equal(order.Total), "total = 3 * 100")
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, entity.ReceiptPending, order.ReceiptStatus)
	assert.Regexp(t, `^ORD-\d+-\d{1,4}$`, order.Code)

	movs := db.movements["A"]
	require.Len(t, movs, 1, "la reserva registra una salida en el historial")
	assert.Equal(t, entity.MovementOut, movs[0].Type)
	assert.Equal(t, int64(7), movs[0].StockAfter, "el snapshot debe coincidir con el saldo vivo")

	require.NoError(t, uc.DeleteOrder(ctx, order.ID))
	assert.Equal(t, int64(10), db.products["A"].Stock, "eliminar el pedido restituye el stock")
	_, ok := db.orders[order.ID]
	assert.False(t, ok, "el pedido debe desaparecer tras la reversa")
}

func TestCreateOrder_LineasDuplicadasSeAgrupan(t *testing.T) {
	db := newMemDB()
	seedProduct(db, "A", 10, 50, nil)
	uc := newTestUseCase(db)

	order, err := uc.CreateOrder(context.Background(), createInput(
		domorders.RequestedItem{ProductID: "A", Quantity: 2},
		domorders.RequestedItem{ProductID: "A", Quantity: 3},
	))
	require.NoError(t, err)

	require.Len(t, order.Items, 1, "las líneas duplicadas deben quedar en una sola")
	assert.Equal(t, int64(5), order.Items[0].Quantity)
	assert.Equal(t, int64(5), db.products["A"].Stock, "un solo descuento de 5, no 2 y 3 por separado")
	assert.Len(t, db.movements["A"], 1, "un solo movimiento de salida, no dos")
}

func TestCreateOrder_StockInsuficiente_RevierteTodasLasReservas(t *testing.T) {
	db := newMemDB()
	seedProduct(db, "A", 10, 100, nil)
	seedProduct(db, "B", 1, 80, nil)
	uc := newTestUseCase(db)

	_, err := uc.CreateOrder(context.Background(), createInput(
		domorders.RequestedItem{ProductID: "A", Quantity: 2},
		domorders.RequestedItem{ProductID: "B", Quantity: 5},
	))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(10), db.products["A"].Stock,
		"la reserva previa de A debe revertirse cuando B falla (misma transacción)")
	assert.Equal(t, int64(1), db.products["B"].Stock)
	assert.Empty(t, db.movements["A"], "no deben quedar movimientos de un pedido fallido")
	assert.Empty(t, db.orders, "no debe persistirse el pedido")
}

func TestCreateOrder_ProductoInexistente(t *testing.T) {
	db := newMemDB()
	uc := newTestUseCase(db)

	_, err := uc.CreateOrder(context.Background(), createInput(
		domorders.RequestedItem{ProductID: "no-existe", Quantity: 1},
	))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateOrder_PrecioYVendedorDelBackend(t *testing.T) {
	db := newMemDB()
	seedProduct(db, "A", 5, 1200, strptr("v1"))
	seedProduct(db, "B", 5, 300, strptr("v1"))
	uc := newTestUseCase(db)

	order, err := uc.CreateOrder(context.Background(), createInput(
		domorders.RequestedItem{ProductID: "A", Quantity: 1},
		domorders.RequestedItem{ProductID: "B", Quantity: 2},
	))
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(1800).Equal(order.Total), "1*1200 + 2*300")
	require.NotNil(t, order.SellerID, "pedido mono-vendedor debe tener vendedor principal")
	assert.Equal(t, "v1", *order.SellerID)
}

func TestCreateOrder_MultiVendedor_SinVendedorPrincipal(t *testing.T) {
	db := newMemDB()
	seedProduct(db, "A", 5, 100, strptr("v1"))
	seedProduct(db, "B", 5, 100, strptr("v2"))
	uc := newTestUseCase(db)

	order, err := uc.CreateOrder(context.Background(), createInput(
		domorders.RequestedItem{ProductID: "A", Quantity: 1},
		domorders.RequestedItem{ProductID: "B", Quantity: 1},
	))
	require.NoError(t, err)
	assert.Nil(t, order.SellerID)
}

func TestCreateOrder_Validaciones(t *testing.T) {
	db := newMemDB()
	seedProduct(db, "A", 5, 100, nil)
	uc := newTestUseCase(db)
	ctx := context.Background()

	// Sin creador → no autenticado
	in := createInput(domorders.RequestedItem{ProductID: "A", Quantity: 1})
	in.CreatedBy = ""
	_, err := uc.CreateOrder(ctx, in)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Sin productos → pedido vacío
	_, err = uc.CreateOrder(ctx, createInput())
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)

	// Cantidad inválida
	_, err = uc.CreateOrder(ctx, createInput(domorders.RequestedItem{ProductID: "A", Quantity: 0}))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Teléfono fuera de patrón
	in = createInput(domorders.RequestedItem{ProductID: "A", Quantity: 1})
	in.Shipping.Phone = "abc"
	_, err = uc.CreateOrder(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Método de pago desconocido
	in = createInput(domorders.RequestedItem{ProductID: "A", Quantity: 1})
	in.PaymentMethod = "Cheque"
	_, err = uc.CreateOrder(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Nada de lo anterior debe haber tocado stock
	assert.Equal(t, int64(5), db.products["A"].Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteOrder
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteOrder_AcreditaCadaLinea(t *testing.T) {
	db := newMemDB()
	seedProduct(db, "A", 10, 100, nil)
	seedProduct(db, "B", 3, 200, nil)
	uc := newTestUseCase(db)
	ctx := context.Background()

	order, err := uc.CreateOrder(ctx, createInput(
		domorders.RequestedItem{ProductID: "A", Quantity: 4},
		domorders.RequestedItem{ProductID: "B", Quantity: 1},
	))
	require.NoError(t, err)
	require.Equal(t, int64(6), db.products["A"].Stock)
	require.Equal(t, int64(2), db.products["B"].Stock)

	require.NoError(t, uc.DeleteOrder(ctx, order.ID))

	assert.Equal(t, int64(10), db.products["A"].Stock, "A debe recuperar 4 unidades")
	assert.Equal(t, int64(3), db.products["B"].Stock, "B debe recuperar 1 unidad")
	assert.Empty(t, db.orders, "el registro del pedido se elimina al final")

	// Cada crédito queda en el historial como entrada a stock
	movsA := db.movements["A"]
	require.Len(t, movsA, 2)
	assert.Equal(t, entity.MovementIn, movsA[1].Type)
	assert.Equal(t, entity.LocationStock, movsA[1].ToLocation)
	assert.Equal(t, int64(10), movsA[1].StockAfter)
}

func TestDeleteOrder_ProductoDesaparecido_OmiteLineaYContinua(t *testing.T) {
	db := newMemDB()
	seedProduct(db, "A", 10, 100, nil)
	seedProduct(db, "B", 10, 100, nil)
	uc := newTestUseCase(db)
	ctx := context.Background()

	order, err := uc.CreateOrder(ctx, createInput(
		domorders.RequestedItem{ProductID: "A", Quantity: 2},
		domorders.RequestedItem{ProductID: "B", Quantity: 3},
	))
	require.NoError(t, err)

	// B se elimina del catálogo antes de revertir el pedido
	delete(db.products, "B")

	require.NoError(t, uc.DeleteOrder(ctx, order.ID),
		"la reversa continúa aunque un producto ya no exista")
	assert.Equal(t, int64(10), db.products["A"].Stock, "la línea recuperable sí se acredita")
	assert.Empty(t, db.orders)
}

func TestDeleteOrder_Inexistente(t *testing.T) {
	uc := newTestUseCase(newMemDB())
	err := uc.DeleteOrder(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estados
// ──────────────────────────────────────────────────────────────────────────────

func TestSetStatus_ConfirmarDosVeces_Conflicto(t *testing.T) {
	db := newMemDB()
	seedProduct(db, "A", 10, 100, nil)
	uc := newTestUseCase(db)
	ctx := context.Background()

	order, err := uc.CreateOrder(ctx, createInput(domorders.RequestedItem{ProductID: "A", Quantity: 1}))
	require.NoError(t, err)
	stockAfterCreate := db.products["A"].Stock

	confirmed, err := uc.SetStatus(ctx, order.ID, entity.OrderConfirmed, entity.RoleAdmin, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderConfirmed, confirmed.Status)
	assert.Equal(t, entity.ReceiptApproved, confirmed.ReceiptStatus,
		"confirmar aprueba el comprobante como efecto secundario")
	assert.Equal(t, stockAfterCreate, db.products["A"].Stock,
		"confirmar no vuelve a tocar stock: el descuento fue al crear")

	_, err = uc.SetStatus(ctx, order.ID, entity.OrderConfirmed, entity.RoleAdmin, "admin-1")
	assert.ErrorIs(t, err, domain.ErrConflict, "la segunda confirmación reporta conflicto")
	assert.Equal(t, entity.OrderConfirmed, db.orders[order.ID].Status, "sin mutación adicional")
}

func TestSetStatus_VendedorSoloSusPedidos(t *testing.T) {
	db := newMemDB()
	seedProduct(db, "A", 10, 100, strptr("v1"))
	uc := newTestUseCase(db)
	ctx := context.Background()

	order, err := uc.CreateOrder(ctx, createInput(domorders.RequestedItem{ProductID: "A", Quantity: 1}))
	require.NoError(t, err)

	_, err = uc.SetStatus(ctx, order.ID, entity.OrderShipped, entity.RoleVendedor, "v2")
	assert.ErrorIs(t, err, domain.ErrForbidden, "vendedor ajeno no puede transicionar")

	updated, err := uc.SetStatus(ctx, order.ID, entity.OrderShipped, entity.RoleVendedor, "v1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderShipped, updated.Status)
}

func TestSetReceiptStatus_RolesYValores(t *testing.T) {
	db := newMemDB()
	seedProduct(db, "A", 10, 100, nil)
	uc := newTestUseCase(db)
	ctx := context.Background()

	order, err := uc.CreateOrder(ctx, createInput(domorders.RequestedItem{ProductID: "A", Quantity: 1}))
	require.NoError(t, err)

	_, err = uc.SetReceiptStatus(ctx, order.ID, entity.ReceiptApproved, entity.RoleCliente)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.SetReceiptStatus(ctx, order.ID, "en-revision", entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	updated, err := uc.SetReceiptStatus(ctx, order.ID, entity.ReceiptApproved, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.ReceiptApproved, updated.ReceiptStatus)

	// El estado del comprobante no tiene candado terminal: se puede re-ajustar
	updated, err = uc.SetReceiptStatus(ctx, order.ID, entity.ReceiptRejected, entity.RoleVendedor)
	require.NoError(t, err)
	assert.Equal(t, entity.ReceiptRejected, updated.ReceiptStatus)
}

func TestAttachReceipt_DejaComprobantePendiente(t *testing.T) {
	db := newMemDB()
	seedProduct(db, "A", 10, 100, nil)
	uc := newTestUseCase(db)
	ctx := context.Background()

	order, err := uc.CreateOrder(ctx, createInput(domorders.RequestedItem{ProductID: "A", Quantity: 1}))
	require.NoError(t, err)

	_, err = uc.SetReceiptStatus(ctx, order.ID, entity.ReceiptRejected, entity.RoleAdmin)
	require.NoError(t, err)

	updated, err := uc.AttachReceipt(ctx, order.ID, "https://cdn.example.com/comprobantes/abc.png")
	require.NoError(t, err)
	assert.Equal(t, entity.ReceiptPending, updated.ReceiptStatus,
		"subir un nuevo comprobante reinicia la revisión")
	assert.NotEmpty(t, updated.ReceiptURL)
}
