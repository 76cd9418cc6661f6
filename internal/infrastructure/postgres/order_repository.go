package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, code, buyer_id, created_by, seller_id, total, ship_name, ship_city, ship_address, ship_notes, ship_phone, payment_method, receipt_url, receipt_status, status, created_at, updated_at`

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
// La cabecera vive en orders y las líneas en order_items.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera y todas las líneas del pedido.
func (r *OrderRepo) Create(o *entity.Order) error {
	query := `
		INSERT INTO orders (id, code, buyer_id, created_by, seller_id, total, ship_name, ship_city, ship_address, ship_notes, ship_phone, payment_method, receipt_url, receipt_status, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.Code, o.BuyerID, o.CreatedBy, o.SellerID, o.Total,
		o.Shipping.Name, o.Shipping.City, o.Shipping.Address, o.Shipping.Notes, o.Shipping.Phone,
		o.PaymentMethod, nullIfEmpty(o.ReceiptURL), o.ReceiptStatus, o.Status,
		o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	for i, item := range o.Items {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO order_items (order_id, position, product_id, quantity, unit_price, subtotal, seller_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			o.ID, i, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal, item.SellerID,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

func (r *OrderRepo) scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var receiptURL *string
	err := row.Scan(
		&o.ID, &o.Code, &o.BuyerID, &o.CreatedBy, &o.SellerID, &o.Total,
		&o.Shipping.Name, &o.Shipping.City, &o.Shipping.Address, &o.Shipping.Notes, &o.Shipping.Phone,
		&o.PaymentMethod, &receiptURL, &o.ReceiptStatus, &o.Status,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if receiptURL != nil {
		o.ReceiptURL = *receiptURL
	}
	return &o, nil
}

func (r *OrderRepo) loadItems(o *entity.Order) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT product_id, quantity, unit_price, subtotal, seller_id
		FROM order_items WHERE order_id = $1 ORDER BY position`,
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.UnitPrice, &item.Subtotal, &item.SellerID); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, item)
	}
	return rows.Err()
}

// GetByID obtiene el pedido completo (cabecera + líneas). Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := r.scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := r.loadItems(o); err != nil {
		return nil, err
	}
	return o, nil
}

// Update persiste los campos mutables: estados, comprobante, envío y total.
// Las líneas son inmutables tras la creación.
func (r *OrderRepo) Update(o *entity.Order) error {
	query := `
		UPDATE orders
		SET total = $2, ship_name = $3, ship_city = $4, ship_address = $5,
		    ship_notes = $6, ship_phone = $7, receipt_url = $8,
		    receipt_status = $9, status = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		o.ID, o.Total,
		o.Shipping.Name, o.Shipping.City, o.Shipping.Address, o.Shipping.Notes, o.Shipping.Phone,
		nullIfEmpty(o.ReceiptURL), o.ReceiptStatus, o.Status, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el pedido y sus líneas.
func (r *OrderRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		if err := r.loadItems(o); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// ListAll lista todos los pedidos, más recientes primero.
func (r *OrderRepo) ListAll() ([]*entity.Order, error) {
	return r.list(`SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`)
}

// ListByBuyer pedidos de un cliente.
func (r *OrderRepo) ListByBuyer(buyerID string) ([]*entity.Order, error) {
	return r.list(`SELECT `+orderColumns+` FROM orders WHERE buyer_id = $1 ORDER BY created_at DESC`, buyerID)
}

// ListByCreator pedidos creados por un usuario.
func (r *OrderRepo) ListByCreator(creatorID string) ([]*entity.Order, error) {
	return r.list(`SELECT `+orderColumns+` FROM orders WHERE created_by = $1 ORDER BY created_at DESC`, creatorID)
}

// ListBySeller pedidos con al menos una línea del vendedor.
func (r *OrderRepo) ListBySeller(sellerID string) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + ` FROM orders o
		WHERE EXISTS (
			SELECT 1 FROM order_items i WHERE i.order_id = o.id AND i.seller_id = $1
		)
		ORDER BY created_at DESC`
	return r.list(query, sellerID)
}

// CountByProduct cuenta pedidos que referencian al producto.
func (r *OrderRepo) CountByProduct(productID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(DISTINCT order_id) FROM order_items WHERE product_id = $1`,
		productID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders by product: %w", err)
	}
	return count, nil
}
