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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, price, stock, warehouse_qty, location, category_id, supplier_id, seller_id, image_url, purchase_cost, warehouse_slot, active, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var categoryID *string
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.WarehouseQty,
		&p.Location, &categoryID, &p.SupplierID, &p.SellerID, &p.ImageURL,
		&p.PurchaseCost, &p.WarehouseSlot, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	return &p, nil
}

// Create persiste un nuevo producto con sus saldos iniciales.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, stock, warehouse_qty, location, category_id, supplier_id, seller_id, image_url, purchase_cost, warehouse_slot, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price,
		product.Stock, product.WarehouseQty, product.Location,
		nullIfEmpty(product.CategoryID), product.SupplierID, product.SellerID,
		product.ImageURL, product.PurchaseCost, product.WarehouseSlot,
		product.Active, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// Update actualiza los datos del catálogo. Los saldos no se modifican aquí:
// cambian vía UpdateBalances/DebitStock/CreditStock.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, supplier_id = $5,
		    image_url = $6, purchase_cost = $7, warehouse_slot = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price,
		product.SupplierID, product.ImageURL, product.PurchaseCost,
		product.WarehouseSlot, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateBalances persiste ambos saldos vivos (resultado del libro de movimientos).
func (r *ProductRepo) UpdateBalances(productID string, stock, warehouseQty int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, warehouse_qty = $3, updated_at = now() WHERE id = $1`,
		productID, stock, warehouseQty,
	)
	if err != nil {
		return fmt.Errorf("update product balances: %w", err)
	}
	return nil
}

// DebitStock descuenta qty del saldo de stock con una actualización condicional:
// el WHERE exige saldo suficiente, así el check y el decremento son una sola
// operación y dos pedidos concurrentes no pueden sobrevender.
func (r *ProductRepo) DebitStock(productID string, qty int64) (*entity.Product, error) {
	query := `
		UPDATE products SET stock = stock - $2, updated_at = now()
		WHERE id = $1 AND stock >= $2
		RETURNING ` + productColumns
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, productID, qty))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguir producto inexistente de saldo insuficiente.
			existing, getErr := r.GetByID(productID)
			if getErr != nil {
				return nil, getErr
			}
			if existing == nil {
				return nil, domain.ErrNotFound
			}
			return nil, domain.ErrInsufficientStock
		}
		return nil, fmt.Errorf("debit stock: %w", err)
	}
	return p, nil
}

// CreditStock acredita qty al saldo de stock y devuelve el producto actualizado.
func (r *ProductRepo) CreditStock(productID string, qty int64) (*entity.Product, error) {
	query := `
		UPDATE products SET stock = stock + $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + productColumns
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, productID, qty))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("credit stock: %w", err)
	}
	return p, nil
}

// List lista productos con filtros: por ubicación (con saldo > 0 en ella),
// solo activos y paginación.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	if filter.OnlyActive {
		query += ` AND active = true`
	}
	switch filter.Location {
	case entity.LocationStock:
		query += ` AND stock > 0`
	case entity.LocationWarehouse:
		query += ` AND warehouse_qty > 0`
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// SetActive habilita o deshabilita un producto (borrado suave).
func (r *ProductRepo) SetActive(productID string, active bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET active = $2, updated_at = now() WHERE id = $1`,
		productID, active,
	)
	if err != nil {
		return fmt.Errorf("set product active: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID (borrado duro; el historial de movimientos
// se elimina en cascada).
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
