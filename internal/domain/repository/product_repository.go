package repository

import "github.com/tu-usuario/tienda-api/internal/domain/entity"

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	Location   string // "stock" | "bodega" | "" (todos); filtra con saldo > 0
	OnlyActive bool
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID/GetForUpdate devuelven (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE); solo tiene
	// sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateBalances persiste ambos saldos vivos (resultado del libro de movimientos).
	UpdateBalances(productID string, stock, warehouseQty int64) error
	// DebitStock descuenta qty del saldo de stock en una sola operación
	// condicional (check-and-decrement); devuelve el producto actualizado o
	// ErrInsufficientStock / ErrNotFound.
	DebitStock(productID string, qty int64) (*entity.Product, error)
	// CreditStock acredita qty al saldo de stock y devuelve el producto actualizado.
	CreditStock(productID string, qty int64) (*entity.Product, error)
	List(filter ProductFilter) ([]*entity.Product, error)
	SetActive(productID string, active bool) error
	Delete(id string) error
}
