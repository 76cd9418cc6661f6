package repository

import "github.com/tu-usuario/tienda-api/internal/domain/entity"

// OrderRepository puerto de persistencia de pedidos.
// GetByID devuelve (nil, nil) si el pedido no existe.
type OrderRepository interface {
	Create(o *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// Update persiste los campos mutables (estados, comprobante, envío, total).
	Update(o *entity.Order) error
	Delete(id string) error
	ListAll() ([]*entity.Order, error)
	ListByBuyer(buyerID string) ([]*entity.Order, error)
	ListByCreator(creatorID string) ([]*entity.Order, error)
	// ListBySeller lista pedidos con al menos una línea del vendedor.
	ListBySeller(sellerID string) ([]*entity.Order, error)
	// CountByProduct cuenta pedidos que referencian al producto (para decidir
	// borrado duro vs. deshabilitado).
	CountByProduct(productID string) (int, error)
}
