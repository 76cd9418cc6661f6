package orders

import (
	"context"

	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios que necesita la creación de pedidos. Toda la reserva de stock
// de un pedido (todas sus líneas) y la inserción del pedido ocurren en la
// misma transacción: si una línea falla, se revierten los descuentos previos.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// InventoryTxRunner transacción corta para acreditar stock línea por línea al
// eliminar un pedido (mejor esfuerzo: cada crédito es independiente).
type InventoryTxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
