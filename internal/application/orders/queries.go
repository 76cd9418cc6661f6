package orders

import (
	"context"

	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// GetByID devuelve un pedido o ErrNotFound.
func (uc *OrderUseCase) GetByID(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// ListForActor lista pedidos según el rol: admin ve todos, vendedor los que
// contienen productos suyos, cliente los propios.
func (uc *OrderUseCase) ListForActor(ctx context.Context, actorRole, actorID string) ([]*entity.Order, error) {
	switch actorRole {
	case entity.RoleAdmin:
		return uc.orderRepo.ListAll()
	case entity.RoleVendedor:
		return uc.orderRepo.ListBySeller(actorID)
	case entity.RoleCliente:
		return uc.orderRepo.ListByBuyer(actorID)
	default:
		return nil, domain.ErrForbidden
	}
}

// ListByBuyer pedidos de un cliente (consulta de admin).
func (uc *OrderUseCase) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Order, error) {
	return uc.orderRepo.ListByBuyer(buyerID)
}

// ListByCreator pedidos creados por un usuario (consulta de admin o del propio vendedor).
func (uc *OrderUseCase) ListByCreator(ctx context.Context, creatorID string) ([]*entity.Order, error) {
	return uc.orderRepo.ListByCreator(creatorID)
}
