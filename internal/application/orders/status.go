package orders

import (
	"context"
	"time"

	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/orders"
)

// SetStatus cambia el estado general del pedido, con autorización centralizada
// en orders.CanTransition. Confirmar un pedido aprueba el comprobante como
// efecto secundario pero NO toca stock: el descuento ocurrió al crear.
// Confirmar un pedido ya confirmado devuelve ErrConflict sin mutación.
func (uc *OrderUseCase) SetStatus(ctx context.Context, orderID, target, actorRole, actorID string) (*entity.Order, error) {
	if !orders.ValidStatus(target) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !orders.CanTransition(actorRole, actorID, order, target) {
		return nil, domain.ErrForbidden
	}

	if target == entity.OrderConfirmed {
		if order.Status == entity.OrderConfirmed {
			return nil, domain.ErrConflict
		}
		order.ReceiptStatus = entity.ReceiptApproved
	}
	order.Status = target
	return uc.persist(order)
}

// SetReceiptStatus cambia el estado del comprobante (solo admin/vendedor).
// No hay estado terminal: el staff puede re-ajustarlo libremente.
func (uc *OrderUseCase) SetReceiptStatus(ctx context.Context, orderID, status, actorRole string) (*entity.Order, error) {
	if actorRole != entity.RoleAdmin && actorRole != entity.RoleVendedor {
		return nil, domain.ErrForbidden
	}
	if !orders.ValidReceiptStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	order.ReceiptStatus = status
	return uc.persist(order)
}

// AttachReceipt guarda la URL del comprobante subido y deja su estado en
// pendiente para revisión del staff.
func (uc *OrderUseCase) AttachReceipt(ctx context.Context, orderID, url string) (*entity.Order, error) {
	if url == "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	order.ReceiptURL = url
	order.ReceiptStatus = entity.ReceiptPending
	return uc.persist(order)
}

// UpdateShippingInput campos opcionales de envío a actualizar.
type UpdateShippingInput struct {
	Name    *string
	City    *string
	Address *string
	Notes   *string
	Phone   *string
}

// UpdateShipping actualiza parcialmente los datos de envío del pedido.
func (uc *OrderUseCase) UpdateShipping(ctx context.Context, orderID string, in UpdateShippingInput) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		order.Shipping.Name = *in.Name
	}
	if in.City != nil {
		order.Shipping.City = *in.City
	}
	if in.Address != nil {
		order.Shipping.Address = *in.Address
	}
	if in.Notes != nil {
		order.Shipping.Notes = *in.Notes
	}
	if in.Phone != nil {
		order.Shipping.Phone = *in.Phone
	}
	if err := orders.ValidateShipping(order.Shipping); err != nil {
		return nil, err
	}
	return uc.persist(order)
}

// persist recalcula el total (nunca se confía en el valor almacenado a ciegas)
// y guarda los campos mutables del pedido.
func (uc *OrderUseCase) persist(order *entity.Order) (*entity.Order, error) {
	order.Total = orders.ComputeTotal(order.Items)
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}
