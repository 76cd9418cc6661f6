package orders

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/orders"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
	"github.com/tu-usuario/tienda-api/pkg/logger"
)

// OrderUseCase orquesta el ciclo de vida de pedidos: creación con reserva de
// stock, reversa al eliminar y transiciones de estado.
type OrderUseCase struct {
	txRunner    TxRunner
	invTxRunner InventoryTxRunner
	orderRepo   repository.OrderRepository
	log         *logger.Logger
}

// NewOrderUseCase construye el caso de uso de pedidos.
func NewOrderUseCase(txRunner TxRunner, invTxRunner InventoryTxRunner, orderRepo repository.OrderRepository, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, invTxRunner: invTxRunner, orderRepo: orderRepo, log: log}
}

// CreateOrderInput entrada para crear un pedido.
type CreateOrderInput struct {
	BuyerID       *string
	CreatedBy     string // obligatorio: quién crea el pedido
	Items         []orders.RequestedItem
	Shipping      entity.Shipping
	PaymentMethod string
}

// CreateOrder crea un pedido reservando stock línea a línea:
//  1. valida identidad y que haya productos;
//  2. agrupa líneas duplicadas antes de tocar stock;
//  3. por cada línea descuenta stock con una actualización condicional
//     (check-and-decrement en una sola operación) y registra la salida;
//  4. arma el pedido con los precios capturados en la reserva (nunca del
//     cliente) y total = suma de subtotales;
//  5. persiste con estado pendiente y código generado.
//
// Todo dentro de una transacción: si una línea falla, las reservas anteriores
// del mismo pedido se revierten con el rollback.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (*entity.Order, error) {
	if in.CreatedBy == "" {
		return nil, domain.ErrUnauthorized
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	if err := orders.ValidateShipping(in.Shipping); err != nil {
		return nil, err
	}
	if !orders.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}

	merged := orders.CoalesceItems(in.Items)
	for _, line := range merged {
		if line.ProductID == "" || line.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New().String(),
		Code:          orders.NewCode(),
		BuyerID:       in.BuyerID,
		CreatedBy:     in.CreatedBy,
		Shipping:      in.Shipping,
		PaymentMethod: in.PaymentMethod,
		ReceiptStatus: entity.ReceiptPending,
		Status:        entity.OrderPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := uc.txRunner.RunOrder(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		orderRepo repository.OrderRepository,
	) error {
		// Reserva secuencial: cada línea debe observar el efecto de las anteriores.
		for _, line := range merged {
			product, err := productRepo.DebitStock(line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			mov := &entity.Movement{
				ID:             uuid.New().String(),
				ProductID:      product.ID,
				Type:           entity.MovementOut,
				Quantity:       line.Quantity,
				FromLocation:   entity.LocationStock,
				Note:           "Pedido generado (creación de orden)",
				StockAfter:     product.Stock,
				WarehouseAfter: product.WarehouseQty,
				CreatedAt:      now,
				CreatedBy:      in.CreatedBy,
			}
			if err := movementRepo.Create(mov); err != nil {
				return err
			}

			item := entity.OrderItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
				SellerID:  product.SellerID,
			}
			item.Subtotal = orders.Subtotal(item)
			order.Items = append(order.Items, item)
		}

		order.Total = orders.ComputeTotal(order.Items)
		order.SellerID = orders.PrimarySeller(order.Items)
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder revierte un pedido: acredita el stock de cada línea y elimina el
// registro al final. Los créditos son de mejor esfuerzo (si un producto ya no
// existe se omite esa línea y se continúa); el pedido se borra de último para
// que un fallo a mitad de la reversa lo deje disponible para reintento.
func (uc *OrderUseCase) DeleteOrder(ctx context.Context, orderID string) error {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}

	for _, item := range order.Items {
		item := item
		err := uc.invTxRunner.Run(ctx, func(
			productRepo repository.ProductRepository,
			movementRepo repository.MovementRepository,
		) error {
			product, err := productRepo.CreditStock(item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			mov := &entity.Movement{
				ID:             uuid.New().String(),
				ProductID:      product.ID,
				Type:           entity.MovementIn,
				Quantity:       item.Quantity,
				ToLocation:     entity.LocationStock,
				Note:           "Pedido eliminado (stock restituido)",
				StockAfter:     product.Stock,
				WarehouseAfter: product.WarehouseQty,
				CreatedAt:      time.Now(),
			}
			return movementRepo.Create(mov)
		})
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// el producto ya no existe: se omite la línea y se continúa
				uc.log.Warn().
					Str("order_id", order.ID).
					Str("product_id", item.ProductID).
					Msg("producto inexistente al restituir stock, línea omitida")
				continue
			}
			return err
		}
	}

	return uc.orderRepo.Delete(order.ID)
}
