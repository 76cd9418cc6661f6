package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/inventory"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

// MovementUseCase registra movimientos de inventario de forma transaccional
// (entrada, salida, traslado) con bloqueo de fila y Commit/Rollback.
type MovementUseCase struct {
	txRunner TxRunner
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para registrar un movimiento.
// Para entrada: ToLocation; para salida: FromLocation; para traslado ambos.
type MovementInput struct {
	ProductID    string
	Type         string
	Quantity     int64
	FromLocation string
	ToLocation   string
	Note         string
	CreatedBy    string
}

// RegisterMovement inicia una transacción, bloquea la fila del producto,
// aplica el movimiento vía el libro (dominio puro) y persiste saldos +
// registro en el historial. Devuelve los saldos resultantes.
func (uc *MovementUseCase) RegisterMovement(ctx context.Context, in MovementInput) (inventory.Balances, error) {
	switch in.Type {
	case entity.MovementIn, entity.MovementOut, entity.MovementTransfer, entity.MovementToWarehouse:
	default:
		return inventory.Balances{}, domain.ErrInvalidInput
	}
	if in.ProductID == "" || in.Quantity <= 0 {
		return inventory.Balances{}, domain.ErrInvalidInput
	}

	var result inventory.Balances
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		mov := &entity.Movement{
			ID:           uuid.New().String(),
			ProductID:    product.ID,
			Type:         in.Type,
			Quantity:     in.Quantity,
			FromLocation: in.FromLocation,
			ToLocation:   in.ToLocation,
			Note:         in.Note,
			CreatedAt:    time.Now(),
			CreatedBy:    in.CreatedBy,
		}

		bal := inventory.Balances{Stock: product.Stock, Warehouse: product.WarehouseQty}
		next, err := inventory.Apply(bal, mov)
		if err != nil {
			return err
		}
		if err := productRepo.UpdateBalances(product.ID, next.Stock, next.Warehouse); err != nil {
			return err
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}
		result = next
		return nil
	})
	if err != nil {
		return inventory.Balances{}, err
	}
	return result, nil
}

// Relocate mueve cantidad entre stock y bodega registrando un traslado.
// Falla con ErrInsufficientStock si el origen no tiene la cantidad.
func (uc *MovementUseCase) Relocate(ctx context.Context, productID, from, to string, qty int64, actorID string) (inventory.Balances, error) {
	if !entity.ValidLocation(from) || !entity.ValidLocation(to) || from == to {
		return inventory.Balances{}, domain.ErrInvalidInput
	}
	return uc.RegisterMovement(ctx, MovementInput{
		ProductID:    productID,
		Type:         entity.MovementTransfer,
		Quantity:     qty,
		FromLocation: from,
		ToLocation:   to,
		Note:         fmt.Sprintf("Traslado a %s", to),
		CreatedBy:    actorID,
	})
}
