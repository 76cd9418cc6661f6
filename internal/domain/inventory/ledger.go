package inventory

import (
	"strings"

	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// Balances saldos vivos de un producto en sus dos ubicaciones.
type Balances struct {
	Stock     int64
	Warehouse int64
}

// Apply aplica un movimiento sobre los saldos actuales y devuelve los nuevos
// (servicio de dominio puro; el caller persiste saldos + movimiento en una
// sola transacción).
//
// Reglas:
//   - A_BODEGA (legado) se normaliza a entrada con destino bodega.
//   - Un movimiento con nota "pendiente_pago" se registra pero no altera
//     saldos; el snapshot queda con los saldos vigentes.
//   - entrada suma en el destino, salida resta del origen, traslado resta del
//     origen y suma en el destino (origen y destino deben diferir).
//   - Si algún saldo quedara negativo se rechaza con ErrInsufficientStock y
//     los saldos no cambian (todo-o-nada por movimiento).
//
// En éxito estampa StockAfter/WarehouseAfter en el movimiento, de modo que el
// último snapshot del historial siempre coincide con los saldos vivos.
func Apply(bal Balances, m *entity.Movement) (Balances, error) {
	if m == nil || m.Quantity <= 0 {
		return bal, domain.ErrInvalidInput
	}

	// Normalización del tipo legado
	if m.Type == entity.MovementToWarehouse {
		m.Type = entity.MovementIn
		m.ToLocation = entity.LocationWarehouse
	}

	// Movimiento pendiente de pago: solo auditoría, sin efecto en saldos
	if strings.Contains(m.Note, entity.PendingPaymentTag) {
		m.StockAfter = bal.Stock
		m.WarehouseAfter = bal.Warehouse
		return bal, nil
	}

	next := bal
	switch m.Type {
	case entity.MovementIn:
		if m.ToLocation == entity.LocationStock {
			next.Stock += m.Quantity
		} else {
			// el destino por defecto de una entrada es la bodega
			next.Warehouse += m.Quantity
		}
	case entity.MovementOut:
		if m.FromLocation == entity.LocationStock {
			next.Stock -= m.Quantity
		} else {
			next.Warehouse -= m.Quantity
		}
	case entity.MovementTransfer:
		if !entity.ValidLocation(m.FromLocation) || !entity.ValidLocation(m.ToLocation) || m.FromLocation == m.ToLocation {
			return bal, domain.ErrInvalidInput
		}
		if m.FromLocation == entity.LocationStock {
			next.Stock -= m.Quantity
			next.Warehouse += m.Quantity
		} else {
			next.Warehouse -= m.Quantity
			next.Stock += m.Quantity
		}
	default:
		return bal, domain.ErrInvalidInput
	}

	if next.Stock < 0 || next.Warehouse < 0 {
		return bal, domain.ErrInsufficientStock
	}

	m.StockAfter = next.Stock
	m.WarehouseAfter = next.Warehouse
	return next, nil
}
