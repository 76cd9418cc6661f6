package entity

import "time"

// Tipos de movimiento de inventario.
// MovementToWarehouse es un alias legado: se normaliza a entrada con destino bodega.
const (
	MovementIn          = "entrada"
	MovementOut         = "salida"
	MovementTransfer    = "traslado"
	MovementToWarehouse = "A_BODEGA"
)

// PendingPaymentTag marca un movimiento como pendiente de pago: se registra en
// el historial pero NO se aplica a los saldos vivos (solo auditoría).
const PendingPaymentTag = "pendiente_pago"

// Movement es un registro inmutable del historial de inventario de un producto.
// StockAfter y WarehouseAfter son el snapshot de ambos saldos después de aplicar
// el movimiento; deben coincidir siempre con los saldos vivos del producto.
type Movement struct {
	ID             string
	ProductID      string
	Type           string // entrada, salida, traslado
	Quantity       int64  // siempre > 0; el signo lo determina el tipo
	FromLocation   string // origen (salida, traslado)
	ToLocation     string // destino (entrada, traslado)
	Note           string
	StockAfter     int64
	WarehouseAfter int64
	CreatedAt      time.Time
	CreatedBy      string // UserID
}
