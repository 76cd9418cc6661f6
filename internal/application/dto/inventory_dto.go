package dto

import "time"

// RegisterMovementRequest body para POST /api/products/:id/movements.
// Para entrada: to_location; para salida: from_location; para traslado ambos.
type RegisterMovementRequest struct {
	Type         string `json:"type"`
	Quantity     int64  `json:"quantity"`
	FromLocation string `json:"from_location,omitempty"`
	ToLocation   string `json:"to_location,omitempty"`
	Note         string `json:"note,omitempty"`
}

// RelocateRequest body para PUT /api/products/:id/location.
type RelocateRequest struct {
	From     string `json:"from"` // stock | bodega
	To       string `json:"to"`
	Quantity int64  `json:"quantity"`
}

// BalancesResponse saldos vivos tras aplicar un movimiento.
type BalancesResponse struct {
	Stock        int64 `json:"stock"`
	WarehouseQty int64 `json:"warehouse_qty"`
}

// MovementResponse entrada del historial de movimientos de un producto.
type MovementResponse struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	Quantity       int64     `json:"quantity"`
	FromLocation   string    `json:"from_location,omitempty"`
	ToLocation     string    `json:"to_location,omitempty"`
	Note           string    `json:"note,omitempty"`
	StockAfter     int64     `json:"stock_after"`
	WarehouseAfter int64     `json:"warehouse_after"`
	CreatedAt      time.Time `json:"created_at"`
	CreatedBy      string    `json:"created_by,omitempty"`
}
