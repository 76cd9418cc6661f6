package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ubicaciones de inventario. Cada producto mantiene dos saldos vivos:
// Stock (piso de venta) y WarehouseQty (bodega).
const (
	LocationStock     = "stock"
	LocationWarehouse = "bodega"
)

// ValidLocation indica si s es una ubicación de inventario conocida.
func ValidLocation(s string) bool {
	return s == LocationStock || s == LocationWarehouse
}

// Product representa un producto del catálogo con inventario en dos ubicaciones.
// Stock y WarehouseQty nunca pueden ser negativos; solo cambian vía movimientos.
type Product struct {
	ID           string
	Name         string
	Description  string
	Price        decimal.Decimal // precio de venta, >= 0
	Stock        int64           // unidades en piso de venta
	WarehouseQty int64           // unidades en bodega
	Location     string          // ubicación primaria al crear: stock | bodega
	CategoryID   string
	SupplierID   *string
	SellerID     *string // vendedor dueño del producto (opcional)
	ImageURL     string
	PurchaseCost *decimal.Decimal
	WarehouseSlot string // ubicación física dentro de la bodega (texto libre)
	Active       bool    // false = deshabilitado (referenciado por pedidos históricos)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
