package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// InitialQty siembra exactamente uno de los dos saldos según Location.
type CreateProductRequest struct {
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	CategoryID    string           `json:"category_id"`
	SupplierID    *string          `json:"supplier_id,omitempty"`
	ImageURL      string           `json:"image_url,omitempty"`
	PurchaseCost  *decimal.Decimal `json:"purchase_cost,omitempty"`
	WarehouseSlot string           `json:"warehouse_slot,omitempty"`
	Location      string           `json:"location"` // stock | bodega
	InitialQty    int64            `json:"initial_qty"`
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionales).
// Los saldos no se editan aquí; solo cambian vía movimientos.
type UpdateProductRequest struct {
	Name         *string          `json:"name,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	SupplierID   *string          `json:"supplier_id,omitempty"`
	ImageURL     *string          `json:"image_url,omitempty"`
	PurchaseCost *decimal.Decimal `json:"purchase_cost,omitempty"`
}

// ProductResponse representación de un producto con sus saldos vivos.
type ProductResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	Stock         int64            `json:"stock"`
	WarehouseQty  int64            `json:"warehouse_qty"`
	Location      string           `json:"location"`
	CategoryID    string           `json:"category_id"`
	SupplierID    *string          `json:"supplier_id,omitempty"`
	SellerID      *string          `json:"seller_id,omitempty"`
	ImageURL      string           `json:"image_url,omitempty"`
	PurchaseCost  *decimal.Decimal `json:"purchase_cost,omitempty"`
	WarehouseSlot string           `json:"warehouse_slot,omitempty"`
	Active        bool             `json:"active"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
