package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea solicitada por el cliente. El precio unitario y el
// subtotal los fija el backend al reservar; cualquier valor enviado se ignora.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	BuyerID       *string            `json:"buyer_id,omitempty"` // staff puede crear a nombre de un cliente
	Items         []OrderItemRequest `json:"items"`
	Name          string             `json:"name"`
	City          string             `json:"city"`
	Address       string             `json:"address"`
	Notes         string             `json:"notes,omitempty"`
	Phone         string             `json:"phone"`
	PaymentMethod string             `json:"payment_method"`
}

// UpdateOrderStatusRequest body para PUT /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateReceiptStatusRequest body para PUT /api/orders/:id/receipt/status.
type UpdateReceiptStatusRequest struct {
	Status string `json:"status"`
}

// AttachReceiptRequest body para PUT /api/orders/:id/receipt.
type AttachReceiptRequest struct {
	URL string `json:"url"`
}

// UpdateShippingRequest body para PUT /api/orders/:id (campos opcionales).
type UpdateShippingRequest struct {
	Name    *string `json:"name,omitempty"`
	City    *string `json:"city,omitempty"`
	Address *string `json:"address,omitempty"`
	Notes   *string `json:"notes,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// OrderItemResponse línea persistida del pedido.
type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	SellerID  *string         `json:"seller_id,omitempty"`
}

// OrderResponse representación completa de un pedido.
type OrderResponse struct {
	ID            string              `json:"id"`
	Code          string              `json:"code"`
	BuyerID       *string             `json:"buyer_id,omitempty"`
	CreatedBy     string              `json:"created_by"`
	SellerID      *string             `json:"seller_id,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	Total         decimal.Decimal     `json:"total"`
	Name          string              `json:"name"`
	City          string              `json:"city"`
	Address       string              `json:"address"`
	Notes         string              `json:"notes,omitempty"`
	Phone         string              `json:"phone"`
	PaymentMethod string              `json:"payment_method"`
	ReceiptURL    string              `json:"receipt_url,omitempty"`
	ReceiptStatus string              `json:"receipt_status"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// DashboardResponse totales del tablero.
type DashboardResponse struct {
	Products      int `json:"products"`
	Orders        int `json:"orders"`
	PendingOrders int `json:"pending_orders"`
	Users         int `json:"users"`
}
