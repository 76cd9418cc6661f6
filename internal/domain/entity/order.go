package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del pedido.
const (
	OrderPending   = "pendiente"  // creado, esperando acción
	OrderConfirmed = "confirmado" // pago confirmado; el stock ya se descontó al crear
	OrderVerified  = "verificado" // revisado manualmente por admin/vendedor
	OrderShipped   = "enviado"
	OrderDelivered = "entregado"
	OrderRejected  = "rechazado"
	OrderCancelled = "cancelado"
)

// Estados del comprobante de pago.
const (
	ReceiptPending  = "pendiente"
	ReceiptApproved = "aprobado"
	ReceiptRejected = "rechazado"
)

// Métodos de pago aceptados.
const (
	PaymentNequi = "Nequi"    // billetera digital
	PaymentCash  = "Efectivo" // contra entrega
)

// OrderItem es una línea del pedido. UnitPrice se captura del producto en el
// momento de la reserva y no se vuelve a leer; Subtotal = Quantity * UnitPrice.
type OrderItem struct {
	ProductID string
	Quantity  int64 // >= 1
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
	SellerID  *string
}

// Shipping datos de entrega del pedido.
type Shipping struct {
	Name    string
	City    string
	Address string
	Notes   string
	Phone   string // dígitos, +, -, espacios; 7 a 15 caracteres
}

// Order es el agregado de pedido. Total es derivado (suma de subtotales) y se
// recalcula en cada persistencia; nunca se confía en el valor del cliente.
// SellerID se asigna solo si todas las líneas pertenecen al mismo vendedor.
type Order struct {
	ID            string
	Code          string  // ORD-<timestamp>-<random>, único e inmutable
	BuyerID       *string // cliente (opcional: un vendedor puede crear a nombre de otro)
	CreatedBy     string  // quién creó el pedido (obligatorio)
	SellerID      *string // vendedor principal si el pedido es mono-vendedor
	Items         []OrderItem
	Total         decimal.Decimal
	Shipping      Shipping
	PaymentMethod string
	ReceiptURL    string
	ReceiptStatus string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
