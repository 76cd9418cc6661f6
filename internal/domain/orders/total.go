package orders

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// Subtotal calcula el subtotal de una línea: cantidad * precio unitario.
func Subtotal(item entity.OrderItem) decimal.Decimal {
	return item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity))
}

// ComputeTotal recalcula el total del pedido como la suma de los subtotales de
// sus líneas. Se invoca antes de cada persistencia; el total del cliente se
// ignora siempre.
func ComputeTotal(items []entity.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return total
}

// PrimarySeller devuelve el vendedor principal del pedido: el único vendedor
// al que pertenecen todas las líneas con vendedor. Si hay más de un vendedor
// distinto (o ninguna línea tiene vendedor) devuelve nil.
func PrimarySeller(items []entity.OrderItem) *string {
	var seller *string
	for _, it := range items {
		if it.SellerID == nil {
			continue
		}
		if seller == nil {
			s := *it.SellerID
			seller = &s
			continue
		}
		if *seller != *it.SellerID {
			return nil
		}
	}
	return seller
}

// CoalesceItems agrupa líneas repetidas del mismo producto sumando cantidades,
// conservando el orden de primera aparición. Evita que un payload duplicado
// genere descuentos de stock redundantes.
func CoalesceItems(items []RequestedItem) []RequestedItem {
	merged := make([]RequestedItem, 0, len(items))
	index := make(map[string]int, len(items))
	for _, it := range items {
		if pos, ok := index[it.ProductID]; ok {
			merged[pos].Quantity += it.Quantity
			continue
		}
		index[it.ProductID] = len(merged)
		merged = append(merged, it)
	}
	return merged
}

// RequestedItem línea solicitada por el cliente antes de la reserva: solo
// producto y cantidad; el precio lo fija el backend al reservar.
type RequestedItem struct {
	ProductID string
	Quantity  int64
}
