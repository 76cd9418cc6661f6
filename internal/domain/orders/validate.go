package orders

import (
	"regexp"

	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// Patrón de teléfono: dígitos, +, -, espacios; entre 7 y 15 caracteres.
var phoneRe = regexp.MustCompile(`^[0-9+\-\s]{7,15}$`)

// ValidPhone indica si el teléfono cumple el patrón exigido.
func ValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// ValidateShipping valida los datos de entrega obligatorios del pedido.
func ValidateShipping(s entity.Shipping) error {
	if s.Name == "" || s.City == "" || s.Address == "" {
		return domain.ErrInvalidInput
	}
	if !ValidPhone(s.Phone) {
		return domain.ErrInvalidInput
	}
	return nil
}

// ValidStatus indica si s es un estado de pedido conocido.
func ValidStatus(s string) bool {
	switch s {
	case entity.OrderPending, entity.OrderConfirmed, entity.OrderVerified,
		entity.OrderShipped, entity.OrderDelivered, entity.OrderRejected, entity.OrderCancelled:
		return true
	}
	return false
}

// ValidReceiptStatus indica si s es un estado de comprobante conocido.
func ValidReceiptStatus(s string) bool {
	switch s {
	case entity.ReceiptPending, entity.ReceiptApproved, entity.ReceiptRejected:
		return true
	}
	return false
}

// ValidPaymentMethod indica si s es un método de pago aceptado.
func ValidPaymentMethod(s string) bool {
	return s == entity.PaymentNequi || s == entity.PaymentCash
}
