package orders

import "github.com/tu-usuario/tienda-api/internal/domain/entity"

// CanTransition decide si un actor puede cambiar el estado de un pedido
// (chequeo de capacidad centralizado; los handlers no duplican la lógica).
//   - admin: cualquier pedido.
//   - vendedor: solo pedidos que contengan al menos un producto suyo.
//   - cliente: nunca cambia estados.
func CanTransition(role, actorID string, o *entity.Order, target string) bool {
	if o == nil || !ValidStatus(target) {
		return false
	}
	switch role {
	case entity.RoleAdmin:
		return true
	case entity.RoleVendedor:
		for _, it := range o.Items {
			if it.SellerID != nil && *it.SellerID == actorID {
				return true
			}
		}
		return false
	default:
		return false
	}
}
