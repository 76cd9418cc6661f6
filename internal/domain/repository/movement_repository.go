package repository

import "github.com/tu-usuario/tienda-api/internal/domain/entity"

// MovementRepository puerto del historial de movimientos (append-only).
type MovementRepository interface {
	Create(m *entity.Movement) error
	ListByProduct(productID string) ([]*entity.Movement, error)
}
