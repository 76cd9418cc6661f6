package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del historial de movimientos (append-only) sobre
// PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento con su snapshot de saldos.
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, product_id, type, quantity, from_location, to_location, note, stock_after, warehouse_after, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.Type, m.Quantity,
		nullIfEmpty(m.FromLocation), nullIfEmpty(m.ToLocation), m.Note,
		m.StockAfter, m.WarehouseAfter, m.CreatedAt, nullIfEmpty(m.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByProduct devuelve el historial de un producto en orden cronológico.
func (r *MovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	query := `
		SELECT id, product_id, type, quantity,
		       COALESCE(from_location, ''), COALESCE(to_location, ''), note,
		       stock_after, warehouse_after, created_at, COALESCE(created_by, '')
		FROM movements WHERE product_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity,
			&m.FromLocation, &m.ToLocation, &m.Note,
			&m.StockAfter, &m.WarehouseAfter, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
