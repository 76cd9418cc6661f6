package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas del tablero sobre PostgreSQL.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// Counts devuelve los totales del tablero en una sola consulta.
func (r *DashboardRepo) Counts() (*repository.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products WHERE active = true),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = $1),
			(SELECT COUNT(*) FROM users)`
	var c repository.DashboardCounts
	err := r.q.QueryRow(context.Background(), query, entity.OrderPending).Scan(
		&c.Products, &c.Orders, &c.PendingOrders, &c.Users,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &c, nil
}
