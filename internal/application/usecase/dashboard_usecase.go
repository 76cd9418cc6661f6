package usecase

import (
	"context"

	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

// DashboardUseCase totales agregados para el tablero de administración.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Counts devuelve los totales de productos, pedidos, pedidos pendientes y usuarios.
func (uc *DashboardUseCase) Counts(ctx context.Context) (*dto.DashboardResponse, error) {
	counts, err := uc.repo.Counts()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Products:      counts.Products,
		Orders:        counts.Orders,
		PendingOrders: counts.PendingOrders,
		Users:         counts.Users,
	}, nil
}
