package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tienda-api/internal/application/usecase"
)

// DashboardHandler totales del tablero (solo admin).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Counts godoc
// @Summary      Totales del tablero
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Counts(c *fiber.Ctx) error {
	out, err := h.uc.Counts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
