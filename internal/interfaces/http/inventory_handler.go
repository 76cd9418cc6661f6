package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/application/inventory"
)

// InventoryHandler maneja los movimientos de inventario de un producto (protegido).
type InventoryHandler struct {
	uc *inventory.MovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.MovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  entrada suma en destino, salida resta del origen, traslado mueve
//
//	entre stock y bodega. Una nota pendiente_pago registra sin aplicar.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.RegisterMovementRequest  true  "type, quantity, from/to_location, note"
// @Success      201   {object}  dto.BalancesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	balances, err := h.uc.RegisterMovement(c.Context(), inventory.MovementInput{
		ProductID:    c.Params("id"),
		Type:         in.Type,
		Quantity:     in.Quantity,
		FromLocation: in.FromLocation,
		ToLocation:   in.ToLocation,
		Note:         in.Note,
		CreatedBy:    GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.BalancesResponse{
		Stock:        balances.Stock,
		WarehouseQty: balances.Warehouse,
	})
}

// Relocate godoc
// @Summary      Trasladar unidades entre stock y bodega
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.RelocateRequest  true  "from, to, quantity"
// @Success      200   {object}  dto.BalancesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/location [put]
func (h *InventoryHandler) Relocate(c *fiber.Ctx) error {
	var in dto.RelocateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	balances, err := h.uc.Relocate(c.Context(), c.Params("id"), in.From, in.To, in.Quantity, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.BalancesResponse{
		Stock:        balances.Stock,
		WarehouseQty: balances.Warehouse,
	})
}
