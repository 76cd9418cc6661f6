package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/application/orders"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	domorders "github.com/tu-usuario/tienda-api/internal/domain/orders"
)

// OrderHandler maneja el ciclo de vida de pedidos (protegido).
type OrderHandler struct {
	uc *orders.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido
// @Description  Reserva el stock de todas las líneas en una transacción; precios
//
//	y total los fija el backend.
//
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "items, datos de envío y método de pago"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actorID := GetUserID(c)
	buyerID := in.BuyerID
	if GetRole(c) == entity.RoleCliente {
		// Un cliente siempre compra a su propio nombre.
		buyerID = &actorID
	}
	order, err := h.uc.CreateOrder(c.Context(), orders.CreateOrderInput{
		BuyerID:   buyerID,
		CreatedBy: actorID,
		Items: lo.Map(in.Items, func(it dto.OrderItemRequest, _ int) domorders.RequestedItem {
			return domorders.RequestedItem{ProductID: it.ProductID, Quantity: it.Quantity}
		}),
		Shipping: entity.Shipping{
			Name:    in.Name,
			City:    in.City,
			Address: in.Address,
			Notes:   in.Notes,
			Phone:   in.Phone,
		},
		PaymentMethod: in.PaymentMethod,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toOrderResponse(order))
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrderResponse(order))
}

// List godoc
// @Summary      Listar pedidos según el rol
// @Description  admin ve todos; vendedor los que contienen productos suyos;
//
//	cliente los propios.
//
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListForActor(c.Context(), GetRole(c), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrderResponses(list))
}

// ListByBuyer godoc
// @Summary      Pedidos de un cliente (admin)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del cliente"
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders/buyer/{id} [get]
func (h *OrderHandler) ListByBuyer(c *fiber.Ctx) error {
	list, err := h.uc.ListByBuyer(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrderResponses(list))
}

// ListByCreator godoc
// @Summary      Pedidos creados por un usuario (admin)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del creador"
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders/creator/{id} [get]
func (h *OrderHandler) ListByCreator(c *fiber.Ctx) error {
	list, err := h.uc.ListByCreator(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrderResponses(list))
}

// UpdateStatus godoc
// @Summary      Cambiar estado del pedido
// @Description  Confirmar aprueba el comprobante; confirmar dos veces responde 409.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "nuevo estado"
// @Success      200   {object}  dto.OrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.SetStatus(c.Context(), c.Params("id"), in.Status, GetRole(c), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrderResponse(order))
}

// UpdateReceiptStatus godoc
// @Summary      Cambiar estado del comprobante (staff)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdateReceiptStatusRequest  true  "pendiente | aprobado | rechazado"
// @Success      200   {object}  dto.OrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt/status [put]
func (h *OrderHandler) UpdateReceiptStatus(c *fiber.Ctx) error {
	var in dto.UpdateReceiptStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.SetReceiptStatus(c.Context(), c.Params("id"), in.Status, GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrderResponse(order))
}

// AttachReceipt godoc
// @Summary      Adjuntar comprobante de pago
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.AttachReceiptRequest  true  "URL del comprobante"
// @Success      200   {object}  dto.OrderResponse
// @Router       /api/orders/{id}/receipt [put]
func (h *OrderHandler) AttachReceipt(c *fiber.Ctx) error {
	var in dto.AttachReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.AttachReceipt(c.Context(), c.Params("id"), in.URL)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrderResponse(order))
}

// UpdateShipping godoc
// @Summary      Actualizar datos de envío
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdateShippingRequest  true  "campos opcionales de envío"
// @Success      200   {object}  dto.OrderResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) UpdateShipping(c *fiber.Ctx) error {
	var in dto.UpdateShippingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.UpdateShipping(c.Context(), c.Params("id"), orders.UpdateShippingInput{
		Name:    in.Name,
		City:    in.City,
		Address: in.Address,
		Notes:   in.Notes,
		Phone:   in.Phone,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrderResponse(order))
}

// Delete godoc
// @Summary      Eliminar pedido restituyendo stock
// @Tags         orders
// @Security     Bearer
// @Param        id  path  string  true  "ID del pedido"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteOrder(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		Code:      o.Code,
		BuyerID:   o.BuyerID,
		CreatedBy: o.CreatedBy,
		SellerID:  o.SellerID,
		Items: lo.Map(o.Items, func(it entity.OrderItem, _ int) dto.OrderItemResponse {
			return dto.OrderItemResponse{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
				Subtotal:  it.Subtotal,
				SellerID:  it.SellerID,
			}
		}),
		Total:         o.Total,
		Name:          o.Shipping.Name,
		City:          o.Shipping.City,
		Address:       o.Shipping.Address,
		Notes:         o.Shipping.Notes,
		Phone:         o.Shipping.Phone,
		PaymentMethod: o.PaymentMethod,
		ReceiptURL:    o.ReceiptURL,
		ReceiptStatus: o.ReceiptStatus,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func toOrderResponses(list []*entity.Order) []dto.OrderResponse {
	return lo.Map(list, func(o *entity.Order, _ int) dto.OrderResponse {
		return *toOrderResponse(o)
	})
}
