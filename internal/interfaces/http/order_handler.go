package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/order"
)

// OrderHandler aviso de pedidos al chat de ventas.
type OrderHandler struct {
	uc *order.NotifyUseCase
}

func NewOrderHandler(uc *order.NotifyUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Notify godoc
// @Summary      Notificar pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NotifyOrderRequest  true  "Líneas del pedido"
// @Success      200   {object}  dto.NotifyOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/orders/notify [post]
func (h *OrderHandler) Notify(c *fiber.Ctx) error {
	var in dto.NotifyOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Notify(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
