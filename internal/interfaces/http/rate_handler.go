package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/usecase"
)

// RateHandler calificaciones. El autor sale del token.
type RateHandler struct {
	uc *usecase.RateUseCase
}

func NewRateHandler(uc *usecase.RateUseCase) *RateHandler {
	return &RateHandler{uc: uc}
}

// List godoc
// @Summary      Listar calificaciones
// @Tags         rates
// @Produce      json
// @Param        search  query  string  false  "Comentario o valor exacto"
// @Param        limit   query  int     false  "Límite (máx 100)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.RateResponse]
// @Router       /api/rates [get]
func (h *RateHandler) List(c *fiber.Ctx) error {
	var q dto.SearchQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *RateHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Calificar producto
// @Tags         rates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RateRequest  true  "product_id, rate (0..5), comment"
// @Success      201   {object}  dto.RateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/rates [post]
func (h *RateHandler) Create(c *fiber.Ctx) error {
	var in dto.RateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *RateHandler) Update(c *fiber.Ctx) error {
	var in dto.RateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in, isPatch(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *RateHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
