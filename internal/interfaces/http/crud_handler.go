package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-api/internal/application/dto"
)

// crudService operaciones por id comunes a los recursos JSON del catálogo.
type crudService[Req, Resp any] interface {
	Get(ctx context.Context, id string) (*Resp, error)
	Create(ctx context.Context, in Req) (*Resp, error)
	Update(ctx context.Context, id string, in Req, partial bool) (*Resp, error)
	Delete(ctx context.Context, id string) error
}

type pagedService[Resp any] interface {
	List(ctx context.Context, page dto.PageRequest) (dto.ListResponse[Resp], error)
}

// CRUDHandler handler genérico para marcas, colores, tallas, autores, monedas, variantes y ficha técnica.
type CRUDHandler[Req, Resp any] struct {
	svc crudService[Req, Resp]
}

// NewCRUDHandler construye el handler sobre el caso de uso del recurso.
func NewCRUDHandler[Req, Resp any](svc crudService[Req, Resp]) *CRUDHandler[Req, Resp] {
	return &CRUDHandler[Req, Resp]{svc: svc}
}

func (h *CRUDHandler[Req, Resp]) Get(c *fiber.Ctx) error {
	out, err := h.svc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *CRUDHandler[Req, Resp]) Create(c *fiber.Ctx) error {
	var in Req
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update atiende PUT (reemplazo) y PATCH (parcial).
func (h *CRUDHandler[Req, Resp]) Update(c *fiber.Ctx) error {
	var in Req
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.Update(c.UserContext(), c.Params("id"), in, isPatch(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *CRUDHandler[Req, Resp]) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// listPaged listado con limit/offset.
func listPaged[Resp any](svc pagedService[Resp]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := page(c)
		if err != nil {
			return invalidQuery(c)
		}
		out, err := svc.List(c.UserContext(), p)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
}

// crudRoutes registra la lectura por id pública y las escrituras protegidas por guard.
func crudRoutes[Req, Resp any](r fiber.Router, guard func(fiber.Handler) []fiber.Handler, h *CRUDHandler[Req, Resp]) {
	r.Get("/:id", h.Get)
	r.Post("/", guard(h.Create)...)
	r.Put("/:id", guard(h.Update)...)
	r.Patch("/:id", guard(h.Update)...)
	r.Delete("/:id", guard(h.Delete)...)
}
