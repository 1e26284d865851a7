package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/usecase"
)

// ProductImageHandler imágenes sueltas. Con onlyWrapped sirve /printed (ediciones de libro).
type ProductImageHandler struct {
	uc          *usecase.ProductImageUseCase
	onlyWrapped bool
}

func NewProductImageHandler(uc *usecase.ProductImageUseCase, onlyWrapped bool) *ProductImageHandler {
	return &ProductImageHandler{uc: uc, onlyWrapped: onlyWrapped}
}

// List godoc
// @Summary      Imágenes de productos activos
// @Tags         product-images
// @Produce      json
// @Param        limit   query  int  false  "Límite (máx 100)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.ProductImageResponse]
// @Router       /api/product-images [get]
func (h *ProductImageHandler) List(c *fiber.Ctx) error {
	p, err := page(c)
	if err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), p, h.onlyWrapped)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ProductImageHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"), h.onlyWrapped)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Subir imagen de producto
// @Description  Tras guardar la fila se quita el fondo; si falla, queda la imagen original.
// @Tags         product-images
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        product_id  formData  string  true   "ID del producto"
// @Param        color_id    formData  string  false  "ID del color"
// @Param        wrapper     formData  string  false  "qattiq | yumshoq"
// @Param        price       formData  string  true   "Precio"
// @Param        image       formData  file    true   "Imagen"
// @Success      201  {object}  dto.ProductImageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/product-images [post]
func (h *ProductImageHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductImageRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in, formUpload(c, "image"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT/PATCH. En /printed solo aplica a imágenes con muqova.
func (h *ProductImageHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductImageRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id := c.Params("id")
	if h.onlyWrapped {
		if _, err := h.uc.Get(c.UserContext(), id, true); err != nil {
			return writeError(c, err)
		}
	}
	out, err := h.uc.Update(c.UserContext(), id, in, formUpload(c, "image"), isPatch(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ProductImageHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
