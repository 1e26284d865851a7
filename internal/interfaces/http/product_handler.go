package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/usecase"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

// ProductHandler productos del catálogo. Con forceType fijado sirve /books.
type ProductHandler struct {
	uc        *usecase.ProductUseCase
	forceType entity.ProductType
}

// NewProductHandler construye el handler. forceType vacío = todos los tipos.
func NewProductHandler(uc *usecase.ProductUseCase, forceType entity.ProductType) *ProductHandler {
	return &ProductHandler{uc: uc, forceType: forceType}
}

// List godoc
// @Summary      Listar productos activos
// @Tags         products
// @Produce      json
// @Param        category         query  string  false  "Subcadena del título de la categoría"
// @Param        brand            query  string  false  "Subcadena del título de la marca"
// @Param        size             query  string  false  "ID de talla"
// @Param        banner_discount  query  string  false  "Subcadena del título de la campaña"
// @Param        product_type     query  string  false  "Tipo (subcadena)"
// @Param        search           query  string  false  "Búsqueda en título y descripción"
// @Param        ordering         query  string  false  "created_at | -created_at"
// @Param        limit            query  int     false  "Límite (máx 100)"
// @Param        offset           query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var q dto.ProductListQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), q, h.forceType)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalle de producto (suma una vista)
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Detail(c.UserContext(), c.Params("id"), h.forceType)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Sheet godoc
// @Summary      Ficha de precios en PDF
// @Tags         products
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/sheet [get]
func (h *ProductHandler) Sheet(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.Sheet(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="product-`+id+`.pdf"`)
	return c.Send(pdf)
}

// Create godoc
// @Summary      Crear producto (JSON) o alta masiva con imágenes (multipart)
// @Description  En multipart cada archivo va bajo el id de su color o la muqova (qattiq/yumshoq) y su precio en price_<clave>.
// @Tags         products
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if !isMultipart(c) {
		out, err := h.uc.Create(c.UserContext(), in, h.forceType)
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	files, prices, err := productUploads(c)
	if err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateWithImages(c.UserContext(), in, files, prices, h.forceType)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar producto (PUT completo, PATCH parcial)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in, isPatch(c), h.forceType)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id"), h.forceType); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveImages godoc
// @Summary      Quitar las imágenes de un color o muqova
// @Tags         products
// @Security     Bearer
// @Param        product  query  string  true   "ID del producto"
// @Param        color    query  string  false  "ID del color"
// @Param        wrapper  query  string  false  "qattiq | yumshoq"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/remove-image [delete]
func (h *ProductHandler) RemoveImages(c *fiber.Ctx) error {
	var q dto.ImageSelectorQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidQuery(c)
	}
	if _, err := h.uc.RemoveImages(c.UserContext(), q); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateImagePrice godoc
// @Summary      Cambiar el precio de las imágenes de un color o muqova
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        product  query  string  true   "ID del producto"
// @Param        color    query  string  false  "ID del color"
// @Param        wrapper  query  string  false  "qattiq | yumshoq"
// @Param        price    query  string  true   "Nuevo precio"
// @Success      200  {object}  dto.StatusResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/image-price [put]
func (h *ProductHandler) UpdateImagePrice(c *fiber.Ctx) error {
	var q dto.ImageSelectorQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidQuery(c)
	}
	n, err := h.uc.UpdateImagePrice(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.StatusResponse{Data: "updated " + strconv.FormatInt(n, 10)})
}
