package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/usecase"
)

// CatalogHandler lecturas que no encajan en el CRUD genérico: tallas sin paginar,
// moneda vigente, variante activa y la ficha técnica con búsqueda.
type CatalogHandler struct {
	sizes      *usecase.SizeUseCase
	currencies *usecase.CurrencyUseCase
	variants   *usecase.VariantUseCase
	infos      *usecase.AdditionalInfoUseCase
}

func NewCatalogHandler(sizes *usecase.SizeUseCase, currencies *usecase.CurrencyUseCase, variants *usecase.VariantUseCase, infos *usecase.AdditionalInfoUseCase) *CatalogHandler {
	return &CatalogHandler{sizes: sizes, currencies: currencies, variants: variants, infos: infos}
}

// ListSizes godoc
// @Summary      Tallas (sin paginar)
// @Tags         sizes
// @Produce      json
// @Success      200  {array}  dto.SizeResponse
// @Router       /api/sizes [get]
func (h *CatalogHandler) ListSizes(c *fiber.Ctx) error {
	out, err := h.sizes.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// LatestCurrency godoc
// @Summary      Tipo de cambio vigente
// @Tags         currencies
// @Produce      json
// @Success      200  {object}  dto.CurrencyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/currencies/latest [get]
func (h *CatalogHandler) LatestCurrency(c *fiber.Ctx) error {
	out, err := h.currencies.Latest(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ActiveVariant godoc
// @Summary      Plan de cuotas activo
// @Tags         variants
// @Produce      json
// @Success      200  {object}  dto.VariantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/variants/active [get]
func (h *CatalogHandler) ActiveVariant(c *fiber.Ctx) error {
	out, err := h.variants.Active(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListAdditionalInfo godoc
// @Summary      Ficha técnica de productos activos
// @Tags         additional-info
// @Produce      json
// @Param        search  query  string  false  "Búsqueda por título"
// @Param        limit   query  int     false  "Límite (máx 100)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.AdditionalInfoResponse]
// @Router       /api/additional-info [get]
func (h *CatalogHandler) ListAdditionalInfo(c *fiber.Ctx) error {
	var q dto.SearchQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidQuery(c)
	}
	out, err := h.infos.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
