package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/usecase"
)

// PromoHandler campañas de descuento, anuncios y banners de portada (todos aceptan multipart).
type PromoHandler struct {
	discounts *usecase.BannerDiscountUseCase
	ads       *usecase.AdvertisementUseCase
	banners   *usecase.BannerUseCase
}

func NewPromoHandler(discounts *usecase.BannerDiscountUseCase, ads *usecase.AdvertisementUseCase, banners *usecase.BannerUseCase) *PromoHandler {
	return &PromoHandler{discounts: discounts, ads: ads, banners: banners}
}

// CreateDiscount godoc
// @Summary      Crear campaña de descuento
// @Tags         banner-discounts
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        title     formData  string  false  "Título"
// @Param        deadline  formData  string  false  "Fecha límite (2006-01-02 o RFC3339)"
// @Param        image     formData  file    false  "Imagen"
// @Success      201  {object}  dto.BannerDiscountResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/banner-discounts [post]
func (h *PromoHandler) CreateDiscount(c *fiber.Ctx) error {
	var in dto.BannerDiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.discounts.Create(c.UserContext(), in, formUpload(c, "image"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *PromoHandler) GetDiscount(c *fiber.Ctx) error {
	out, err := h.discounts.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *PromoHandler) UpdateDiscount(c *fiber.Ctx) error {
	var in dto.BannerDiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.discounts.Update(c.UserContext(), c.Params("id"), in, formUpload(c, "image"), isPatch(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *PromoHandler) DeleteDiscount(c *fiber.Ctx) error {
	if err := h.discounts.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateAdvertisement godoc
// @Summary      Crear anuncio
// @Tags         advertisements
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        title         formData  string  false  "Título"
// @Param        description   formData  string  false  "Descripción"
// @Param        icon          formData  file    false  "Ícono"
// @Param        banner_image  formData  file    false  "Imagen del banner"
// @Success      201  {object}  dto.AdvertisementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/advertisements [post]
func (h *PromoHandler) CreateAdvertisement(c *fiber.Ctx) error {
	var in dto.AdvertisementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.ads.Create(c.UserContext(), in, formUpload(c, "icon"), formUpload(c, "banner_image"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *PromoHandler) GetAdvertisement(c *fiber.Ctx) error {
	out, err := h.ads.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *PromoHandler) UpdateAdvertisement(c *fiber.Ctx) error {
	var in dto.AdvertisementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.ads.Update(c.UserContext(), c.Params("id"), in, formUpload(c, "icon"), formUpload(c, "banner_image"), isPatch(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *PromoHandler) DeleteAdvertisement(c *fiber.Ctx) error {
	if err := h.ads.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateBanner godoc
// @Summary      Crear banner de portada
// @Tags         banners
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        title        formData  string  false  "Título"
// @Param        description  formData  string  false  "Descripción"
// @Param        image        formData  file    false  "Imagen"
// @Success      201  {object}  dto.BannerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/banners [post]
func (h *PromoHandler) CreateBanner(c *fiber.Ctx) error {
	var in dto.BannerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.banners.Create(c.UserContext(), in, formUpload(c, "image"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *PromoHandler) GetBanner(c *fiber.Ctx) error {
	out, err := h.banners.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *PromoHandler) UpdateBanner(c *fiber.Ctx) error {
	var in dto.BannerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.banners.Update(c.UserContext(), c.Params("id"), in, formUpload(c, "image"), isPatch(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *PromoHandler) DeleteBanner(c *fiber.Ctx) error {
	if err := h.banners.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
