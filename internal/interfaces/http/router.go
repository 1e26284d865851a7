package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-api/internal/application/auth"
	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/order"
	"github.com/jhoicas/catalog-api/internal/application/usecase"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	UserUC           *usecase.UserUseCase
	CategoryUC       *usecase.CategoryUseCase
	BrandUC          *usecase.BrandUseCase
	ColorUC          *usecase.ColorUseCase
	SizeUC           *usecase.SizeUseCase
	AuthorUC         *usecase.AuthorUseCase
	CurrencyUC       *usecase.CurrencyUseCase
	VariantUC        *usecase.VariantUseCase
	BannerDiscountUC *usecase.BannerDiscountUseCase
	AdvertisementUC  *usecase.AdvertisementUseCase
	BannerUC         *usecase.BannerUseCase
	ProductUC        *usecase.ProductUseCase
	ProductImageUC   *usecase.ProductImageUseCase
	AdditionalInfoUC *usecase.AdditionalInfoUseCase
	RateUC           *usecase.RateUseCase
	NotifyUC         *order.NotifyUseCase
	JWTSecret        string
}

// Router registra las rutas de la API. Lecturas públicas; escrituras del catálogo solo para staff.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authMW := AuthMiddleware(deps.JWTSecret)
	catalogWrite := RequireCatalogWrite()
	// guard antepone auth + rol a un handler de escritura. Se aplica por ruta y no por grupo:
	// un Use sobre el prefijo también interceptaría los GET públicos.
	guard := func(h fiber.Handler) []fiber.Handler {
		return []fiber.Handler{authMW, catalogWrite, h}
	}

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authMW, authHandler.Me)

	// Categorías
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/parents", categoryHandler.Parents)
	categories.Get("/:id/children", categoryHandler.Children)
	categories.Get("/:id", categoryHandler.Get)
	categories.Post("/", guard(categoryHandler.Create)...)
	categories.Put("/:id", guard(categoryHandler.Update)...)
	categories.Patch("/:id", guard(categoryHandler.Update)...)
	categories.Delete("/:id", guard(categoryHandler.Delete)...)

	catalogHandler := NewCatalogHandler(deps.SizeUC, deps.CurrencyUC, deps.VariantUC, deps.AdditionalInfoUC)

	// Referencias
	brands := api.Group("/brands")
	brands.Get("/", listPaged[dto.BrandResponse](deps.BrandUC))
	crudRoutes(brands, guard, NewCRUDHandler[dto.BrandRequest, dto.BrandResponse](deps.BrandUC))

	colors := api.Group("/colors")
	colors.Get("/", listPaged[dto.ColorResponse](deps.ColorUC))
	crudRoutes(colors, guard, NewCRUDHandler[dto.ColorRequest, dto.ColorResponse](deps.ColorUC))

	sizes := api.Group("/sizes")
	sizes.Get("/", catalogHandler.ListSizes)
	crudRoutes(sizes, guard, NewCRUDHandler[dto.SizeRequest, dto.SizeResponse](deps.SizeUC))

	authors := api.Group("/authors")
	authors.Get("/", listPaged[dto.AuthorResponse](deps.AuthorUC))
	crudRoutes(authors, guard, NewCRUDHandler[dto.AuthorRequest, dto.AuthorResponse](deps.AuthorUC))

	// Precios
	currencies := api.Group("/currencies")
	currencies.Get("/", listPaged[dto.CurrencyResponse](deps.CurrencyUC))
	currencies.Get("/latest", catalogHandler.LatestCurrency)
	crudRoutes(currencies, guard, NewCRUDHandler[dto.CurrencyRequest, dto.CurrencyResponse](deps.CurrencyUC))

	variants := api.Group("/variants")
	variants.Get("/", listPaged[dto.VariantResponse](deps.VariantUC))
	variants.Get("/active", catalogHandler.ActiveVariant)
	crudRoutes(variants, guard, NewCRUDHandler[dto.VariantRequest, dto.VariantResponse](deps.VariantUC))

	// Promociones
	promo := NewPromoHandler(deps.BannerDiscountUC, deps.AdvertisementUC, deps.BannerUC)
	discounts := api.Group("/banner-discounts")
	discounts.Get("/", listPaged[dto.BannerDiscountResponse](deps.BannerDiscountUC))
	discounts.Get("/:id", promo.GetDiscount)
	discounts.Post("/", guard(promo.CreateDiscount)...)
	discounts.Put("/:id", guard(promo.UpdateDiscount)...)
	discounts.Patch("/:id", guard(promo.UpdateDiscount)...)
	discounts.Delete("/:id", guard(promo.DeleteDiscount)...)

	ads := api.Group("/advertisements")
	ads.Get("/", listPaged[dto.AdvertisementResponse](deps.AdvertisementUC))
	ads.Get("/:id", promo.GetAdvertisement)
	ads.Post("/", guard(promo.CreateAdvertisement)...)
	ads.Put("/:id", guard(promo.UpdateAdvertisement)...)
	ads.Patch("/:id", guard(promo.UpdateAdvertisement)...)
	ads.Delete("/:id", guard(promo.DeleteAdvertisement)...)

	banners := api.Group("/banners")
	banners.Get("/", listPaged[dto.BannerResponse](deps.BannerUC))
	banners.Get("/:id", promo.GetBanner)
	banners.Post("/", guard(promo.CreateBanner)...)
	banners.Put("/:id", guard(promo.UpdateBanner)...)
	banners.Patch("/:id", guard(promo.UpdateBanner)...)
	banners.Delete("/:id", guard(promo.DeleteBanner)...)

	// Productos. remove-image e image-price van antes de /:id.
	productHandler := NewProductHandler(deps.ProductUC, "")
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/:id/sheet", productHandler.Sheet)
	products.Get("/:id", productHandler.Get)
	products.Delete("/remove-image", guard(productHandler.RemoveImages)...)
	products.Put("/image-price", guard(productHandler.UpdateImagePrice)...)
	products.Post("/", guard(productHandler.Create)...)
	products.Put("/:id", guard(productHandler.Update)...)
	products.Patch("/:id", guard(productHandler.Update)...)
	products.Delete("/:id", guard(productHandler.Delete)...)

	bookHandler := NewProductHandler(deps.ProductUC, entity.ProductTypeBook)
	books := api.Group("/books")
	books.Get("/", bookHandler.List)
	books.Get("/:id", bookHandler.Get)
	books.Post("/", guard(bookHandler.Create)...)

	imageHandler := NewProductImageHandler(deps.ProductImageUC, false)
	images := api.Group("/product-images")
	images.Get("/", imageHandler.List)
	images.Get("/:id", imageHandler.Get)
	images.Post("/", guard(imageHandler.Create)...)
	images.Put("/:id", guard(imageHandler.Update)...)
	images.Patch("/:id", guard(imageHandler.Update)...)
	images.Delete("/:id", guard(imageHandler.Delete)...)

	printedHandler := NewProductImageHandler(deps.ProductImageUC, true)
	printed := api.Group("/printed")
	printed.Get("/", printedHandler.List)
	printed.Get("/:id", printedHandler.Get)
	printed.Put("/:id", guard(printedHandler.Update)...)
	printed.Patch("/:id", guard(printedHandler.Update)...)

	infos := api.Group("/additional-info")
	infos.Get("/", catalogHandler.ListAdditionalInfo)
	crudRoutes(infos, guard, NewCRUDHandler[dto.AdditionalInfoRequest, dto.AdditionalInfoResponse](deps.AdditionalInfoUC))

	// Calificaciones: el autor sale siempre del token.
	rateHandler := NewRateHandler(deps.RateUC)
	rates := api.Group("/rates")
	rates.Get("/", rateHandler.List)
	rates.Get("/:id", rateHandler.Get)
	rates.Post("/", guard(rateHandler.Create)...)
	rates.Put("/:id", guard(rateHandler.Update)...)
	rates.Patch("/:id", guard(rateHandler.Update)...)
	rates.Delete("/:id", guard(rateHandler.Delete)...)

	// Pedidos
	orderHandler := NewOrderHandler(deps.NotifyUC)
	api.Post("/orders/notify", authMW, orderHandler.Notify)
}
