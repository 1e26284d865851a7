package main

import (
	"context"
	"image/color"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.opentelemetry.io/otel"

	"github.com/jhoicas/catalog-api/internal/application/auth"
	"github.com/jhoicas/catalog-api/internal/application/order"
	"github.com/jhoicas/catalog-api/internal/application/ports"
	"github.com/jhoicas/catalog-api/internal/application/usecase"
	"github.com/jhoicas/catalog-api/internal/infrastructure/imaging"
	infrapdf "github.com/jhoicas/catalog-api/internal/infrastructure/pdf"
	"github.com/jhoicas/catalog-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalog-api/internal/infrastructure/storage"
	"github.com/jhoicas/catalog-api/internal/infrastructure/telegram"
	httpRouter "github.com/jhoicas/catalog-api/internal/interfaces/http"
	"github.com/jhoicas/catalog-api/pkg/config"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	if len(applied) > 0 {
		log.Info().Strs("versions", applied).Msg("migraciones aplicadas")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	colorRepo := postgres.NewColorRepository(pool)
	sizeRepo := postgres.NewSizeRepository(pool)
	authorRepo := postgres.NewAuthorRepository(pool)
	currencyRepo := postgres.NewCurrencyRepository(pool)
	variantRepo := postgres.NewVariantRepository(pool)
	discountRepo := postgres.NewBannerDiscountRepository(pool)
	adRepo := postgres.NewAdvertisementRepository(pool)
	bannerRepo := postgres.NewBannerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	imageRepo := postgres.NewProductImageRepository(pool)
	infoRepo := postgres.NewAdditionalInfoRepository(pool)
	rateRepo := postgres.NewRateRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Adaptadores de salida
	fileStorage, err := storage.NewLocalStorage(cfg.Media.Dir, cfg.Media.URLPrefix)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Media.Dir).Msg("almacenamiento de imágenes")
	}
	r, g, b := cfg.Media.BackgroundRGB()
	imgCfg := imaging.DefaultConfig()
	imgCfg.Background = color.RGBA{R: r, G: g, B: b, A: 0xff}
	remover := imaging.NewBackgroundRemover(imgCfg)
	sheets := infrapdf.NewMarotoSheetGenerator(cfg.Telegram.SiteURL)

	var notifier ports.OrderNotifier
	if cfg.Telegram.Enabled() {
		notifier = telegram.NewNotifier(cfg.Telegram.APIURL, cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	} else {
		log.Warn().Msg("TELEGRAM_BOT_TOKEN/TELEGRAM_CHAT_ID sin definir: /api/orders/notify responderá 503")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(usecase.ProductDeps{
		Products:   productRepo,
		Images:     imageRepo,
		Categories: categoryRepo,
		Infos:      infoRepo,
		Rates:      rateRepo,
		Currencies: currencyRepo,
		Variants:   variantRepo,
		Tx:         txRunner,
		Storage:    fileStorage,
		Processor:  remover,
		Sheets:     sheets,
		Log:        log.Named("products"),
	})
	imageUC := usecase.NewProductImageUseCase(imageRepo, productRepo, currencyRepo, variantRepo, fileStorage, remover, log.Named("product-images"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	// Sin SDK registrado el proveedor global es no-op.
	app.Use(httpRouter.Tracing(otel.GetTracerProvider()))

	// Swagger UI en local: http://localhost:<port>/docs (solo si se generó docs/swagger.json)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Catalog API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Static(cfg.Media.URLPrefix, cfg.Media.Dir)

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		UserUC:           usecase.NewUserUseCase(userRepo),
		CategoryUC:       usecase.NewCategoryUseCase(categoryRepo, fileStorage),
		BrandUC:          usecase.NewBrandUseCase(brandRepo),
		ColorUC:          usecase.NewColorUseCase(colorRepo),
		SizeUC:           usecase.NewSizeUseCase(sizeRepo),
		AuthorUC:         usecase.NewAuthorUseCase(authorRepo),
		CurrencyUC:       usecase.NewCurrencyUseCase(currencyRepo),
		VariantUC:        usecase.NewVariantUseCase(variantRepo),
		BannerDiscountUC: usecase.NewBannerDiscountUseCase(discountRepo, fileStorage),
		AdvertisementUC:  usecase.NewAdvertisementUseCase(adRepo, fileStorage),
		BannerUC:         usecase.NewBannerUseCase(bannerRepo, fileStorage),
		ProductUC:        productUC,
		ProductImageUC:   imageUC,
		AdditionalInfoUC: usecase.NewAdditionalInfoUseCase(infoRepo, productRepo),
		RateUC:           usecase.NewRateUseCase(rateRepo, productRepo),
		NotifyUC:         order.NewNotifyUseCase(notifier, cfg.Telegram.SiteURL, log.Named("orders")),
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
