// seed crea el superusuario (ADMIN_EMAIL / ADMIN_PASSWORD) y, si faltan,
// una tasa de cambio y un plan de cuotas iniciales para que los precios derivados no salgan en cero.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-api/internal/application/auth"
	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/usecase"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalog-api/pkg/config"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

// Valores iniciales; se cambian luego desde /api/currencies y /api/variants.
var (
	defaultCurrency        = decimal.NewFromInt(12600)
	defaultVariantPercent  = decimal.NewFromInt(20)
	defaultVariantDuration = 12
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Named("seed")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		log.Warn().Msg("ADMIN_EMAIL/ADMIN_PASSWORD sin definir: no se crea superusuario")
	} else {
		authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{Secret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer})
		user, created, err := authUC.EnsureSuperUser(ctx, dto.RegisterRequest{Email: cfg.Admin.Email, Password: cfg.Admin.Password, Name: "admin"})
		if err != nil {
			log.Fatal().Err(err).Msg("crear superusuario")
		}
		log.Info().Str("email", user.Email).Str("role", user.Role).Bool("created", created).Msg("superusuario")
	}

	currencies := usecase.NewCurrencyUseCase(postgres.NewCurrencyRepository(pool))
	if _, err := currencies.Latest(ctx); errors.Is(err, domain.ErrNotFound) {
		c, err := currencies.Create(ctx, dto.CurrencyRequest{Amount: &defaultCurrency})
		if err != nil {
			log.Fatal().Err(err).Msg("crear tasa de cambio")
		}
		log.Info().Str("amount", c.Amount.String()).Msg("tasa de cambio inicial")
	} else if err != nil {
		log.Fatal().Err(err).Msg("consultar tasa de cambio")
	}

	variants := usecase.NewVariantUseCase(postgres.NewVariantRepository(pool))
	if _, err := variants.Active(ctx); errors.Is(err, domain.ErrNotFound) {
		v, err := variants.Create(ctx, dto.VariantRequest{Percent: &defaultVariantPercent, Duration: &defaultVariantDuration})
		if err != nil {
			log.Fatal().Err(err).Msg("crear plan de cuotas")
		}
		log.Info().Str("percent", v.Percent.String()).Int("duration", v.Duration).Msg("plan de cuotas inicial")
	} else if err != nil {
		log.Fatal().Err(err).Msg("consultar plan de cuotas")
	}
}
