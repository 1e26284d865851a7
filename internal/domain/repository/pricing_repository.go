package repository

import (
	"context"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

// CurrencyRepository puerto de persistencia para Currency (registro de solo inserción).
type CurrencyRepository interface {
	Create(ctx context.Context, currency *entity.Currency) error
	GetByID(ctx context.Context, id string) (*entity.Currency, error)
	// Latest devuelve la última tasa creada; (nil, nil) si no hay ninguna.
	Latest(ctx context.Context) (*entity.Currency, error)
	Update(ctx context.Context, currency *entity.Currency) error
	List(ctx context.Context, limit, offset int) ([]*entity.Currency, int, error)
	Delete(ctx context.Context, id string) error
}

// VariantRepository puerto de persistencia para Variant (plan de cuotas).
type VariantRepository interface {
	Create(ctx context.Context, variant *entity.Variant) error
	GetByID(ctx context.Context, id string) (*entity.Variant, error)
	// Active devuelve el último plan creado; (nil, nil) si no hay ninguno.
	Active(ctx context.Context) (*entity.Variant, error)
	Update(ctx context.Context, variant *entity.Variant) error
	List(ctx context.Context, limit, offset int) ([]*entity.Variant, int, error)
	Delete(ctx context.Context, id string) error
}
