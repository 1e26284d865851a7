package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/domain"
)

func TestCurrency_LatestYValidacion(t *testing.T) {
	repo := &fakeCurrencies{}
	uc := NewCurrencyUseCase(repo)
	ctx := context.Background()

	_, err := uc.Latest(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(ctx, dto.CurrencyRequest{Amount: ptr(decimal.Zero)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CurrencyRequest{Amount: ptr(decimal.NewFromInt(12600))})
	require.NoError(t, err)
	latest, err := uc.Latest(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(12600).Equal(latest.Amount))
}

func TestVariant_Validacion(t *testing.T) {
	uc := NewVariantUseCase(&fakeVariants{})
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.VariantRequest{Percent: ptr(decimal.NewFromInt(-1)), Duration: ptr(12)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, dto.VariantRequest{Percent: ptr(decimal.NewFromInt(10)), Duration: ptr(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Create(ctx, dto.VariantRequest{Percent: ptr(decimal.NewFromInt(10)), Duration: ptr(6)})
	require.NoError(t, err)
	active, err := uc.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, out.ID, active.ID)
}
