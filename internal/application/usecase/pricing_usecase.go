package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

// CurrencyUseCase tasas de cambio. La vigente es siempre la última creada.
type CurrencyUseCase struct {
	repo repository.CurrencyRepository
}

func NewCurrencyUseCase(repo repository.CurrencyRepository) *CurrencyUseCase {
	return &CurrencyUseCase{repo: repo}
}

func (uc *CurrencyUseCase) List(ctx context.Context, page dto.PageRequest) (dto.ListResponse[dto.CurrencyResponse], error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return dto.ListResponse[dto.CurrencyResponse]{}, err
	}
	items := make([]dto.CurrencyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCurrencyResponse(c))
	}
	return dto.NewListResponse(items, page, total), nil
}

func (uc *CurrencyUseCase) Get(ctx context.Context, id string) (*dto.CurrencyResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toCurrencyResponse(c)
	return &resp, nil
}

// Latest tasa vigente; ErrNotFound si aún no se registró ninguna.
func (uc *CurrencyUseCase) Latest(ctx context.Context) (*dto.CurrencyResponse, error) {
	c, err := uc.repo.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toCurrencyResponse(c)
	return &resp, nil
}

func (uc *CurrencyUseCase) Create(ctx context.Context, in dto.CurrencyRequest) (*dto.CurrencyResponse, error) {
	if err := requireFields(in.Missing()); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Currency{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
	if err := applyCurrency(c, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := toCurrencyResponse(c)
	return &resp, nil
}

func (uc *CurrencyUseCase) Update(ctx context.Context, id string, in dto.CurrencyRequest, partial bool) (*dto.CurrencyResponse, error) {
	if err := checkRequired(partial, in.Missing()); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if err := applyCurrency(c, in); err != nil {
		return nil, err
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := toCurrencyResponse(c)
	return &resp, nil
}

func (uc *CurrencyUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func applyCurrency(c *entity.Currency, in dto.CurrencyRequest) error {
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return domain.NewValidationError("amount", "debe ser mayor que 0")
		}
		c.Amount = *in.Amount
	}
	return nil
}

func toCurrencyResponse(c *entity.Currency) dto.CurrencyResponse {
	return dto.CurrencyResponse{ID: c.ID, Amount: c.Amount, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

// VariantUseCase planes de cuotas. El activo es el último creado.
type VariantUseCase struct {
	repo repository.VariantRepository
}

func NewVariantUseCase(repo repository.VariantRepository) *VariantUseCase {
	return &VariantUseCase{repo: repo}
}

func (uc *VariantUseCase) List(ctx context.Context, page dto.PageRequest) (dto.ListResponse[dto.VariantResponse], error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return dto.ListResponse[dto.VariantResponse]{}, err
	}
	items := make([]dto.VariantResponse, 0, len(list))
	for _, v := range list {
		items = append(items, toVariantResponse(v))
	}
	return dto.NewListResponse(items, page, total), nil
}

func (uc *VariantUseCase) Get(ctx context.Context, id string) (*dto.VariantResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	resp := toVariantResponse(v)
	return &resp, nil
}

// Active plan vigente; ErrNotFound si no hay ninguno.
func (uc *VariantUseCase) Active(ctx context.Context) (*dto.VariantResponse, error) {
	v, err := uc.repo.Active(ctx)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	resp := toVariantResponse(v)
	return &resp, nil
}

func (uc *VariantUseCase) Create(ctx context.Context, in dto.VariantRequest) (*dto.VariantResponse, error) {
	if err := requireFields(in.Missing()); err != nil {
		return nil, err
	}
	now := time.Now()
	v := &entity.Variant{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
	if err := applyVariant(v, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	resp := toVariantResponse(v)
	return &resp, nil
}

func (uc *VariantUseCase) Update(ctx context.Context, id string, in dto.VariantRequest, partial bool) (*dto.VariantResponse, error) {
	if err := checkRequired(partial, in.Missing()); err != nil {
		return nil, err
	}
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	if err := applyVariant(v, in); err != nil {
		return nil, err
	}
	v.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	resp := toVariantResponse(v)
	return &resp, nil
}

func (uc *VariantUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func applyVariant(v *entity.Variant, in dto.VariantRequest) error {
	ve := &domain.ValidationError{}
	if in.Percent != nil {
		if in.Percent.IsNegative() {
			ve.Add("percent", "no puede ser negativo")
		}
		v.Percent = *in.Percent
	}
	if in.Duration != nil {
		if *in.Duration < 1 {
			ve.Add("duration", "debe ser al menos 1 mes")
		}
		v.Duration = *in.Duration
	}
	return ve.OrNil()
}

func toVariantResponse(v *entity.Variant) dto.VariantResponse {
	return dto.VariantResponse{ID: v.ID, Percent: v.Percent, Duration: v.Duration, CreatedAt: v.CreatedAt, UpdatedAt: v.UpdatedAt}
}
