package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/pricing"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

// RateUseCase calificaciones de productos. El autor es siempre el usuario autenticado.
type RateUseCase struct {
	repo     repository.RateRepository
	products repository.ProductRepository
}

func NewRateUseCase(repo repository.RateRepository, products repository.ProductRepository) *RateUseCase {
	return &RateUseCase{repo: repo, products: products}
}

func (uc *RateUseCase) List(ctx context.Context, q dto.SearchQuery) (dto.ListResponse[dto.RateResponse], error) {
	q.DefaultPage()
	list, total, err := uc.repo.List(ctx, strings.TrimSpace(q.Search), q.Limit, q.Offset)
	if err != nil {
		return dto.ListResponse[dto.RateResponse]{}, err
	}
	items := make([]dto.RateResponse, 0, len(list))
	for _, r := range list {
		items = append(items, toRateResponse(r))
	}
	return dto.NewListResponse(items, q.PageRequest, total), nil
}

func (uc *RateUseCase) Get(ctx context.Context, id string) (*dto.RateResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	resp := toRateResponse(r)
	return &resp, nil
}

// Create registra la calificación a nombre de userID; cualquier user_id del cuerpo se ignora.
func (uc *RateUseCase) Create(ctx context.Context, userID string, in dto.RateRequest) (*dto.RateResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := requireFields(in.Missing()); err != nil {
		return nil, err
	}
	now := time.Now()
	uid := userID
	r := &entity.Rate{ID: uuid.New().String(), UserID: &uid, CreatedAt: now, UpdatedAt: now}
	if err := uc.apply(ctx, r, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	resp := toRateResponse(r)
	return &resp, nil
}

// Update edita nota y comentario; el autor no cambia.
func (uc *RateUseCase) Update(ctx context.Context, id string, in dto.RateRequest, partial bool) (*dto.RateResponse, error) {
	if err := checkRequired(partial, in.Missing()); err != nil {
		return nil, err
	}
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.apply(ctx, r, in); err != nil {
		return nil, err
	}
	r.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	resp := toRateResponse(r)
	return &resp, nil
}

func (uc *RateUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *RateUseCase) apply(ctx context.Context, r *entity.Rate, in dto.RateRequest) error {
	if in.Rate != nil {
		if !entity.ValidRate(*in.Rate) {
			return domain.ErrInvalidRate
		}
		r.Rate = *in.Rate
	}
	if in.ProductID != nil {
		productID := strings.TrimSpace(*in.ProductID)
		p, err := uc.products.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.NewValidationError("product_id", "producto inexistente")
		}
		r.ProductID = productID
	}
	if in.Comment != nil {
		r.Comment = *in.Comment
	}
	return nil
}

func toRateResponse(r *entity.Rate) dto.RateResponse {
	return dto.RateResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		ProductID:   r.ProductID,
		Rate:        r.Rate,
		RatePercent: pricing.RatePercent(r.Rate),
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
