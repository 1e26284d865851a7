package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

const (
	maxInfoTitle       = 255
	maxInfoDescription = 225
)

// AdditionalInfoUseCase ficha técnica de productos.
type AdditionalInfoUseCase struct {
	repo     repository.AdditionalInfoRepository
	products repository.ProductRepository
}

func NewAdditionalInfoUseCase(repo repository.AdditionalInfoRepository, products repository.ProductRepository) *AdditionalInfoUseCase {
	return &AdditionalInfoUseCase{repo: repo, products: products}
}

func (uc *AdditionalInfoUseCase) List(ctx context.Context, q dto.SearchQuery) (dto.ListResponse[dto.AdditionalInfoResponse], error) {
	q.DefaultPage()
	list, total, err := uc.repo.List(ctx, strings.TrimSpace(q.Search), q.Limit, q.Offset)
	if err != nil {
		return dto.ListResponse[dto.AdditionalInfoResponse]{}, err
	}
	items := make([]dto.AdditionalInfoResponse, 0, len(list))
	for _, info := range list {
		items = append(items, toAdditionalInfoResponse(info))
	}
	return dto.NewListResponse(items, q.PageRequest, total), nil
}

func (uc *AdditionalInfoUseCase) Get(ctx context.Context, id string) (*dto.AdditionalInfoResponse, error) {
	info, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, domain.ErrNotFound
	}
	resp := toAdditionalInfoResponse(info)
	return &resp, nil
}

func (uc *AdditionalInfoUseCase) Create(ctx context.Context, in dto.AdditionalInfoRequest) (*dto.AdditionalInfoResponse, error) {
	if err := requireFields(in.Missing()); err != nil {
		return nil, err
	}
	now := time.Now()
	info := &entity.AdditionalInfo{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
	if err := uc.apply(ctx, info, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, info); err != nil {
		return nil, err
	}
	resp := toAdditionalInfoResponse(info)
	return &resp, nil
}

func (uc *AdditionalInfoUseCase) Update(ctx context.Context, id string, in dto.AdditionalInfoRequest, partial bool) (*dto.AdditionalInfoResponse, error) {
	if err := checkRequired(partial, in.Missing()); err != nil {
		return nil, err
	}
	info, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.apply(ctx, info, in); err != nil {
		return nil, err
	}
	info.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, info); err != nil {
		return nil, err
	}
	resp := toAdditionalInfoResponse(info)
	return &resp, nil
}

func (uc *AdditionalInfoUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *AdditionalInfoUseCase) apply(ctx context.Context, info *entity.AdditionalInfo, in dto.AdditionalInfoRequest) error {
	ve := &domain.ValidationError{}
	if in.ProductID != nil {
		productID := strings.TrimSpace(*in.ProductID)
		p, err := uc.products.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if p == nil {
			ve.Add("product_id", "producto inexistente")
		}
		info.ProductID = productID
	}
	if in.Title != nil {
		info.Title = strings.TrimSpace(*in.Title)
		if info.Title == "" {
			ve.Add("title", "obligatorio")
		}
		checkLen(ve, "title", info.Title, maxInfoTitle)
	}
	if in.Description != nil {
		info.Description = *in.Description
		checkLen(ve, "description", info.Description, maxInfoDescription)
	}
	return ve.OrNil()
}

func toAdditionalInfoResponse(info *entity.AdditionalInfo) dto.AdditionalInfoResponse {
	return dto.AdditionalInfoResponse{
		ID:          info.ID,
		ProductID:   info.ProductID,
		Title:       info.Title,
		Description: info.Description,
		CreatedAt:   info.CreatedAt,
		UpdatedAt:   info.UpdatedAt,
	}
}
