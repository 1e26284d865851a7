package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/ports"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

// parseDeadline acepta una fecha (2006-01-02) o un instante RFC3339; "" borra la fecha.
func parseDeadline(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, domain.NewValidationError("deadline", "fecha inválida, use AAAA-MM-DD")
}

// BannerDiscountUseCase campañas de descuento con imagen.
type BannerDiscountUseCase struct {
	repo    repository.BannerDiscountRepository
	storage ports.FileStorage
}

func NewBannerDiscountUseCase(repo repository.BannerDiscountRepository, storage ports.FileStorage) *BannerDiscountUseCase {
	return &BannerDiscountUseCase{repo: repo, storage: storage}
}

func (uc *BannerDiscountUseCase) List(ctx context.Context, page dto.PageRequest) (dto.ListResponse[dto.BannerDiscountResponse], error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return dto.ListResponse[dto.BannerDiscountResponse]{}, err
	}
	items := make([]dto.BannerDiscountResponse, 0, len(list))
	for _, b := range list {
		items = append(items, uc.toResponse(b))
	}
	return dto.NewListResponse(items, page, total), nil
}

func (uc *BannerDiscountUseCase) Get(ctx context.Context, id string) (*dto.BannerDiscountResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	resp := uc.toResponse(b)
	return &resp, nil
}

func (uc *BannerDiscountUseCase) Create(ctx context.Context, in dto.BannerDiscountRequest, image *ports.Upload) (*dto.BannerDiscountResponse, error) {
	now := time.Now()
	b := &entity.BannerDiscount{ID: uuid.New().String(), IsActive: true, CreatedAt: now, UpdatedAt: now}
	if err := uc.apply(ctx, b, in, image); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	resp := uc.toResponse(b)
	return &resp, nil
}

func (uc *BannerDiscountUseCase) Update(ctx context.Context, id string, in dto.BannerDiscountRequest, image *ports.Upload, partial bool) (*dto.BannerDiscountResponse, error) {
	if err := checkRequired(partial, in.Missing()); err != nil {
		return nil, err
	}
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.apply(ctx, b, in, image); err != nil {
		return nil, err
	}
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	resp := uc.toResponse(b)
	return &resp, nil
}

func (uc *BannerDiscountUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *BannerDiscountUseCase) apply(ctx context.Context, b *entity.BannerDiscount, in dto.BannerDiscountRequest, image *ports.Upload) error {
	ve := &domain.ValidationError{}
	if in.Title != nil {
		b.Title = strings.TrimSpace(*in.Title)
		checkLen(ve, "title", b.Title, 255)
	}
	if in.IsActive != nil {
		b.IsActive = *in.IsActive
	}
	if in.Deadline != nil {
		deadline, err := parseDeadline(*in.Deadline)
		if err != nil {
			return err
		}
		b.Deadline = deadline
	}
	if err := ve.OrNil(); err != nil {
		return err
	}
	if image != nil {
		path, err := saveUpload(ctx, uc.storage, folderBannerDiscount, image)
		if err != nil {
			return err
		}
		b.Image = path
	}
	return nil
}

func (uc *BannerDiscountUseCase) toResponse(b *entity.BannerDiscount) dto.BannerDiscountResponse {
	return dto.BannerDiscountResponse{
		ID:        b.ID,
		Title:     b.Title,
		Image:     mediaURL(uc.storage, b.Image),
		Deadline:  b.Deadline,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// AdvertisementUseCase anuncios con ícono y banner.
type AdvertisementUseCase struct {
	repo    repository.AdvertisementRepository
	storage ports.FileStorage
}

func NewAdvertisementUseCase(repo repository.AdvertisementRepository, storage ports.FileStorage) *AdvertisementUseCase {
	return &AdvertisementUseCase{repo: repo, storage: storage}
}

func (uc *AdvertisementUseCase) List(ctx context.Context, page dto.PageRequest) (dto.ListResponse[dto.AdvertisementResponse], error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return dto.ListResponse[dto.AdvertisementResponse]{}, err
	}
	items := make([]dto.AdvertisementResponse, 0, len(list))
	for _, a := range list {
		items = append(items, uc.toResponse(a))
	}
	return dto.NewListResponse(items, page, total), nil
}

func (uc *AdvertisementUseCase) Get(ctx context.Context, id string) (*dto.AdvertisementResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	resp := uc.toResponse(a)
	return &resp, nil
}

func (uc *AdvertisementUseCase) Create(ctx context.Context, in dto.AdvertisementRequest, icon, banner *ports.Upload) (*dto.AdvertisementResponse, error) {
	now := time.Now()
	a := &entity.Advertisement{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
	if err := uc.apply(ctx, a, in, icon, banner); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	resp := uc.toResponse(a)
	return &resp, nil
}

func (uc *AdvertisementUseCase) Update(ctx context.Context, id string, in dto.AdvertisementRequest, icon, banner *ports.Upload, partial bool) (*dto.AdvertisementResponse, error) {
	if err := checkRequired(partial, in.Missing()); err != nil {
		return nil, err
	}
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.apply(ctx, a, in, icon, banner); err != nil {
		return nil, err
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	resp := uc.toResponse(a)
	return &resp, nil
}

func (uc *AdvertisementUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *AdvertisementUseCase) apply(ctx context.Context, a *entity.Advertisement, in dto.AdvertisementRequest, icon, banner *ports.Upload) error {
	ve := &domain.ValidationError{}
	if in.Title != nil {
		a.Title = strings.TrimSpace(*in.Title)
		checkLen(ve, "title", a.Title, 255)
	}
	if in.Description != nil {
		a.Description = *in.Description
	}
	if err := ve.OrNil(); err != nil {
		return err
	}
	if icon != nil {
		path, err := saveUpload(ctx, uc.storage, folderAdvertisement, icon)
		if err != nil {
			return err
		}
		a.Icon = path
	}
	if banner != nil {
		path, err := saveUpload(ctx, uc.storage, folderAdvertisement, banner)
		if err != nil {
			return err
		}
		a.BannerImage = path
	}
	return nil
}

func (uc *AdvertisementUseCase) toResponse(a *entity.Advertisement) dto.AdvertisementResponse {
	return dto.AdvertisementResponse{
		ID:          a.ID,
		Icon:        mediaURL(uc.storage, a.Icon),
		Title:       a.Title,
		Description: a.Description,
		BannerImage: mediaURL(uc.storage, a.BannerImage),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// BannerUseCase banners de portada.
type BannerUseCase struct {
	repo    repository.BannerRepository
	storage ports.FileStorage
}

func NewBannerUseCase(repo repository.BannerRepository, storage ports.FileStorage) *BannerUseCase {
	return &BannerUseCase{repo: repo, storage: storage}
}

func (uc *BannerUseCase) List(ctx context.Context, page dto.PageRequest) (dto.ListResponse[dto.BannerResponse], error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return dto.ListResponse[dto.BannerResponse]{}, err
	}
	items := make([]dto.BannerResponse, 0, len(list))
	for _, b := range list {
		items = append(items, uc.toResponse(b))
	}
	return dto.NewListResponse(items, page, total), nil
}

func (uc *BannerUseCase) Get(ctx context.Context, id string) (*dto.BannerResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	resp := uc.toResponse(b)
	return &resp, nil
}

func (uc *BannerUseCase) Create(ctx context.Context, in dto.BannerRequest, image *ports.Upload) (*dto.BannerResponse, error) {
	now := time.Now()
	b := &entity.Banner{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
	if err := uc.apply(ctx, b, in, image); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	resp := uc.toResponse(b)
	return &resp, nil
}

func (uc *BannerUseCase) Update(ctx context.Context, id string, in dto.BannerRequest, image *ports.Upload, partial bool) (*dto.BannerResponse, error) {
	if err := checkRequired(partial, in.Missing()); err != nil {
		return nil, err
	}
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.apply(ctx, b, in, image); err != nil {
		return nil, err
	}
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	resp := uc.toResponse(b)
	return &resp, nil
}

func (uc *BannerUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *BannerUseCase) apply(ctx context.Context, b *entity.Banner, in dto.BannerRequest, image *ports.Upload) error {
	ve := &domain.ValidationError{}
	if in.Title != nil {
		b.Title = strings.TrimSpace(*in.Title)
		checkLen(ve, "title", b.Title, 255)
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	if err := ve.OrNil(); err != nil {
		return err
	}
	if image != nil {
		path, err := saveUpload(ctx, uc.storage, folderBanner, image)
		if err != nil {
			return err
		}
		b.Image = path
	}
	return nil
}

func (uc *BannerUseCase) toResponse(b *entity.Banner) dto.BannerResponse {
	return dto.BannerResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Image:       mediaURL(uc.storage, b.Image),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
