package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func validProductType(ve *domain.ValidationError, raw string) entity.ProductType {
	t := entity.ProductType(raw)
	if !t.Valid() {
		ve.Add("product_type", "debe ser book, clothing o product")
	}
	return t
}

// BrandUseCase CRUD de marcas.
type BrandUseCase struct {
	repo repository.BrandRepository
}

func NewBrandUseCase(repo repository.BrandRepository) *BrandUseCase {
	return &BrandUseCase{repo: repo}
}

func (uc *BrandUseCase) List(ctx context.Context, page dto.PageRequest) (dto.ListResponse[dto.BrandResponse], error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return dto.ListResponse[dto.BrandResponse]{}, err
	}
	items := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		items = append(items, toBrandResponse(b))
	}
	return dto.NewListResponse(items, page, total), nil
}

func (uc *BrandUseCase) Get(ctx context.Context, id string) (*dto.BrandResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	resp := toBrandResponse(b)
	return &resp, nil
}

func (uc *BrandUseCase) Create(ctx context.Context, in dto.BrandRequest) (*dto.BrandResponse, error) {
	if err := requireFields(in.Missing()); err != nil {
		return nil, err
	}
	now := time.Now()
	b := &entity.Brand{ID: uuid.New().String(), ProductType: entity.ProductTypeProduct, CreatedAt: now, UpdatedAt: now}
	if err := applyBrand(b, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	resp := toBrandResponse(b)
	return &resp, nil
}

func (uc *BrandUseCase) Update(ctx context.Context, id string, in dto.BrandRequest, partial bool) (*dto.BrandResponse, error) {
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
	if err := applyBrand(b, in); err != nil {
		return nil, err
	}
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	resp := toBrandResponse(b)
	return &resp, nil
}

func (uc *BrandUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func applyBrand(b *entity.Brand, in dto.BrandRequest) error {
	ve := &domain.ValidationError{}
	if in.Title != nil {
		b.Title = strings.TrimSpace(*in.Title)
		if b.Title == "" {
			ve.Add("title", "obligatorio")
		}
		checkLen(ve, "title", b.Title, 255)
	}
	if in.ProductType != nil {
		b.ProductType = validProductType(ve, *in.ProductType)
	}
	return ve.OrNil()
}

func toBrandResponse(b *entity.Brand) dto.BrandResponse {
	return dto.BrandResponse{ID: b.ID, Title: b.Title, ProductType: string(b.ProductType), CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

// ColorUseCase CRUD de colores.
type ColorUseCase struct {
	repo repository.ColorRepository
}

func NewColorUseCase(repo repository.ColorRepository) *ColorUseCase {
	return &ColorUseCase{repo: repo}
}

func (uc *ColorUseCase) List(ctx context.Context, page dto.PageRequest) (dto.ListResponse[dto.ColorResponse], error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return dto.ListResponse[dto.ColorResponse]{}, err
	}
	items := make([]dto.ColorResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toColorResponse(c))
	}
	return dto.NewListResponse(items, page, total), nil
}

func (uc *ColorUseCase) Get(ctx context.Context, id string) (*dto.ColorResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toColorResponse(c)
	return &resp, nil
}

func (uc *ColorUseCase) Create(ctx context.Context, in dto.ColorRequest) (*dto.ColorResponse, error) {
	if err := requireFields(in.Missing()); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Color{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
	if err := applyColor(c, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := toColorResponse(c)
	return &resp, nil
}

func (uc *ColorUseCase) Update(ctx context.Context, id string, in dto.ColorRequest, partial bool) (*dto.ColorResponse, error) {
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
	if err := applyColor(c, in); err != nil {
		return nil, err
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := toColorResponse(c)
	return &resp, nil
}

func (uc *ColorUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func applyColor(c *entity.Color, in dto.ColorRequest) error {
	ve := &domain.ValidationError{}
	if in.Name != nil {
		c.Name = strings.ToLower(strings.TrimSpace(*in.Name))
		if !hexColor.MatchString(c.Name) {
			ve.Add("name", "debe tener el formato #rrggbb")
		}
	}
	if in.Title != nil {
		c.Title = strings.TrimSpace(*in.Title)
		checkLen(ve, "title", c.Title, 30)
	}
	return ve.OrNil()
}

func toColorResponse(c *entity.Color) dto.ColorResponse {
	return dto.ColorResponse{ID: c.ID, Name: c.Name, Title: c.Title, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

// SizeUseCase CRUD de tallas; el listado no se pagina.
type SizeUseCase struct {
	repo repository.SizeRepository
}

func NewSizeUseCase(repo repository.SizeRepository) *SizeUseCase {
	return &SizeUseCase{repo: repo}
}

func (uc *SizeUseCase) List(ctx context.Context) ([]dto.SizeResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SizeResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSizeResponse(s))
	}
	return items, nil
}

func (uc *SizeUseCase) Get(ctx context.Context, id string) (*dto.SizeResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSizeResponse(s)
	return &resp, nil
}

func (uc *SizeUseCase) Create(ctx context.Context, in dto.SizeRequest) (*dto.SizeResponse, error) {
	if err := requireFields(in.Missing()); err != nil {
		return nil, err
	}
	now := time.Now()
	s := &entity.Size{ID: uuid.New().String(), ProductType: entity.ProductTypeClothing, CreatedAt: now, UpdatedAt: now}
	if err := applySize(s, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	resp := toSizeResponse(s)
	return &resp, nil
}

func (uc *SizeUseCase) Update(ctx context.Context, id string, in dto.SizeRequest, partial bool) (*dto.SizeResponse, error) {
	if err := checkRequired(partial, in.Missing()); err != nil {
		return nil, err
	}
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if err := applySize(s, in); err != nil {
		return nil, err
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	resp := toSizeResponse(s)
	return &resp, nil
}

func (uc *SizeUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func applySize(s *entity.Size, in dto.SizeRequest) error {
	ve := &domain.ValidationError{}
	if in.Name != nil {
		s.Name = strings.TrimSpace(*in.Name)
		if s.Name == "" {
			ve.Add("name", "obligatorio")
		}
		checkLen(ve, "name", s.Name, 50)
	}
	if in.ProductType != nil {
		s.ProductType = validProductType(ve, *in.ProductType)
	}
	return ve.OrNil()
}

func toSizeResponse(s *entity.Size) dto.SizeResponse {
	return dto.SizeResponse{ID: s.ID, Name: s.Name, ProductType: string(s.ProductType), CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
}

// AuthorUseCase CRUD de autores de libros.
type AuthorUseCase struct {
	repo repository.AuthorRepository
}

func NewAuthorUseCase(repo repository.AuthorRepository) *AuthorUseCase {
	return &AuthorUseCase{repo: repo}
}

func (uc *AuthorUseCase) List(ctx context.Context, page dto.PageRequest) (dto.ListResponse[dto.AuthorResponse], error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return dto.ListResponse[dto.AuthorResponse]{}, err
	}
	items := make([]dto.AuthorResponse, 0, len(list))
	for _, a := range list {
		items = append(items, toAuthorResponse(a))
	}
	return dto.NewListResponse(items, page, total), nil
}

func (uc *AuthorUseCase) Get(ctx context.Context, id string) (*dto.AuthorResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	resp := toAuthorResponse(a)
	return &resp, nil
}

func (uc *AuthorUseCase) Create(ctx context.Context, in dto.AuthorRequest) (*dto.AuthorResponse, error) {
	now := time.Now()
	a := &entity.Author{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
	if err := applyAuthor(a, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	resp := toAuthorResponse(a)
	return &resp, nil
}

func (uc *AuthorUseCase) Update(ctx context.Context, id string, in dto.AuthorRequest, partial bool) (*dto.AuthorResponse, error) {
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
	if err := applyAuthor(a, in); err != nil {
		return nil, err
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	resp := toAuthorResponse(a)
	return &resp, nil
}

func (uc *AuthorUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func applyAuthor(a *entity.Author, in dto.AuthorRequest) error {
	ve := &domain.ValidationError{}
	if in.Name != nil {
		a.Name = strings.TrimSpace(*in.Name)
		checkLen(ve, "name", a.Name, 255)
	}
	return ve.OrNil()
}

func toAuthorResponse(a *entity.Author) dto.AuthorResponse {
	return dto.AuthorResponse{ID: a.ID, Name: a.Name, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt}
}
