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
	"github.com/jhoicas/catalog-api/internal/domain/pricing"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

// ProductImageUseCase imágenes sueltas de producto. Con onlyWrapped sirve el listado de ediciones impresas.
type ProductImageUseCase struct {
	images     repository.ProductImageRepository
	products   repository.ProductRepository
	currencies repository.CurrencyRepository
	variants   repository.VariantRepository
	storage    ports.FileStorage
	processor  ports.ImagePostProcessor
	log        *logger.Logger
}

func NewProductImageUseCase(
	images repository.ProductImageRepository,
	products repository.ProductRepository,
	currencies repository.CurrencyRepository,
	variants repository.VariantRepository,
	storage ports.FileStorage,
	processor ports.ImagePostProcessor,
	log *logger.Logger,
) *ProductImageUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductImageUseCase{
		images: images, products: products, currencies: currencies, variants: variants,
		storage: storage, processor: processor, log: log,
	}
}

func (uc *ProductImageUseCase) List(ctx context.Context, page dto.PageRequest, onlyWrapped bool) (dto.ListResponse[dto.ProductImageResponse], error) {
	page.DefaultPage()
	list, total, err := uc.images.ListActive(ctx, onlyWrapped, page.Limit, page.Offset)
	if err != nil {
		return dto.ListResponse[dto.ProductImageResponse]{}, err
	}
	currency, variant, err := uc.pricingContext(ctx)
	if err != nil {
		return dto.ListResponse[dto.ProductImageResponse]{}, err
	}
	items := make([]dto.ProductImageResponse, 0, len(list))
	for _, img := range list {
		items = append(items, toProductImageResponse(uc.storage, img, currency, variant))
	}
	return dto.NewListResponse(items, page, total), nil
}

func (uc *ProductImageUseCase) Get(ctx context.Context, id string, onlyWrapped bool) (*dto.ProductImageResponse, error) {
	img, err := uc.images.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if img == nil || (onlyWrapped && (img.Wrapper == nil || *img.Wrapper == "")) {
		return nil, domain.ErrNotFound
	}
	currency, variant, err := uc.pricingContext(ctx)
	if err != nil {
		return nil, err
	}
	resp := toProductImageResponse(uc.storage, img, currency, variant)
	return &resp, nil
}

// Create alta de una imagen; el archivo es obligatorio.
func (uc *ProductImageUseCase) Create(ctx context.Context, in dto.ProductImageRequest, file *ports.Upload) (*dto.ProductImageResponse, error) {
	if err := requireFields(in.Missing()); err != nil {
		return nil, err
	}
	if file == nil {
		return nil, domain.NewValidationError("image", "obligatorio")
	}
	now := time.Now()
	img := &entity.ProductImage{
		ID:        uuid.New().String(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.apply(ctx, img, in); err != nil {
		return nil, err
	}
	path, err := saveUpload(ctx, uc.storage, folderProduct, file)
	if err != nil {
		return nil, err
	}
	img.Image = path
	if err := uc.images.Create(ctx, img); err != nil {
		return nil, err
	}
	postProcess(ctx, uc.processor, uc.storage, uc.log, img.Image)
	return uc.Get(ctx, img.ID, false)
}

// Update PUT o PATCH; file reemplaza la imagen si viene.
func (uc *ProductImageUseCase) Update(ctx context.Context, id string, in dto.ProductImageRequest, file *ports.Upload, partial bool) (*dto.ProductImageResponse, error) {
	if err := checkRequired(partial, in.Missing()); err != nil {
		return nil, err
	}
	img, err := uc.images.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.apply(ctx, img, in); err != nil {
		return nil, err
	}
	if file != nil {
		path, err := saveUpload(ctx, uc.storage, folderProduct, file)
		if err != nil {
			return nil, err
		}
		img.Image = path
	}
	img.UpdatedAt = time.Now()
	if err := uc.images.Update(ctx, img); err != nil {
		return nil, err
	}
	if file != nil {
		postProcess(ctx, uc.processor, uc.storage, uc.log, img.Image)
	}
	return uc.Get(ctx, img.ID, false)
}

func (uc *ProductImageUseCase) Delete(ctx context.Context, id string) error {
	return uc.images.Delete(ctx, id)
}

func (uc *ProductImageUseCase) apply(ctx context.Context, img *entity.ProductImage, in dto.ProductImageRequest) error {
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
		img.ProductID = productID
	}
	if in.ColorID != nil {
		img.ColorID = optionalID(in.ColorID)
	}
	if in.Wrapper != nil {
		img.Wrapper = optionalID(in.Wrapper)
		if img.Wrapper != nil && !entity.ValidWrapper(*img.Wrapper) {
			ve.Add("wrapper", "debe ser qattiq o yumshoq")
		}
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			ve.Add("price", "no puede ser negativo")
		}
		img.Price = *in.Price
	}
	if in.IsActive != nil {
		img.IsActive = *in.IsActive
	}
	return ve.OrNil()
}

func (uc *ProductImageUseCase) pricingContext(ctx context.Context) (*entity.Currency, *entity.Variant, error) {
	currency, err := uc.currencies.Latest(ctx)
	if err != nil {
		return nil, nil, err
	}
	variant, err := uc.variants.Active(ctx)
	if err != nil {
		return nil, nil, err
	}
	return currency, variant, nil
}

func toProductImageResponse(storage ports.FileStorage, img *entity.ProductImage, currency *entity.Currency, variant *entity.Variant) dto.ProductImageResponse {
	q := pricing.QuoteImage(img, currency, variant)
	return dto.ProductImageResponse{
		ID:        img.ID,
		ProductID: img.ProductID,
		ColorID:   img.ColorID,
		Wrapper:   img.Wrapper,
		Image:     mediaURL(storage, img.Image),
		Price:     img.Price,
		PriceUZS:  q.PriceUZS,
		TotalUZS:  q.TotalUZS,
		IsActive:  img.IsActive,
		CreatedAt: img.CreatedAt,
		UpdatedAt: img.UpdatedAt,
	}
}
