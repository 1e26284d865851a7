package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/ports"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/catalog"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/pricing"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

const maxProductTitle = 255

// ProductDeps dependencias del caso de uso de productos.
type ProductDeps struct {
	Products   repository.ProductRepository
	Images     repository.ProductImageRepository
	Categories repository.CategoryRepository
	Infos      repository.AdditionalInfoRepository
	Rates      repository.RateRepository
	Currencies repository.CurrencyRepository
	Variants   repository.VariantRepository
	Tx         CatalogTxRunner
	Storage    ports.FileStorage
	Processor  ports.ImagePostProcessor // opcional
	Sheets     ports.ProductSheetGenerator
	Log        *logger.Logger
}

// ProductUseCase catálogo de productos: listados con precios derivados, alta masiva con imágenes
// y operaciones por grupo de imágenes (color o muqova).
type ProductUseCase struct {
	d ProductDeps
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(d ProductDeps) *ProductUseCase {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	return &ProductUseCase{d: d}
}

// pricingContext tasa vigente y plan activo; cualquiera puede ser nil.
func (uc *ProductUseCase) pricingContext(ctx context.Context) (*entity.Currency, *entity.Variant, error) {
	currency, err := uc.d.Currencies.Latest(ctx)
	if err != nil {
		return nil, nil, err
	}
	variant, err := uc.d.Variants.Active(ctx)
	if err != nil {
		return nil, nil, err
	}
	return currency, variant, nil
}

// List productos activos filtrados. forceType restringe el tipo (ej. /books).
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductListQuery, forceType entity.ProductType) (dto.ListResponse[dto.ProductResponse], error) {
	q.DefaultPage()
	filter := entity.ProductFilter{
		Category:       strings.TrimSpace(q.Category),
		Brand:          strings.TrimSpace(q.Brand),
		Size:           strings.TrimSpace(q.Size),
		BannerDiscount: strings.TrimSpace(q.BannerDiscount),
		ProductType:    strings.TrimSpace(q.ProductType),
		Search:         strings.TrimSpace(q.Search),
		OrderDesc:      q.Ordering != "created_at",
		Limit:          q.Limit,
		Offset:         q.Offset,
	}
	if forceType != "" {
		filter.ProductType = string(forceType)
	}
	products, total, err := uc.d.Products.List(ctx, filter)
	if err != nil {
		return dto.ListResponse[dto.ProductResponse]{}, err
	}
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	images, err := uc.d.Images.ListByProducts(ctx, ids)
	if err != nil {
		return dto.ListResponse[dto.ProductResponse]{}, err
	}
	rates, err := uc.d.Rates.ValuesByProducts(ctx, ids)
	if err != nil {
		return dto.ListResponse[dto.ProductResponse]{}, err
	}
	currency, variant, err := uc.pricingContext(ctx)
	if err != nil {
		return dto.ListResponse[dto.ProductResponse]{}, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, uc.toResponse(p, images[p.ID], rates[p.ID], currency, variant))
	}
	return dto.NewListResponse(items, q.PageRequest, total), nil
}

// Detail producto activo con imágenes, ficha técnica y calificaciones. Cada consulta suma una vista.
func (uc *ProductUseCase) Detail(ctx context.Context, id string, forceType entity.ProductType) (*dto.ProductDetailResponse, error) {
	p, err := uc.visible(ctx, id, forceType)
	if err != nil {
		return nil, err
	}
	if err := uc.d.Products.IncrementView(ctx, p.ID); err != nil {
		return nil, err
	}
	p.View++
	return uc.detail(ctx, p)
}

// Sheet ficha de precios en PDF. No cuenta como vista.
func (uc *ProductUseCase) Sheet(ctx context.Context, id string) ([]byte, error) {
	if uc.d.Sheets == nil {
		return nil, fmt.Errorf("generador de fichas no configurado")
	}
	p, err := uc.visible(ctx, id, "")
	if err != nil {
		return nil, err
	}
	detail, err := uc.detail(ctx, p)
	if err != nil {
		return nil, err
	}
	return uc.d.Sheets.GenerateProductSheet(ctx, *detail)
}

func (uc *ProductUseCase) visible(ctx context.Context, id string, forceType entity.ProductType) (*entity.Product, error) {
	p, err := uc.d.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.IsActive || (forceType != "" && p.ProductType != forceType) {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (uc *ProductUseCase) detail(ctx context.Context, p *entity.Product) (*dto.ProductDetailResponse, error) {
	images, err := uc.d.Images.ListByProduct(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	infos, err := uc.d.Infos.ListByProduct(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	rates, err := uc.d.Rates.ListByProduct(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	currency, variant, err := uc.pricingContext(ctx)
	if err != nil {
		return nil, err
	}
	values := make([]int, 0, len(rates))
	rateItems := make([]dto.RateResponse, 0, len(rates))
	for _, r := range rates {
		values = append(values, r.Rate)
		rateItems = append(rateItems, toRateResponse(r))
	}
	imageItems := make([]dto.ProductImageResponse, 0, len(images))
	for _, img := range images {
		imageItems = append(imageItems, toProductImageResponse(uc.d.Storage, img, currency, variant))
	}
	infoItems := make([]dto.AdditionalInfoResponse, 0, len(infos))
	for _, info := range infos {
		infoItems = append(infoItems, toAdditionalInfoResponse(info))
	}
	out := &dto.ProductDetailResponse{
		ProductResponse: uc.toResponse(p, images, values, currency, variant),
		Images:          imageItems,
		AdditionalInfo:  infoItems,
		Rates:           rateItems,
	}
	if variant != nil {
		v := toVariantResponse(variant)
		out.Variant = &v
	}
	return out, nil
}

// Create alta sin imágenes (JSON).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest, forceType entity.ProductType) (*dto.ProductResponse, error) {
	created, err := uc.CreateWithImages(ctx, in, nil, nil, forceType)
	if err != nil {
		return nil, err
	}
	return &created.Data, nil
}

// CreateWithImages alta masiva: el producto y una imagen por archivo, agrupadas por clave.
// La clave es el id de color o, para libros, la muqova (qattiq/yumshoq); el precio llega en prices["price_<clave>"].
// Producto e imágenes se confirman en una única transacción; el post-procesado corre después del commit.
func (uc *ProductUseCase) CreateWithImages(ctx context.Context, in dto.ProductRequest, files map[string][]ports.Upload, prices map[string]string, forceType entity.ProductType) (*dto.ProductCreatedResponse, error) {
	if err := requireFields(in.Missing()); err != nil {
		return nil, err
	}
	if forceType != "" {
		t := string(forceType)
		in.ProductType = &t
	}
	now := time.Now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		Status:      entity.StatusNew,
		ProductType: entity.ProductTypeProduct,
		IsActive:    true,
		Language:    entity.LanguageUzbek,
		Script:      entity.ScriptLatin,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.apply(ctx, p, in); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(files))
	for k := range files {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ve := &domain.ValidationError{}
	keyPrices := make(map[string]decimal.Decimal, len(keys))
	for _, key := range keys {
		if p.ProductType == entity.ProductTypeBook && !entity.ValidWrapper(key) {
			ve.Add(key, "la muqova debe ser qattiq o yumshoq")
		}
		price, err := parsePrice(prices["price_"+key])
		if err != nil {
			ve.Add("price_"+key, err.Error())
			continue
		}
		keyPrices[key] = price
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	var images []*entity.ProductImage
	imagesByKey := make(map[string][]*entity.ProductImage, len(keys))
	for _, key := range keys {
		for _, up := range files[key] {
			up := up
			path, err := saveUpload(ctx, uc.d.Storage, folderProduct, &up)
			if err != nil {
				return nil, err
			}
			img := &entity.ProductImage{
				ID:        uuid.New().String(),
				ProductID: p.ID,
				Image:     path,
				Price:     keyPrices[key],
				IsActive:  true,
				CreatedAt: now,
				UpdatedAt: now,
			}
			k := key
			if p.ProductType == entity.ProductTypeBook {
				img.Wrapper = &k
			} else {
				img.ColorID = &k
			}
			images = append(images, img)
			imagesByKey[key] = append(imagesByKey[key], img)
		}
	}

	err := uc.d.Tx.RunCatalog(ctx, func(products repository.ProductRepository, imageRepo repository.ProductImageRepository) error {
		if err := products.Create(ctx, p); err != nil {
			return err
		}
		for _, img := range images {
			if err := imageRepo.Create(ctx, img); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, img := range images {
		postProcess(ctx, uc.d.Processor, uc.d.Storage, uc.d.Log, img.Image)
	}

	currency, variant, err := uc.pricingContext(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductCreatedResponse{
		Data:   uc.toResponse(p, images, nil, currency, variant),
		Images: make(map[string][]dto.ProductImageResponse, len(keys)),
	}
	for key, list := range imagesByKey {
		for _, img := range list {
			out.Images[key] = append(out.Images[key], toProductImageResponse(uc.d.Storage, img, currency, variant))
		}
	}
	return out, nil
}

// Update reemplazo (PUT) o edición parcial (PATCH). Edita también productos inactivos.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest, partial bool, forceType entity.ProductType) (*dto.ProductResponse, error) {
	if err := checkRequired(partial, in.Missing()); err != nil {
		return nil, err
	}
	p, err := uc.d.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || (forceType != "" && p.ProductType != forceType) {
		return nil, domain.ErrNotFound
	}
	if forceType != "" {
		in.ProductType = nil
	}
	if err := uc.apply(ctx, p, in); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now()
	err = uc.d.Tx.RunCatalog(ctx, func(products repository.ProductRepository, _ repository.ProductImageRepository) error {
		return products.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	images, err := uc.d.Images.ListByProduct(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	rates, err := uc.d.Rates.ValuesByProducts(ctx, []string{p.ID})
	if err != nil {
		return nil, err
	}
	currency, variant, err := uc.pricingContext(ctx)
	if err != nil {
		return nil, err
	}
	resp := uc.toResponse(p, images, rates[p.ID], currency, variant)
	return &resp, nil
}

// Delete borra el producto y, en cascada, sus imágenes, ficha técnica y calificaciones.
func (uc *ProductUseCase) Delete(ctx context.Context, id string, forceType entity.ProductType) error {
	if forceType != "" {
		p, err := uc.d.Products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil || p.ProductType != forceType {
			return domain.ErrNotFound
		}
	}
	return uc.d.Products.Delete(ctx, id)
}

// selector valida la consulta ?product=&color=&wrapper= y comprueba que el producto exista.
func (uc *ProductUseCase) selector(ctx context.Context, q dto.ImageSelectorQuery) (entity.ImageSelector, error) {
	sel := entity.ImageSelector{
		ProductID: strings.TrimSpace(q.Product),
		ColorID:   strings.TrimSpace(q.Color),
		Wrapper:   strings.TrimSpace(q.Wrapper),
	}
	if sel.ProductID == "" {
		return sel, domain.NewValidationError("product", "obligatorio")
	}
	if sel.Empty() {
		return sel, domain.NewValidationError("color", "indique color o wrapper")
	}
	p, err := uc.d.Products.GetByID(ctx, sel.ProductID)
	if err != nil {
		return sel, err
	}
	if p == nil {
		return sel, domain.ErrNotFound
	}
	return sel, nil
}

// RemoveImages borra el grupo de imágenes del producto. Que no coincida ninguna no es un error.
func (uc *ProductUseCase) RemoveImages(ctx context.Context, q dto.ImageSelectorQuery) (int, error) {
	sel, err := uc.selector(ctx, q)
	if err != nil {
		return 0, err
	}
	removed, err := uc.d.Images.DeleteBySelector(ctx, sel)
	if err != nil {
		return 0, err
	}
	uc.d.Log.Info().Str("product_id", sel.ProductID).Int("removed", len(removed)).Msg("imágenes eliminadas por grupo")
	return len(removed), nil
}

// UpdateImagePrice fija el precio de todo el grupo de imágenes.
func (uc *ProductUseCase) UpdateImagePrice(ctx context.Context, q dto.ImageSelectorQuery) (int64, error) {
	price, err := parsePrice(q.Price)
	if err != nil {
		return 0, domain.NewValidationError("price", err.Error())
	}
	sel, err := uc.selector(ctx, q)
	if err != nil {
		return 0, err
	}
	return uc.d.Images.UpdatePriceBySelector(ctx, sel, price)
}

// apply copia los campos presentes de in sobre p y valida el resultado.
func (uc *ProductUseCase) apply(ctx context.Context, p *entity.Product, in dto.ProductRequest) error {
	ve := &domain.ValidationError{}
	if in.Title != nil {
		p.Title = strings.TrimSpace(*in.Title)
		if p.Title == "" {
			ve.Add("title", "obligatorio")
		}
		checkLen(ve, "title", p.Title, maxProductTitle)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			ve.Add("status", "debe ser NEW, HOT, BEST SELL o SALE")
		}
		p.Status = *in.Status
	}
	if in.ProductType != nil {
		p.ProductType = validProductType(ve, *in.ProductType)
	}
	if in.BrandID != nil {
		p.BrandID = optionalID(in.BrandID)
	}
	if in.AuthorID != nil {
		p.AuthorID = optionalID(in.AuthorID)
	}
	if in.AdvertisementID != nil {
		p.AdvertisementID = optionalID(in.AdvertisementID)
	}
	if in.BannerDiscountID != nil {
		p.BannerDiscountID = optionalID(in.BannerDiscountID)
	}
	if in.Percentage != nil {
		if in.Percentage.IsNegative() || in.Percentage.GreaterThan(decimal.NewFromInt(100)) {
			ve.Add("percentage", "debe estar entre 0 y 100")
		}
		p.Percentage = *in.Percentage
	}
	if in.Availability != nil {
		if *in.Availability < 0 {
			ve.Add("availability", "no puede ser negativo")
		}
		p.Availability = *in.Availability
	}
	if in.HasSize != nil {
		p.HasSize = *in.HasSize
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if in.Language != nil {
		if !entity.ValidLanguage(*in.Language) {
			ve.Add("language", "debe ser english, russian o uzbek")
		}
		p.Language = *in.Language
	}
	if in.Script != nil {
		if !entity.ValidScript(*in.Script) {
			ve.Add("script", "debe ser krill o lotin")
		}
		p.Script = *in.Script
	}
	if in.SizeIDs != nil {
		p.SizeIDs = compactIDs(in.SizeIDs)
	}
	if err := ve.OrNil(); err != nil {
		return err
	}
	if in.CategoryIDs != nil {
		ids := compactIDs(in.CategoryIDs)
		if err := uc.checkCategories(ctx, ids); err != nil {
			return err
		}
		p.CategoryIDs = ids
	}
	return nil
}

// checkCategories cada categoría debe existir, estar activa y no ser raíz.
func (uc *ProductUseCase) checkCategories(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := uc.d.Categories.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[string]*entity.Category, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}
	for _, id := range ids {
		if !catalog.IsAttachable(byID[id]) {
			return fmt.Errorf("%w: %s", domain.ErrCategoryNotAttachable, id)
		}
	}
	return nil
}

func (uc *ProductUseCase) toResponse(p *entity.Product, images []*entity.ProductImage, rates []int, currency *entity.Currency, variant *entity.Variant) dto.ProductResponse {
	q := pricing.QuoteProduct(p, images, currency, variant)
	image := ""
	if len(images) > 0 {
		image = mediaURL(uc.d.Storage, images[0].Image)
	}
	categoryIDs := p.CategoryIDs
	if categoryIDs == nil {
		categoryIDs = []string{}
	}
	sizeIDs := p.SizeIDs
	if sizeIDs == nil {
		sizeIDs = []string{}
	}
	return dto.ProductResponse{
		ID:               p.ID,
		Title:            p.Title,
		Description:      p.Description,
		Status:           p.Status,
		ProductType:      string(p.ProductType),
		BrandID:          p.BrandID,
		AuthorID:         p.AuthorID,
		AdvertisementID:  p.AdvertisementID,
		BannerDiscountID: p.BannerDiscountID,
		Percentage:       p.Percentage,
		View:             p.View,
		Availability:     p.Availability,
		HasSize:          p.HasSize,
		IsActive:         p.IsActive,
		Language:         p.Language,
		Script:           p.Script,
		CategoryIDs:      categoryIDs,
		SizeIDs:          sizeIDs,
		Image:            image,
		Pricing: dto.PricingResponse{
			Price:       q.Price,
			Discount:    q.Discount,
			PriceUZS:    q.PriceUZS,
			DiscountUZS: q.DiscountUZS,
			MonthlyUZS:  q.MonthlyUZS,
			TotalUZS:    q.TotalUZS,
		},
		Rating:        pricing.AverageRating(rates),
		RatingPercent: pricing.RatingPercent(rates),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// parsePrice precio no negativo en texto decimal.
func parsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("obligatorio")
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("precio inválido")
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("no puede ser negativo")
	}
	return price, nil
}

// compactIDs recorta espacios, descarta vacíos y duplicados conservando el orden.
func compactIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
