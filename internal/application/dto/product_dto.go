package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest alta y edición de productos. En el alta multipart, además de estos campos,
// cada archivo va bajo la clave de su color (id) o muqova (qattiq/yumshoq) con su precio en "price_<clave>".
type ProductRequest struct {
	Title            *string          `json:"title" form:"title"`
	Description      *string          `json:"description" form:"description"`
	Status           *string          `json:"status" form:"status"`
	ProductType      *string          `json:"product_type" form:"product_type"`
	BrandID          *string          `json:"brand_id" form:"brand_id"`
	AuthorID         *string          `json:"author_id" form:"author_id"`
	AdvertisementID  *string          `json:"advertisement_id" form:"advertisement_id"`
	BannerDiscountID *string          `json:"banner_discount_id" form:"banner_discount_id"`
	Percentage       *decimal.Decimal `json:"percentage" form:"percentage"`
	Availability     *int             `json:"availability" form:"availability"`
	HasSize          *bool            `json:"has_size" form:"has_size"`
	IsActive         *bool            `json:"is_active" form:"is_active"`
	Language         *string          `json:"language" form:"language"`
	Script           *string          `json:"script" form:"script"`
	CategoryIDs      []string         `json:"category_ids" form:"category_ids"`
	SizeIDs          []string         `json:"size_ids" form:"size_ids"`
}

func (r ProductRequest) Missing() []string {
	return missing(map[string]bool{"title": r.Title == nil, "description": r.Description == nil})
}

// ProductListQuery filtros del listado. Ordering: "created_at" o "-created_at" (por defecto).
type ProductListQuery struct {
	PageRequest
	// Category, Brand y BannerDiscount buscan por subcadena del título; Size es un ID exacto.
	Category       string `query:"category"`
	Brand          string `query:"brand"`
	Size           string `query:"size"`
	BannerDiscount string `query:"banner_discount"`
	ProductType    string `query:"product_type"`
	Search         string `query:"search"`
	Ordering       string `query:"ordering"`
}

// ImageSelectorQuery grupo de imágenes de un producto por color o muqova.
type ImageSelectorQuery struct {
	Product string `query:"product"`
	Color   string `query:"color"`
	Wrapper string `query:"wrapper"`
	Price   string `query:"price"`
}

// PricingResponse precios derivados (no persistidos).
type PricingResponse struct {
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	PriceUZS    int64           `json:"price_uzs"`
	DiscountUZS int64           `json:"discount_uzs"`
	MonthlyUZS  int64           `json:"monthly_uzs"`
	TotalUZS    int64           `json:"total_uzs"`
}

// ProductImageRequest alta de una imagen suelta; el archivo va en "image".
type ProductImageRequest struct {
	ProductID *string          `json:"product_id" form:"product_id"`
	ColorID   *string          `json:"color_id" form:"color_id"`
	Wrapper   *string          `json:"wrapper" form:"wrapper"`
	Price     *decimal.Decimal `json:"price" form:"price"`
	IsActive  *bool            `json:"is_active" form:"is_active"`
}

func (r ProductImageRequest) Missing() []string {
	return missing(map[string]bool{"product_id": r.ProductID == nil, "price": r.Price == nil})
}

// ProductImageResponse imagen con su precio convertido y total en cuotas.
type ProductImageResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	ColorID   *string         `json:"color_id"`
	Wrapper   *string         `json:"wrapper"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	PriceUZS  int64           `json:"price_uzs"`
	TotalUZS  int64           `json:"total_uzs"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductResponse producto tal como aparece en listados.
type ProductResponse struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Status           string          `json:"status"`
	ProductType      string          `json:"product_type"`
	BrandID          *string         `json:"brand_id"`
	AuthorID         *string         `json:"author_id"`
	AdvertisementID  *string         `json:"advertisement_id"`
	BannerDiscountID *string         `json:"banner_discount_id"`
	Percentage       decimal.Decimal `json:"percentage"`
	View             int             `json:"view"`
	Availability     int             `json:"availability"`
	HasSize          bool            `json:"has_size"`
	IsActive         bool            `json:"is_active"`
	Language         string          `json:"language"`
	Script           string          `json:"script"`
	CategoryIDs      []string        `json:"category_ids"`
	SizeIDs          []string        `json:"size_ids"`
	Image            string          `json:"image"`
	Pricing          PricingResponse `json:"pricing"`
	Rating           float64         `json:"rating"`
	RatingPercent    float64         `json:"rating_percent"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ProductDetailResponse detalle con imágenes, ficha técnica y calificaciones.
type ProductDetailResponse struct {
	ProductResponse
	Images         []ProductImageResponse   `json:"images"`
	AdditionalInfo []AdditionalInfoResponse `json:"additional_info"`
	Rates          []RateResponse           `json:"rates"`
	Variant        *VariantResponse         `json:"variant"`
}

// ProductCreatedResponse resultado del alta masiva: el producto y sus imágenes agrupadas por clave.
type ProductCreatedResponse struct {
	Data   ProductResponse                   `json:"data"`
	Images map[string][]ProductImageResponse `json:"images"`
}

// AdditionalInfoRequest fila de ficha técnica.
type AdditionalInfoRequest struct {
	ProductID   *string `json:"product_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (r AdditionalInfoRequest) Missing() []string {
	return missing(map[string]bool{"product_id": r.ProductID == nil, "title": r.Title == nil})
}

type AdditionalInfoResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SearchQuery listado con búsqueda libre.
type SearchQuery struct {
	PageRequest
	Search string `query:"search"`
}

// RateRequest calificación; el autor se toma del token, nunca del cuerpo.
type RateRequest struct {
	ProductID *string `json:"product_id"`
	Rate      *int    `json:"rate"`
	Comment   *string `json:"comment"`
}

func (r RateRequest) Missing() []string {
	return missing(map[string]bool{"product_id": r.ProductID == nil, "rate": r.Rate == nil})
}

type RateResponse struct {
	ID          string    `json:"id"`
	UserID      *string   `json:"user_id"`
	ProductID   string    `json:"product_id"`
	Rate        int       `json:"rate"`
	RatePercent float64   `json:"rate_percent"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
