package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las relaciones N:M (categorías, tallas) se guardan junto con el producto.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve el producto aunque esté inactivo; el caso de uso decide la visibilidad.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	IncrementView(ctx context.Context, id string) error
	// List aplica ProductFilter sobre productos activos y devuelve el total sin paginar.
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, int, error)
	Delete(ctx context.Context, id string) error
}

// ProductImageRepository puerto de persistencia para ProductImage.
type ProductImageRepository interface {
	Create(ctx context.Context, img *entity.ProductImage) error
	GetByID(ctx context.Context, id string) (*entity.ProductImage, error)
	Update(ctx context.Context, img *entity.ProductImage) error
	// ListByProduct imágenes de un producto en orden de creación.
	ListByProduct(ctx context.Context, productID string) ([]*entity.ProductImage, error)
	// ListByProducts imágenes agrupadas por producto, en orden de creación.
	ListByProducts(ctx context.Context, productIDs []string) (map[string][]*entity.ProductImage, error)
	// ListActive imágenes de productos activos; onlyWrapped limita a ediciones de libros (con muqova).
	ListActive(ctx context.Context, onlyWrapped bool, limit, offset int) ([]*entity.ProductImage, int, error)
	// DeleteBySelector borra las imágenes que coinciden y devuelve las filas borradas.
	// Los archivos se conservan: el nombre por contenido permite que varias filas compartan archivo.
	DeleteBySelector(ctx context.Context, sel entity.ImageSelector) ([]*entity.ProductImage, error)
	UpdatePriceBySelector(ctx context.Context, sel entity.ImageSelector, price decimal.Decimal) (int64, error)
	Delete(ctx context.Context, id string) error
}

// AdditionalInfoRepository puerto de persistencia para AdditionalInfo.
type AdditionalInfoRepository interface {
	Create(ctx context.Context, info *entity.AdditionalInfo) error
	GetByID(ctx context.Context, id string) (*entity.AdditionalInfo, error)
	Update(ctx context.Context, info *entity.AdditionalInfo) error
	ListByProduct(ctx context.Context, productID string) ([]*entity.AdditionalInfo, error)
	// List sobre productos activos; search filtra por título.
	List(ctx context.Context, search string, limit, offset int) ([]*entity.AdditionalInfo, int, error)
	Delete(ctx context.Context, id string) error
}

// RateRepository puerto de persistencia para Rate.
type RateRepository interface {
	Create(ctx context.Context, rate *entity.Rate) error
	GetByID(ctx context.Context, id string) (*entity.Rate, error)
	Update(ctx context.Context, rate *entity.Rate) error
	ListByProduct(ctx context.Context, productID string) ([]*entity.Rate, error)
	// ValuesByProducts calificaciones crudas por producto (para la media en listados).
	ValuesByProducts(ctx context.Context, productIDs []string) (map[string][]int, error)
	// List sobre productos activos; search filtra por comentario o, si es entero, por la nota.
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Rate, int, error)
	Delete(ctx context.Context, id string) error
}
