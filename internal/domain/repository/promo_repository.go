package repository

import (
	"context"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

// BannerDiscountRepository puerto de persistencia para BannerDiscount.
type BannerDiscountRepository interface {
	Create(ctx context.Context, bd *entity.BannerDiscount) error
	GetByID(ctx context.Context, id string) (*entity.BannerDiscount, error)
	Update(ctx context.Context, bd *entity.BannerDiscount) error
	List(ctx context.Context, limit, offset int) ([]*entity.BannerDiscount, int, error)
	Delete(ctx context.Context, id string) error
}

// AdvertisementRepository puerto de persistencia para Advertisement.
type AdvertisementRepository interface {
	Create(ctx context.Context, ad *entity.Advertisement) error
	GetByID(ctx context.Context, id string) (*entity.Advertisement, error)
	Update(ctx context.Context, ad *entity.Advertisement) error
	List(ctx context.Context, limit, offset int) ([]*entity.Advertisement, int, error)
	Delete(ctx context.Context, id string) error
}

// BannerRepository puerto de persistencia para Banner.
type BannerRepository interface {
	Create(ctx context.Context, banner *entity.Banner) error
	GetByID(ctx context.Context, id string) (*entity.Banner, error)
	Update(ctx context.Context, banner *entity.Banner) error
	List(ctx context.Context, limit, offset int) ([]*entity.Banner, int, error)
	Delete(ctx context.Context, id string) error
}
