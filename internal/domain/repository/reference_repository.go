package repository

import (
	"context"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

// BrandRepository puerto de persistencia para Brand.
type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
	GetByID(ctx context.Context, id string) (*entity.Brand, error)
	Update(ctx context.Context, brand *entity.Brand) error
	List(ctx context.Context, limit, offset int) ([]*entity.Brand, int, error)
	Delete(ctx context.Context, id string) error
}

// ColorRepository puerto de persistencia para Color.
type ColorRepository interface {
	Create(ctx context.Context, color *entity.Color) error
	GetByID(ctx context.Context, id string) (*entity.Color, error)
	Update(ctx context.Context, color *entity.Color) error
	List(ctx context.Context, limit, offset int) ([]*entity.Color, int, error)
	Delete(ctx context.Context, id string) error
}

// SizeRepository puerto de persistencia para Size. El listado no se pagina.
type SizeRepository interface {
	Create(ctx context.Context, size *entity.Size) error
	GetByID(ctx context.Context, id string) (*entity.Size, error)
	Update(ctx context.Context, size *entity.Size) error
	ListAll(ctx context.Context) ([]*entity.Size, error)
	Delete(ctx context.Context, id string) error
}

// AuthorRepository puerto de persistencia para Author.
type AuthorRepository interface {
	Create(ctx context.Context, author *entity.Author) error
	GetByID(ctx context.Context, id string) (*entity.Author, error)
	Update(ctx context.Context, author *entity.Author) error
	List(ctx context.Context, limit, offset int) ([]*entity.Author, int, error)
	Delete(ctx context.Context, id string) error
}
