package repository

import (
	"context"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	// ListActive devuelve todas las categorías activas (el árbol se arma en memoria).
	ListActive(ctx context.Context) ([]*entity.Category, error)
	// ListAll incluye inactivas; se usa para validar ciclos al re-parentar.
	ListAll(ctx context.Context) ([]*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
