package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `id, parent_id, title, icon, product_type, is_active, created_at, updated_at`

func scanCategory(row pgxScanner) (*entity.Category, error) {
	var c entity.Category
	var productType string
	if err := row.Scan(&c.ID, &c.ParentID, &c.Title, &c.Icon, &productType, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.ProductType = entity.ProductType(productType)
	return &c, nil
}

func collectCategories(rows pgx.Rows) ([]*entity.Category, error) {
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Create persiste una categoría nueva.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO categories (`+categoryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, nullableString(c.ParentID), c.Title, c.Icon, string(c.ProductType), c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert category", err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	c, err := scanCategory(r.q.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// GetByIDs devuelve las categorías encontradas; los ids inexistentes se omiten.
func (r *CategoryRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		if isInvalidText(err) {
			return nil, domain.ErrInvalidInput
		}
		return nil, fmt.Errorf("get categories: %w", err)
	}
	list, err := collectCategories(rows)
	if err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}
	return list, nil
}

// Update reemplaza los campos editables. domain.ErrNotFound si no existe.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE categories SET parent_id = $2, title = $3, icon = $4, product_type = $5, is_active = $6, updated_at = $7
		WHERE id = $1`,
		c.ID, nullableString(c.ParentID), c.Title, c.Icon, string(c.ProductType), c.IsActive, c.UpdatedAt,
	)
	if err != nil {
		return writeErr("update category", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListActive todas las categorías activas ordenadas por título.
func (r *CategoryRepo) ListActive(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT `+categoryColumns+` FROM categories WHERE is_active ORDER BY lower(title), id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	list, err := collectCategories(rows)
	if err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}
	return list, nil
}

// ListAll incluye las inactivas.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY lower(title), id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	list, err := collectCategories(rows)
	if err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}
	return list, nil
}

// Delete borra la categoría; los hijos caen en cascada.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return notFoundOnInvalid("delete category", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
