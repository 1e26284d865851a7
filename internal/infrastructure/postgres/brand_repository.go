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

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo implementación del puerto BrandRepository sobre PostgreSQL.
type BrandRepo struct {
	q Querier
}

// NewBrandRepository construye el adaptador de persistencia para marcas.
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

func scanBrand(row pgxScanner) (*entity.Brand, error) {
	var b entity.Brand
	var productType string
	if err := row.Scan(&b.ID, &b.Title, &productType, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.ProductType = entity.ProductType(productType)
	return &b, nil
}

// Create persiste una marca.
func (r *BrandRepo) Create(ctx context.Context, b *entity.Brand) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO brands (id, title, product_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		b.ID, b.Title, string(b.ProductType), b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert brand", err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *BrandRepo) GetByID(ctx context.Context, id string) (*entity.Brand, error) {
	b, err := scanBrand(r.q.QueryRow(ctx,
		`SELECT id, title, product_type, created_at, updated_at FROM brands WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return b, nil
}

// Update actualiza título y tipo.
func (r *BrandRepo) Update(ctx context.Context, b *entity.Brand) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE brands SET title = $2, product_type = $3, updated_at = $4 WHERE id = $1`,
		b.ID, b.Title, string(b.ProductType), b.UpdatedAt,
	)
	if err != nil {
		return writeErr("update brand", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List marcas por título con el total sin paginar.
func (r *BrandRepo) List(ctx context.Context, limit, offset int) ([]*entity.Brand, int, error) {
	total, err := countRows(ctx, r.q, `SELECT COUNT(*) FROM brands`)
	if err != nil {
		return nil, 0, fmt.Errorf("count brands: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, title, product_type, created_at, updated_at
		FROM brands ORDER BY lower(title), id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()
	var list []*entity.Brand
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, b)
	}
	return list, total, rows.Err()
}

// Delete borra la marca; los productos quedan sin marca.
func (r *BrandRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return notFoundOnInvalid("delete brand", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
