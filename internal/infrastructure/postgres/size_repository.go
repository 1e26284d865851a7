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

var _ repository.SizeRepository = (*SizeRepo)(nil)

// SizeRepo implementación del puerto SizeRepository sobre PostgreSQL.
type SizeRepo struct {
	q Querier
}

func NewSizeRepository(q Querier) *SizeRepo {
	return &SizeRepo{q: q}
}

func scanSize(row pgxScanner) (*entity.Size, error) {
	var s entity.Size
	var productType string
	if err := row.Scan(&s.ID, &s.Name, &productType, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.ProductType = entity.ProductType(productType)
	return &s, nil
}

func (r *SizeRepo) Create(ctx context.Context, s *entity.Size) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sizes (id, name, product_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.Name, string(s.ProductType), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert size", err)
	}
	return nil
}

func (r *SizeRepo) GetByID(ctx context.Context, id string) (*entity.Size, error) {
	s, err := scanSize(r.q.QueryRow(ctx,
		`SELECT id, name, product_type, created_at, updated_at FROM sizes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get size: %w", err)
	}
	return s, nil
}

func (r *SizeRepo) Update(ctx context.Context, s *entity.Size) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE sizes SET name = $2, product_type = $3, updated_at = $4 WHERE id = $1`,
		s.ID, s.Name, string(s.ProductType), s.UpdatedAt,
	)
	if err != nil {
		return writeErr("update size", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListAll devuelve todas las tallas (el catálogo de tallas es pequeño y no se pagina).
func (r *SizeRepo) ListAll(ctx context.Context) ([]*entity.Size, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, product_type, created_at, updated_at FROM sizes ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list sizes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Size
	for rows.Next() {
		s, err := scanSize(rows)
		if err != nil {
			return nil, fmt.Errorf("scan size: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *SizeRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sizes WHERE id = $1`, id)
	if err != nil {
		return notFoundOnInvalid("delete size", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
