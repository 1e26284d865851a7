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

var _ repository.ColorRepository = (*ColorRepo)(nil)

// ColorRepo implementación del puerto ColorRepository sobre PostgreSQL.
type ColorRepo struct {
	q Querier
}

// NewColorRepository construye el adaptador de persistencia para colores.
func NewColorRepository(q Querier) *ColorRepo {
	return &ColorRepo{q: q}
}

func scanColor(row pgxScanner) (*entity.Color, error) {
	var c entity.Color
	if err := row.Scan(&c.ID, &c.Name, &c.Title, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ColorRepo) Create(ctx context.Context, c *entity.Color) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO colors (id, name, title, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.Title, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert color", err)
	}
	return nil
}

func (r *ColorRepo) GetByID(ctx context.Context, id string) (*entity.Color, error) {
	c, err := scanColor(r.q.QueryRow(ctx,
		`SELECT id, name, title, created_at, updated_at FROM colors WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get color: %w", err)
	}
	return c, nil
}

func (r *ColorRepo) Update(ctx context.Context, c *entity.Color) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE colors SET name = $2, title = $3, updated_at = $4 WHERE id = $1`,
		c.ID, c.Name, c.Title, c.UpdatedAt,
	)
	if err != nil {
		return writeErr("update color", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ColorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Color, int, error) {
	total, err := countRows(ctx, r.q, `SELECT COUNT(*) FROM colors`)
	if err != nil {
		return nil, 0, fmt.Errorf("count colors: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, name, title, created_at, updated_at
		FROM colors ORDER BY created_at, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list colors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Color
	for rows.Next() {
		c, err := scanColor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan color: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// Delete borra el color; las imágenes que lo usaban quedan sin color.
func (r *ColorRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM colors WHERE id = $1`, id)
	if err != nil {
		return notFoundOnInvalid("delete color", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
