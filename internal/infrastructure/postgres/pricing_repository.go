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

var (
	_ repository.CurrencyRepository = (*CurrencyRepo)(nil)
	_ repository.VariantRepository  = (*VariantRepo)(nil)
)

// "La última" es siempre la de mayor seq (orden de inserción); created_at puede reescribirse.
const (
	currencyLatestSQL = `SELECT id, amount, created_at, updated_at FROM currencies ORDER BY seq DESC LIMIT 1`
	variantActiveSQL  = `SELECT id, percent, duration, created_at, updated_at FROM variants ORDER BY seq DESC LIMIT 1`
)

// CurrencyRepo tasas de cambio.
type CurrencyRepo struct {
	q Querier
}

func NewCurrencyRepository(q Querier) *CurrencyRepo {
	return &CurrencyRepo{q: q}
}

func scanCurrency(row pgxScanner) (*entity.Currency, error) {
	var c entity.Currency
	if err := row.Scan(&c.ID, &c.Amount, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CurrencyRepo) Create(ctx context.Context, c *entity.Currency) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO currencies (id, amount, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Amount, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert currency", err)
	}
	return nil
}

func (r *CurrencyRepo) GetByID(ctx context.Context, id string) (*entity.Currency, error) {
	c, err := scanCurrency(r.q.QueryRow(ctx,
		`SELECT id, amount, created_at, updated_at FROM currencies WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get currency: %w", err)
	}
	return c, nil
}

// Latest la tasa vigente; (nil, nil) con la tabla vacía.
func (r *CurrencyRepo) Latest(ctx context.Context) (*entity.Currency, error) {
	c, err := scanCurrency(r.q.QueryRow(ctx,
		currencyLatestSQL))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest currency: %w", err)
	}
	return c, nil
}

func (r *CurrencyRepo) Update(ctx context.Context, c *entity.Currency) error {
	cmd, err := r.q.Exec(ctx, `UPDATE currencies SET amount = $2, updated_at = $3 WHERE id = $1`, c.ID, c.Amount, c.UpdatedAt)
	if err != nil {
		return writeErr("update currency", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List historial de tasas, la más reciente primero.
func (r *CurrencyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Currency, int, error) {
	total, err := countRows(ctx, r.q, `SELECT COUNT(*) FROM currencies`)
	if err != nil {
		return nil, 0, fmt.Errorf("count currencies: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, amount, created_at, updated_at
		FROM currencies ORDER BY seq DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list currencies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Currency
	for rows.Next() {
		c, err := scanCurrency(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan currency: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

func (r *CurrencyRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM currencies WHERE id = $1`, id)
	if err != nil {
		return notFoundOnInvalid("delete currency", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// VariantRepo planes de cuotas.
type VariantRepo struct {
	q Querier
}

func NewVariantRepository(q Querier) *VariantRepo {
	return &VariantRepo{q: q}
}

func scanVariant(row pgxScanner) (*entity.Variant, error) {
	var v entity.Variant
	if err := row.Scan(&v.ID, &v.Percent, &v.Duration, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VariantRepo) Create(ctx context.Context, v *entity.Variant) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO variants (id, percent, duration, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		v.ID, v.Percent, v.Duration, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert variant", err)
	}
	return nil
}

func (r *VariantRepo) GetByID(ctx context.Context, id string) (*entity.Variant, error) {
	v, err := scanVariant(r.q.QueryRow(ctx,
		`SELECT id, percent, duration, created_at, updated_at FROM variants WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant: %w", err)
	}
	return v, nil
}

// Active el último plan creado; (nil, nil) con la tabla vacía.
func (r *VariantRepo) Active(ctx context.Context) (*entity.Variant, error) {
	v, err := scanVariant(r.q.QueryRow(ctx,
		variantActiveSQL))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("active variant: %w", err)
	}
	return v, nil
}

func (r *VariantRepo) Update(ctx context.Context, v *entity.Variant) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE variants SET percent = $2, duration = $3, updated_at = $4 WHERE id = $1`,
		v.ID, v.Percent, v.Duration, v.UpdatedAt,
	)
	if err != nil {
		return writeErr("update variant", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *VariantRepo) List(ctx context.Context, limit, offset int) ([]*entity.Variant, int, error) {
	total, err := countRows(ctx, r.q, `SELECT COUNT(*) FROM variants`)
	if err != nil {
		return nil, 0, fmt.Errorf("count variants: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, percent, duration, created_at, updated_at
		FROM variants ORDER BY seq DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Variant
	for rows.Next() {
		v, err := scanVariant(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan variant: %w", err)
		}
		list = append(list, v)
	}
	return list, total, rows.Err()
}

func (r *VariantRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM variants WHERE id = $1`, id)
	if err != nil {
		return notFoundOnInvalid("delete variant", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
