package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

var _ repository.RateRepository = (*RateRepo)(nil)

// RateRepo calificaciones de productos.
type RateRepo struct {
	q Querier
}

func NewRateRepository(q Querier) *RateRepo {
	return &RateRepo{q: q}
}

const rateColumns = `r.id, r.user_id::text, r.product_id, r.rate, r.comment, r.created_at, r.updated_at`

func scanRate(row pgxScanner) (*entity.Rate, error) {
	var rt entity.Rate
	if err := row.Scan(&rt.ID, &rt.UserID, &rt.ProductID, &rt.Rate, &rt.Comment, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
		return nil, err
	}
	return &rt, nil
}

func collectRates(rows pgx.Rows) ([]*entity.Rate, error) {
	defer rows.Close()
	var list []*entity.Rate
	for rows.Next() {
		rt, err := scanRate(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rt)
	}
	return list, rows.Err()
}

func (r *RateRepo) Create(ctx context.Context, rt *entity.Rate) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO rates (id, user_id, product_id, rate, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rt.ID, nullableString(rt.UserID), rt.ProductID, rt.Rate, rt.Comment, rt.CreatedAt, rt.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert rate", err)
	}
	return nil
}

func (r *RateRepo) GetByID(ctx context.Context, id string) (*entity.Rate, error) {
	rt, err := scanRate(r.q.QueryRow(ctx, `SELECT `+rateColumns+` FROM rates r WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rate: %w", err)
	}
	return rt, nil
}

// Update no reasigna el autor de la calificación.
func (r *RateRepo) Update(ctx context.Context, rt *entity.Rate) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE rates SET product_id = $2, rate = $3, comment = $4, updated_at = $5 WHERE id = $1`,
		rt.ID, rt.ProductID, rt.Rate, rt.Comment, rt.UpdatedAt,
	)
	if err != nil {
		return writeErr("update rate", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RateRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Rate, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+rateColumns+` FROM rates r WHERE r.product_id = $1 ORDER BY r.created_at DESC, r.id`, productID)
	if err != nil {
		if isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list rates: %w", err)
	}
	list, err := collectRates(rows)
	if err != nil {
		return nil, fmt.Errorf("scan rate: %w", err)
	}
	return list, nil
}

// ValuesByProducts solo los valores, agrupados por producto.
func (r *RateRepo) ValuesByProducts(ctx context.Context, productIDs []string) (map[string][]int, error) {
	out := make(map[string][]int, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `SELECT product_id::text, rate FROM rates WHERE product_id = ANY($1::uuid[])`, productIDs)
	if err != nil {
		return nil, fmt.Errorf("rate values: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var productID string
		var value int
		if err := rows.Scan(&productID, &value); err != nil {
			return nil, fmt.Errorf("scan rate value: %w", err)
		}
		out[productID] = append(out[productID], value)
	}
	return out, rows.Err()
}

// List calificaciones de productos activos; search es subcadena del comentario.
func (r *RateRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Rate, int, error) {
	var w whereBuilder
	w.add("p.is_active")
	if search != "" {
		if n, err := strconv.Atoi(search); err == nil {
			w.add("(r.comment ILIKE ? OR r.rate = ?)", likePattern(search), n)
		} else {
			w.add("r.comment ILIKE ?", likePattern(search))
		}
	}
	from := ` FROM rates r JOIN products p ON p.id = r.product_id`
	total, err := countRows(ctx, r.q, `SELECT COUNT(*)`+from+w.sql(), w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count rates: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+rateColumns+from+w.sql()+
			` ORDER BY r.created_at DESC, r.id LIMIT `+w.next(limit)+` OFFSET `+w.next(offset),
		w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list rates: %w", err)
	}
	list, err := collectRates(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("scan rate: %w", err)
	}
	return list, total, nil
}

func (r *RateRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM rates WHERE id = $1`, id)
	if err != nil {
		return notFoundOnInvalid("delete rate", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
