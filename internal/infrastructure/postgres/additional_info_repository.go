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

var _ repository.AdditionalInfoRepository = (*AdditionalInfoRepo)(nil)

// AdditionalInfoRepo filas de ficha técnica.
type AdditionalInfoRepo struct {
	q Querier
}

func NewAdditionalInfoRepository(q Querier) *AdditionalInfoRepo {
	return &AdditionalInfoRepo{q: q}
}

const additionalInfoColumns = `ai.id, ai.product_id, ai.title, ai.description, ai.created_at, ai.updated_at`

func scanAdditionalInfo(row pgxScanner) (*entity.AdditionalInfo, error) {
	var a entity.AdditionalInfo
	if err := row.Scan(&a.ID, &a.ProductID, &a.Title, &a.Description, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func collectAdditionalInfo(rows pgx.Rows) ([]*entity.AdditionalInfo, error) {
	defer rows.Close()
	var list []*entity.AdditionalInfo
	for rows.Next() {
		a, err := scanAdditionalInfo(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *AdditionalInfoRepo) Create(ctx context.Context, a *entity.AdditionalInfo) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO additional_info (id, product_id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.ProductID, a.Title, a.Description, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert additional info", err)
	}
	return nil
}

func (r *AdditionalInfoRepo) GetByID(ctx context.Context, id string) (*entity.AdditionalInfo, error) {
	a, err := scanAdditionalInfo(r.q.QueryRow(ctx, `SELECT `+additionalInfoColumns+` FROM additional_info ai WHERE ai.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get additional info: %w", err)
	}
	return a, nil
}

func (r *AdditionalInfoRepo) Update(ctx context.Context, a *entity.AdditionalInfo) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE additional_info SET product_id = $2, title = $3, description = $4, updated_at = $5 WHERE id = $1`,
		a.ID, a.ProductID, a.Title, a.Description, a.UpdatedAt,
	)
	if err != nil {
		return writeErr("update additional info", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AdditionalInfoRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.AdditionalInfo, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+additionalInfoColumns+` FROM additional_info ai
		WHERE ai.product_id = $1 ORDER BY ai.created_at, ai.id`, productID)
	if err != nil {
		if isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list additional info: %w", err)
	}
	list, err := collectAdditionalInfo(rows)
	if err != nil {
		return nil, fmt.Errorf("scan additional info: %w", err)
	}
	return list, nil
}

// List filas de productos activos; search es subcadena del título.
func (r *AdditionalInfoRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.AdditionalInfo, int, error) {
	var w whereBuilder
	w.add("p.is_active")
	if search != "" {
		w.add("ai.title ILIKE ?", likePattern(search))
	}
	from := ` FROM additional_info ai JOIN products p ON p.id = ai.product_id`
	total, err := countRows(ctx, r.q, `SELECT COUNT(*)`+from+w.sql(), w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count additional info: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+additionalInfoColumns+from+w.sql()+
			` ORDER BY ai.created_at DESC, ai.id LIMIT `+w.next(limit)+` OFFSET `+w.next(offset),
		w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list additional info: %w", err)
	}
	list, err := collectAdditionalInfo(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("scan additional info: %w", err)
	}
	return list, total, nil
}

func (r *AdditionalInfoRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM additional_info WHERE id = $1`, id)
	if err != nil {
		return notFoundOnInvalid("delete additional info", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
