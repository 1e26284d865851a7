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

var _ repository.AuthorRepository = (*AuthorRepo)(nil)

// AuthorRepo implementación del puerto AuthorRepository sobre PostgreSQL.
type AuthorRepo struct {
	q Querier
}

func NewAuthorRepository(q Querier) *AuthorRepo {
	return &AuthorRepo{q: q}
}

func scanAuthor(row pgxScanner) (*entity.Author, error) {
	var a entity.Author
	if err := row.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AuthorRepo) Create(ctx context.Context, a *entity.Author) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO authors (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		a.ID, a.Name, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert author", err)
	}
	return nil
}

func (r *AuthorRepo) GetByID(ctx context.Context, id string) (*entity.Author, error) {
	a, err := scanAuthor(r.q.QueryRow(ctx, `SELECT id, name, created_at, updated_at FROM authors WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get author: %w", err)
	}
	return a, nil
}

func (r *AuthorRepo) Update(ctx context.Context, a *entity.Author) error {
	cmd, err := r.q.Exec(ctx, `UPDATE authors SET name = $2, updated_at = $3 WHERE id = $1`, a.ID, a.Name, a.UpdatedAt)
	if err != nil {
		return writeErr("update author", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AuthorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Author, int, error) {
	total, err := countRows(ctx, r.q, `SELECT COUNT(*) FROM authors`)
	if err != nil {
		return nil, 0, fmt.Errorf("count authors: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM authors ORDER BY lower(name), id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list authors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan author: %w", err)
		}
		list = append(list, a)
	}
	return list, total, rows.Err()
}

func (r *AuthorRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return notFoundOnInvalid("delete author", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
