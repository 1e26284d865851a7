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
	_ repository.BannerDiscountRepository = (*BannerDiscountRepo)(nil)
	_ repository.AdvertisementRepository  = (*AdvertisementRepo)(nil)
	_ repository.BannerRepository         = (*BannerRepo)(nil)
)

// BannerDiscountRepo campañas promocionales.
type BannerDiscountRepo struct {
	q Querier
}

func NewBannerDiscountRepository(q Querier) *BannerDiscountRepo {
	return &BannerDiscountRepo{q: q}
}

const bannerDiscountColumns = `id, title, image, deadline, is_active, created_at, updated_at`

func scanBannerDiscount(row pgxScanner) (*entity.BannerDiscount, error) {
	var b entity.BannerDiscount
	if err := row.Scan(&b.ID, &b.Title, &b.Image, &b.Deadline, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BannerDiscountRepo) Create(ctx context.Context, b *entity.BannerDiscount) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO banner_discounts (`+bannerDiscountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID, b.Title, b.Image, b.Deadline, b.IsActive, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert banner discount", err)
	}
	return nil
}

func (r *BannerDiscountRepo) GetByID(ctx context.Context, id string) (*entity.BannerDiscount, error) {
	b, err := scanBannerDiscount(r.q.QueryRow(ctx, `SELECT `+bannerDiscountColumns+` FROM banner_discounts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get banner discount: %w", err)
	}
	return b, nil
}

func (r *BannerDiscountRepo) Update(ctx context.Context, b *entity.BannerDiscount) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE banner_discounts SET title = $2, image = $3, deadline = $4, is_active = $5, updated_at = $6
		WHERE id = $1`,
		b.ID, b.Title, b.Image, b.Deadline, b.IsActive, b.UpdatedAt,
	)
	if err != nil {
		return writeErr("update banner discount", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BannerDiscountRepo) List(ctx context.Context, limit, offset int) ([]*entity.BannerDiscount, int, error) {
	total, err := countRows(ctx, r.q, `SELECT COUNT(*) FROM banner_discounts`)
	if err != nil {
		return nil, 0, fmt.Errorf("count banner discounts: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT `+bannerDiscountColumns+`
		FROM banner_discounts ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list banner discounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.BannerDiscount
	for rows.Next() {
		b, err := scanBannerDiscount(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan banner discount: %w", err)
		}
		list = append(list, b)
	}
	return list, total, rows.Err()
}

func (r *BannerDiscountRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM banner_discounts WHERE id = $1`, id)
	if err != nil {
		return notFoundOnInvalid("delete banner discount", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdvertisementRepo anuncios.
type AdvertisementRepo struct {
	q Querier
}

func NewAdvertisementRepository(q Querier) *AdvertisementRepo {
	return &AdvertisementRepo{q: q}
}

const advertisementColumns = `id, icon, title, description, banner_image, created_at, updated_at`

func scanAdvertisement(row pgxScanner) (*entity.Advertisement, error) {
	var a entity.Advertisement
	if err := row.Scan(&a.ID, &a.Icon, &a.Title, &a.Description, &a.BannerImage, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdvertisementRepo) Create(ctx context.Context, a *entity.Advertisement) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO advertisements (`+advertisementColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.Icon, a.Title, a.Description, a.BannerImage, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert advertisement", err)
	}
	return nil
}

func (r *AdvertisementRepo) GetByID(ctx context.Context, id string) (*entity.Advertisement, error) {
	a, err := scanAdvertisement(r.q.QueryRow(ctx, `SELECT `+advertisementColumns+` FROM advertisements WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get advertisement: %w", err)
	}
	return a, nil
}

func (r *AdvertisementRepo) Update(ctx context.Context, a *entity.Advertisement) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE advertisements SET icon = $2, title = $3, description = $4, banner_image = $5, updated_at = $6
		WHERE id = $1`,
		a.ID, a.Icon, a.Title, a.Description, a.BannerImage, a.UpdatedAt,
	)
	if err != nil {
		return writeErr("update advertisement", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AdvertisementRepo) List(ctx context.Context, limit, offset int) ([]*entity.Advertisement, int, error) {
	total, err := countRows(ctx, r.q, `SELECT COUNT(*) FROM advertisements`)
	if err != nil {
		return nil, 0, fmt.Errorf("count advertisements: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT `+advertisementColumns+`
		FROM advertisements ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list advertisements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Advertisement
	for rows.Next() {
		a, err := scanAdvertisement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan advertisement: %w", err)
		}
		list = append(list, a)
	}
	return list, total, rows.Err()
}

func (r *AdvertisementRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM advertisements WHERE id = $1`, id)
	if err != nil {
		return notFoundOnInvalid("delete advertisement", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// BannerRepo banners de portada.
type BannerRepo struct {
	q Querier
}

func NewBannerRepository(q Querier) *BannerRepo {
	return &BannerRepo{q: q}
}

func scanBanner(row pgxScanner) (*entity.Banner, error) {
	var b entity.Banner
	if err := row.Scan(&b.ID, &b.Title, &b.Description, &b.Image, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BannerRepo) Create(ctx context.Context, b *entity.Banner) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO banners (id, title, description, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID, b.Title, b.Description, b.Image, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert banner", err)
	}
	return nil
}

func (r *BannerRepo) GetByID(ctx context.Context, id string) (*entity.Banner, error) {
	b, err := scanBanner(r.q.QueryRow(ctx,
		`SELECT id, title, description, image, created_at, updated_at FROM banners WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get banner: %w", err)
	}
	return b, nil
}

func (r *BannerRepo) Update(ctx context.Context, b *entity.Banner) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE banners SET title = $2, description = $3, image = $4, updated_at = $5 WHERE id = $1`,
		b.ID, b.Title, b.Description, b.Image, b.UpdatedAt,
	)
	if err != nil {
		return writeErr("update banner", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BannerRepo) List(ctx context.Context, limit, offset int) ([]*entity.Banner, int, error) {
	total, err := countRows(ctx, r.q, `SELECT COUNT(*) FROM banners`)
	if err != nil {
		return nil, 0, fmt.Errorf("count banners: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, title, description, image, created_at, updated_at
		FROM banners ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()
	var list []*entity.Banner
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan banner: %w", err)
		}
		list = append(list, b)
	}
	return list, total, rows.Err()
}

func (r *BannerRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return notFoundOnInvalid("delete banner", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
