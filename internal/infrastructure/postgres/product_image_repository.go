package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

var _ repository.ProductImageRepository = (*ProductImageRepo)(nil)

// ProductImageRepo imágenes con precio (SKU por color o muqova). seq conserva el orden de alta.
type ProductImageRepo struct {
	q Querier
}

// NewProductImageRepository construye el adaptador; acepta pool o tx.
func NewProductImageRepository(q Querier) *ProductImageRepo {
	return &ProductImageRepo{q: q}
}

const productImageColumns = `pi.id, pi.product_id, pi.color_id::text, pi.wrapper, pi.image, pi.price, pi.is_active, pi.created_at, pi.updated_at`

func scanProductImage(row pgxScanner) (*entity.ProductImage, error) {
	var img entity.ProductImage
	err := row.Scan(&img.ID, &img.ProductID, &img.ColorID, &img.Wrapper, &img.Image, &img.Price,
		&img.IsActive, &img.CreatedAt, &img.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func collectProductImages(rows pgx.Rows) ([]*entity.ProductImage, error) {
	defer rows.Close()
	var list []*entity.ProductImage
	for rows.Next() {
		img, err := scanProductImage(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, img)
	}
	return list, rows.Err()
}

// selectorWhere condición "mismo producto y (mismo color o misma muqova)" a partir de $1..$3.
const selectorWhere = `product_id = $1 AND (
	($2::text <> '' AND color_id::text = $2) OR
	($3::text <> '' AND wrapper = $3))`

func (r *ProductImageRepo) Create(ctx context.Context, img *entity.ProductImage) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO product_images (id, product_id, color_id, wrapper, image, price, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		img.ID, img.ProductID, nullableString(img.ColorID), nullableString(img.Wrapper), img.Image, img.Price,
		img.IsActive, img.CreatedAt, img.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert product image", err)
	}
	return nil
}

func (r *ProductImageRepo) GetByID(ctx context.Context, id string) (*entity.ProductImage, error) {
	img, err := scanProductImage(r.q.QueryRow(ctx,
		`SELECT `+productImageColumns+` FROM product_images pi WHERE pi.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product image: %w", err)
	}
	return img, nil
}

func (r *ProductImageRepo) Update(ctx context.Context, img *entity.ProductImage) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE product_images SET product_id = $2, color_id = $3, wrapper = $4, image = $5, price = $6,
			is_active = $7, updated_at = $8
		WHERE id = $1`,
		img.ID, img.ProductID, nullableString(img.ColorID), nullableString(img.Wrapper), img.Image, img.Price,
		img.IsActive, img.UpdatedAt,
	)
	if err != nil {
		return writeErr("update product image", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByProduct imágenes del producto en orden de alta (la primera fija el precio base).
func (r *ProductImageRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.ProductImage, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+productImageColumns+` FROM product_images pi WHERE pi.product_id = $1 ORDER BY pi.seq`, productID)
	if err != nil {
		if isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list product images: %w", err)
	}
	list, err := collectProductImages(rows)
	if err != nil {
		return nil, fmt.Errorf("scan product image: %w", err)
	}
	return list, nil
}

// ListByProducts una sola consulta para todo un listado de productos.
func (r *ProductImageRepo) ListByProducts(ctx context.Context, productIDs []string) (map[string][]*entity.ProductImage, error) {
	out := make(map[string][]*entity.ProductImage, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT `+productImageColumns+` FROM product_images pi
		WHERE pi.product_id = ANY($1::uuid[]) ORDER BY pi.product_id, pi.seq`, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list product images: %w", err)
	}
	list, err := collectProductImages(rows)
	if err != nil {
		return nil, fmt.Errorf("scan product image: %w", err)
	}
	for _, img := range list {
		out[img.ProductID] = append(out[img.ProductID], img)
	}
	return out, nil
}

// ListActive imágenes de productos activos, las más recientes primero.
func (r *ProductImageRepo) ListActive(ctx context.Context, onlyWrapped bool, limit, offset int) ([]*entity.ProductImage, int, error) {
	where := ` FROM product_images pi JOIN products p ON p.id = pi.product_id WHERE p.is_active`
	if onlyWrapped {
		where += ` AND pi.wrapper IS NOT NULL AND pi.wrapper <> ''`
	}
	total, err := countRows(ctx, r.q, `SELECT COUNT(*)`+where)
	if err != nil {
		return nil, 0, fmt.Errorf("count product images: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+productImageColumns+where+` ORDER BY pi.seq DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list product images: %w", err)
	}
	list, err := collectProductImages(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("scan product image: %w", err)
	}
	return list, total, nil
}

// DeleteBySelector borra el grupo de imágenes y devuelve las filas borradas. Cero coincidencias no es error.
func (r *ProductImageRepo) DeleteBySelector(ctx context.Context, sel entity.ImageSelector) ([]*entity.ProductImage, error) {
	rows, err := r.q.Query(ctx, `
		DELETE FROM product_images pi WHERE `+selectorWhere+`
		RETURNING `+productImageColumns,
		sel.ProductID, sel.ColorID, sel.Wrapper)
	if err != nil {
		if isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete product images: %w", err)
	}
	list, err := collectProductImages(rows)
	if err != nil {
		return nil, fmt.Errorf("delete product images: %w", err)
	}
	return list, nil
}

// UpdatePriceBySelector fija el precio de todo el grupo y devuelve cuántas filas cambió.
func (r *ProductImageRepo) UpdatePriceBySelector(ctx context.Context, sel entity.ImageSelector, price decimal.Decimal) (int64, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE product_images SET price = $4, updated_at = now() WHERE `+selectorWhere,
		sel.ProductID, sel.ColorID, sel.Wrapper, price)
	if err != nil {
		if isInvalidText(err) {
			return 0, nil
		}
		return 0, writeErr("update product image price", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *ProductImageRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM product_images WHERE id = $1`, id)
	if err != nil {
		return notFoundOnInvalid("delete product image", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
