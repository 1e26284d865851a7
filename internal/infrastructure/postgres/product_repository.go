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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
// Create y Update escriben también product_categories y product_sizes: llamarlos dentro de una tx.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productSelect = `
	SELECT p.id, p.title, p.description, p.status, p.product_type,
		p.brand_id::text, p.author_id::text, p.advertisement_id::text, p.banner_discount_id::text,
		p.percentage, p.view, p.availability, p.has_size, p.is_active, p.language, p.script,
		COALESCE((SELECT array_agg(pc.category_id::text ORDER BY pc.category_id) FROM product_categories pc WHERE pc.product_id = p.id), '{}'),
		COALESCE((SELECT array_agg(ps.size_id::text ORDER BY ps.size_id) FROM product_sizes ps WHERE ps.product_id = p.id), '{}'),
		p.created_at, p.updated_at
	FROM products p`

func scanProduct(row pgxScanner) (*entity.Product, error) {
	var p entity.Product
	var productType string
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Status, &productType,
		&p.BrandID, &p.AuthorID, &p.AdvertisementID, &p.BannerDiscountID,
		&p.Percentage, &p.View, &p.Availability, &p.HasSize, &p.IsActive, &p.Language, &p.Script,
		&p.CategoryIDs, &p.SizeIDs,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ProductType = entity.ProductType(productType)
	return &p, nil
}

// Create persiste el producto y sus relaciones N:M.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (id, title, description, status, product_type, brand_id, author_id, advertisement_id,
			banner_discount_id, percentage, view, availability, has_size, is_active, language, script, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		p.ID, p.Title, p.Description, p.Status, string(p.ProductType),
		nullableString(p.BrandID), nullableString(p.AuthorID), nullableString(p.AdvertisementID), nullableString(p.BannerDiscountID),
		p.Percentage, p.View, p.Availability, p.HasSize, p.IsActive, p.Language, p.Script, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert product", err)
	}
	return r.replaceRelations(ctx, p)
}

// replaceRelations reescribe categorías y tallas del producto.
func (r *ProductRepo) replaceRelations(ctx context.Context, p *entity.Product) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM product_categories WHERE product_id = $1`, p.ID); err != nil {
		return fmt.Errorf("clear product categories: %w", err)
	}
	if len(p.CategoryIDs) > 0 {
		if _, err := r.q.Exec(ctx, `
			INSERT INTO product_categories (product_id, category_id)
			SELECT $1, unnest($2::uuid[]) ON CONFLICT DO NOTHING`, p.ID, p.CategoryIDs); err != nil {
			return writeErr("insert product categories", err)
		}
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM product_sizes WHERE product_id = $1`, p.ID); err != nil {
		return fmt.Errorf("clear product sizes: %w", err)
	}
	if len(p.SizeIDs) > 0 {
		if _, err := r.q.Exec(ctx, `
			INSERT INTO product_sizes (product_id, size_id)
			SELECT $1, unnest($2::uuid[]) ON CONFLICT DO NOTHING`, p.ID, p.SizeIDs); err != nil {
			return writeErr("insert product sizes", err)
		}
	}
	return nil
}

// GetByID obtiene un producto por ID (activo o no). (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update reemplaza los campos editables y las relaciones. View no se toca aquí.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE products SET title = $2, description = $3, status = $4, product_type = $5, brand_id = $6, author_id = $7,
			advertisement_id = $8, banner_discount_id = $9, percentage = $10, availability = $11, has_size = $12,
			is_active = $13, language = $14, script = $15, updated_at = $16
		WHERE id = $1`,
		p.ID, p.Title, p.Description, p.Status, string(p.ProductType),
		nullableString(p.BrandID), nullableString(p.AuthorID), nullableString(p.AdvertisementID), nullableString(p.BannerDiscountID),
		p.Percentage, p.Availability, p.HasSize, p.IsActive, p.Language, p.Script, p.UpdatedAt,
	)
	if err != nil {
		return writeErr("update product", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return r.replaceRelations(ctx, p)
}

// IncrementView suma una vista de forma atómica.
func (r *ProductRepo) IncrementView(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE products SET view = view + 1 WHERE id = $1`, id)
	if err != nil {
		return notFoundOnInvalid("increment product view", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List productos activos filtrados. Los filtros de texto son subcadenas sin distinguir mayúsculas.
func (r *ProductRepo) List(ctx context.Context, f entity.ProductFilter) ([]*entity.Product, int, error) {
	var w whereBuilder
	w.add("p.is_active")
	if f.Category != "" {
		w.add(`EXISTS (SELECT 1 FROM product_categories pc JOIN categories c ON c.id = pc.category_id
			WHERE pc.product_id = p.id AND c.title ILIKE ?)`, likePattern(f.Category))
	}
	if f.Brand != "" {
		w.add(`EXISTS (SELECT 1 FROM brands b WHERE b.id = p.brand_id AND b.title ILIKE ?)`, likePattern(f.Brand))
	}
	if f.Size != "" {
		w.add(`EXISTS (SELECT 1 FROM product_sizes ps WHERE ps.product_id = p.id AND ps.size_id::text = ?)`, f.Size)
	}
	if f.BannerDiscount != "" {
		w.add(`EXISTS (SELECT 1 FROM banner_discounts bd WHERE bd.id = p.banner_discount_id AND bd.title ILIKE ?)`,
			likePattern(f.BannerDiscount))
	}
	if f.ProductType != "" {
		w.add(`p.product_type ILIKE ?`, likePattern(f.ProductType))
	}
	if f.Search != "" {
		pattern := likePattern(f.Search)
		w.add(`(p.title ILIKE ? OR p.description ILIKE ?)`, pattern, pattern)
	}

	total, err := countRows(ctx, r.q, `SELECT COUNT(*) FROM products p`+w.sql(), w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	order := "DESC"
	if !f.OrderDesc {
		order = "ASC"
	}
	query := productSelect + w.sql() +
		` ORDER BY p.created_at ` + order + `, p.id ` + order +
		` LIMIT ` + w.next(f.Limit) + ` OFFSET ` + w.next(f.Offset)

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Delete borra el producto; imágenes, ficha técnica y calificaciones caen en cascada.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return notFoundOnInvalid("delete product", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
