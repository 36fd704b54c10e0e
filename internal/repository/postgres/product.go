package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/toyshop/storefront/internal/domain"
)

const productColumns = `id, name, slug, price, old_price, discount_percent,
	images, breadcrumbs, categories, age_groups, in_stock, created_at, updated_at`

// ProductRepository реализует domain.ProductRepository
type ProductRepository struct {
	db DBTX
}

// NewProductRepository создает новый ProductRepository
func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func scanProduct(row pgx.Row, p *domain.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Price, &p.OldPrice, &p.DiscountPercent,
		&p.Images, &p.Breadcrumbs, &p.Categories, &p.AgeGroups, &p.InStock, &p.CreatedAt, &p.UpdatedAt,
	)
}

// GetProductByID получает товар с характеристиками
func (r *ProductRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	product := &domain.Product{}

	err := scanProduct(r.db.QueryRow(ctx,
		`SELECT `+productColumns+`
		 FROM products
		 WHERE id = $1`,
		id,
	), product)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isMalformedID(err) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("repository: failed to get product %q: %w", id, err)
	}

	if err := r.loadCharacteristics(ctx, []*domain.Product{product}); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProductsByIDs получает найденные товары. Отсутствующие id молча пропускаются,
// сверку делает вызывающий
func (r *ProductRepository) GetProductsByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+`
		 FROM products
		 WHERE id = ANY($1::uuid[])`,
		ids,
	)
	if err != nil {
		if isMalformedID(err) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("repository: failed to get products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		product := &domain.Product{}
		if err := scanProduct(rows, product); err != nil {
			return nil, fmt.Errorf("repository: failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating products: %w", err)
	}

	if err := r.loadCharacteristics(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *ProductRepository) loadCharacteristics(ctx context.Context, products []*domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]string, 0, len(products))
	byID := make(map[string]*domain.Product, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
		byID[p.ID] = p
		p.Characteristics = []*domain.ProductCharacteristic{}
	}

	rows, err := r.db.Query(ctx,
		`SELECT product_id, key, value
		 FROM product_characteristics
		 WHERE product_id = ANY($1::uuid[])
		 ORDER BY product_id, position`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to get product characteristics: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID string
		c := &domain.ProductCharacteristic{}
		if err := rows.Scan(&productID, &c.Key, &c.Value); err != nil {
			return fmt.Errorf("repository: failed to scan characteristic: %w", err)
		}
		if p, ok := byID[productID]; ok {
			p.Characteristics = append(p.Characteristics, c)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("repository: error iterating characteristics: %w", err)
	}

	return nil
}

// CreateProducts сохраняет пачку товаров атомарно: либо все, либо ни одного
func (r *ProductRepository) CreateProducts(ctx context.Context, products []*domain.Product) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin products transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	for _, p := range products {
		err = tx.QueryRow(ctx,
			`INSERT INTO products (name, slug, price, old_price, discount_percent,
				images, breadcrumbs, categories, age_groups, in_stock)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 RETURNING id, created_at, updated_at`,
			p.Name, p.Slug, p.Price, p.OldPrice, p.DiscountPercent,
			nonNil(p.Images), nonNil(p.Breadcrumbs), nonNil(p.Categories), nonNil(p.AgeGroups), p.InStock,
		).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err, constraintProductSlug) {
				return fmt.Errorf("repository: slug %q: %w", p.Slug, domain.ErrProductSlugExists)
			}
			return fmt.Errorf("repository: failed to create product %q: %w", p.Slug, err)
		}

		for i, c := range p.Characteristics {
			_, err = tx.Exec(ctx,
				`INSERT INTO product_characteristics (product_id, key, value, position)
				 VALUES ($1, $2, $3, $4)`,
				p.ID, c.Key, c.Value, i,
			)
			if err != nil {
				return fmt.Errorf("repository: failed to create characteristic for %q: %w", p.Slug, err)
			}
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit products: %w", err)
	}

	return nil
}

// nonNil массивы в БД объявлены NOT NULL
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
