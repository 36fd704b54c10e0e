package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyshop/storefront/internal/domain"
)

var productColumnNames = []string{
	"id", "name", "slug", "price", "old_price", "discount_percent",
	"images", "breadcrumbs", "categories", "age_groups", "in_stock", "created_at", "updated_at",
}

func productRow(rows *pgxmock.Rows, id, name string, price string) *pgxmock.Rows {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	oldPrice := decimal.RequireFromString("1500.00")
	discount := 20
	return rows.AddRow(
		id, name, "slug-"+id, decimal.RequireFromString(price), &oldPrice, &discount,
		[]string{"/img/1.jpg"}, []string{"Игрушки", "Конструкторы"}, []string{"constructors"}, []string{"3-5"},
		true, now, now,
	)
}

func TestProductRepository_GetProductByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProductRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`FROM products WHERE id = \$1`).
			WithArgs("p-1").
			WillReturnRows(productRow(pgxmock.NewRows(productColumnNames), "p-1", "Конструктор", "1200.00"))
		mock.ExpectQuery(`FROM product_characteristics`).
			WithArgs([]string{"p-1"}).
			WillReturnRows(pgxmock.NewRows([]string{"product_id", "key", "value"}).
				AddRow("p-1", "Вес", "750 гр").
				AddRow("p-1", "Материал", "пластик"))

		product, err := repo.GetProductByID(ctx, "p-1")
		require.NoError(t, err)
		assert.Equal(t, "Конструктор", product.Name)
		assert.True(t, product.Price.Equal(decimal.NewFromInt(1200)))
		require.NotNil(t, product.OldPrice)
		assert.Equal(t, 20, *product.DiscountPercent)
		assert.Equal(t, []string{"Игрушки", "Конструкторы"}, product.Breadcrumbs)
		require.Len(t, product.Characteristics, 2)
		assert.Equal(t, "Вес", product.Characteristics[0].Key)
		assert.Equal(t, "750 гр", product.Characteristics[0].Value)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM products WHERE id`).
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetProductByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_GetProductsByIDs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProductRepository(mock)
	ctx := context.Background()

	t.Run("Found subset", func(t *testing.T) {
		rows := pgxmock.NewRows(productColumnNames)
		productRow(rows, "p-1", "Конструктор", "1000.00")
		productRow(rows, "p-2", "Мяч", "500.00")

		mock.ExpectQuery(`FROM products WHERE id = ANY`).
			WithArgs([]string{"p-1", "p-2", "p-3"}).
			WillReturnRows(rows)
		mock.ExpectQuery(`FROM product_characteristics`).
			WithArgs([]string{"p-1", "p-2"}).
			WillReturnRows(pgxmock.NewRows([]string{"product_id", "key", "value"}).
				AddRow("p-2", "Вес", "1 кг"))

		products, err := repo.GetProductsByIDs(ctx, []string{"p-1", "p-2", "p-3"})
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Empty(t, products[0].Characteristics)
		require.Len(t, products[1].Characteristics, 1)
		assert.Equal(t, "1 кг", products[1].Characteristics[0].Value)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty ids", func(t *testing.T) {
		products, err := repo.GetProductsByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Nil(t, products)
	})
}

func TestProductRepository_CreateProducts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProductRepository(mock)
	ctx := context.Background()
	now := time.Now()

	newProduct := func(slug string) *domain.Product {
		return &domain.Product{
			Name:    "Кукла",
			Slug:    slug,
			Price:   decimal.RequireFromString("990.00"),
			InStock: true,
			Characteristics: []*domain.ProductCharacteristic{
				{Key: "Вес", Value: "300 г"},
			},
		}
	}

	t.Run("Success", func(t *testing.T) {
		product := newProduct("doll")

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO products`).
			WithArgs("Кукла", "doll", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				[]string{}, []string{}, []string{}, []string{}, true).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("p-9", now, now))
		mock.ExpectExec(`INSERT INTO product_characteristics`).
			WithArgs("p-9", "Вес", "300 г", 0).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		err := repo.CreateProducts(ctx, []*domain.Product{product})
		require.NoError(t, err)
		assert.Equal(t, "p-9", product.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate slug rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO products`).
			WithArgs(anyArgs(10)...).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "products_slug_key"})
		mock.ExpectRollback()

		err := repo.CreateProducts(ctx, []*domain.Product{newProduct("doll")})
		assert.ErrorIs(t, err, domain.ErrProductSlugExists)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
