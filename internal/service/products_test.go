package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/domain"
	domainmocks "github.com/toyshop/storefront/internal/domain/mocks"
)

func productRequest() *domain.CreateProductRequest {
	name := gofakeit.ProductName()
	return &domain.CreateProductRequest{
		Name:  name,
		Slug:  gofakeit.UUID(),
		Price: dec("499.90"),
		Characteristics: []domain.ProductCharacteristic{
			{Key: "Вес", Value: "750 гр"},
		},
	}
}

func TestProductService_CreateProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := domainmocks.NewProductRepositoryMock(t)
		svc := NewProductService(repo, zap.NewNop())
		outOfStock := false
		second := productRequest()
		second.InStock = &outOfStock

		repo.EXPECT().CreateProducts(mock.Anything, mock.AnythingOfType("[]*domain.Product")).Return(nil).Once()

		products, err := svc.CreateProducts(ctx, []*domain.CreateProductRequest{productRequest(), second})
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.True(t, products[0].InStock)
		assert.False(t, products[1].InStock)
		require.Len(t, products[0].Characteristics, 1)
		assert.Equal(t, "Вес", products[0].Characteristics[0].Key)
	})

	t.Run("Invalid entries reported by index", func(t *testing.T) {
		repo := domainmocks.NewProductRepositoryMock(t)
		svc := NewProductService(repo, zap.NewNop())
		noName := productRequest()
		noName.Name = ""
		negative := productRequest()
		negative.Price = dec("-1")

		_, err := svc.CreateProducts(ctx, []*domain.CreateProductRequest{productRequest(), noName, negative, nil})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{
			"products[1].name is required",
			"products[2].price must be at least 0",
			"products[3] is required",
		}, verr.Details)
	})

	t.Run("Empty and oversized batches", func(t *testing.T) {
		svc := NewProductService(domainmocks.NewProductRepositoryMock(t), zap.NewNop())

		_, err := svc.CreateProducts(ctx, nil)
		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)

		batch := make([]*domain.CreateProductRequest, maxBulkProducts+1)
		_, err = svc.CreateProducts(ctx, batch)
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("Slug conflict", func(t *testing.T) {
		repo := domainmocks.NewProductRepositoryMock(t)
		svc := NewProductService(repo, zap.NewNop())

		repo.EXPECT().CreateProducts(mock.Anything, mock.Anything).
			Return(fmt.Errorf("%w: teddy", domain.ErrProductSlugExists)).Once()

		_, err := svc.CreateProducts(ctx, []*domain.CreateProductRequest{productRequest()})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Details[0], "slug already exists")
	})
}

func TestProductService_GetProduct(t *testing.T) {
	ctx := context.Background()
	repo := domainmocks.NewProductRepositoryMock(t)
	svc := NewProductService(repo, zap.NewNop())

	repo.EXPECT().GetProductByID(mock.Anything, "p-1").Return(product("p-1", "10"), nil).Once()
	repo.EXPECT().GetProductByID(mock.Anything, "missing").Return(nil, domain.ErrProductNotFound).Once()

	p, err := svc.GetProduct(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "p-1", p.ID)

	_, err = svc.GetProduct(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
