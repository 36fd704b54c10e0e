package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/domain"
)

// maxBulkProducts ограничение размера пачки на одну транзакцию
const maxBulkProducts = 500

// ProductService реализует domain.ProductService
type ProductService struct {
	productRepo domain.ProductRepository
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewProductService создает новый ProductService
func NewProductService(productRepo domain.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		validate:    newValidator(),
		logger:      logger,
	}
}

// GetProduct получает товар по id
func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("product service: failed to get product %q: %w", id, err)
	}
	return product, nil
}

// CreateProducts добавляет пачку товаров целиком или не добавляет ничего
func (s *ProductService) CreateProducts(ctx context.Context, reqs []*domain.CreateProductRequest) ([]*domain.Product, error) {
	if len(reqs) == 0 {
		return nil, domain.NewValidationError("products must contain at least 1")
	}
	if len(reqs) > maxBulkProducts {
		return nil, domain.NewValidationError(fmt.Sprintf("products must contain at most %d", maxBulkProducts))
	}

	var details []string
	products := make([]*domain.Product, 0, len(reqs))
	for i, req := range reqs {
		if req == nil {
			details = append(details, fmt.Sprintf("products[%d] is required", i))
			continue
		}
		if err := validateStruct(s.validate, req); err != nil {
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				return nil, err
			}
			for _, d := range verr.Details {
				details = append(details, fmt.Sprintf("products[%d].%s", i, d))
			}
			continue
		}
		if req.Price.IsNegative() {
			details = append(details, fmt.Sprintf("products[%d].price must be at least 0", i))
			continue
		}
		products = append(products, newProduct(req))
	}
	if len(details) > 0 {
		return nil, domain.NewValidationError(details...)
	}

	if err := s.productRepo.CreateProducts(ctx, products); err != nil {
		if errors.Is(err, domain.ErrProductSlugExists) {
			return nil, domain.NewValidationError(err.Error())
		}
		return nil, fmt.Errorf("product service: failed to create %d products: %w", len(products), err)
	}

	s.logger.Info("products created", zap.Int("count", len(products)))
	return products, nil
}

func newProduct(req *domain.CreateProductRequest) *domain.Product {
	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	characteristics := make([]*domain.ProductCharacteristic, 0, len(req.Characteristics))
	for i := range req.Characteristics {
		c := req.Characteristics[i]
		characteristics = append(characteristics, &c)
	}

	return &domain.Product{
		Name:            req.Name,
		Slug:            req.Slug,
		Price:           req.Price,
		OldPrice:        req.OldPrice,
		DiscountPercent: req.DiscountPercent,
		Images:          req.Images,
		Breadcrumbs:     req.Breadcrumbs,
		Categories:      req.Categories,
		AgeGroups:       req.AgeGroups,
		InStock:         inStock,
		Characteristics: characteristics,
	}
}
