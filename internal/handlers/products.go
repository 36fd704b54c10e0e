package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/domain"
)

// ProductsHandler обслуживает каталог товаров
type ProductsHandler struct {
	productService domain.ProductService
	logger         *zap.Logger
}

// NewProductsHandler создает новый ProductsHandler
func NewProductsHandler(productService domain.ProductService, logger *zap.Logger) *ProductsHandler {
	return &ProductsHandler{
		productService: productService,
		logger:         logger,
	}
}

// GetProduct GET /api/products/{id}
func (h *ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.productService.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, product)
}

type bulkProductsRequest struct {
	Products []*domain.CreateProductRequest `json:"products"`
}

type bulkProductsResponse struct {
	Created  int               `json:"created"`
	Products []*domain.Product `json:"products"`
}

// BulkCreate POST /api/products/bulk принимает массив товаров или {"products": [...]}
func (h *ProductsHandler) BulkCreate(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := decodeJSON(w, r, &raw); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var reqs []*domain.CreateProductRequest
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &reqs); err != nil {
			writeError(w, r, h.logger, domain.NewValidationError("invalid JSON body: "+err.Error()))
			return
		}
	} else {
		var body bulkProductsRequest
		if err := json.Unmarshal(trimmed, &body); err != nil {
			writeError(w, r, h.logger, domain.NewValidationError("invalid JSON body: "+err.Error()))
			return
		}
		reqs = body.Products
	}

	products, err := h.productService.CreateProducts(r.Context(), reqs)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, bulkProductsResponse{Created: len(products), Products: products})
}
