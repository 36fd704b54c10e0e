package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/domain"
)

// PromoHandler обслуживает промокоды
type PromoHandler struct {
	promoService domain.PromoService
	logger       *zap.Logger
}

// NewPromoHandler создает новый PromoHandler
func NewPromoHandler(promoService domain.PromoService, logger *zap.Logger) *PromoHandler {
	return &PromoHandler{
		promoService: promoService,
		logger:       logger,
	}
}

type validatePromoRequest struct {
	Code        string          `json:"code"`
	OrderAmount decimal.Decimal `json:"orderAmount"`
}

// Validate POST /api/promo-codes/validate
func (h *PromoHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req validatePromoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.promoService.ValidatePromoCode(r.Context(), req.Code, req.OrderAmount)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

// List GET /api/promo-codes
func (h *PromoHandler) List(w http.ResponseWriter, r *http.Request) {
	var details []string
	limit, details := intParam(r.URL.Query().Get("limit"), "limit", details)
	offset, details := intParam(r.URL.Query().Get("offset"), "offset", details)
	if len(details) > 0 {
		writeError(w, r, h.logger, domain.NewValidationError(details...))
		return
	}

	promos, err := h.promoService.ListPromoCodes(r.Context(), limit, offset)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, promos)
}

// Create POST /api/promo-codes
func (h *PromoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.PromoCodeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	promo, err := h.promoService.CreatePromoCode(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, promo)
}

// Get GET /api/promo-codes/{id}
func (h *PromoHandler) Get(w http.ResponseWriter, r *http.Request) {
	promo, err := h.promoService.GetPromoCode(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, promo)
}

// Update PUT /api/promo-codes/{id}
func (h *PromoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.PromoCodeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	promo, err := h.promoService.UpdatePromoCode(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, promo)
}

// Delete DELETE /api/promo-codes/{id}
func (h *PromoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.promoService.DeletePromoCode(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
