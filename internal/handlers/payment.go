package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/domain"
	"github.com/toyshop/storefront/internal/modulbank"
)

// PaymentHandler обслуживает оплату через Модульбанк
type PaymentHandler struct {
	paymentService domain.PaymentService
	logger         *zap.Logger
}

// NewPaymentHandler создает новый PaymentHandler
func NewPaymentHandler(paymentService domain.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// PaymentPage GET /api/orders/{id}/pay/modulbank отдает HTML-форму, которая сама уходит в шлюз
func (h *PaymentHandler) PaymentPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.paymentService.PaymentPage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(page); err != nil {
		h.logger.Warn("failed to write payment page", zap.Error(err))
	}
}

type callbackResponse struct {
	Success bool          `json:"success"`
	Order   *domain.Order `json:"order"`
}

// Callback POST /api/orders/{id}/pay принимает уведомление шлюза
func (h *PaymentHandler) Callback(w http.ResponseWriter, r *http.Request) {
	callback, err := modulbank.ParseCallback(r, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	order, err := h.paymentService.HandleCallback(r.Context(), callback)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, callbackResponse{Success: true, Order: order})
}
