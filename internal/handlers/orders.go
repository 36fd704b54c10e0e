package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/domain"
)

// OrdersHandler обслуживает создание и администрирование заказов
type OrdersHandler struct {
	orderService domain.OrderService
	logger       *zap.Logger
}

// NewOrdersHandler создает новый OrdersHandler
func NewOrdersHandler(orderService domain.OrderService, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// CreateOrder POST /api/orders/create
func (h *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, order)
}

// GetOrder GET /api/orders/{id}
func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

// ListOrders GET /api/orders?status=&limit=&offset=
func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var filter domain.OrderFilter

	if raw := query.Get("status"); raw != "" {
		status, err := domain.ParseOrderStatus(raw)
		if err != nil {
			writeError(w, r, h.logger, err)
			return
		}
		filter.Status = &status
	}

	var details []string
	filter.Limit, details = intParam(query.Get("limit"), "limit", details)
	filter.Offset, details = intParam(query.Get("offset"), "offset", details)
	if len(details) > 0 {
		writeError(w, r, h.logger, domain.NewValidationError(details...))
		return
	}

	orders, err := h.orderService.ListOrders(r.Context(), filter)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, orders)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus PATCH /api/orders/{id}
func (h *OrdersHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	order, err := h.orderService.UpdateOrderStatus(r.Context(), chi.URLParam(r, "id"), status)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

// CancelOrder DELETE /api/orders/{id}
func (h *OrdersHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.CancelOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

func intParam(raw, name string, details []string) (int, []string) {
	if raw == "" {
		return 0, details
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, append(details, name+" must be a non-negative integer")
	}
	return v, details
}
