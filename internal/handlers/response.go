package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/domain"
)

// maxBodyBytes ограничение размера JSON-тела запроса
const maxBodyBytes = 4 << 20

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// Сообщения о конфликтах состояния заказа
const (
	msgAlreadyPaid    = "Order is already paid"
	msgBadSignature   = "Invalid signature"
	msgNotCompleted   = "Payment not completed"
	msgNotCancellable = "Cannot cancel shipped or delivered order"
	msgInternal       = "Internal server error"
)

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// errorStatus сопоставляет ошибку с кодом ответа и сообщением
func errorStatus(err error) (int, ErrorResponse) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Details: verr.Details}
	}

	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, ErrorResponse{Error: "Order not found"}
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, ErrorResponse{Error: "Product not found"}
	case errors.Is(err, domain.ErrPromoCodeNotFound):
		return http.StatusNotFound, ErrorResponse{Error: "Promo code not found"}
	case errors.Is(err, domain.ErrOrderAlreadyPaid):
		return http.StatusBadRequest, ErrorResponse{Error: msgAlreadyPaid}
	case errors.Is(err, domain.ErrInvalidSignature):
		return http.StatusBadRequest, ErrorResponse{Error: msgBadSignature}
	case errors.Is(err, domain.ErrPaymentNotCompleted):
		return http.StatusBadRequest, ErrorResponse{Error: msgNotCompleted}
	case errors.Is(err, domain.ErrOrderNotCancellable):
		return http.StatusBadRequest, ErrorResponse{Error: msgNotCancellable}
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, ErrorResponse{Error: "Invalid status"}
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusBadRequest, ErrorResponse{Error: "Order cannot be paid in its current status"}
	case errors.Is(err, domain.ErrPromoCodeExists):
		return http.StatusConflict, ErrorResponse{Error: "Promo code already exists"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"}
	}

	return http.StatusInternalServerError, ErrorResponse{Error: msgInternal, Details: err.Error()}
}

// writeError пишет ответ об ошибке. Неожиданные ошибки логируются
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	status, resp := errorStatus(err)
	if status == http.StatusInternalServerError {
		requestID, _ := r.Context().Value(RequestIDKey).(string)
		logger.Error("request failed",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	writeJSON(w, logger, status, resp)
}

// decodeJSON читает тело запроса. Ошибка разбора превращается в ошибку валидации
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("invalid JSON body: " + err.Error())
	}
	return nil
}
