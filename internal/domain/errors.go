package domain

import (
	"errors"
	"strings"
)

// Ошибки заказов
var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderAlreadyPaid    = errors.New("order is already paid")
	ErrOrderNotCancellable = errors.New("cannot cancel shipped or delivered order")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrInvalidTransition   = errors.New("order status does not allow this transition")
	ErrOrderNumberConflict = errors.New("order number already taken")
)

// Ошибки оплаты
var (
	ErrInvalidSignature    = errors.New("invalid signature")
	ErrPaymentNotCompleted = errors.New("payment not completed")
)

// Ошибки каталога и промокодов
var (
	ErrProductNotFound        = errors.New("product not found")
	ErrProductSlugExists      = errors.New("product slug already exists")
	ErrPromoCodeNotFound      = errors.New("promo code not found")
	ErrPromoCodeExists        = errors.New("promo code already exists")
	ErrPromoCodeUsageExceeded = errors.New("promo code usage limit reached")
)

// Ошибки админки
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError содержит список ошибок по полям запроса
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// NewValidationError создает ошибку валидации
func NewValidationError(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}
