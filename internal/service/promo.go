package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/domain"
)

// Причины отказа в применении промокода
const (
	promoNotFound       = "Promo code not found"
	promoInactive       = "Promo code is not active"
	promoNotStarted     = "Promo code is not valid yet"
	promoExpired        = "Promo code has expired"
	promoUsageExhausted = "Promo code usage limit reached"
	promoMinAmountFmt   = "Minimum order amount is %s"
)

var hundred = decimal.NewFromInt(100)

// NormalizePromoCode приводит код к виду, в котором он хранится
func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// EvaluatePromoCode проверяет промокод для суммы заказа и считает скидку.
// Скидка округляется до копеек и не превышает сумму заказа
func EvaluatePromoCode(promo *domain.PromoCode, amount decimal.Decimal, now time.Time) *domain.PromoValidation {
	reject := func(reason string) *domain.PromoValidation {
		return &domain.PromoValidation{IsValid: false, DiscountAmount: decimal.Zero, Error: reason}
	}

	switch {
	case !promo.IsActive:
		return reject(promoInactive)
	case promo.ValidFrom != nil && now.Before(*promo.ValidFrom):
		return reject(promoNotStarted)
	case promo.ValidUntil != nil && now.After(*promo.ValidUntil):
		return reject(promoExpired)
	case promo.MaxUses != nil && promo.CurrentUses >= *promo.MaxUses:
		return reject(promoUsageExhausted)
	case promo.MinOrderAmount != nil && amount.LessThan(*promo.MinOrderAmount):
		return reject(fmt.Sprintf(promoMinAmountFmt, promo.MinOrderAmount.StringFixed(2)))
	}

	var discount decimal.Decimal
	switch promo.Type {
	case domain.PromoCodeTypePercentage:
		discount = amount.Mul(promo.Value).Div(hundred)
	case domain.PromoCodeTypeFixedAmount:
		discount = promo.Value
	}

	return &domain.PromoValidation{
		IsValid:        true,
		DiscountAmount: ClampDiscount(discount.Round(2), amount),
		PromoCode:      promo,
	}
}

// ClampDiscount ограничивает скидку диапазоном [0, amount]
func ClampDiscount(discount, amount decimal.Decimal) decimal.Decimal {
	if discount.IsNegative() {
		return decimal.Zero
	}
	if amount.IsNegative() {
		return decimal.Zero
	}
	return decimal.Min(discount, amount)
}

// PromoService реализует domain.PromoService
type PromoService struct {
	promoRepo domain.PromoCodeRepository
	validate  *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewPromoService создает новый PromoService
func NewPromoService(promoRepo domain.PromoCodeRepository, logger *zap.Logger) *PromoService {
	return &PromoService{
		promoRepo: promoRepo,
		validate:  newValidator(),
		logger:    logger,
		now:       time.Now,
	}
}

// ValidatePromoCode проверяет промокод. Несуществующий код не ошибка, а отказ
func (s *PromoService) ValidatePromoCode(ctx context.Context, code string, orderAmount decimal.Decimal) (*domain.PromoValidation, error) {
	code = NormalizePromoCode(code)
	if code == "" {
		return nil, domain.NewValidationError("code is required")
	}
	if orderAmount.IsNegative() {
		return nil, domain.NewValidationError("orderAmount must be at least 0")
	}

	promo, err := s.promoRepo.GetPromoCodeByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrPromoCodeNotFound) {
			return &domain.PromoValidation{IsValid: false, DiscountAmount: decimal.Zero, Error: promoNotFound}, nil
		}
		return nil, fmt.Errorf("promo service: failed to get promo code %q: %w", code, err)
	}

	return EvaluatePromoCode(promo, orderAmount, s.now()), nil
}

func (s *PromoService) checkRequest(req *domain.PromoCodeRequest) error {
	if err := validateStruct(s.validate, req); err != nil {
		return err
	}

	var details []string
	if !req.Value.IsPositive() {
		details = append(details, "value must be greater than 0")
	}
	if req.Type == domain.PromoCodeTypePercentage && req.Value.GreaterThan(hundred) {
		details = append(details, "value must be at most 100 for PERCENTAGE")
	}
	if req.MinOrderAmount != nil && req.MinOrderAmount.IsNegative() {
		details = append(details, "minOrderAmount must be at least 0")
	}
	if req.ValidFrom != nil && req.ValidUntil != nil && req.ValidUntil.Before(*req.ValidFrom) {
		details = append(details, "validUntil must be after validFrom")
	}
	if len(details) > 0 {
		return domain.NewValidationError(details...)
	}

	return nil
}

func applyPromoRequest(promo *domain.PromoCode, req *domain.PromoCodeRequest) {
	promo.Code = NormalizePromoCode(req.Code)
	promo.Type = req.Type
	promo.Value = req.Value
	promo.MinOrderAmount = req.MinOrderAmount
	promo.MaxUses = req.MaxUses
	promo.ValidFrom = req.ValidFrom
	promo.ValidUntil = req.ValidUntil
	promo.IsActive = true
	if req.IsActive != nil {
		promo.IsActive = *req.IsActive
	}
}

// CreatePromoCode создает промокод
func (s *PromoService) CreatePromoCode(ctx context.Context, req *domain.PromoCodeRequest) (*domain.PromoCode, error) {
	if err := s.checkRequest(req); err != nil {
		return nil, err
	}

	promo := &domain.PromoCode{}
	applyPromoRequest(promo, req)

	if err := s.promoRepo.CreatePromoCode(ctx, promo); err != nil {
		if errors.Is(err, domain.ErrPromoCodeExists) {
			return nil, err
		}
		return nil, fmt.Errorf("promo service: failed to create promo code %q: %w", promo.Code, err)
	}

	s.logger.Info("promo code created", zap.String("promo_id", promo.ID), zap.String("code", promo.Code))
	return promo, nil
}

// GetPromoCode получает промокод по id
func (s *PromoService) GetPromoCode(ctx context.Context, id string) (*domain.PromoCode, error) {
	promo, err := s.promoRepo.GetPromoCodeByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPromoCodeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("promo service: failed to get promo code %q: %w", id, err)
	}
	return promo, nil
}

// ListPromoCodes возвращает страницу промокодов
func (s *PromoService) ListPromoCodes(ctx context.Context, limit, offset int) ([]*domain.PromoCode, error) {
	limit, offset = normalizePage(limit, offset)

	promos, err := s.promoRepo.ListPromoCodes(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("promo service: failed to list promo codes: %w", err)
	}
	if promos == nil {
		promos = []*domain.PromoCode{}
	}
	return promos, nil
}

// UpdatePromoCode перезаписывает промокод целиком
func (s *PromoService) UpdatePromoCode(ctx context.Context, id string, req *domain.PromoCodeRequest) (*domain.PromoCode, error) {
	if err := s.checkRequest(req); err != nil {
		return nil, err
	}

	promo, err := s.GetPromoCode(ctx, id)
	if err != nil {
		return nil, err
	}
	applyPromoRequest(promo, req)

	if err := s.promoRepo.UpdatePromoCode(ctx, promo); err != nil {
		if errors.Is(err, domain.ErrPromoCodeNotFound) || errors.Is(err, domain.ErrPromoCodeExists) {
			return nil, err
		}
		return nil, fmt.Errorf("promo service: failed to update promo code %q: %w", id, err)
	}

	return promo, nil
}

// DeletePromoCode удаляет промокод
func (s *PromoService) DeletePromoCode(ctx context.Context, id string) error {
	if err := s.promoRepo.DeletePromoCode(ctx, id); err != nil {
		if errors.Is(err, domain.ErrPromoCodeNotFound) {
			return err
		}
		return fmt.Errorf("promo service: failed to delete promo code %q: %w", id, err)
	}

	s.logger.Info("promo code deleted", zap.String("promo_id", id))
	return nil
}

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
