package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/domain"
)

// maxNumberAttempts попытки вставки с новым номером при коллизии
const maxNumberAttempts = 5

// OrderNumber формирует номер вида YYYY-NNNN со случайным суффиксом
func OrderNumber(now time.Time) string {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return fmt.Sprintf("%d-%04d", now.Year(), now.UnixNano()%10000)
	}
	return fmt.Sprintf("%d-%04d", now.Year(), n.Int64())
}

// OrderService реализует domain.OrderService
type OrderService struct {
	orderRepo   domain.OrderRepository
	productRepo domain.ProductRepository
	promoRepo   domain.PromoCodeRepository
	publisher   domain.EventPublisher
	validate    *validator.Validate
	logger      *zap.Logger
	now         func() time.Time
	numbers     func(time.Time) string
}

// NewOrderService создает новый OrderService
func NewOrderService(
	orderRepo domain.OrderRepository,
	productRepo domain.ProductRepository,
	promoRepo domain.PromoCodeRepository,
	publisher domain.EventPublisher,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		promoRepo:   promoRepo,
		publisher:   publisher,
		validate:    newValidator(),
		logger:      logger,
		now:         time.Now,
		numbers:     OrderNumber,
	}
}

func checkDelivery(req *domain.CreateOrderRequest) error {
	var details []string
	switch req.DeliveryType {
	case domain.DeliveryTypeDelivery:
		if req.DeliveryAddress == nil || strings.TrimSpace(*req.DeliveryAddress) == "" {
			details = append(details, "deliveryAddress is required for delivery")
		}
	case domain.DeliveryTypeCdekOffice:
		if req.CdekOfficeCode == nil || strings.TrimSpace(*req.CdekOfficeCode) == "" {
			details = append(details, "cdekOfficeCode is required for cdek_office")
		}
	}
	if len(details) > 0 {
		return domain.NewValidationError(details...)
	}
	return nil
}

// priceItems фиксирует цены позиций по текущему каталогу
func (s *OrderService) priceItems(ctx context.Context, reqItems []domain.CreateOrderItem) ([]*domain.OrderItem, decimal.Decimal, error) {
	ids := make([]string, 0, len(reqItems))
	seen := make(map[string]struct{}, len(reqItems))
	for _, item := range reqItems {
		if _, ok := seen[item.ProductID]; !ok {
			seen[item.ProductID] = struct{}{}
			ids = append(ids, item.ProductID)
		}
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, ids)
	if err != nil && !errors.Is(err, domain.ErrProductNotFound) {
		return nil, decimal.Zero, fmt.Errorf("order service: failed to load products: %w", err)
	}

	byID := make(map[string]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var details []string
	for _, id := range ids {
		p, ok := byID[id]
		switch {
		case !ok:
			details = append(details, fmt.Sprintf("product %s not found", id))
		case !p.InStock:
			details = append(details, fmt.Sprintf("product %s is out of stock", id))
		}
	}
	if len(details) > 0 {
		return nil, decimal.Zero, domain.NewValidationError(details...)
	}

	items := make([]*domain.OrderItem, 0, len(reqItems))
	total := decimal.Zero
	for _, reqItem := range reqItems {
		p := byID[reqItem.ProductID]
		item := &domain.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    reqItem.Quantity,
			Price:       p.Price,
		}
		items = append(items, item)
		total = total.Add(item.Subtotal())
	}

	return items, total, nil
}

// applyPromo возвращает скидку и id промокода или ошибку валидации
func (s *OrderService) applyPromo(ctx context.Context, code string, amount decimal.Decimal) (decimal.Decimal, *string, error) {
	code = NormalizePromoCode(code)
	if code == "" {
		return decimal.Zero, nil, nil
	}

	promo, err := s.promoRepo.GetPromoCodeByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrPromoCodeNotFound) {
			return decimal.Zero, nil, domain.NewValidationError("promoCode: " + promoNotFound)
		}
		return decimal.Zero, nil, fmt.Errorf("order service: failed to get promo code %q: %w", code, err)
	}

	result := EvaluatePromoCode(promo, amount, s.now())
	if !result.IsValid {
		return decimal.Zero, nil, domain.NewValidationError("promoCode: " + result.Error)
	}

	return result.DiscountAmount, &promo.ID, nil
}

// CreateOrder оформляет заказ в статусе CREATED
func (s *OrderService) CreateOrder(ctx context.Context, req *domain.CreateOrderRequest) (*domain.Order, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}
	if err := checkDelivery(req); err != nil {
		return nil, err
	}

	items, original, err := s.priceItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	var (
		discount = decimal.Zero
		promoID  *string
	)
	if req.PromoCode != nil {
		discount, promoID, err = s.applyPromo(ctx, *req.PromoCode, original)
		if err != nil {
			return nil, err
		}
	}

	order := &domain.Order{
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		CustomerEmail:   req.CustomerEmail,
		DeliveryType:    req.DeliveryType,
		DeliveryAddress: req.DeliveryAddress,
		CdekCityCode:    req.CdekCityCode,
		CdekOfficeCode:  req.CdekOfficeCode,
		Comment:         req.Comment,
		OriginalAmount:  original,
		DiscountAmount:  discount,
		TotalAmount:     decimal.Max(decimal.Zero, original.Sub(discount)),
		Currency:        domain.DefaultCurrency,
		PromoCodeID:     promoID,
		Items:           items,
	}

	for attempt := 1; ; attempt++ {
		order.Number = s.numbers(s.now())

		err = s.orderRepo.CreateOrder(ctx, order)
		if err == nil {
			break
		}

		switch {
		case errors.Is(err, domain.ErrOrderNumberConflict) && attempt < maxNumberAttempts:
			s.logger.Warn("order number collision, retrying",
				zap.String("number", order.Number),
				zap.Int("attempt", attempt),
			)
			continue
		case errors.Is(err, domain.ErrPromoCodeUsageExceeded):
			return nil, domain.NewValidationError("promoCode: " + promoUsageExhausted)
		case errors.Is(err, domain.ErrProductNotFound):
			return nil, domain.NewValidationError("items: product not found")
		}
		return nil, fmt.Errorf("order service: failed to create order: %w", err)
	}

	s.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("number", order.Number),
		zap.String("total", order.TotalAmount.StringFixed(2)),
	)

	return order, nil
}

// GetOrder получает заказ по id
func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to get order %q: %w", id, err)
	}
	return order, nil
}

// ListOrders получает страницу заказов
func (s *OrderService) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	filter.Limit, filter.Offset = normalizePage(filter.Limit, filter.Offset)

	orders, err := s.orderRepo.ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	return orders, nil
}

// UpdateOrderStatus выставляет статус от имени администратора.
// Таблица переходов не применяется, но побочные эффекты PAID запускаются только один раз
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	change, err := s.orderRepo.UpdateOrderStatus(ctx, id, status, s.now())
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to update order %q status: %w", id, err)
	}

	if !change.Previous.CanTransitionTo(change.Current) && change.Previous != change.Current {
		s.logger.Warn("admin status override",
			zap.String("order_id", id),
			zap.String("from", string(change.Previous)),
			zap.String("to", string(change.Current)),
		)
	}

	if change.FirstPaid {
		s.publisher.Publish(domain.OrderEvent{Type: domain.OrderEventPaid, OrderID: id, OccurredAt: s.now()})
	}

	s.logger.Info("order status updated",
		zap.String("order_id", id),
		zap.String("from", string(change.Previous)),
		zap.String("to", string(change.Current)),
		zap.Bool("first_paid", change.FirstPaid),
	)

	return s.GetOrder(ctx, id)
}

// CancelOrder отменяет заказ, если он еще не отправлен
func (s *OrderService) CancelOrder(ctx context.Context, id string) (*domain.Order, error) {
	if err := s.orderRepo.CancelOrder(ctx, id, s.now()); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) || errors.Is(err, domain.ErrOrderNotCancellable) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to cancel order %q: %w", id, err)
	}

	s.logger.Info("order cancelled", zap.String("order_id", id))
	return s.GetOrder(ctx, id)
}
