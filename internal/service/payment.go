package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/domain"
	"github.com/toyshop/storefront/internal/metrics"
)

// CallbackRecorder учитывает исходы колбэков оплаты
type CallbackRecorder interface {
	PaymentCallback(outcome string)
}

// PaymentService реализует domain.PaymentService
type PaymentService struct {
	orderRepo domain.OrderRepository
	gateway   domain.PaymentGateway
	publisher domain.EventPublisher
	recorder  CallbackRecorder
	logger    *zap.Logger
	now       func() time.Time
}

// NewPaymentService создает новый PaymentService
func NewPaymentService(
	orderRepo domain.OrderRepository,
	gateway domain.PaymentGateway,
	publisher domain.EventPublisher,
	recorder CallbackRecorder,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		orderRepo: orderRepo,
		gateway:   gateway,
		publisher: publisher,
		recorder:  recorder,
		logger:    logger,
		now:       time.Now,
	}
}

// PaymentPage рендерит автоотправляемую форму оплаты заказа
func (s *PaymentService) PaymentPage(ctx context.Context, orderID string) ([]byte, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("payment service: failed to get order %q: %w", orderID, err)
	}

	if order.IsPaid() {
		return nil, domain.ErrOrderAlreadyPaid
	}
	if order.Status != domain.OrderStatusCreated {
		return nil, domain.ErrInvalidTransition
	}

	form, err := s.gateway.BuildPaymentForm(order)
	if err != nil {
		return nil, fmt.Errorf("payment service: failed to build payment form for %q: %w", orderID, err)
	}

	var buf bytes.Buffer
	if err := s.gateway.RenderPaymentForm(&buf, form); err != nil {
		return nil, fmt.Errorf("payment service: failed to render payment form for %q: %w", orderID, err)
	}

	return buf.Bytes(), nil
}

// HandleCallback обрабатывает уведомление шлюза. Проверки идут строго по порядку,
// состояние меняется только после прохождения всех
func (s *PaymentService) HandleCallback(ctx context.Context, callback *domain.PaymentCallback) (*domain.Order, error) {
	order, err := s.handleCallback(ctx, callback)
	s.recorder.PaymentCallback(callbackOutcome(err))
	return order, err
}

func (s *PaymentService) handleCallback(ctx context.Context, callback *domain.PaymentCallback) (*domain.Order, error) {
	log := s.logger.With(
		zap.String("order_id", callback.OrderID),
		zap.String("state", callback.State),
		zap.String("transaction_id", callback.TransactionID),
	)

	order, err := s.orderRepo.GetOrderByID(ctx, callback.OrderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			log.Warn("payment callback for unknown order")
			return nil, err
		}
		return nil, fmt.Errorf("payment service: failed to get order %q: %w", callback.OrderID, err)
	}

	if err := s.gateway.VerifyCallback(callback); err != nil {
		log.Warn("payment callback rejected", zap.Error(err))
		return nil, err
	}

	if order.IsPaid() {
		log.Info("payment callback for already paid order")
		return nil, domain.ErrOrderAlreadyPaid
	}

	if !s.gateway.IsCompleted(callback) {
		log.Info("payment not completed")
		return nil, domain.ErrPaymentNotCompleted
	}

	if callback.Amount != "" {
		amount, err := decimal.NewFromString(callback.Amount)
		if err != nil || !amount.Equal(order.TotalAmount) {
			log.Warn("payment amount mismatch",
				zap.String("reported", callback.Amount),
				zap.String("expected", order.TotalAmount.StringFixed(2)),
			)
		}
	}

	var transactionID *string
	if callback.TransactionID != "" {
		transactionID = &callback.TransactionID
	}

	paidAt := s.now()
	if err := s.orderRepo.MarkOrderPaid(ctx, order.ID, transactionID, paidAt); err != nil {
		if errors.Is(err, domain.ErrOrderAlreadyPaid) || errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, domain.ErrOrderNotFound) {
			log.Info("payment transition rejected", zap.Error(err))
			return nil, err
		}
		return nil, fmt.Errorf("payment service: failed to mark order %q paid: %w", order.ID, err)
	}

	order.Status = domain.OrderStatusPaid
	order.PaidAt = &paidAt
	order.UpdatedAt = paidAt
	if transactionID != nil {
		order.TransactionID = transactionID
	}

	s.publisher.Publish(domain.OrderEvent{Type: domain.OrderEventPaid, OrderID: order.ID, OccurredAt: paidAt})
	log.Info("order paid")

	return order, nil
}

func callbackOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.CallbackPaid
	case errors.Is(err, domain.ErrOrderAlreadyPaid):
		return metrics.CallbackAlreadyPaid
	case errors.Is(err, domain.ErrInvalidSignature):
		return metrics.CallbackBadSignature
	case errors.Is(err, domain.ErrPaymentNotCompleted):
		return metrics.CallbackNotCompleted
	case errors.Is(err, domain.ErrOrderNotFound):
		return metrics.CallbackOrderNotFound
	case errors.Is(err, domain.ErrInvalidTransition):
		return metrics.CallbackInvalidState
	}
	return metrics.CallbackError
}
