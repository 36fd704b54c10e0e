package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/domain"
	domainmocks "github.com/toyshop/storefront/internal/domain/mocks"
	"github.com/toyshop/storefront/internal/metrics"
)

type outcomeRecorder struct {
	outcomes []string
}

func (r *outcomeRecorder) PaymentCallback(outcome string) {
	r.outcomes = append(r.outcomes, outcome)
}

type paymentServiceMocks struct {
	orders    *domainmocks.OrderRepositoryMock
	gateway   *domainmocks.PaymentGatewayMock
	publisher *domainmocks.EventPublisherMock
	recorder  *outcomeRecorder
}

func newTestPaymentService(t *testing.T) (*PaymentService, paymentServiceMocks) {
	m := paymentServiceMocks{
		orders:    domainmocks.NewOrderRepositoryMock(t),
		gateway:   domainmocks.NewPaymentGatewayMock(t),
		publisher: domainmocks.NewEventPublisherMock(t),
		recorder:  &outcomeRecorder{},
	}
	svc := NewPaymentService(m.orders, m.gateway, m.publisher, m.recorder, zap.NewNop())
	svc.now = func() time.Time { return fixedNow }
	return svc, m
}

func createdOrder() *domain.Order {
	return &domain.Order{
		ID:          "order-1",
		Number:      "2024-0001",
		Status:      domain.OrderStatusCreated,
		TotalAmount: decimal.NewFromInt(2000),
	}
}

func TestPaymentService_PaymentPage(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, m := newTestPaymentService(t)
		order := createdOrder()
		form := &domain.PaymentForm{Action: "https://pay.example"}

		m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil).Once()
		m.gateway.EXPECT().BuildPaymentForm(order).Return(form, nil).Once()
		m.gateway.EXPECT().RenderPaymentForm(mock.Anything, form).
			RunAndReturn(func(w io.Writer, _ *domain.PaymentForm) error {
				_, err := io.WriteString(w, "<form>")
				return err
			}).Once()

		page, err := svc.PaymentPage(ctx, "order-1")
		require.NoError(t, err)
		assert.Equal(t, "<form>", string(page))
	})

	t.Run("Already paid", func(t *testing.T) {
		svc, m := newTestPaymentService(t)
		order := createdOrder()
		order.Status = domain.OrderStatusPaid
		order.PaidAt = &fixedNow

		m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil).Once()

		_, err := svc.PaymentPage(ctx, "order-1")
		assert.ErrorIs(t, err, domain.ErrOrderAlreadyPaid)
	})

	t.Run("Cancelled order", func(t *testing.T) {
		svc, m := newTestPaymentService(t)
		order := createdOrder()
		order.Status = domain.OrderStatusCancelled

		m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil).Once()

		_, err := svc.PaymentPage(ctx, "order-1")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("Not found", func(t *testing.T) {
		svc, m := newTestPaymentService(t)

		m.orders.EXPECT().GetOrderByID(mock.Anything, "missing").Return(nil, domain.ErrOrderNotFound).Once()

		_, err := svc.PaymentPage(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestPaymentService_HandleCallback(t *testing.T) {
	ctx := context.Background()
	complete := func() *domain.PaymentCallback {
		return &domain.PaymentCallback{
			State:         "COMPLETE",
			OrderID:       "order-1",
			Amount:        "2000.00",
			TransactionID: "t1",
			Signature:     "sig",
		}
	}

	t.Run("Paid", func(t *testing.T) {
		svc, m := newTestPaymentService(t)
		cb := complete()

		m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(createdOrder(), nil).Once()
		m.gateway.EXPECT().VerifyCallback(cb).Return(nil).Once()
		m.gateway.EXPECT().IsCompleted(cb).Return(true).Once()
		m.orders.EXPECT().MarkOrderPaid(mock.Anything, "order-1", &cb.TransactionID, fixedNow).Return(nil).Once()
		m.publisher.EXPECT().Publish(domain.OrderEvent{Type: domain.OrderEventPaid, OrderID: "order-1", OccurredAt: fixedNow}).Once()

		order, err := svc.HandleCallback(ctx, cb)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPaid, order.Status)
		require.NotNil(t, order.PaidAt)
		assert.Equal(t, fixedNow, *order.PaidAt)
		require.NotNil(t, order.TransactionID)
		assert.Equal(t, "t1", *order.TransactionID)
		assert.Equal(t, []string{metrics.CallbackPaid}, m.recorder.outcomes)
	})

	t.Run("Signature checked before paid state", func(t *testing.T) {
		svc, m := newTestPaymentService(t)
		cb := complete()
		order := createdOrder()
		order.Status = domain.OrderStatusPaid
		order.PaidAt = &fixedNow

		m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil).Once()
		m.gateway.EXPECT().VerifyCallback(cb).Return(domain.ErrInvalidSignature).Once()

		_, err := svc.HandleCallback(ctx, cb)
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
		assert.Equal(t, []string{metrics.CallbackBadSignature}, m.recorder.outcomes)
	})

	t.Run("Already paid", func(t *testing.T) {
		svc, m := newTestPaymentService(t)
		cb := complete()
		order := createdOrder()
		order.Status = domain.OrderStatusShipped
		order.PaidAt = &fixedNow

		m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil).Once()
		m.gateway.EXPECT().VerifyCallback(cb).Return(nil).Once()

		_, err := svc.HandleCallback(ctx, cb)
		assert.ErrorIs(t, err, domain.ErrOrderAlreadyPaid)
		assert.Equal(t, []string{metrics.CallbackAlreadyPaid}, m.recorder.outcomes)
	})

	t.Run("Not completed", func(t *testing.T) {
		svc, m := newTestPaymentService(t)
		cb := complete()
		cb.State = "FAILED"

		m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(createdOrder(), nil).Once()
		m.gateway.EXPECT().VerifyCallback(cb).Return(nil).Once()
		m.gateway.EXPECT().IsCompleted(cb).Return(false).Once()

		_, err := svc.HandleCallback(ctx, cb)
		assert.ErrorIs(t, err, domain.ErrPaymentNotCompleted)
		assert.Equal(t, []string{metrics.CallbackNotCompleted}, m.recorder.outcomes)
	})

	t.Run("Unknown order", func(t *testing.T) {
		svc, m := newTestPaymentService(t)
		cb := complete()

		m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(nil, domain.ErrOrderNotFound).Once()

		_, err := svc.HandleCallback(ctx, cb)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
		assert.Equal(t, []string{metrics.CallbackOrderNotFound}, m.recorder.outcomes)
	})

	t.Run("Lost race to concurrent callback", func(t *testing.T) {
		svc, m := newTestPaymentService(t)
		cb := complete()

		m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(createdOrder(), nil).Once()
		m.gateway.EXPECT().VerifyCallback(cb).Return(nil).Once()
		m.gateway.EXPECT().IsCompleted(cb).Return(true).Once()
		m.orders.EXPECT().MarkOrderPaid(mock.Anything, "order-1", &cb.TransactionID, fixedNow).
			Return(domain.ErrOrderAlreadyPaid).Once()

		_, err := svc.HandleCallback(ctx, cb)
		assert.ErrorIs(t, err, domain.ErrOrderAlreadyPaid)
		m.publisher.AssertNotCalled(t, "Publish", mock.Anything)
	})

	t.Run("Cancelled order", func(t *testing.T) {
		svc, m := newTestPaymentService(t)
		cb := complete()
		cb.TransactionID = ""

		m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(createdOrder(), nil).Once()
		m.gateway.EXPECT().VerifyCallback(cb).Return(nil).Once()
		m.gateway.EXPECT().IsCompleted(cb).Return(true).Once()
		m.orders.EXPECT().MarkOrderPaid(mock.Anything, "order-1", (*string)(nil), fixedNow).
			Return(domain.ErrInvalidTransition).Once()

		_, err := svc.HandleCallback(ctx, cb)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Equal(t, []string{metrics.CallbackInvalidState}, m.recorder.outcomes)
	})

	t.Run("Amount mismatch still accepted", func(t *testing.T) {
		svc, m := newTestPaymentService(t)
		cb := complete()
		cb.Amount = "1.00"

		m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(createdOrder(), nil).Once()
		m.gateway.EXPECT().VerifyCallback(cb).Return(nil).Once()
		m.gateway.EXPECT().IsCompleted(cb).Return(true).Once()
		m.orders.EXPECT().MarkOrderPaid(mock.Anything, "order-1", &cb.TransactionID, fixedNow).Return(nil).Once()
		m.publisher.EXPECT().Publish(mock.Anything).Once()

		_, err := svc.HandleCallback(ctx, cb)
		assert.NoError(t, err)
	})

	t.Run("Repository failure", func(t *testing.T) {
		svc, m := newTestPaymentService(t)
		cb := complete()

		m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(nil, errors.New("db down")).Once()

		_, err := svc.HandleCallback(ctx, cb)
		assert.Error(t, err)
		assert.Equal(t, []string{metrics.CallbackError}, m.recorder.outcomes)
	})
}
