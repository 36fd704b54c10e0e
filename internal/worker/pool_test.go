package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/domain"
	domainmocks "github.com/toyshop/storefront/internal/domain/mocks"
	"github.com/toyshop/storefront/internal/metrics"
)

type fakeRecorder struct {
	mu      sync.Mutex
	effects []string
	dropped int
}

func (r *fakeRecorder) SideEffect(effect, result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.effects = append(r.effects, effect+":"+result)
}

func (r *fakeRecorder) EventDropped() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dropped++
}

func (r *fakeRecorder) snapshot() ([]string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.effects...), r.dropped
}

type poolMocks struct {
	orders   *domainmocks.OrderRepositoryMock
	products *domainmocks.ProductRepositoryMock
	notifier *domainmocks.NotifierMock
	booker   *domainmocks.ShipmentBookerMock
	recorder *fakeRecorder
}

func newTestPool(t *testing.T, queueSize int) (*Pool, poolMocks) {
	m := poolMocks{
		orders:   domainmocks.NewOrderRepositoryMock(t),
		products: domainmocks.NewProductRepositoryMock(t),
		notifier: domainmocks.NewNotifierMock(t),
		booker:   domainmocks.NewShipmentBookerMock(t),
		recorder: &fakeRecorder{},
	}
	pool := NewPool(1, queueSize, m.orders, m.products, m.notifier, m.booker, m.recorder, zap.NewNop())
	return pool, m
}

func paidEvent(id string) domain.OrderEvent {
	return domain.OrderEvent{Type: domain.OrderEventPaid, OrderID: id, OccurredAt: time.Now()}
}

func deliveryOrder() *domain.Order {
	return &domain.Order{
		ID:           "order-1",
		Status:       domain.OrderStatusPaid,
		DeliveryType: domain.DeliveryTypeCdekOffice,
		Items:        []*domain.OrderItem{{ProductID: "car", Quantity: 2}, {ProductID: "ball", Quantity: 1}},
	}
}

func TestPool_ProcessEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Notify and book shipment", func(t *testing.T) {
		pool, m := newTestPool(t, 10)
		order := deliveryOrder()
		products := []*domain.Product{{ID: "car"}, {ID: "ball"}}

		m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil).Once()
		m.notifier.EXPECT().Notify(mock.Anything, order).Return(nil).Once()
		m.products.EXPECT().GetProductsByIDs(mock.Anything, []string{"car", "ball"}).Return(products, nil).Once()
		m.booker.EXPECT().BookShipment(mock.Anything, order, products).Return(&domain.Shipment{UUID: "cdek-1", WeightG: 3500}, nil).Once()
		m.orders.EXPECT().SetShipmentUUID(mock.Anything, "order-1", "cdek-1").Return(nil).Once()

		pool.processEvent(ctx, paidEvent("order-1"))

		effects, _ := m.recorder.snapshot()
		assert.Equal(t, []string{"notify:ok", "book_shipment:ok"}, effects)
	})

	t.Run("Pickup only notifies", func(t *testing.T) {
		pool, m := newTestPool(t, 10)
		order := deliveryOrder()
		order.DeliveryType = domain.DeliveryTypePickup

		m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil).Once()
		m.notifier.EXPECT().Notify(mock.Anything, order).Return(nil).Once()

		pool.processEvent(ctx, paidEvent("order-1"))

		effects, _ := m.recorder.snapshot()
		assert.Equal(t, []string{"notify:ok"}, effects)
	})

	t.Run("Notification failure does not block shipment", func(t *testing.T) {
		pool, m := newTestPool(t, 10)
		order := deliveryOrder()

		m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil).Once()
		m.notifier.EXPECT().Notify(mock.Anything, order).Return(errors.New("smtp down")).Once()
		m.products.EXPECT().GetProductsByIDs(mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
		m.booker.EXPECT().BookShipment(mock.Anything, order, []*domain.Product(nil)).Return(&domain.Shipment{UUID: "cdek-1"}, nil).Once()
		m.orders.EXPECT().SetShipmentUUID(mock.Anything, "order-1", "cdek-1").Return(nil).Once()

		pool.processEvent(ctx, paidEvent("order-1"))

		effects, _ := m.recorder.snapshot()
		assert.Equal(t, []string{"notify:" + metrics.SideEffectResultFailed, "book_shipment:ok"}, effects)
	})

	t.Run("Booking failure is recorded", func(t *testing.T) {
		pool, m := newTestPool(t, 10)
		order := deliveryOrder()

		m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil).Once()
		m.notifier.EXPECT().Notify(mock.Anything, order).Return(nil).Once()
		m.products.EXPECT().GetProductsByIDs(mock.Anything, mock.Anything).Return(nil, nil).Once()
		m.booker.EXPECT().BookShipment(mock.Anything, order, mock.Anything).Return(nil, errors.New("cdek 500")).Once()

		pool.processEvent(ctx, paidEvent("order-1"))

		effects, _ := m.recorder.snapshot()
		assert.Equal(t, []string{"notify:ok", "book_shipment:" + metrics.SideEffectResultFailed}, effects)
	})

	t.Run("Already booked", func(t *testing.T) {
		pool, m := newTestPool(t, 10)
		order := deliveryOrder()
		uuid := "cdek-0"
		order.CdekUUID = &uuid

		m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil).Once()
		m.notifier.EXPECT().Notify(mock.Anything, order).Return(nil).Once()

		pool.processEvent(ctx, paidEvent("order-1"))

		effects, _ := m.recorder.snapshot()
		assert.Equal(t, []string{"notify:ok", "book_shipment:" + metrics.SideEffectResultSkipped}, effects)
	})

	t.Run("Carrier not configured", func(t *testing.T) {
		m := poolMocks{
			orders:   domainmocks.NewOrderRepositoryMock(t),
			notifier: domainmocks.NewNotifierMock(t),
			recorder: &fakeRecorder{},
		}
		pool := NewPool(1, 1, m.orders, nil, m.notifier, nil, m.recorder, zap.NewNop())
		order := deliveryOrder()

		m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil).Once()
		m.notifier.EXPECT().Notify(mock.Anything, order).Return(nil).Once()

		pool.processEvent(ctx, paidEvent("order-1"))

		effects, _ := m.recorder.snapshot()
		assert.Equal(t, []string{"notify:ok", "book_shipment:" + metrics.SideEffectResultSkipped}, effects)
	})

	t.Run("Order load failure", func(t *testing.T) {
		pool, m := newTestPool(t, 10)

		m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(nil, domain.ErrOrderNotFound).Once()

		pool.processEvent(ctx, paidEvent("order-1"))

		effects, _ := m.recorder.snapshot()
		assert.Empty(t, effects)
	})
}

func TestPool_Publish(t *testing.T) {
	t.Run("Full queue drops without blocking", func(t *testing.T) {
		pool, m := newTestPool(t, 1)

		pool.Publish(paidEvent("order-1"))
		pool.Publish(paidEvent("order-2"))

		_, dropped := m.recorder.snapshot()
		assert.Equal(t, 1, dropped)
		assert.Len(t, pool.queue, 1)
	})

	t.Run("Publish after stop", func(t *testing.T) {
		pool, m := newTestPool(t, 1)
		pool.Start(context.Background())
		pool.Stop()

		assert.NotPanics(t, func() { pool.Publish(paidEvent("order-1")) })
		_, dropped := m.recorder.snapshot()
		assert.Equal(t, 1, dropped)
	})
}

func TestPool_StartStopDrainsQueue(t *testing.T) {
	pool, m := newTestPool(t, 10)
	order := deliveryOrder()
	order.DeliveryType = domain.DeliveryTypePickup

	done := make(chan struct{}, 3)
	m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil).Times(3)
	m.notifier.EXPECT().Notify(mock.Anything, order).
		Run(func(context.Context, *domain.Order) { done <- struct{}{} }).
		Return(nil).Times(3)

	for i := 0; i < 3; i++ {
		pool.Publish(paidEvent("order-1"))
	}
	pool.Start(context.Background())
	pool.Stop()

	require.Len(t, done, 3)
	effects, dropped := m.recorder.snapshot()
	assert.Len(t, effects, 3)
	assert.Zero(t, dropped)
}
