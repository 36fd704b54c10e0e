package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/domain"
	"github.com/toyshop/storefront/internal/metrics"
)

// defaultEffectTimeout ограничение на все побочные эффекты одного события
const defaultEffectTimeout = 30 * time.Second

// Recorder учитывает исходы побочных эффектов
type Recorder interface {
	SideEffect(effect, result string)
	EventDropped()
}

// Pool представляет пул воркеров для побочных эффектов оплаты.
// Реализует domain.EventPublisher: событие ставится в очередь, ответ HTTP его не ждет
type Pool struct {
	workers     int
	queue       chan domain.OrderEvent
	orderRepo   domain.OrderRepository
	productRepo domain.ProductRepository
	notifier    domain.Notifier
	booker      domain.ShipmentBooker // nil, если СДЭК не настроен
	recorder    Recorder
	logger      *zap.Logger
	wg          sync.WaitGroup
	timeout     time.Duration

	mu      sync.RWMutex
	stopped bool
}

// NewPool создает новый worker pool
func NewPool(
	workers int,
	queueSize int,
	orderRepo domain.OrderRepository,
	productRepo domain.ProductRepository,
	notifier domain.Notifier,
	booker domain.ShipmentBooker,
	recorder Recorder,
	logger *zap.Logger,
) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		workers:     workers,
		queue:       make(chan domain.OrderEvent, queueSize),
		orderRepo:   orderRepo,
		productRepo: productRepo,
		notifier:    notifier,
		booker:      booker,
		recorder:    recorder,
		logger:      logger,
		timeout:     defaultEffectTimeout,
	}
}

// Publish ставит событие в очередь без блокировки.
// При переполненной очереди событие теряется с предупреждением
func (p *Pool) Publish(event domain.OrderEvent) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		p.logger.Warn("worker pool stopped, dropping event",
			zap.String("order_id", event.OrderID),
			zap.String("type", string(event.Type)),
		)
		p.recorder.EventDropped()
		return
	}

	select {
	case p.queue <- event:
	default:
		p.logger.Warn("queue is full, dropping event",
			zap.String("order_id", event.OrderID),
			zap.String("type", string(event.Type)),
		)
		p.recorder.EventDropped()
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

// Stop закрывает очередь и ждет, пока воркеры разберут оставшиеся события
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.queue)
	}
	p.mu.Unlock()

	p.wg.Wait()
}

// worker обрабатывает события из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case event, ok := <-p.queue:
			if !ok {
				return
			}
			p.processEvent(ctx, event)
		}
	}
}

// processEvent выполняет побочные эффекты. Ошибки логируются и не повторяются
func (p *Pool) processEvent(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.OrderEventPaid {
		p.logger.Warn("unknown event type", zap.String("type", string(event.Type)))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	log := p.logger.With(zap.String("order_id", event.OrderID))

	order, err := p.orderRepo.GetOrderByID(ctx, event.OrderID)
	if err != nil {
		log.Error("failed to load order for side effects", zap.Error(err))
		return
	}

	for _, effect := range domain.PaidSideEffects(order.DeliveryType) {
		switch effect {
		case domain.SideEffectNotify:
			p.notify(ctx, log, order)
		case domain.SideEffectBookShipment:
			p.bookShipment(ctx, log, order)
		}
	}
}

func (p *Pool) notify(ctx context.Context, log *zap.Logger, order *domain.Order) {
	if err := p.notifier.Notify(ctx, order); err != nil {
		log.Error("order notification failed", zap.Error(err))
		p.recorder.SideEffect(string(domain.SideEffectNotify), metrics.SideEffectResultFailed)
		return
	}
	p.recorder.SideEffect(string(domain.SideEffectNotify), metrics.SideEffectResultOK)
}

func (p *Pool) bookShipment(ctx context.Context, log *zap.Logger, order *domain.Order) {
	effect := string(domain.SideEffectBookShipment)

	switch {
	case p.booker == nil:
		log.Warn("shipment booking skipped: carrier is not configured")
		p.recorder.SideEffect(effect, metrics.SideEffectResultSkipped)
		return
	case order.CdekUUID != nil:
		log.Info("shipment already booked", zap.String("cdek_uuid", *order.CdekUUID))
		p.recorder.SideEffect(effect, metrics.SideEffectResultSkipped)
		return
	}

	ids := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := p.productRepo.GetProductsByIDs(ctx, ids)
	if err != nil {
		// Без характеристик посылка уйдет с весом и габаритами по умолчанию
		log.Warn("failed to load products for shipment", zap.Error(err))
	}

	shipment, err := p.booker.BookShipment(ctx, order, products)
	if err != nil {
		log.Error("shipment booking failed", zap.Error(err))
		p.recorder.SideEffect(effect, metrics.SideEffectResultFailed)
		return
	}

	if err := p.orderRepo.SetShipmentUUID(ctx, order.ID, shipment.UUID); err != nil {
		log.Error("failed to store shipment uuid",
			zap.String("cdek_uuid", shipment.UUID),
			zap.Error(err),
		)
		p.recorder.SideEffect(effect, metrics.SideEffectResultFailed)
		return
	}

	log.Info("shipment booked",
		zap.String("cdek_uuid", shipment.UUID),
		zap.Int("weight_g", shipment.WeightG),
	)
	p.recorder.SideEffect(effect, metrics.SideEffectResultOK)
}
