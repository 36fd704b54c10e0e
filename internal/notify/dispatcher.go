package notify

import (
	"context"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/domain"
)

// Channel канал уведомлений
type Channel interface {
	domain.Notifier
	Name() string
}

// Dispatcher рассылает уведомление по всем каналам параллельно.
// Сбой одного канала не мешает остальным
type Dispatcher struct {
	channels []Channel
	logger   *zap.Logger
}

// NewDispatcher создает рассыльщик. Пустой список каналов допустим
func NewDispatcher(logger *zap.Logger, channels ...Channel) *Dispatcher {
	return &Dispatcher{channels: channels, logger: logger}
}

// Channels имена подключенных каналов
func (d *Dispatcher) Channels() []string {
	names := make([]string, 0, len(d.channels))
	for _, ch := range d.channels {
		names = append(names, ch.Name())
	}
	return names
}

// Notify возвращает объединенную ошибку всех упавших каналов
func (d *Dispatcher) Notify(ctx context.Context, order *domain.Order) error {
	var (
		mu   sync.Mutex
		errs error
		wg   sync.WaitGroup
	)

	for _, ch := range d.channels {
		wg.Add(1)
		go func(ch Channel) {
			defer wg.Done()

			if err := ch.Notify(ctx, order); err != nil {
				d.logger.Error("notification failed",
					zap.String("order_id", order.ID),
					zap.String("channel", ch.Name()),
					zap.Error(err),
				)
				mu.Lock()
				errs = multierr.Append(errs, err)
				mu.Unlock()
				return
			}

			d.logger.Debug("notification sent",
				zap.String("order_id", order.ID),
				zap.String("channel", ch.Name()),
			)
		}(ch)
	}
	wg.Wait()

	return errs
}
