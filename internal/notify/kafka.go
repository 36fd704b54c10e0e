package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/toyshop/storefront/internal/domain"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PaidEvent сообщение order.paid
type PaidEvent struct {
	Type         domain.OrderEventType `json:"type"`
	OrderID      string                `json:"orderId"`
	OrderNumber  string                `json:"orderNumber"`
	TotalAmount  string                `json:"totalAmount"`
	Currency     string                `json:"currency"`
	DeliveryType domain.DeliveryType   `json:"deliveryType"`
	PaidAt       *time.Time            `json:"paidAt,omitempty"`
}

// Kafka публикует событие оплаты для внешних потребителей
type Kafka struct {
	writer messageWriter
	now    func() time.Time
}

// ParseBrokers разбирает список брокеров через запятую
func ParseBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// NewKafkaWriter создает writer, который раскладывает события одного заказа в одну партицию
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           10 * time.Second,
	}
}

// NewKafka создает канал поверх writer
func NewKafka(writer messageWriter) *Kafka {
	return &Kafka{writer: writer, now: time.Now}
}

// Name имя канала для логов
func (k *Kafka) Name() string { return "kafka" }

// Notify публикует order.paid с ключом id заказа
func (k *Kafka) Notify(ctx context.Context, order *domain.Order) error {
	payload, err := json.Marshal(PaidEvent{
		Type:         domain.OrderEventPaid,
		OrderID:      order.ID,
		OrderNumber:  order.Number,
		TotalAmount:  order.TotalAmount.StringFixed(2),
		Currency:     order.Currency,
		DeliveryType: order.DeliveryType,
		PaidAt:       order.PaidAt,
	})
	if err != nil {
		return fmt.Errorf("kafka: failed to encode event: %w", err)
	}

	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: payload,
		Time:  k.now().UTC(),
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(domain.OrderEventPaid)},
		},
	})
	if err != nil {
		return fmt.Errorf("kafka: failed to publish %s for order %q: %w", domain.OrderEventPaid, order.ID, err)
	}

	return nil
}

// Close закрывает writer
func (k *Kafka) Close() error {
	return k.writer.Close()
}
