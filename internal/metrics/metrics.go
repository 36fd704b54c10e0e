// Package metrics собирает метрики Prometheus: HTTP, колбэки оплаты и побочные эффекты.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

// Исходы обработки колбэка оплаты
const (
	CallbackPaid            = "paid"
	CallbackAlreadyPaid     = "already_paid"
	CallbackBadSignature    = "invalid_signature"
	CallbackNotCompleted    = "not_completed"
	CallbackOrderNotFound   = "not_found"
	CallbackInvalidState    = "invalid_transition"
	CallbackError           = "error"
	SideEffectResultOK      = "ok"
	SideEffectResultFailed  = "failed"
	SideEffectResultSkipped = "skipped"
)

// Metrics набор метрик сервиса
type Metrics struct {
	Requests         *prometheus.CounterVec
	LatencyMS        *prometheus.HistogramVec
	PaymentCallbacks *prometheus.CounterVec
	SideEffects      *prometheus.CounterVec
	DroppedEvents    prometheus.Counter

	gatherer prometheus.Gatherer
}

// New регистрирует метрики в reg. В тестах передается prometheus.NewRegistry()
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"route", "method", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"route", "method"}),
		PaymentCallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_callbacks_total",
			Help:      "Payment gateway callbacks by outcome.",
		}, []string{"outcome"}),
		SideEffects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_side_effects_total",
			Help:      "Order side effects (notifications, shipment booking) by result.",
		}, []string{"effect", "result"}),
		DroppedEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_events_dropped_total",
			Help:      "Order events dropped because the side-effect queue was full.",
		}),
		gatherer: reg,
	}

	reg.MustRegister(m.Requests, m.LatencyMS, m.PaymentCallbacks, m.SideEffects, m.DroppedEvents)
	return m
}

// PaymentCallback учитывает исход колбэка
func (m *Metrics) PaymentCallback(outcome string) {
	m.PaymentCallbacks.WithLabelValues(outcome).Inc()
}

// SideEffect учитывает результат побочного эффекта
func (m *Metrics) SideEffect(effect, result string) {
	m.SideEffects.WithLabelValues(effect, result).Inc()
}

// EventDropped учитывает событие, не попавшее в очередь
func (m *Metrics) EventDropped() {
	m.DroppedEvents.Inc()
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
