package domain

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// OrderRepository определяет методы для работы с заказами
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, id string) (*Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]*Order, error)
	MarkOrderPaid(ctx context.Context, id string, transactionID *string, paidAt time.Time) error
	UpdateOrderStatus(ctx context.Context, id string, status OrderStatus, at time.Time) (*StatusChange, error)
	CancelOrder(ctx context.Context, id string, at time.Time) error
	SetShipmentUUID(ctx context.Context, id string, shipmentUUID string) error
}

// ProductRepository определяет методы для работы с товарами
type ProductRepository interface {
	GetProductByID(ctx context.Context, id string) (*Product, error)
	GetProductsByIDs(ctx context.Context, ids []string) ([]*Product, error)
	CreateProducts(ctx context.Context, products []*Product) error
}

// PromoCodeRepository определяет методы для работы с промокодами
type PromoCodeRepository interface {
	CreatePromoCode(ctx context.Context, promo *PromoCode) error
	GetPromoCodeByID(ctx context.Context, id string) (*PromoCode, error)
	GetPromoCodeByCode(ctx context.Context, code string) (*PromoCode, error)
	ListPromoCodes(ctx context.Context, limit, offset int) ([]*PromoCode, error)
	UpdatePromoCode(ctx context.Context, promo *PromoCode) error
	DeletePromoCode(ctx context.Context, id string) error
}

// PaymentGateway определяет взаимодействие с платежным шлюзом
type PaymentGateway interface {
	BuildPaymentForm(order *Order) (*PaymentForm, error)
	RenderPaymentForm(w io.Writer, form *PaymentForm) error
	VerifyCallback(callback *PaymentCallback) error
	IsCompleted(callback *PaymentCallback) bool
}

// EventPublisher ставит событие заказа в очередь побочных эффектов
type EventPublisher interface {
	Publish(event OrderEvent)
}

// Notifier отправляет уведомления о заказе
type Notifier interface {
	Notify(ctx context.Context, order *Order) error
}

// ShipmentBooker оформляет отправление у перевозчика
type ShipmentBooker interface {
	BookShipment(ctx context.Context, order *Order, products []*Product) (*Shipment, error)
}

// OrderService определяет методы работы с заказами
type OrderService interface {
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*Order, error)
	GetOrder(ctx context.Context, id string) (*Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]*Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status OrderStatus) (*Order, error)
	CancelOrder(ctx context.Context, id string) (*Order, error)
}

// PaymentService определяет методы оплаты заказа
type PaymentService interface {
	PaymentPage(ctx context.Context, orderID string) ([]byte, error)
	HandleCallback(ctx context.Context, callback *PaymentCallback) (*Order, error)
}

// PromoService определяет методы работы с промокодами
type PromoService interface {
	ValidatePromoCode(ctx context.Context, code string, orderAmount decimal.Decimal) (*PromoValidation, error)
	CreatePromoCode(ctx context.Context, req *PromoCodeRequest) (*PromoCode, error)
	GetPromoCode(ctx context.Context, id string) (*PromoCode, error)
	ListPromoCodes(ctx context.Context, limit, offset int) ([]*PromoCode, error)
	UpdatePromoCode(ctx context.Context, id string, req *PromoCodeRequest) (*PromoCode, error)
	DeletePromoCode(ctx context.Context, id string) error
}

// ProductService определяет методы работы с каталогом
type ProductService interface {
	GetProduct(ctx context.Context, id string) (*Product, error)
	CreateProducts(ctx context.Context, reqs []*CreateProductRequest) ([]*Product, error)
}

// AdminAuthService определяет вход в админку
type AdminAuthService interface {
	Login(ctx context.Context, password string) (string, error)
}
