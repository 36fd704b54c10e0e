package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryType представляет способ получения заказа
type DeliveryType string

const (
	DeliveryTypePickup     DeliveryType = "pickup"
	DeliveryTypeDelivery   DeliveryType = "delivery"
	DeliveryTypeCdekOffice DeliveryType = "cdek_office"
)

// IsValid проверяет, что способ доставки известен
func (t DeliveryType) IsValid() bool {
	switch t {
	case DeliveryTypePickup, DeliveryTypeDelivery, DeliveryTypeCdekOffice:
		return true
	}
	return false
}

// RequiresShipment сообщает, нужно ли оформлять отправку у перевозчика
func (t DeliveryType) RequiresShipment() bool {
	return t == DeliveryTypeDelivery || t == DeliveryTypeCdekOffice
}

// PromoCodeType представляет тип скидки промокода
type PromoCodeType string

const (
	PromoCodeTypePercentage  PromoCodeType = "PERCENTAGE"
	PromoCodeTypeFixedAmount PromoCodeType = "FIXED_AMOUNT"
)

// DefaultCurrency валюта заказов магазина
const DefaultCurrency = "RUB"

// Order представляет заказ покупателя
type Order struct {
	ID              string          `json:"id"`
	Number          string          `json:"orderNumber"`
	Status          OrderStatus     `json:"status"`
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone"`
	CustomerEmail   *string         `json:"customerEmail,omitempty"`
	DeliveryType    DeliveryType    `json:"deliveryType"`
	DeliveryAddress *string         `json:"deliveryAddress,omitempty"`
	CdekCityCode    *int            `json:"cdekCityCode,omitempty"`
	CdekOfficeCode  *string         `json:"cdekOfficeCode,omitempty"`
	Comment         *string         `json:"comment,omitempty"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	Currency        string          `json:"currency"`
	PromoCodeID     *string         `json:"promoCodeId,omitempty"`
	TransactionID   *string         `json:"transactionId,omitempty"`
	CdekUUID        *string         `json:"cdekUuid,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	PaidAt          *time.Time      `json:"paidAt"` // Заполняется один раз, при первом переходе в PAID
	Items           []*OrderItem    `json:"items"`
}

// IsPaid сообщает, была ли оплата уже зафиксирована
func (o *Order) IsPaid() bool {
	return o.PaidAt != nil || o.Status == OrderStatusPaid
}

// OrderItem представляет позицию заказа. Цена фиксируется на момент оформления
type OrderItem struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"orderId"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// Subtotal возвращает стоимость позиции
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderFilter задает выборку заказов для админки
type OrderFilter struct {
	Status *OrderStatus
	Limit  int
	Offset int
}

// StatusChange описывает результат смены статуса
type StatusChange struct {
	Previous  OrderStatus
	Current   OrderStatus
	FirstPaid bool // Заказ впервые перешел в PAID этим изменением
}

// Product представляет товар каталога
type Product struct {
	ID              string                   `json:"id"`
	Name            string                   `json:"name"`
	Slug            string                   `json:"slug"`
	Price           decimal.Decimal          `json:"price"`
	OldPrice        *decimal.Decimal         `json:"oldPrice,omitempty"`
	DiscountPercent *int                     `json:"discountPercent,omitempty"`
	Images          []string                 `json:"images"`
	Breadcrumbs     []string                 `json:"breadcrumbs"`
	Categories      []string                 `json:"categories"`
	AgeGroups       []string                 `json:"ageGroups"`
	InStock         bool                     `json:"inStock"`
	Characteristics []*ProductCharacteristic `json:"characteristics"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
}

// ProductCharacteristic произвольная характеристика товара ("Вес" -> "750 гр")
type ProductCharacteristic struct {
	Key   string `json:"key" validate:"required,max=200"`
	Value string `json:"value" validate:"max=1000"`
}

// PromoCode представляет промокод
type PromoCode struct {
	ID             string           `json:"id"`
	Code           string           `json:"code"`
	Type           PromoCodeType    `json:"type"`
	Value          decimal.Decimal  `json:"value"`
	MinOrderAmount *decimal.Decimal `json:"minOrderAmount,omitempty"`
	MaxUses        *int             `json:"maxUses,omitempty"`
	CurrentUses    int              `json:"currentUses"`
	ValidFrom      *time.Time       `json:"validFrom,omitempty"`
	ValidUntil     *time.Time       `json:"validUntil,omitempty"`
	IsActive       bool             `json:"isActive"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// PromoValidation результат проверки промокода
type PromoValidation struct {
	IsValid        bool            `json:"isValid"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	PromoCode      *PromoCode      `json:"promoCode,omitempty"`
	Error          string          `json:"error,omitempty"`
}

// OrderEventType тип события заказа
type OrderEventType string

const (
	OrderEventPaid OrderEventType = "order.paid"
)

// OrderEvent событие, запускающее побочные эффекты после фиксации статуса
type OrderEvent struct {
	Type       OrderEventType `json:"type"`
	OrderID    string         `json:"orderId"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// PaymentForm поля формы оплаты на стороне платежного шлюза
type PaymentForm struct {
	Action string
	Fields []FormField
}

// FormField одно скрытое поле формы оплаты
type FormField struct {
	Name  string
	Value string
}

// PaymentCallback уведомление платежного шлюза об оплате
type PaymentCallback struct {
	State         string
	OrderID       string
	Amount        string
	TransactionID string
	Signature     string
	Fields        map[string]string // Все полученные поля, включая signature
}

// Shipment данные отправления, созданного у перевозчика
type Shipment struct {
	UUID     string
	WeightG  int
	LengthCm int
	WidthCm  int
	HeightCm int
}
