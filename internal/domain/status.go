package domain

// OrderStatus представляет статус заказа
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "CREATED"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// SideEffect побочное действие, которое запускает переход
type SideEffect string

const (
	SideEffectNotify       SideEffect = "notify"
	SideEffectBookShipment SideEffect = "book_shipment"
)

// transitions бизнес-переходы. Админка может выставить любой статус в обход таблицы
var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusCreated: {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:    {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped: {OrderStatusDelivered},
}

// IsValid проверяет, что статус известен
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusCreated, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo проверяет переход по бизнес-правилам
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CanCancel отмена запрещена после передачи заказа в доставку
func (s OrderStatus) CanCancel() bool {
	return s != OrderStatusShipped && s != OrderStatusDelivered
}

// ParseOrderStatus разбирает статус из запроса
func ParseOrderStatus(raw string) (OrderStatus, error) {
	status := OrderStatus(raw)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// PaidSideEffects возвращает эффекты первого входа в PAID
func PaidSideEffects(deliveryType DeliveryType) []SideEffect {
	effects := []SideEffect{SideEffectNotify}
	if deliveryType.RequiresShipment() {
		effects = append(effects, SideEffectBookShipment)
	}
	return effects
}
