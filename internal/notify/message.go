// Package notify рассылает уведомления об оплаченных заказах по каналам магазина.
package notify

import (
	"fmt"
	"strings"

	"github.com/toyshop/storefront/internal/domain"
)

var deliveryTitles = map[domain.DeliveryType]string{
	domain.DeliveryTypePickup:     "Самовывоз",
	domain.DeliveryTypeDelivery:   "Курьер СДЭК",
	domain.DeliveryTypeCdekOffice: "ПВЗ СДЭК",
}

// subject заголовок уведомления
func subject(order *domain.Order) string {
	return "Оплачен заказ №" + order.Number
}

// summary текст уведомления. escape применяется ко всем полям, введенным покупателем
func summary(order *domain.Order, escape func(string) string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", escape(subject(order)))
	fmt.Fprintf(&b, "Покупатель: %s\n", escape(order.CustomerName))
	fmt.Fprintf(&b, "Телефон: %s\n", escape(order.CustomerPhone))
	if order.CustomerEmail != nil {
		fmt.Fprintf(&b, "Email: %s\n", escape(*order.CustomerEmail))
	}

	fmt.Fprintf(&b, "Доставка: %s\n", deliveryTitles[order.DeliveryType])
	if order.DeliveryType == domain.DeliveryTypeDelivery && order.DeliveryAddress != nil {
		fmt.Fprintf(&b, "Адрес: %s\n", escape(*order.DeliveryAddress))
	}
	if order.DeliveryType == domain.DeliveryTypeCdekOffice && order.CdekOfficeCode != nil {
		fmt.Fprintf(&b, "ПВЗ: %s\n", escape(*order.CdekOfficeCode))
	}

	b.WriteString("\nСостав:\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %s × %d = %s\n", escape(item.ProductName), item.Quantity, item.Subtotal().StringFixed(2))
	}

	if order.DiscountAmount.IsPositive() {
		fmt.Fprintf(&b, "\nСкидка: %s\n", order.DiscountAmount.StringFixed(2))
	}
	fmt.Fprintf(&b, "Итого: %s %s\n", order.TotalAmount.StringFixed(2), order.Currency)

	if order.Comment != nil && *order.Comment != "" {
		fmt.Fprintf(&b, "\nКомментарий: %s\n", escape(*order.Comment))
	}

	return b.String()
}

func plain(s string) string { return s }
