package postgres

import (
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/toyshop/storefront/internal/domain"
)

var orderColumnNames = []string{
	"id", "number", "status", "customer_name", "customer_phone", "customer_email",
	"delivery_type", "delivery_address", "cdek_city_code", "cdek_office_code", "comment",
	"total_amount", "original_amount", "discount_amount", "currency", "promo_code_id",
	"transaction_id", "cdek_uuid", "created_at", "updated_at", "paid_at",
}

func orderRow(rows *pgxmock.Rows, o *domain.Order) *pgxmock.Rows {
	return rows.AddRow(
		o.ID, o.Number, o.Status, o.CustomerName, o.CustomerPhone, o.CustomerEmail,
		o.DeliveryType, o.DeliveryAddress, o.CdekCityCode, o.CdekOfficeCode, o.Comment,
		o.TotalAmount, o.OriginalAmount, o.DiscountAmount, o.Currency, o.PromoCodeID,
		o.TransactionID, o.CdekUUID, o.CreatedAt, o.UpdatedAt, o.PaidAt,
	)
}

func testOrder(id string, status domain.OrderStatus, paidAt *time.Time) *domain.Order {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Order{
		ID:             id,
		Number:         "2024-0042",
		Status:         status,
		CustomerName:   "Иван Петров",
		CustomerPhone:  "+79990000000",
		DeliveryType:   domain.DeliveryTypePickup,
		TotalAmount:    decimal.RequireFromString("2000.00"),
		OriginalAmount: decimal.RequireFromString("2000.00"),
		DiscountAmount: decimal.Zero,
		Currency:       domain.DefaultCurrency,
		CreatedAt:      created,
		UpdatedAt:      created,
		PaidAt:         paidAt,
	}
}

// anyArgs нужен для ожиданий, где значения аргументов не важны, но pgxmock проверяет их количество
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}
