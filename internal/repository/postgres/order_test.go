package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyshop/storefront/internal/domain"
)

const orderID = "5f0c6d4e-8a43-4a8e-9a57-1d1b2c3d4e5f"

func newOrderForCreate(promoID *string) *domain.Order {
	return &domain.Order{
		Number:         "2024-0042",
		CustomerName:   "Иван Петров",
		CustomerPhone:  "+79990000000",
		DeliveryType:   domain.DeliveryTypePickup,
		TotalAmount:    decimal.RequireFromString("1800.00"),
		OriginalAmount: decimal.RequireFromString("2000.00"),
		DiscountAmount: decimal.RequireFromString("200.00"),
		PromoCodeID:    promoID,
		Items: []*domain.OrderItem{
			{ProductID: "p-1", ProductName: "Конструктор", Quantity: 2, Price: decimal.RequireFromString("1000.00")},
		},
	}
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success with promo code", func(t *testing.T) {
		promoID := "promo-1"
		order := newOrderForCreate(&promoID)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(order.Number, domain.OrderStatusCreated, order.CustomerName, order.CustomerPhone, order.CustomerEmail,
				order.DeliveryType, order.DeliveryAddress, order.CdekCityCode, order.CdekOfficeCode, order.Comment,
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), domain.DefaultCurrency, order.PromoCodeID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(orderID, now, now))
		mock.ExpectQuery(`INSERT INTO order_items`).
			WithArgs(orderID, "p-1", "Конструктор", 2, pgxmock.AnyArg(), 0).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("item-1"))
		mock.ExpectExec(`UPDATE promo_codes SET current_uses = current_uses \+ 1`).
			WithArgs(promoID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		err := repo.CreateOrder(ctx, order)
		require.NoError(t, err)
		assert.Equal(t, orderID, order.ID)
		assert.Equal(t, domain.OrderStatusCreated, order.Status)
		assert.Equal(t, domain.DefaultCurrency, order.Currency)
		assert.Equal(t, "item-1", order.Items[0].ID)
		assert.Equal(t, orderID, order.Items[0].OrderID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Number conflict", func(t *testing.T) {
		order := newOrderForCreate(nil)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(anyArgs(15)...).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "orders_number_key"})
		mock.ExpectRollback()

		err := repo.CreateOrder(ctx, order)
		assert.ErrorIs(t, err, domain.ErrOrderNumberConflict)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown product", func(t *testing.T) {
		order := newOrderForCreate(nil)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(anyArgs(15)...).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(orderID, now, now))
		mock.ExpectQuery(`INSERT INTO order_items`).
			WithArgs(orderID, "p-1", "Конструктор", 2, pgxmock.AnyArg(), 0).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		mock.ExpectRollback()

		err := repo.CreateOrder(ctx, order)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Promo code usage exceeded", func(t *testing.T) {
		promoID := "promo-1"
		order := newOrderForCreate(&promoID)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(anyArgs(15)...).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(orderID, now, now))
		mock.ExpectQuery(`INSERT INTO order_items`).
			WithArgs(orderID, "p-1", "Конструктор", 2, pgxmock.AnyArg(), 0).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("item-1"))
		mock.ExpectExec(`UPDATE promo_codes`).
			WithArgs(promoID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		err := repo.CreateOrder(ctx, order)
		assert.ErrorIs(t, err, domain.ErrPromoCodeUsageExceeded)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("begin error"))

		err := repo.CreateOrder(ctx, newOrderForCreate(nil))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to begin")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_GetOrderByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success with items", func(t *testing.T) {
		expected := testOrder(orderID, domain.OrderStatusCreated, nil)

		mock.ExpectQuery(`SELECT id, number, status, .+ FROM orders WHERE id = \$1`).
			WithArgs(orderID).
			WillReturnRows(orderRow(pgxmock.NewRows(orderColumnNames), expected))
		mock.ExpectQuery(`FROM order_items`).
			WithArgs([]string{orderID}).
			WillReturnRows(pgxmock.NewRows([]string{"id", "order_id", "product_id", "product_name", "quantity", "price"}).
				AddRow("item-1", orderID, "p-1", "Конструктор", 2, decimal.RequireFromString("1000.00")))

		order, err := repo.GetOrderByID(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, "2024-0042", order.Number)
		assert.Equal(t, domain.OrderStatusCreated, order.Status)
		assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(2000)))
		assert.Nil(t, order.PaidAt)
		require.Len(t, order.Items, 1)
		assert.Equal(t, 2, order.Items[0].Quantity)
		assert.True(t, order.Items[0].Subtotal().Equal(decimal.NewFromInt(2000)))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM orders WHERE id`).
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetOrderByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Malformed id", func(t *testing.T) {
		mock.ExpectQuery(`FROM orders WHERE id`).
			WithArgs("not-a-uuid").
			WillReturnError(&pgconn.PgError{Code: "22P02"})

		_, err := repo.GetOrderByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`FROM orders WHERE id`).
			WithArgs(orderID).
			WillReturnError(errors.New("database error"))

		_, err := repo.GetOrderByID(ctx, orderID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrOrderNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_ListOrders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Filter by status", func(t *testing.T) {
		status := domain.OrderStatusPaid
		paidAt := time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC)
		first := testOrder(orderID, domain.OrderStatusPaid, &paidAt)
		second := testOrder("second", domain.OrderStatusPaid, &paidAt)

		rows := pgxmock.NewRows(orderColumnNames)
		orderRow(rows, first)
		orderRow(rows, second)

		statusArg := string(status)
		mock.ExpectQuery(`FROM orders WHERE`).
			WithArgs(&statusArg, 20, 0).
			WillReturnRows(rows)
		mock.ExpectQuery(`FROM order_items`).
			WithArgs([]string{orderID, "second"}).
			WillReturnRows(pgxmock.NewRows([]string{"id", "order_id", "product_id", "product_name", "quantity", "price"}).
				AddRow("item-2", "second", "p-2", "Мяч", 1, decimal.RequireFromString("500.00")))

		orders, err := repo.ListOrders(ctx, domain.OrderFilter{Status: &status, Limit: 20})
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Empty(t, orders[0].Items)
		require.Len(t, orders[1].Items, 1)
		assert.Equal(t, "Мяч", orders[1].Items[0].ProductName)
		assert.Equal(t, paidAt, *orders[0].PaidAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery(`FROM orders WHERE`).
			WithArgs((*string)(nil), 50, 10).
			WillReturnRows(pgxmock.NewRows(orderColumnNames))

		orders, err := repo.ListOrders(ctx, domain.OrderFilter{Limit: 50, Offset: 10})
		require.NoError(t, err)
		assert.Empty(t, orders)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_MarkOrderPaid(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()
	paidAt := time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC)
	txID := "tx-123"

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET status = \$2, paid_at = \$3`).
			WithArgs(orderID, domain.OrderStatusPaid, paidAt, &txID, domain.OrderStatusCreated).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.MarkOrderPaid(ctx, orderID, &txID, paidAt)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already paid", func(t *testing.T) {
		earlier := paidAt.Add(-time.Hour)

		mock.ExpectExec(`UPDATE orders`).
			WithArgs(orderID, domain.OrderStatusPaid, paidAt, &txID, domain.OrderStatusCreated).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(`FROM orders WHERE id`).
			WithArgs(orderID).
			WillReturnRows(orderRow(pgxmock.NewRows(orderColumnNames), testOrder(orderID, domain.OrderStatusPaid, &earlier)))
		mock.ExpectQuery(`FROM order_items`).
			WithArgs([]string{orderID}).
			WillReturnRows(pgxmock.NewRows([]string{"id", "order_id", "product_id", "product_name", "quantity", "price"}))

		err := repo.MarkOrderPaid(ctx, orderID, &txID, paidAt)
		assert.ErrorIs(t, err, domain.ErrOrderAlreadyPaid)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Cancelled order", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders`).
			WithArgs(orderID, domain.OrderStatusPaid, paidAt, (*string)(nil), domain.OrderStatusCreated).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(`FROM orders WHERE id`).
			WithArgs(orderID).
			WillReturnRows(orderRow(pgxmock.NewRows(orderColumnNames), testOrder(orderID, domain.OrderStatusCancelled, nil)))
		mock.ExpectQuery(`FROM order_items`).
			WithArgs([]string{orderID}).
			WillReturnRows(pgxmock.NewRows([]string{"id", "order_id", "product_id", "product_name", "quantity", "price"}))

		err := repo.MarkOrderPaid(ctx, orderID, nil, paidAt)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders`).
			WithArgs(orderID, domain.OrderStatusPaid, paidAt, (*string)(nil), domain.OrderStatusCreated).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(`FROM orders WHERE id`).
			WithArgs(orderID).
			WillReturnError(pgx.ErrNoRows)

		err := repo.MarkOrderPaid(ctx, orderID, nil, paidAt)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_UpdateOrderStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()
	at := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("First time paid", func(t *testing.T) {
		mock.ExpectQuery(`WITH prev AS \( SELECT id, status, paid_at FROM orders WHERE id = \$1 FOR UPDATE \) UPDATE orders o`).
			WithArgs(orderID, domain.OrderStatusPaid, at, true).
			WillReturnRows(pgxmock.NewRows([]string{"status", "first_paid"}).AddRow(domain.OrderStatusCreated, true))

		change, err := repo.UpdateOrderStatus(ctx, orderID, domain.OrderStatusPaid, at)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCreated, change.Previous)
		assert.Equal(t, domain.OrderStatusPaid, change.Current)
		assert.True(t, change.FirstPaid)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Repeated paid", func(t *testing.T) {
		mock.ExpectQuery(`WITH prev AS`).
			WithArgs(orderID, domain.OrderStatusPaid, at, true).
			WillReturnRows(pgxmock.NewRows([]string{"status", "first_paid"}).AddRow(domain.OrderStatusPaid, false))

		change, err := repo.UpdateOrderStatus(ctx, orderID, domain.OrderStatusPaid, at)
		require.NoError(t, err)
		assert.False(t, change.FirstPaid)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Shipped", func(t *testing.T) {
		mock.ExpectQuery(`WITH prev AS`).
			WithArgs(orderID, domain.OrderStatusShipped, at, false).
			WillReturnRows(pgxmock.NewRows([]string{"status", "first_paid"}).AddRow(domain.OrderStatusPaid, false))

		change, err := repo.UpdateOrderStatus(ctx, orderID, domain.OrderStatusShipped, at)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPaid, change.Previous)
		assert.False(t, change.FirstPaid)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`WITH prev AS`).
			WithArgs(orderID, domain.OrderStatusShipped, at, false).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.UpdateOrderStatus(ctx, orderID, domain.OrderStatusShipped, at)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_CancelOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()
	at := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET status = \$2, updated_at = \$3 WHERE id = \$1 AND status NOT IN`).
			WithArgs(orderID, domain.OrderStatusCancelled, at, domain.OrderStatusShipped, domain.OrderStatusDelivered).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.CancelOrder(ctx, orderID, at)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Shipped order", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders`).
			WithArgs(orderID, domain.OrderStatusCancelled, at, domain.OrderStatusShipped, domain.OrderStatusDelivered).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(`FROM orders WHERE id`).
			WithArgs(orderID).
			WillReturnRows(orderRow(pgxmock.NewRows(orderColumnNames), testOrder(orderID, domain.OrderStatusShipped, nil)))
		mock.ExpectQuery(`FROM order_items`).
			WithArgs([]string{orderID}).
			WillReturnRows(pgxmock.NewRows([]string{"id", "order_id", "product_id", "product_name", "quantity", "price"}))

		err := repo.CancelOrder(ctx, orderID, at)
		assert.ErrorIs(t, err, domain.ErrOrderNotCancellable)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders`).
			WithArgs(orderID, domain.OrderStatusCancelled, at, domain.OrderStatusShipped, domain.OrderStatusDelivered).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(`FROM orders WHERE id`).
			WithArgs(orderID).
			WillReturnError(pgx.ErrNoRows)

		err := repo.CancelOrder(ctx, orderID, at)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_SetShipmentUUID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET cdek_uuid`).
			WithArgs(orderID, "cdek-uuid").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.SetShipmentUUID(ctx, orderID, "cdek-uuid"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET cdek_uuid`).
			WithArgs(orderID, "cdek-uuid").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.SetShipmentUUID(ctx, orderID, "cdek-uuid")
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
