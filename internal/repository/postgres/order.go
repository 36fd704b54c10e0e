package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/toyshop/storefront/internal/domain"
)

const orderColumns = `id, number, status, customer_name, customer_phone, customer_email,
	delivery_type, delivery_address, cdek_city_code, cdek_office_code, comment,
	total_amount, original_amount, discount_amount, currency, promo_code_id,
	transaction_id, cdek_uuid, created_at, updated_at, paid_at`

// OrderRepository реализует domain.OrderRepository
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func scanOrder(row pgx.Row, order *domain.Order) error {
	return row.Scan(
		&order.ID, &order.Number, &order.Status, &order.CustomerName, &order.CustomerPhone, &order.CustomerEmail,
		&order.DeliveryType, &order.DeliveryAddress, &order.CdekCityCode, &order.CdekOfficeCode, &order.Comment,
		&order.TotalAmount, &order.OriginalAmount, &order.DiscountAmount, &order.Currency, &order.PromoCodeID,
		&order.TransactionID, &order.CdekUUID, &order.CreatedAt, &order.UpdatedAt, &order.PaidAt,
	)
}

// CreateOrder сохраняет заказ с позициями в одной транзакции.
// Если у заказа есть промокод, счетчик использований увеличивается там же
func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	order.Status = domain.OrderStatusCreated
	if order.Currency == "" {
		order.Currency = domain.DefaultCurrency
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (number, status, customer_name, customer_phone, customer_email,
			delivery_type, delivery_address, cdek_city_code, cdek_office_code, comment,
			total_amount, original_amount, discount_amount, currency, promo_code_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING id, created_at, updated_at`,
		order.Number, order.Status, order.CustomerName, order.CustomerPhone, order.CustomerEmail,
		order.DeliveryType, order.DeliveryAddress, order.CdekCityCode, order.CdekOfficeCode, order.Comment,
		order.TotalAmount, order.OriginalAmount, order.DiscountAmount, order.Currency, order.PromoCodeID,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, constraintOrderNumber) {
			return domain.ErrOrderNumberConflict
		}
		return fmt.Errorf("repository: failed to create order %q: %w", order.Number, err)
	}

	for i, item := range order.Items {
		item.OrderID = order.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_id, product_name, quantity, price, position)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			item.OrderID, item.ProductID, item.ProductName, item.Quantity, item.Price, i,
		).Scan(&item.ID)
		if err != nil {
			if isForeignKeyViolation(err) || isMalformedID(err) {
				return domain.ErrProductNotFound
			}
			return fmt.Errorf("repository: failed to create item for order %q: %w", order.Number, err)
		}
	}

	if order.PromoCodeID != nil {
		result, err := tx.Exec(ctx,
			`UPDATE promo_codes
			 SET current_uses = current_uses + 1, updated_at = NOW()
			 WHERE id = $1 AND (max_uses IS NULL OR current_uses < max_uses)`,
			*order.PromoCodeID,
		)
		if err != nil {
			return fmt.Errorf("repository: failed to increment promo code usage: %w", err)
		}
		if result.RowsAffected() == 0 {
			return domain.ErrPromoCodeUsageExceeded
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit order %q: %w", order.Number, err)
	}

	return nil
}

// GetOrderByID получает заказ вместе с позициями
func (r *OrderRepository) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	order := &domain.Order{}

	err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+`
		 FROM orders
		 WHERE id = $1`,
		id,
	), order)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isMalformedID(err) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %q: %w", id, err)
	}

	if err := r.loadItems(ctx, []*domain.Order{order}); err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders возвращает заказы от новых к старым
func (r *OrderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	var status *string
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+`
		 FROM orders
		 WHERE ($1::varchar IS NULL OR status = $1)
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		status, filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order := &domain.Order{}
		if err := scanOrder(rows, order); err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, 0, len(orders))
	byID := make(map[string]*domain.Order, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
		byID[order.ID] = order
		order.Items = []*domain.OrderItem{}
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, order_id, product_id, product_name, quantity, price
		 FROM order_items
		 WHERE order_id = ANY($1::uuid[])
		 ORDER BY order_id, position`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to get order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		item := &domain.OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.Price); err != nil {
			return fmt.Errorf("repository: failed to scan order item: %w", err)
		}
		if order, ok := byID[item.OrderID]; ok {
			order.Items = append(order.Items, item)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("repository: error iterating order items: %w", err)
	}

	return nil
}

// MarkOrderPaid атомарно переводит заказ из CREATED в PAID.
// Из двух параллельных вызовов успешен ровно один, второй получит ErrOrderAlreadyPaid
func (r *OrderRepository) MarkOrderPaid(ctx context.Context, id string, transactionID *string, paidAt time.Time) error {
	result, err := r.db.Exec(ctx,
		`UPDATE orders
		 SET status = $2, paid_at = $3, transaction_id = COALESCE($4, transaction_id), updated_at = $3
		 WHERE id = $1 AND status = $5 AND paid_at IS NULL`,
		id, domain.OrderStatusPaid, paidAt, transactionID, domain.OrderStatusCreated,
	)
	if err != nil {
		if isMalformedID(err) {
			return domain.ErrOrderNotFound
		}
		return fmt.Errorf("repository: failed to mark order %q paid: %w", id, err)
	}

	if result.RowsAffected() > 0 {
		return nil
	}

	order, err := r.GetOrderByID(ctx, id)
	if err != nil {
		return err
	}
	if order.IsPaid() {
		return domain.ErrOrderAlreadyPaid
	}

	return domain.ErrInvalidTransition
}

// UpdateOrderStatus выставляет статус в обход таблицы переходов.
// paid_at заполняется только при первом входе в PAID
func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus, at time.Time) (*domain.StatusChange, error) {
	change := &domain.StatusChange{Current: status}

	err := r.db.QueryRow(ctx,
		`WITH prev AS (
			SELECT id, status, paid_at FROM orders WHERE id = $1 FOR UPDATE
		 )
		 UPDATE orders o
		 SET status = $2,
			 paid_at = CASE WHEN $4 AND prev.paid_at IS NULL THEN $3 ELSE o.paid_at END,
			 updated_at = $3
		 FROM prev
		 WHERE o.id = prev.id
		 RETURNING prev.status, ($4 AND prev.paid_at IS NULL)`,
		id, status, at, status == domain.OrderStatusPaid,
	).Scan(&change.Previous, &change.FirstPaid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isMalformedID(err) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to update order %q status: %w", id, err)
	}

	return change, nil
}

// CancelOrder отменяет заказ, если он еще не передан в доставку
func (r *OrderRepository) CancelOrder(ctx context.Context, id string, at time.Time) error {
	result, err := r.db.Exec(ctx,
		`UPDATE orders
		 SET status = $2, updated_at = $3
		 WHERE id = $1 AND status NOT IN ($4, $5)`,
		id, domain.OrderStatusCancelled, at, domain.OrderStatusShipped, domain.OrderStatusDelivered,
	)
	if err != nil {
		if isMalformedID(err) {
			return domain.ErrOrderNotFound
		}
		return fmt.Errorf("repository: failed to cancel order %q: %w", id, err)
	}

	if result.RowsAffected() > 0 {
		return nil
	}

	if _, err := r.GetOrderByID(ctx, id); err != nil {
		return err
	}

	return domain.ErrOrderNotCancellable
}

// SetShipmentUUID сохраняет идентификатор отправления СДЭК
func (r *OrderRepository) SetShipmentUUID(ctx context.Context, id string, shipmentUUID string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE orders
		 SET cdek_uuid = $2, updated_at = NOW()
		 WHERE id = $1`,
		id, shipmentUUID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to set shipment for order %q: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}
