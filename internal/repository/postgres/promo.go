package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/toyshop/storefront/internal/domain"
)

const promoColumns = `id, code, type, value, min_order_amount, max_uses, current_uses,
	valid_from, valid_until, is_active, created_at, updated_at`

// PromoCodeRepository реализует domain.PromoCodeRepository
type PromoCodeRepository struct {
	db DBTX
}

// NewPromoCodeRepository создает новый PromoCodeRepository
func NewPromoCodeRepository(db DBTX) *PromoCodeRepository {
	return &PromoCodeRepository{db: db}
}

func scanPromoCode(row pgx.Row, p *domain.PromoCode) error {
	return row.Scan(
		&p.ID, &p.Code, &p.Type, &p.Value, &p.MinOrderAmount, &p.MaxUses, &p.CurrentUses,
		&p.ValidFrom, &p.ValidUntil, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
}

// CreatePromoCode создает промокод. Код уникален без учета регистра, хранится в верхнем
func (r *PromoCodeRepository) CreatePromoCode(ctx context.Context, promo *domain.PromoCode) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO promo_codes (code, type, value, min_order_amount, max_uses,
			valid_from, valid_until, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, current_uses, created_at, updated_at`,
		promo.Code, promo.Type, promo.Value, promo.MinOrderAmount, promo.MaxUses,
		promo.ValidFrom, promo.ValidUntil, promo.IsActive,
	).Scan(&promo.ID, &promo.CurrentUses, &promo.CreatedAt, &promo.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, constraintPromoCode) {
			return domain.ErrPromoCodeExists
		}
		return fmt.Errorf("repository: failed to create promo code %q: %w", promo.Code, err)
	}

	return nil
}

// GetPromoCodeByID получает промокод по id
func (r *PromoCodeRepository) GetPromoCodeByID(ctx context.Context, id string) (*domain.PromoCode, error) {
	promo := &domain.PromoCode{}

	err := scanPromoCode(r.db.QueryRow(ctx,
		`SELECT `+promoColumns+`
		 FROM promo_codes
		 WHERE id = $1`,
		id,
	), promo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isMalformedID(err) {
			return nil, domain.ErrPromoCodeNotFound
		}
		return nil, fmt.Errorf("repository: failed to get promo code %q: %w", id, err)
	}

	return promo, nil
}

// GetPromoCodeByCode получает промокод по коду
func (r *PromoCodeRepository) GetPromoCodeByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	promo := &domain.PromoCode{}

	err := scanPromoCode(r.db.QueryRow(ctx,
		`SELECT `+promoColumns+`
		 FROM promo_codes
		 WHERE code = $1`,
		code,
	), promo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPromoCodeNotFound
		}
		return nil, fmt.Errorf("repository: failed to get promo code by code %q: %w", code, err)
	}

	return promo, nil
}

// ListPromoCodes возвращает промокоды от новых к старым
func (r *PromoCodeRepository) ListPromoCodes(ctx context.Context, limit, offset int) ([]*domain.PromoCode, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+promoColumns+`
		 FROM promo_codes
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list promo codes: %w", err)
	}
	defer rows.Close()

	var promos []*domain.PromoCode
	for rows.Next() {
		promo := &domain.PromoCode{}
		if err := scanPromoCode(rows, promo); err != nil {
			return nil, fmt.Errorf("repository: failed to scan promo code: %w", err)
		}
		promos = append(promos, promo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating promo codes: %w", err)
	}

	return promos, nil
}

// UpdatePromoCode перезаписывает редактируемые поля. Счетчик использований не трогается
func (r *PromoCodeRepository) UpdatePromoCode(ctx context.Context, promo *domain.PromoCode) error {
	err := r.db.QueryRow(ctx,
		`UPDATE promo_codes
		 SET code = $2, type = $3, value = $4, min_order_amount = $5, max_uses = $6,
			 valid_from = $7, valid_until = $8, is_active = $9, updated_at = NOW()
		 WHERE id = $1
		 RETURNING current_uses, created_at, updated_at`,
		promo.ID, promo.Code, promo.Type, promo.Value, promo.MinOrderAmount, promo.MaxUses,
		promo.ValidFrom, promo.ValidUntil, promo.IsActive,
	).Scan(&promo.CurrentUses, &promo.CreatedAt, &promo.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isMalformedID(err) {
			return domain.ErrPromoCodeNotFound
		}
		if isUniqueViolation(err, constraintPromoCode) {
			return domain.ErrPromoCodeExists
		}
		return fmt.Errorf("repository: failed to update promo code %q: %w", promo.ID, err)
	}

	return nil
}

// DeletePromoCode удаляет промокод. У оформленных заказов ссылка обнуляется
func (r *PromoCodeRepository) DeletePromoCode(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM promo_codes WHERE id = $1`, id)
	if err != nil {
		if isMalformedID(err) {
			return domain.ErrPromoCodeNotFound
		}
		return fmt.Errorf("repository: failed to delete promo code %q: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrPromoCodeNotFound
	}

	return nil
}
