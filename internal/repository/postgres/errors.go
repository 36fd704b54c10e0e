package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Коды ошибок PostgreSQL
const (
	pgUniqueViolation     = "23505"
	pgInvalidTextInput    = "22P02"
	pgForeignKeyViolation = "23503"
)

// Ограничения, нарушение которых транслируется в доменные ошибки
const (
	constraintOrderNumber = "orders_number_key"
	constraintPromoCode   = "promo_codes_code_key"
	constraintProductSlug = "products_slug_key"
)

func pgErrorCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// isUniqueViolation проверяет нарушение конкретного уникального ограничения.
// Пустое имя ограничения означает любое
func isUniqueViolation(err error, constraint string) bool {
	code, name := pgErrorCode(err)
	return code == pgUniqueViolation && (constraint == "" || name == constraint)
}

// isMalformedID идентификатор не является корректным uuid
func isMalformedID(err error) bool {
	code, _ := pgErrorCode(err)
	return code == pgInvalidTextInput
}

func isForeignKeyViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == pgForeignKeyViolation
}
