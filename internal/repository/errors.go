package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolationCode is the Postgres SQLSTATE for unique constraint violations
const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether err is a unique-constraint failure. The
// engine treats these identically to a pre-flight conflict: the constraint is
// the authoritative guard, the pre-check is advisory.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Fallback for drivers that only expose the rendered message
	return strings.Contains(err.Error(), "duplicate key value")
}
