package dbx

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	sqlite "modernc.org/sqlite"
)

// SQLSTATE 23505 (PostgreSQL) and the SQLite extended result codes for
// UNIQUE/PRIMARY KEY constraint failures.
const (
	pgUniqueViolation         = "23505"
	sqliteConstraintUnique    = 2067
	sqliteConstraintPrimaryKey = 1555
)

// IsUniqueViolation reports whether err is a unique-constraint violation
// from either supported driver. Repositories use it to translate duplicate
// inserts into domain errors instead of leaking driver details upward.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		code := sqErr.Code()
		return code == sqliteConstraintUnique || code == sqliteConstraintPrimaryKey
	}
	return false
}
