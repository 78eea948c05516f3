// Package dberrors распознает нарушения ограничений PostgreSQL и SQLite
package dberrors

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// IsUniqueViolation нарушение UNIQUE или PRIMARY KEY
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgUniqueViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
			return true
		}
		return isConstraint(code) && strings.Contains(liteErr.Error(), "UNIQUE constraint failed")
	}

	return false
}

// IsForeignKeyViolation нарушение FOREIGN KEY
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgForeignKeyViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
			return true
		}
		return isConstraint(code) && strings.Contains(liteErr.Error(), "FOREIGN KEY constraint failed")
	}

	return false
}

// isConstraint основной код SQLITE_CONSTRAINT без расширенной части
func isConstraint(code int) bool {
	return code&0xff == sqlite3.SQLITE_CONSTRAINT
}
