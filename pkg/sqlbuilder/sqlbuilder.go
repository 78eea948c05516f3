// Package sqlbuilder конструктор запросов squirrel с плейсхолдерами нужного диалекта
package sqlbuilder

import (
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Dialect диалект SQL
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// ParseDialect проверяет название драйвера
func ParseDialect(driver string) (Dialect, error) {
	switch Dialect(driver) {
	case Postgres, SQLite:
		return Dialect(driver), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// New возвращает конструктор запросов: $1, $2 для PostgreSQL и ? для SQLite
func New(dialect Dialect) squirrel.StatementBuilderType {
	if dialect == SQLite {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
