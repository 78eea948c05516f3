// Package migrate применяет встроенные SQL миграции схемы courts / schedules / bookings
package migrate

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/court-booking/pkg/sqlbuilder"
	"github.com/m04kA/court-booking/pkg/types"
)

//go:embed postgres/*.sql sqlite/*.sql
var migrations embed.FS

var (
	// ErrReadMigrations ошибка чтения встроенных файлов
	ErrReadMigrations = errors.New("migrate: failed to read migrations")

	// ErrApplyMigration ошибка применения миграции
	ErrApplyMigration = errors.New("migrate: failed to apply migration")
)

const createVersionsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    VARCHAR(255) PRIMARY KEY,
    applied_at TIMESTAMP    NOT NULL
)`

// Apply применяет еще не примененные миграции диалекта, каждую в своей транзакции.
// Возвращает имена примененных файлов.
func Apply(ctx context.Context, db *sql.DB, dialect sqlbuilder.Dialect) ([]string, error) {
	files, err := fs.Glob(migrations, path.Join(string(dialect), "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMigrations, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no migrations for dialect %s", ErrReadMigrations, dialect)
	}
	sort.Strings(files)

	if _, err := db.ExecContext(ctx, createVersionsTable); err != nil {
		return nil, fmt.Errorf("%w: create schema_migrations: %v", ErrApplyMigration, err)
	}

	qb := sqlbuilder.New(dialect)
	var applied []string

	for _, file := range files {
		version := path.Base(file)

		done, err := isApplied(ctx, db, qb, version)
		if err != nil {
			return applied, err
		}
		if done {
			continue
		}

		content, err := migrations.ReadFile(file)
		if err != nil {
			return applied, fmt.Errorf("%w: %s: %v", ErrReadMigrations, file, err)
		}

		if err := applyFile(ctx, db, qb, version, string(content)); err != nil {
			return applied, err
		}
		applied = append(applied, version)
	}

	return applied, nil
}

func isApplied(ctx context.Context, db *sql.DB, qb squirrel.StatementBuilderType, version string) (bool, error) {
	query, args, err := qb.Select("COUNT(*)").
		From("schema_migrations").
		Where(squirrel.Eq{"version": version}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: build version query: %v", ErrApplyMigration, err)
	}

	var n int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("%w: check version %s: %v", ErrApplyMigration, version, err)
	}
	return n > 0, nil
}

func applyFile(ctx context.Context, db *sql.DB, qb squirrel.StatementBuilderType, version, content string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: begin: %v", ErrApplyMigration, version, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range splitStatements(content) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrApplyMigration, version, err)
		}
	}

	query, args, err := qb.Insert("schema_migrations").
		Columns("version", "applied_at").
		Values(version, types.Timestamp{Time: time.Now().UTC()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s: build insert: %v", ErrApplyMigration, version, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %s: record version: %v", ErrApplyMigration, version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %s: commit: %v", ErrApplyMigration, version, err)
	}
	return nil
}

// splitStatements делит файл на отдельные запросы по ";" в конце строки
func splitStatements(content string) []string {
	var stmts []string
	for _, part := range strings.Split(content, ";\n") {
		stmt := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(part), ";"))
		if stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
