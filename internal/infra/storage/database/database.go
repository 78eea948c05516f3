// Package database открытие соединения с PostgreSQL или SQLite по конфигурации
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/m04kA/court-booking/internal/config"
	"github.com/m04kA/court-booking/internal/infra/storage/migrate"
	"github.com/m04kA/court-booking/pkg/sqlbuilder"
)

var (
	// ErrOpen ошибка открытия соединения
	ErrOpen = errors.New("database: failed to open connection")

	// ErrPing база недоступна
	ErrPing = errors.New("database: ping failed")

	// ErrMigrate ошибка применения миграций
	ErrMigrate = errors.New("database: migration failed")
)

// Logger логгер
type Logger interface {
	Info(format string, v ...interface{})
}

// Open открывает соединение, настраивает пул и проверяет доступность.
// Для SQLite одно соединение: запись в файл все равно сериализуется, а :memory: видна только своему соединению.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, sqlbuilder.Dialect, error) {
	dialect, err := sqlbuilder.ParseDialect(cfg.Driver)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrOpen, err)
	}

	db, err := sql.Open(string(dialect), cfg.DSN())
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrOpen, err)
	}

	if dialect == sqlbuilder.SQLite {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("%w: %v", ErrPing, err)
	}

	if dialect == sqlbuilder.SQLite {
		if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
			_ = db.Close()
			return nil, "", fmt.Errorf("%w: enable foreign keys: %v", ErrOpen, err)
		}
	}

	return db, dialect, nil
}

// Migrate применяет встроенные миграции и пишет в лог примененные файлы
func Migrate(ctx context.Context, db *sql.DB, dialect sqlbuilder.Dialect, logger Logger) error {
	applied, err := migrate.Apply(ctx, db, dialect)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMigrate, err)
	}
	if len(applied) == 0 {
		logger.Info("Database schema is up to date")
		return nil
	}
	for _, version := range applied {
		logger.Info("Applied migration %s", version)
	}
	return nil
}
