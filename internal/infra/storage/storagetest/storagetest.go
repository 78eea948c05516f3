// Package storagetest база SQLite в памяти со схемой сервиса для тестов репозиториев и use case
package storagetest

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/m04kA/court-booking/internal/infra/storage/migrate"
	"github.com/m04kA/court-booking/pkg/dbmetrics"
	"github.com/m04kA/court-booking/pkg/sqlbuilder"
)

// DB тестовая база
type DB struct {
	*dbmetrics.DB
	Raw     *sql.DB
	Dialect sqlbuilder.Dialect
}

// New открывает SQLite в памяти и применяет миграции.
// Одно соединение: каждое соединение :memory: видит свою базу.
func New(t *testing.T) *DB {
	t.Helper()

	raw, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	raw.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = raw.Close() })

	_, err = raw.Exec(`PRAGMA foreign_keys = ON`)
	require.NoError(t, err)

	_, err = migrate.Apply(context.Background(), raw, sqlbuilder.SQLite)
	require.NoError(t, err)

	return &DB{
		DB:      dbmetrics.Wrap(raw, nil),
		Raw:     raw,
		Dialect: sqlbuilder.SQLite,
	}
}

// Fixtures сырые вставки для подготовки данных, без репозиториев
type Fixtures struct {
	t  *testing.T
	db *sql.DB
}

// Fixtures возвращает помощник для вставки тестовых данных
func (d *DB) Fixtures(t *testing.T) *Fixtures {
	return &Fixtures{t: t, db: d.Raw}
}

// Court вставляет активный корт и возвращает его ID
func (f *Fixtures) Court(name string, pricePerHour float64) int64 {
	return f.CourtWithStatus(name, pricePerHour, "active")
}

// CourtWithStatus вставляет корт с заданным статусом
func (f *Fixtures) CourtWithStatus(name string, pricePerHour float64, status string) int64 {
	f.t.Helper()

	now := time.Now().UTC()
	res, err := f.db.Exec(
		`INSERT INTO courts (name, price_per_hour, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		name, pricePerHour, status, now, now,
	)
	require.NoError(f.t, err)

	id, err := res.LastInsertId()
	require.NoError(f.t, err)
	return id
}

// Schedule вставляет свободный слот
func (f *Fixtures) Schedule(courtID int64, date, start, end string) int64 {
	return f.ScheduleWithStatus(courtID, date, start, end, "available")
}

// ScheduleWithStatus вставляет слот с заданным статусом
func (f *Fixtures) ScheduleWithStatus(courtID int64, date, start, end, status string) int64 {
	f.t.Helper()

	now := time.Now().UTC()
	res, err := f.db.Exec(
		`INSERT INTO schedules (court_id, date, start_time, end_time, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		courtID, date, start, end, status, now, now,
	)
	require.NoError(f.t, err)

	id, err := res.LastInsertId()
	require.NoError(f.t, err)
	return id
}

// Booking вставляет бронирование и помечает слот занятым
func (f *Fixtures) Booking(scheduleID int64, customerName string, totalPrice float64, createdAt time.Time) int64 {
	f.t.Helper()

	res, err := f.db.Exec(
		`INSERT INTO bookings (schedule_id, customer_name, customer_phone, total_price, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		scheduleID, customerName, "081234567890", totalPrice, createdAt.UTC(), createdAt.UTC(),
	)
	require.NoError(f.t, err)

	_, err = f.db.Exec(`UPDATE schedules SET status = 'booked' WHERE id = ?`, scheduleID)
	require.NoError(f.t, err)

	id, err := res.LastInsertId()
	require.NoError(f.t, err)
	return id
}

// ScheduleStatus текущий статус слота
func (f *Fixtures) ScheduleStatus(scheduleID int64) string {
	f.t.Helper()

	var status string
	require.NoError(f.t, f.db.QueryRow(`SELECT status FROM schedules WHERE id = ?`, scheduleID).Scan(&status))
	return status
}

// Count количество строк в таблице
func (f *Fixtures) Count(table string) int {
	f.t.Helper()

	var n int
	require.NoError(f.t, f.db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}
