// Package types содержит типы значений, которые одинаково читаются из PostgreSQL и SQLite
package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const (
	// DateLayout формат календарной даты слота
	DateLayout = "2006-01-02"

	timeOfDayLayout = "15:04:05"
)

// Date календарная дата в формате YYYY-MM-DD.
// PostgreSQL отдает DATE как time.Time, SQLite как строку, Scan приводит оба варианта к строке.
type Date string

// ParseDate проверяет формат и возвращает дату
func ParseDate(value string) (Date, error) {
	if _, err := time.Parse(DateLayout, value); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", value, err)
	}
	return Date(value), nil
}

// DateOf возвращает дату момента t в его часовом поясе
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// String реализует fmt.Stringer
func (d Date) String() string {
	return string(d)
}

// Time возвращает полночь даты в UTC
func (d Date) Time() (time.Time, error) {
	return time.Parse(DateLayout, string(d))
}

// AddDays возвращает дату, сдвинутую на n дней
func (d Date) AddDays(n int) (Date, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return DateOf(t.AddDate(0, 0, n)), nil
}

// Before сравнивает даты лексикографически, формат YYYY-MM-DD это допускает
func (d Date) Before(other Date) bool {
	return d < other
}

// Scan реализует sql.Scanner
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = Date(v.Format(DateLayout))
	case string:
		*d = Date(truncateDate(v))
	case []byte:
		*d = Date(truncateDate(string(v)))
	case nil:
		*d = ""
	default:
		return fmt.Errorf("types.Date: unsupported source type %T", src)
	}
	return nil
}

// Value реализует driver.Valuer
func (d Date) Value() (driver.Value, error) {
	return string(d), nil
}

func truncateDate(v string) string {
	if len(v) > len(DateLayout) {
		return v[:len(DateLayout)]
	}
	return v
}

// TimeString время суток в том виде, в котором оно хранится.
// Значение не проверяется при чтении: некорректная строка должна дойти до расчета длительности и вернуть ошибку там.
type TimeString string

// String реализует fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}

// Scan реализует sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*t = TimeString(v.Format(timeOfDayLayout))
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(string(v))
	case nil:
		*t = ""
	default:
		return fmt.Errorf("types.TimeString: unsupported source type %T", src)
	}
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// timestampLayouts форматы, в которых SQLite может вернуть DATETIME строкой
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// Timestamp момент времени для колонок created_at / updated_at
type Timestamp struct {
	time.Time
}

// Scan реализует sql.Scanner
func (ts *Timestamp) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		ts.Time = v
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	case nil:
		ts.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("types.Timestamp: unsupported source type %T", src)
	}
}

func (ts *Timestamp) parse(v string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, v); err == nil {
			ts.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("types.Timestamp: cannot parse %q", v)
}

// Value реализует driver.Valuer
func (ts Timestamp) Value() (driver.Value, error) {
	return ts.Time.UTC(), nil
}
