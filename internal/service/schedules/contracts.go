package schedules

import (
	"context"
	"time"

	"github.com/m04kA/court-booking/internal/domain"
	"github.com/m04kA/court-booking/pkg/types"
)

// ScheduleRepository интерфейс репозитория слотов
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
	List(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error)
	Exists(ctx context.Context, courtID int64, date types.Date, startTime types.TimeString) (bool, error)
	Update(ctx context.Context, schedule *domain.Schedule, expected domain.ScheduleStatus) error
	Delete(ctx context.Context, id int64) error
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	List(ctx context.Context, filter domain.CourtFilter) ([]*domain.Court, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ExistsBySchedule(ctx context.Context, scheduleID int64) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Validator проверка входной структуры
type Validator interface {
	Struct(s interface{}) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
