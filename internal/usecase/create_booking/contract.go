package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/court-booking/internal/domain"
)

// ScheduleRepository интерфейс репозитория слотов
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
	Reserve(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Validator проверка входной структуры, возвращает ошибки по полям
type Validator interface {
	Struct(s interface{}) error
}

// EventPublisher публикация событий бронирования
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Metrics счетчики бронирований
type Metrics interface {
	IncBookingsCreated()
	IncSlotConflicts()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
