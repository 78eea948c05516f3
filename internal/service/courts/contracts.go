package courts

import (
	"context"

	"github.com/m04kA/court-booking/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	Create(ctx context.Context, court *domain.Court) (*domain.Court, error)
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	List(ctx context.Context, filter domain.CourtFilter) ([]*domain.Court, error)
	Update(ctx context.Context, court *domain.Court) error
	Delete(ctx context.Context, id int64) error
}

// Validator проверка входной структуры
type Validator interface {
	Struct(s interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
