package domain

import "time"

// CourtStatus статус корта
type CourtStatus string

const (
	CourtStatusActive   CourtStatus = "active"
	CourtStatusInactive CourtStatus = "inactive"
)

// IsValid проверяет, что статус известен
func (s CourtStatus) IsValid() bool {
	return s == CourtStatusActive || s == CourtStatusInactive
}

// Court represents a badminton court
type Court struct {
	ID           int64
	Name         string
	Description  *string
	PricePerHour float64
	Status       CourtStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive returns true if the court accepts bookings
func (c *Court) IsActive() bool {
	return c.Status == CourtStatusActive
}

// CourtFilter фильтр списка кортов
type CourtFilter struct {
	Status *CourtStatus // nil - все корты
}
