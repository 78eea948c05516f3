package domain

import (
	"math"
	"time"

	"github.com/m04kA/court-booking/pkg/types"
)

// Booking represents a customer reservation of a schedule slot
type Booking struct {
	ID            int64
	ScheduleID    int64
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	TotalPrice    float64
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Schedule заполняется при чтении с join, вместе с Schedule.Court
	Schedule *Schedule
}

// BookingUpdate изменяемые поля бронирования. nil - поле не меняется.
type BookingUpdate struct {
	CustomerName  *string
	CustomerPhone *string
	CustomerEmail *string
	Notes         *string
}

// IsEmpty returns true if nothing is going to change
func (u BookingUpdate) IsEmpty() bool {
	return u.CustomerName == nil && u.CustomerPhone == nil && u.CustomerEmail == nil && u.Notes == nil
}

// BookingOrder порядок сортировки списка бронирований
type BookingOrder int

const (
	// OrderBySlot по дате слота (новые сначала), внутри дня по времени начала
	OrderBySlot BookingOrder = iota
	// OrderByRecent по времени создания бронирования, новые сначала
	OrderByRecent
)

// BookingFilter фильтр списка бронирований
type BookingFilter struct {
	Date    *types.Date     // дата слота
	CourtID *int64          // корт слота
	Status  *ScheduleStatus // статус слота
	Order   BookingOrder
}

// CalculatePrice стоимость слота: часы × цена за час, округление до копеек
func CalculatePrice(hours, pricePerHour float64) float64 {
	return math.Round(hours*pricePerHour*100) / 100
}
