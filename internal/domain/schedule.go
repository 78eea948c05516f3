package domain

import (
	"time"

	"github.com/m04kA/court-booking/pkg/timerange"
	"github.com/m04kA/court-booking/pkg/types"
)

// ScheduleStatus статус слота
type ScheduleStatus string

const (
	ScheduleStatusAvailable ScheduleStatus = "available"
	ScheduleStatusBooked    ScheduleStatus = "booked"
)

// IsValid проверяет, что статус известен
func (s ScheduleStatus) IsValid() bool {
	return s == ScheduleStatusAvailable || s == ScheduleStatusBooked
}

// Schedule represents a bookable time slot of a court on a date
type Schedule struct {
	ID        int64
	CourtID   int64
	Date      types.Date
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    ScheduleStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	// Court заполняется при чтении с join
	Court *Court
}

// IsAvailable returns true if the slot can be booked
func (s *Schedule) IsAvailable() bool {
	return s.Status == ScheduleStatusAvailable
}

// IsPast returns true if the slot date is before today
func (s *Schedule) IsPast(today types.Date) bool {
	return s.Date.Before(today)
}

// DurationHours длительность слота в часах, переход через полночь допускается
func (s *Schedule) DurationHours() (float64, error) {
	return timerange.DurationHours(s.StartTime.String(), s.EndTime.String())
}

// ScheduleFilter фильтр списка слотов
type ScheduleFilter struct {
	Date    *types.Date
	CourtID *int64
	Status  *ScheduleStatus
}

// TimeWindow интервал времени внутри дня для генерации слотов
type TimeWindow struct {
	StartTime string
	EndTime   string
}
