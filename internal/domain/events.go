package domain

import "time"

// Ключи маршрутизации событий бронирований
const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// BookingEvent событие жизненного цикла бронирования, публикуется после фиксации транзакции
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  int64     `json:"booking_id"`
	ScheduleID int64     `json:"schedule_id"`
	CourtID    int64     `json:"court_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	TotalPrice float64   `json:"total_price"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewBookingEvent собирает событие по бронированию с загруженным слотом
func NewBookingEvent(eventType string, b *Booking, at time.Time) BookingEvent {
	event := BookingEvent{
		Type:       eventType,
		BookingID:  b.ID,
		ScheduleID: b.ScheduleID,
		TotalPrice: b.TotalPrice,
		OccurredAt: at.UTC(),
	}
	if b.Schedule != nil {
		event.CourtID = b.Schedule.CourtID
		event.Date = b.Schedule.Date.String()
		event.StartTime = b.Schedule.StartTime.String()
		event.EndTime = b.Schedule.EndTime.String()
	}
	return event
}
