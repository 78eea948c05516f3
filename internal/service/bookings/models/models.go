package models

import (
	"time"

	"github.com/m04kA/court-booking/internal/domain"
	scheduleModels "github.com/m04kA/court-booking/internal/service/schedules/models"
)

// Request модели

// UpdateBookingRequest частичное обновление бронирования.
// ScheduleID и TotalPrice принимаются только для того, чтобы отклонить запрос с ними.
type UpdateBookingRequest struct {
	CustomerName  *string `json:"customer_name,omitempty" validate:"omitempty,min=1,max=255"`
	CustomerPhone *string `json:"customer_phone,omitempty" validate:"omitempty,min=1,max=20"`
	CustomerEmail *string `json:"customer_email,omitempty" validate:"omitempty,email,max=255"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=1000"`

	ScheduleID *int64   `json:"schedule_id,omitempty"`
	TotalPrice *float64 `json:"total_price,omitempty"`
}

// ToDomainUpdate изменяемые поля
func (r *UpdateBookingRequest) ToDomainUpdate() domain.BookingUpdate {
	return domain.BookingUpdate{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		Notes:         r.Notes,
	}
}

// ListBookingsRequest фильтры списка бронирований
type ListBookingsRequest struct {
	Date    *string             `json:"date,omitempty" validate:"omitempty,date"`
	CourtID *int64              `json:"court_id,omitempty" validate:"omitempty,gt=0"`
	Status  *string             `json:"status,omitempty" validate:"omitempty,oneof=available booked"`
	Order   domain.BookingOrder `json:"-"`
}

// Response модели

// BookingResponse бронирование вместе со слотом и кортом
type BookingResponse struct {
	ID            int64                            `json:"id"`
	ScheduleID    int64                            `json:"schedule_id"`
	CustomerName  string                           `json:"customer_name"`
	CustomerPhone string                           `json:"customer_phone"`
	CustomerEmail *string                          `json:"customer_email"`
	TotalPrice    float64                          `json:"total_price"`
	Notes         *string                          `json:"notes"`
	CreatedAt     time.Time                        `json:"created_at"`
	UpdatedAt     time.Time                        `json:"updated_at"`
	Schedule      *scheduleModels.ScheduleResponse `json:"schedule,omitempty"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
		ID:            b.ID,
		ScheduleID:    b.ScheduleID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		TotalPrice:    b.TotalPrice,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		Schedule:      scheduleModels.FromDomainSchedule(b.Schedule),
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}
	for _, b := range bookings {
		result.Bookings = append(result.Bookings, *FromDomainBooking(b))
	}
	return result
}
