package cancel_booking

import (
	"context"

	"github.com/m04kA/court-booking/internal/service/bookings/models"
)

type CancelBookingUseCase interface {
	Execute(ctx context.Context, bookingID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
