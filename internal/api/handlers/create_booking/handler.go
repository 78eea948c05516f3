package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/court-booking/internal/api/handlers"
	createBooking "github.com/m04kA/court-booking/internal/usecase/create_booking"
)

const (
	msgCreated            = "бронирование создано"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgScheduleNotFound   = "слот не найден"
	msgSlotNotAvailable   = "выбранный слот недоступен"
	msgSlotInPast         = "нельзя забронировать слот в прошедшую дату"
	msgInvalidSlotTime    = "некорректное время слота, стоимость не рассчитана"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req createBooking.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondValidationError(w, err)

		case errors.Is(err, createBooking.ErrScheduleNotFound):
			h.logger.Warn("POST /bookings - Schedule not found: schedule_id=%d", req.ScheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: schedule_id=%d", req.ScheduleID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrSlotInPast):
			handlers.RespondUnprocessable(w, msgSlotInPast)

		case errors.Is(err, createBooking.ErrPriceComputation):
			h.logger.Error("POST /bookings - Price computation failed: schedule_id=%d, error=%v", req.ScheduleID, err)
			handlers.RespondUnprocessable(w, msgInvalidSlotTime)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: schedule_id=%d, error=%v", req.ScheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, schedule_id=%d",
		result.ID, result.ScheduleID)
	handlers.RespondJSON(w, http.StatusCreated, msgCreated, result)
}
