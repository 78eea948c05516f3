package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/court-booking/internal/api/handlers"
	checkAvailability "github.com/m04kA/court-booking/internal/usecase/check_availability"
)

const (
	msgAvailable          = "слот доступен"
	msgNotAvailable       = "слот недоступен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgScheduleNotFound   = "слот не найден"
	msgCourtNotFound      = "корт не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /v1/bookings/check-availability
// Тело: {"schedule_id"} или {"court_id", "date", "start_time", "end_time"}. Ничего не изменяет.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req checkAvailability.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/check-availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			handlers.RespondValidationError(w, err)

		case errors.Is(err, checkAvailability.ErrScheduleNotFound):
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, checkAvailability.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgCourtNotFound)

		default:
			h.logger.Error("POST /bookings/check-availability - Failed to check availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	message := msgAvailable
	if !result.Available {
		message = msgNotAvailable
	}
	handlers.RespondJSON(w, http.StatusOK, message, result)
}
