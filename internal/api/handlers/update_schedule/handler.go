package update_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/court-booking/internal/api/handlers"
	"github.com/m04kA/court-booking/internal/service/schedules"
	"github.com/m04kA/court-booking/internal/service/schedules/models"
)

const (
	msgUpdated            = "слот обновлен"
	msgInvalidScheduleID  = "некорректный ID слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "слот не найден"
	msgCourtNotFound      = "корт не найден"
	msgScheduleExists     = "у корта уже есть слот с этой датой и временем начала"
	msgScheduleBooked     = "слот забронирован, изменение невозможно"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /v1/schedules/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /schedules/{id} - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	schedule, err := h.service.Update(r.Context(), scheduleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidInput):
			handlers.RespondValidationError(w, err)

		case errors.Is(err, schedules.ErrScheduleNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedules.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, schedules.ErrScheduleExists):
			handlers.RespondConflict(w, msgScheduleExists)

		case errors.Is(err, schedules.ErrScheduleBooked):
			handlers.RespondConflict(w, msgScheduleBooked)

		default:
			h.logger.Error("PUT /schedules/{id} - Failed to update schedule: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedules/{id} - Schedule updated: schedule_id=%d", scheduleID)
	handlers.RespondJSON(w, http.StatusOK, msgUpdated, schedule)
}
