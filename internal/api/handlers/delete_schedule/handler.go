package delete_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/court-booking/internal/api/handlers"
	"github.com/m04kA/court-booking/internal/service/schedules"
)

const (
	msgDeleted           = "слот удален"
	msgInvalidScheduleID = "некорректный ID слота"
	msgNotFound          = "слот не найден"
	msgScheduleBooked    = "слот забронирован, сначала отмените бронирование"
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

// Handle DELETE /v1/schedules/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /schedules/{id} - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	if err := h.service.Delete(r.Context(), scheduleID); err != nil {
		switch {
		case errors.Is(err, schedules.ErrScheduleNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedules.ErrScheduleBooked):
			handlers.RespondConflict(w, msgScheduleBooked)

		default:
			h.logger.Error("DELETE /schedules/{id} - Failed to delete schedule: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedules/{id} - Schedule deleted: schedule_id=%d", scheduleID)
	handlers.RespondJSON(w, http.StatusOK, msgDeleted, nil)
}
