package create_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/court-booking/internal/api/handlers"
	"github.com/m04kA/court-booking/internal/service/schedules"
	"github.com/m04kA/court-booking/internal/service/schedules/models"
)

const (
	msgCreated            = "слот создан"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCourtNotFound      = "корт не найден"
	msgScheduleExists     = "у корта уже есть слот с этой датой и временем начала"
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

// Handle POST /v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	schedule, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidInput):
			handlers.RespondValidationError(w, err)

		case errors.Is(err, schedules.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, schedules.ErrScheduleExists):
			handlers.RespondConflict(w, msgScheduleExists)

		default:
			h.logger.Error("POST /schedules - Failed to create schedule: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules - Schedule created: schedule_id=%d, court_id=%d", schedule.ID, schedule.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, msgCreated, schedule)
}
