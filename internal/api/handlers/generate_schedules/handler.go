package generate_schedules

import (
	"errors"
	"net/http"

	"github.com/m04kA/court-booking/internal/api/handlers"
	"github.com/m04kA/court-booking/internal/service/schedules"
	"github.com/m04kA/court-booking/internal/service/schedules/models"
)

const (
	msgGenerated          = "слоты сгенерированы"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCourtNotFound      = "корт не найден"
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

// Handle POST /v1/schedules/generate
// Пустое тело: все активные корты, с сегодняшнего дня, 7 дней, стандартные интервалы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateSchedulesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /schedules/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Generate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidInput):
			handlers.RespondValidationError(w, err)

		case errors.Is(err, schedules.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgCourtNotFound)

		default:
			h.logger.Error("POST /schedules/generate - Failed to generate schedules: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules/generate - Created %d, skipped %d", result.Created, result.Skipped)
	handlers.RespondJSON(w, http.StatusCreated, msgGenerated, result)
}
