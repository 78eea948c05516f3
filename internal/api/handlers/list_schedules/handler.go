package list_schedules

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/court-booking/internal/api/handlers"
	"github.com/m04kA/court-booking/internal/service/schedules"
	"github.com/m04kA/court-booking/internal/service/schedules/models"
)

const (
	msgListed        = "список слотов получен"
	msgInvalidParams = "некорректные параметры запроса"
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

// Handle GET /v1/schedules
// Query params: date, court_id, status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "GET /schedules", h.service.List)
}

// HandleAvailable GET /v1/schedules-available
// Query params: date, court_id (опционально); статус всегда available
func (h *Handler) HandleAvailable(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "GET /schedules-available", h.service.ListAvailable)
}

type listFunc func(ctx context.Context, req *models.ListSchedulesRequest) (*models.ScheduleListResponse, error)

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, route string, list listFunc) {
	courtID, err := handlers.QueryInt64(r, "court_id")
	if err != nil {
		h.logger.Warn("%s - Invalid parameters: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	req := &models.ListSchedulesRequest{
		Date:    handlers.QueryString(r, "date"),
		CourtID: courtID,
		Status:  handlers.QueryString(r, "status"),
	}

	result, err := list(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidInput):
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("%s - Failed to list schedules: %v", route, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, msgListed, result)
}
