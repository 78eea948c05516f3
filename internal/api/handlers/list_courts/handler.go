package list_courts

import (
	"net/http"

	"github.com/m04kA/court-booking/internal/api/handlers"
	"github.com/m04kA/court-booking/internal/service/courts/models"
)

const (
	msgListed        = "список кортов получен"
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /v1/courts
// Query params: include_inactive (опционально, по умолчанию только активные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	includeInactive, err := handlers.QueryBool(r, "include_inactive")
	if err != nil {
		h.logger.Warn("GET /courts - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListCourtsRequest{IncludeInactive: includeInactive})
	if err != nil {
		h.logger.Error("GET /courts - Failed to list courts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, msgListed, result)
}
