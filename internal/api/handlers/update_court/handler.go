package update_court

import (
	"errors"
	"net/http"

	"github.com/m04kA/court-booking/internal/api/handlers"
	"github.com/m04kA/court-booking/internal/service/courts"
	"github.com/m04kA/court-booking/internal/service/courts/models"
)

const (
	msgUpdated            = "корт обновлен"
	msgInvalidCourtID     = "некорректный ID корта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "корт не найден"
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

// Handle PUT /v1/courts/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /courts/{id} - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	var req models.UpdateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /courts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	court, err := h.service.Update(r.Context(), courtID, &req)
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrInvalidInput):
			handlers.RespondValidationError(w, err)

		case errors.Is(err, courts.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /courts/{id} - Failed to update court: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /courts/{id} - Court updated: court_id=%d", courtID)
	handlers.RespondJSON(w, http.StatusOK, msgUpdated, court)
}
