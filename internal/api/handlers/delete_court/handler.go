package delete_court

import (
	"errors"
	"net/http"

	"github.com/m04kA/court-booking/internal/api/handlers"
	"github.com/m04kA/court-booking/internal/service/courts"
)

const (
	msgDeleted        = "корт удален"
	msgInvalidCourtID = "некорректный ID корта"
	msgNotFound       = "корт не найден"
	msgCourtInUse     = "у корта есть слоты, удаление невозможно"
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

// Handle DELETE /v1/courts/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /courts/{id} - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	if err := h.service.Delete(r.Context(), courtID); err != nil {
		switch {
		case errors.Is(err, courts.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, courts.ErrCourtInUse):
			handlers.RespondConflict(w, msgCourtInUse)

		default:
			h.logger.Error("DELETE /courts/{id} - Failed to delete court: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /courts/{id} - Court deleted: court_id=%d", courtID)
	handlers.RespondJSON(w, http.StatusOK, msgDeleted, nil)
}
