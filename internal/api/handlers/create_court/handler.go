package create_court

import (
	"errors"
	"net/http"

	"github.com/m04kA/court-booking/internal/api/handlers"
	"github.com/m04kA/court-booking/internal/service/courts"
	"github.com/m04kA/court-booking/internal/service/courts/models"
)

const (
	msgCreated            = "корт создан"
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /v1/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /courts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	court, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrInvalidInput):
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("POST /courts - Failed to create court: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /courts - Court created: court_id=%d", court.ID)
	handlers.RespondJSON(w, http.StatusCreated, msgCreated, court)
}
