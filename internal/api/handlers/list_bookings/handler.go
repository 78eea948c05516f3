package list_bookings

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/court-booking/internal/api/handlers"
	"github.com/m04kA/court-booking/internal/service/bookings"
	"github.com/m04kA/court-booking/internal/service/bookings/models"
)

const (
	msgListed        = "список бронирований получен"
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /v1/bookings
// Query params: date, court_id, status (опционально). Порядок: дата слота desc, время начала asc
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "GET /bookings", h.service.ListBySlot)
}

// HandleRecent GET /v1/bookings/recent
// Те же фильтры, порядок: время создания desc
func (h *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "GET /bookings/recent", h.service.ListRecent)
}

type listFunc func(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error)

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, route string, list listFunc) {
	courtID, err := handlers.QueryInt64(r, "court_id")
	if err != nil {
		h.logger.Warn("%s - Invalid parameters: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	req := &models.ListBookingsRequest{
		Date:    handlers.QueryString(r, "date"),
		CourtID: courtID,
		Status:  handlers.QueryString(r, "status"),
	}

	result, err := list(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("%s - Failed to list bookings: %v", route, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, msgListed, result)
}
