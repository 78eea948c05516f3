package update_booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/court-booking/internal/service/bookings"
	"github.com/m04kA/court-booking/internal/service/bookings/models"
	"github.com/m04kA/court-booking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, req)
	if resp, ok := args.Get(0).(*models.BookingResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(svc *mockService, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/v1/bookings/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Updated(t *testing.T) {
	svc := &mockService{}
	svc.On("Update", mock.Anything, int64(4), mock.MatchedBy(func(req *models.UpdateBookingRequest) bool {
		return req.CustomerName != nil && *req.CustomerName == "Sari" && req.Notes == nil
	})).Return(&models.BookingResponse{ID: 4, CustomerName: "Sari"}, nil).Once()

	rec := serve(svc, "4", `{"customer_name": "Sari"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"customer_name":"Sari"`)
	svc.AssertExpectations(t)
}

func TestHandle_ForbiddenFieldsPassedToService(t *testing.T) {
	svc := &mockService{}
	svc.On("Update", mock.Anything, int64(4), mock.MatchedBy(func(req *models.UpdateBookingRequest) bool {
		return req.ScheduleID != nil && *req.ScheduleID == 99
	})).Return(nil, fmt.Errorf("%w: schedule_id", bookings.ErrInvalidInput)).Once()

	rec := serve(svc, "4", `{"schedule_id": 99}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		err        error
		wantStatus int
	}{
		{"bad id", "x", `{}`, nil, http.StatusBadRequest},
		{"bad body", "4", `{"customer_name": 5}`, nil, http.StatusBadRequest},
		{"not found", "4", `{"notes": "late"}`, bookings.ErrBookingNotFound, http.StatusNotFound},
		{"internal", "4", `{"notes": "late"}`, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.err != nil {
				svc.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err).Once()
			}

			rec := serve(svc, tt.id, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
