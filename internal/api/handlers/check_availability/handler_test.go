package check_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	checkAvailability "github.com/m04kA/court-booking/internal/usecase/check_availability"
	"github.com/m04kA/court-booking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*checkAvailability.Response); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

type envelope struct {
	Success bool                       `json:"success"`
	Message string                     `json:"message"`
	Data    checkAvailability.Response `json:"data"`
}

func serve(t *testing.T, uc *mockUseCase, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/v1/bookings/check-availability", strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestHandle_Available(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *checkAvailability.Request) bool {
		return req.ScheduleID != nil && *req.ScheduleID == 5
	})).Return(&checkAvailability.Response{Available: true}, nil).Once()

	rec, resp := serve(t, uc, `{"schedule_id": 5}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, msgAvailable, resp.Message)
	assert.True(t, resp.Data.Available)
	uc.AssertExpectations(t)
}

func TestHandle_NotAvailableIsNotAnError(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *checkAvailability.Request) bool {
		return req.CourtID != nil && *req.CourtID == 1 && req.StartTime != nil && *req.StartTime == "09:00"
	})).Return(&checkAvailability.Response{
		Available: false,
		Reason:    checkAvailability.ReasonOverlapsBooked,
	}, nil).Once()

	rec, resp := serve(t, uc, `{"court_id": 1, "date": "2099-01-10", "start_time": "09:00", "end_time": "10:30"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, msgNotAvailable, resp.Message)
	assert.False(t, resp.Data.Available)
	assert.Equal(t, checkAvailability.ReasonOverlapsBooked, resp.Data.Reason)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", checkAvailability.ErrInvalidInput, http.StatusUnprocessableEntity},
		{"schedule not found", checkAvailability.ErrScheduleNotFound, http.StatusNotFound},
		{"court not found", checkAvailability.ErrCourtNotFound, http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			rec, resp := serve(t, uc, `{"schedule_id": 5}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, resp.Success)
		})
	}
}

func TestHandle_EmptyBody(t *testing.T) {
	uc := &mockUseCase{}

	rec, _ := serve(t, uc, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
