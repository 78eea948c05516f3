package cancel_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/court-booking/internal/service/bookings/models"
	cancelBooking "github.com/m04kA/court-booking/internal/usecase/cancel_booking"
	"github.com/m04kA/court-booking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	args := m.Called(ctx, bookingID)
	if resp, ok := args.Get(0).(*models.BookingResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(uc *mockUseCase, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/v1/bookings/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Cancelled(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, int64(3)).
		Return(&models.BookingResponse{ID: 3, ScheduleID: 9}, nil).Once()

	rec := serve(uc, "3")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Success bool                   `json:"success"`
		Data    models.BookingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(3), resp.Data.ID)
	assert.Equal(t, int64(9), resp.Data.ScheduleID)
	uc.AssertExpectations(t)
}

func TestHandle_InvalidID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-1"} {
		uc := &mockUseCase{}

		rec := serve(uc, id)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "id %q", id)
		uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	}
}

func TestHandle_NotFound(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, int64(42)).Return(nil, cancelBooking.ErrBookingNotFound).Once()

	assert.Equal(t, http.StatusNotFound, serve(uc, "42").Code)
}

func TestHandle_Internal(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, int64(42)).Return(nil, errors.New("release failed")).Once()

	assert.Equal(t, http.StatusInternalServerError, serve(uc, "42").Code)
}
