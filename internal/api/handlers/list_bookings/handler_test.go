package list_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/court-booking/internal/service/bookings"
	"github.com/m04kA/court-booking/internal/service/bookings/models"
	"github.com/m04kA/court-booking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListBySlot(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*models.BookingListResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) ListRecent(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*models.BookingListResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHandle_PassesFilters(t *testing.T) {
	svc := &mockService{}
	svc.On("ListBySlot", mock.Anything, mock.MatchedBy(func(req *models.ListBookingsRequest) bool {
		return req.Date != nil && *req.Date == "2099-01-10" &&
			req.CourtID != nil && *req.CourtID == 2 &&
			req.Status == nil
	})).Return(&models.BookingListResponse{Bookings: []models.BookingResponse{{ID: 1}}, Total: 1}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings?date=2099-01-10&court_id=2", nil)
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
	svc.AssertExpectations(t)
}

func TestHandleRecent_UsesRecentOrder(t *testing.T) {
	svc := &mockService{}
	svc.On("ListRecent", mock.Anything, mock.Anything).
		Return(&models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings/recent", nil)
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).HandleRecent(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"bookings":[]`)
	svc.AssertExpectations(t)
	svc.AssertNotCalled(t, "ListBySlot", mock.Anything, mock.Anything)
}

func TestHandle_InvalidCourtID(t *testing.T) {
	svc := &mockService{}

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings?court_id=abc", nil)
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "ListBySlot", mock.Anything, mock.Anything)
}

func TestHandle_InvalidFilter(t *testing.T) {
	svc := &mockService{}
	svc.On("ListBySlot", mock.Anything, mock.Anything).Return(nil, bookings.ErrInvalidInput).Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings?status=pending", nil)
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
