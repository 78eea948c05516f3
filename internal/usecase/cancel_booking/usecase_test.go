package cancel_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/court-booking/internal/domain"
	bookingRepo "github.com/m04kA/court-booking/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/court-booking/internal/infra/storage/schedule"
	"github.com/m04kA/court-booking/internal/infra/storage/storagetest"
	"github.com/m04kA/court-booking/internal/usecase/create_booking"
	"github.com/m04kA/court-booking/pkg/logger"
	"github.com/m04kA/court-booking/pkg/metrics"
	"github.com/m04kA/court-booking/pkg/mq"
	"github.com/m04kA/court-booking/pkg/txmanager"
	"github.com/m04kA/court-booking/pkg/validation"
)

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishJSON(ctx context.Context, key string, v any) error {
	return m.Called(ctx, key, v).Error(0)
}

type failingScheduleRepo struct{}

func (failingScheduleRepo) Release(context.Context, int64) error {
	return errors.New("connection reset")
}

func TestUseCase_Execute_ReleasesSlot(t *testing.T) {
	db := storagetest.New(t)
	fx := db.Fixtures(t)
	schedules := scheduleRepo.NewRepository(db, db.Dialect)
	bookings := bookingRepo.NewRepository(db, db.Dialect)

	scheduleID := fx.Schedule(fx.Court("A", 50000), "2026-10-20", "09:00", "11:00")
	bookingID := fx.Booking(scheduleID, "Budi", 100000, time.Now())

	publisher := &mockPublisher{}
	publisher.On("PublishJSON", mock.Anything, domain.EventBookingCancelled, mock.MatchedBy(func(ev domain.BookingEvent) bool {
		return ev.BookingID == bookingID && ev.ScheduleID == scheduleID
	})).Return(nil).Once()

	uc := NewUseCase(bookings, schedules, txmanager.NewTransactionManager(db), publisher, (*metrics.Metrics)(nil), logger.NewNop())

	resp, err := uc.Execute(context.Background(), bookingID)
	require.NoError(t, err)
	assert.Equal(t, bookingID, resp.ID)
	require.NotNil(t, resp.Schedule)
	assert.Equal(t, "available", resp.Schedule.Status)

	assert.Equal(t, "available", fx.ScheduleStatus(scheduleID))
	assert.Equal(t, 0, fx.Count("bookings"))
	publisher.AssertExpectations(t)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	db := storagetest.New(t)
	uc := NewUseCase(
		bookingRepo.NewRepository(db, db.Dialect),
		scheduleRepo.NewRepository(db, db.Dialect),
		txmanager.NewTransactionManager(db),
		mq.NopPublisher{},
		(*metrics.Metrics)(nil),
		logger.NewNop(),
	)

	_, err := uc.Execute(context.Background(), 999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUseCase_Execute_ReleaseFailureKeepsBooking(t *testing.T) {
	db := storagetest.New(t)
	fx := db.Fixtures(t)

	scheduleID := fx.Schedule(fx.Court("A", 50000), "2026-10-20", "09:00", "11:00")
	bookingID := fx.Booking(scheduleID, "Budi", 100000, time.Now())

	uc := NewUseCase(
		bookingRepo.NewRepository(db, db.Dialect),
		failingScheduleRepo{},
		txmanager.NewTransactionManager(db),
		mq.NopPublisher{},
		(*metrics.Metrics)(nil),
		logger.NewNop(),
	)

	_, err := uc.Execute(context.Background(), bookingID)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 1, fx.Count("bookings"))
	assert.Equal(t, "booked", fx.ScheduleStatus(scheduleID))
}

func TestCreateCancelCreate(t *testing.T) {
	db := storagetest.New(t)
	fx := db.Fixtures(t)
	schedules := scheduleRepo.NewRepository(db, db.Dialect)
	bookings := bookingRepo.NewRepository(db, db.Dialect)
	tx := txmanager.NewTransactionManager(db)
	log := logger.NewNop()

	scheduleID := fx.Schedule(fx.Court("A", 50000), "2099-01-10", "09:00", "11:00")

	create := create_booking.NewUseCase(schedules, bookings, tx, validation.New(), mq.NopPublisher{}, (*metrics.Metrics)(nil), time.UTC, log)
	cancel := NewUseCase(bookings, schedules, tx, mq.NopPublisher{}, (*metrics.Metrics)(nil), log)

	req := func() *create_booking.Request {
		return &create_booking.Request{ScheduleID: scheduleID, CustomerName: "Budi", CustomerPhone: "0812"}
	}

	first, err := create.Execute(context.Background(), req())
	require.NoError(t, err)

	_, err = create.Execute(context.Background(), req())
	require.ErrorIs(t, err, create_booking.ErrSlotNotAvailable)

	_, err = cancel.Execute(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, "available", fx.ScheduleStatus(scheduleID))

	second, err := create.Execute(context.Background(), req())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "booked", fx.ScheduleStatus(scheduleID))
}
