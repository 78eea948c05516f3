package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/court-booking/internal/domain"
	bookingRepo "github.com/m04kA/court-booking/internal/infra/storage/booking"
	"github.com/m04kA/court-booking/internal/service/bookings/models"
)

// UseCase use case для отмены бронирования с освобождением слота
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute освобождает слот и удаляет бронирование в одной транзакции.
// Возвращает удаленное бронирование в том виде, в каком оно было до отмены.
func (uc *UseCase) Execute(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	uc.logger.Info("CancelBooking: booking_id=%d", bookingID)

	var cancelled *domain.Booking

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", bookingID)
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Слот освобождается до удаления; при ошибке откатывается вся операция
		if err := uc.scheduleRepo.Release(txCtx, booking.ScheduleID); err != nil {
			uc.logger.Error("CancelBooking: failed to release schedule id=%d: %v", booking.ScheduleID, err)
			return fmt.Errorf("%w: failed to release schedule: %v", ErrInternal, err)
		}

		if err := uc.bookingRepo.Delete(txCtx, booking.ID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to delete booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
		}

		if booking.Schedule != nil {
			booking.Schedule.Status = domain.ScheduleStatusAvailable
		}
		cancelled = booking
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CancelBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.IncBookingsCancelled()
	uc.logger.Info("CancelBooking: booking id=%d cancelled, schedule id=%d released", cancelled.ID, cancelled.ScheduleID)

	event := domain.NewBookingEvent(domain.EventBookingCancelled, cancelled, uc.timeProvider.Now())
	if err := uc.publisher.PublishJSON(ctx, domain.EventBookingCancelled, event); err != nil {
		uc.logger.Warn("CancelBooking: failed to publish %s for booking id=%d: %v",
			domain.EventBookingCancelled, cancelled.ID, err)
	}

	return models.FromDomainBooking(cancelled), nil
}
