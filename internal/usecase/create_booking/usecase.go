package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/court-booking/internal/domain"
	bookingRepo "github.com/m04kA/court-booking/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/court-booking/internal/infra/storage/schedule"
	"github.com/m04kA/court-booking/internal/service/bookings/models"
	"github.com/m04kA/court-booking/pkg/timerange"
	"github.com/m04kA/court-booking/pkg/types"
)

// UseCase use case для создания бронирования на слот
type UseCase struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	validator    Validator
	publisher    EventPublisher
	metrics      Metrics
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// location задает часовой пояс, в котором определяется текущая дата.
func NewUseCase(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	validator Validator,
	publisher EventPublisher,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		validator:    validator,
		publisher:    publisher,
		metrics:      metrics,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute резервирует слот и создает бронирование в одной транзакции.
// Слот переводится в booked условным обновлением, поэтому из конкурирующих запросов
// на один слот успешен ровно один.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.BookingResponse, error) {
	uc.logger.Info("CreateBooking: schedule=%d, customer=%q", req.ScheduleID, req.CustomerName)

	// 1. Валидация входных данных
	req.normalize()
	if err := uc.validator.Struct(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	today := types.DateOf(uc.timeProvider.Now().In(uc.location))

	var result *domain.Booking

	// 2. Резервирование и создание в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Слот вместе с кортом
		schedule, err := uc.scheduleRepo.GetByID(txCtx, req.ScheduleID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("CreateBooking: schedule id=%d not found", req.ScheduleID)
				return ErrScheduleNotFound
			}
			uc.logger.Error("CreateBooking: failed to get schedule id=%d: %v", req.ScheduleID, err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		// 2.2. Слот должен быть свободен, корт активен, дата не в прошлом
		if err := checkBookable(schedule, today); err != nil {
			uc.logger.Warn("CreateBooking: schedule id=%d is not bookable: %v", schedule.ID, err)
			return err
		}

		// 2.3. Стоимость
		price, err := computePrice(schedule)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to compute price for schedule id=%d: %v", schedule.ID, err)
			return err
		}

		// 2.4. Условное резервирование слота
		if err := uc.scheduleRepo.Reserve(txCtx, schedule.ID); err != nil {
			if errors.Is(err, scheduleRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateBooking: schedule id=%d was reserved concurrently", schedule.ID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to reserve schedule id=%d: %v", schedule.ID, err)
			return fmt.Errorf("%w: failed to reserve schedule: %v", ErrInternal, err)
		}

		// 2.5. Бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			ScheduleID:    schedule.ID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			TotalPrice:    price,
			Notes:         req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrSlotNotAvailable):
				uc.logger.Warn("CreateBooking: schedule id=%d already has a booking", schedule.ID)
				return ErrSlotNotAvailable
			case errors.Is(err, bookingRepo.ErrScheduleNotFound):
				return ErrScheduleNotFound
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 2.6. Перечитываем вместе со слотом и кортом
		loaded, err := uc.bookingRepo.GetByID(txCtx, created.ID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to reload booking id=%d: %v", created.ID, err)
			return fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
		}

		result = loaded
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.IncSlotConflicts()
		}
		if isKnown(err) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.IncBookingsCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%d for schedule id=%d, price=%.2f",
		result.ID, result.ScheduleID, result.TotalPrice)

	// 3. Событие публикуется только после фиксации
	event := domain.NewBookingEvent(domain.EventBookingCreated, result, uc.timeProvider.Now())
	if err := uc.publisher.PublishJSON(ctx, domain.EventBookingCreated, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish %s for booking id=%d: %v",
			domain.EventBookingCreated, result.ID, err)
	}

	return models.FromDomainBooking(result), nil
}

// checkBookable проверяет статус слота, статус корта и дату
func checkBookable(schedule *domain.Schedule, today types.Date) error {
	if !schedule.IsAvailable() {
		return ErrSlotNotAvailable
	}
	if schedule.Court == nil || !schedule.Court.IsActive() {
		return fmt.Errorf("%w: court is not active", ErrSlotNotAvailable)
	}
	if schedule.IsPast(today) {
		return ErrSlotInPast
	}
	return nil
}

// computePrice длительность слота × цена корта за час.
// Некорректное время слота дает ErrInvalidTimeFormat, который одновременно является ErrPriceComputation.
// Сумма сверх domain.MaxAmount не помещается в total_price.
func computePrice(schedule *domain.Schedule) (float64, error) {
	hours, err := schedule.DurationHours()
	if err != nil {
		if errors.Is(err, timerange.ErrInvalidTimeFormat) {
			return 0, fmt.Errorf("%w: %w: %v", ErrPriceComputation, ErrInvalidTimeFormat, err)
		}
		return 0, fmt.Errorf("%w: %v", ErrPriceComputation, err)
	}
	price := domain.CalculatePrice(hours, schedule.Court.PricePerHour)
	if price > domain.MaxAmount {
		return 0, fmt.Errorf("%w: total %.2f exceeds %.2f", ErrPriceComputation, price, domain.MaxAmount)
	}
	return price, nil
}

func isKnown(err error) bool {
	for _, known := range []error{
		ErrScheduleNotFound,
		ErrSlotNotAvailable,
		ErrSlotInPast,
		ErrPriceComputation,
		ErrInternal,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}
