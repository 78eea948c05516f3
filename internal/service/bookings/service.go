package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/court-booking/internal/domain"
	bookingRepo "github.com/m04kA/court-booking/internal/infra/storage/booking"
	"github.com/m04kA/court-booking/internal/service/bookings/models"
	"github.com/m04kA/court-booking/pkg/types"
	"github.com/m04kA/court-booking/pkg/validation"
)

// Service сервис для чтения и редактирования бронирований.
// Создание и отмена меняют статус слота и живут в usecase create_booking / cancel_booking.
type Service struct {
	bookingRepo BookingRepository
	validator   Validator
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, validator Validator, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		validator:   validator,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID вместе со слотом и кортом
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListBySlot бронирования по дате слота (новые даты сначала), внутри дня по времени начала
func (s *Service) ListBySlot(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	req.Order = domain.OrderBySlot
	return s.list(ctx, "ListBySlot", req)
}

// ListRecent бронирования по времени создания, новые сначала
func (s *Service) ListRecent(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	req.Order = domain.OrderByRecent
	return s.list(ctx, "ListRecent", req)
}

func (s *Service) list(ctx context.Context, op string, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn("%s: invalid filter: %v", op, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	filter := domain.BookingFilter{CourtID: req.CourtID, Order: req.Order}
	if req.Date != nil {
		date := types.Date(*req.Date)
		filter.Date = &date
	}
	if req.Status != nil {
		status := domain.ScheduleStatus(*req.Status)
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: fetched %d bookings", op, len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Update меняет только данные клиента. Слот и стоимость после создания не меняются:
// запрос с schedule_id или total_price отклоняется целиком.
// Пустая строка в customer_email или notes очищает поле.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%d", id)

	normalizeUpdate(req)

	if err := s.validateUpdate(req); err != nil {
		s.logger.Warn("Update: validation failed for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	update := req.ToDomainUpdate()
	if !update.IsEmpty() {
		if err := s.bookingRepo.Update(ctx, id, update); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Update: booking id=%d not found", id)
				return nil, ErrBookingNotFound
			}
			s.logger.Error("Update: repository error for booking id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	resp, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: booking id=%d updated", id)
	return resp, nil
}

func (s *Service) validateUpdate(req *models.UpdateBookingRequest) error {
	verr := validation.NewError()
	if req.ScheduleID != nil {
		verr.Add("schedule_id", "The schedule_id field cannot be changed.")
	}
	if req.TotalPrice != nil {
		verr.Add("total_price", "The total_price field cannot be changed.")
	}

	// Пустой email означает очистку и не проверяется как адрес
	check := *req
	if check.CustomerEmail != nil && *check.CustomerEmail == "" {
		check.CustomerEmail = nil
	}
	if err := s.validator.Struct(&check); err != nil {
		var fieldErrs *validation.Error
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for field, messages := range fieldErrs.Fields {
			for _, msg := range messages {
				verr.Add(field, msg)
			}
		}
	}

	return verr.OrNil()
}

func normalizeUpdate(req *models.UpdateBookingRequest) {
	for _, field := range []*string{req.CustomerName, req.CustomerPhone, req.CustomerEmail, req.Notes} {
		if field != nil {
			*field = strings.TrimSpace(*field)
		}
	}
}
