package schedules

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/court-booking/internal/domain"
	courtRepo "github.com/m04kA/court-booking/internal/infra/storage/court"
	scheduleRepo "github.com/m04kA/court-booking/internal/infra/storage/schedule"
	"github.com/m04kA/court-booking/internal/service/schedules/models"
	"github.com/m04kA/court-booking/pkg/timerange"
	"github.com/m04kA/court-booking/pkg/types"
	"github.com/m04kA/court-booking/pkg/validation"
)

// Service сервис для управления слотами
type Service struct {
	scheduleRepo ScheduleRepository
	courtRepo    CourtRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	validator    Validator
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	scheduleRepo ScheduleRepository,
	courtRepo CourtRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	validator Validator,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		scheduleRepo: scheduleRepo,
		courtRepo:    courtRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		validator:    validator,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List слоты с кортами по дате и времени начала
func (s *Service) List(ctx context.Context, req *models.ListSchedulesRequest) (*models.ScheduleListResponse, error) {
	return s.list(ctx, "List", req)
}

// ListAvailable только свободные слоты
func (s *Service) ListAvailable(ctx context.Context, req *models.ListSchedulesRequest) (*models.ScheduleListResponse, error) {
	available := string(domain.ScheduleStatusAvailable)
	req.Status = &available
	return s.list(ctx, "ListAvailable", req)
}

func (s *Service) list(ctx context.Context, op string, req *models.ListSchedulesRequest) (*models.ScheduleListResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn("%s: invalid filter: %v", op, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	filter := domain.ScheduleFilter{CourtID: req.CourtID}
	if req.Date != nil {
		date := types.Date(*req.Date)
		filter.Date = &date
	}
	if req.Status != nil {
		status := domain.ScheduleStatus(*req.Status)
		filter.Status = &status
	}

	schedules, err := s.scheduleRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return models.FromDomainScheduleList(schedules), nil
}

// GetByID получает слот по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ScheduleResponse, error) {
	schedule, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSchedule(schedule), nil
}

// Create создает слот. Конец слота должен быть строго позже начала, время хранится как HH:MM.
func (s *Service) Create(ctx context.Context, req *models.CreateScheduleRequest) (*models.ScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	schedule := &domain.Schedule{
		CourtID: req.CourtID,
		Date:    types.Date(req.Date),
		Status:  domain.ScheduleStatusAvailable,
	}
	if req.Status != nil {
		schedule.Status = domain.ScheduleStatus(*req.Status)
	}
	if err := setTimes(schedule, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	created, err := s.scheduleRepo.Create(ctx, schedule)
	if err != nil {
		switch {
		case errors.Is(err, scheduleRepo.ErrScheduleExists):
			s.logger.Warn("Create: court id=%d already has a slot at %s %s", req.CourtID, req.Date, schedule.StartTime)
			return nil, ErrScheduleExists
		case errors.Is(err, scheduleRepo.ErrCourtNotFound):
			s.logger.Warn("Create: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: schedule id=%d created for court id=%d on %s %s-%s",
		created.ID, created.CourtID, created.Date, created.StartTime, created.EndTime)
	return s.GetByID(ctx, created.ID)
}

// Update частично обновляет слот. Слот с бронированием не меняется.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		schedule, err := s.get(txCtx, "Update", id)
		if err != nil {
			return err
		}
		if req.IsEmpty() {
			return nil
		}

		if err := s.ensureNotBooked(txCtx, "Update", id); err != nil {
			return err
		}
		expected := schedule.Status

		if req.CourtID != nil {
			schedule.CourtID = *req.CourtID
		}
		if req.Date != nil {
			schedule.Date = types.Date(*req.Date)
		}
		if req.Status != nil {
			schedule.Status = domain.ScheduleStatus(*req.Status)
		}
		start, end := schedule.StartTime.String(), schedule.EndTime.String()
		if req.StartTime != nil {
			start = *req.StartTime
		}
		if req.EndTime != nil {
			end = *req.EndTime
		}
		if err := setTimes(schedule, start, end); err != nil {
			return err
		}

		// Бронирование могло появиться после проверки: запись условная
		if err := s.scheduleRepo.Update(txCtx, schedule, expected); err != nil {
			switch {
			case errors.Is(err, scheduleRepo.ErrScheduleBooked):
				s.logger.Warn("Update: schedule id=%d was booked concurrently", id)
				return ErrScheduleBooked
			case errors.Is(err, scheduleRepo.ErrScheduleExists):
				return ErrScheduleExists
			case errors.Is(err, scheduleRepo.ErrCourtNotFound):
				return ErrCourtNotFound
			case errors.Is(err, scheduleRepo.ErrScheduleNotFound):
				return ErrScheduleNotFound
			}
			s.logger.Error("Update: repository error for schedule id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, s.known(err)
	}

	s.logger.Info("Update: schedule id=%d updated", id)
	return s.GetByID(ctx, id)
}

// Delete удаляет слот без бронирования
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, scheduleRepo.ErrScheduleNotFound):
			s.logger.Warn("Delete: schedule id=%d not found", id)
			return ErrScheduleNotFound
		case errors.Is(err, scheduleRepo.ErrScheduleBooked):
			s.logger.Warn("Delete: schedule id=%d has a booking", id)
			return ErrScheduleBooked
		}
		s.logger.Error("Delete: repository error for schedule id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: schedule id=%d deleted", id)
	return nil
}

// Generate создает ежедневные слоты на несколько дней вперед. Уже существующие слоты пропускаются.
// Все слоты создаются в одной транзакции.
func (s *Service) Generate(ctx context.Context, req *models.GenerateSchedulesRequest) (*models.GenerateSchedulesResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn("Generate: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	windows, err := generateWindows(req.Windows)
	if err != nil {
		return nil, err
	}

	fromDate := types.DateOf(s.timeProvider.Now().In(s.location))
	if req.FromDate != nil {
		fromDate = types.Date(*req.FromDate)
	}
	days := domain.DefaultGenerateDays
	if req.Days != nil {
		days = *req.Days
	}

	result := &models.GenerateSchedulesResponse{Schedules: make([]models.ScheduleResponse, 0)}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		courtIDs, err := s.generateCourts(txCtx, req.CourtIDs)
		if err != nil {
			return err
		}

		for _, courtID := range courtIDs {
			for day := 0; day < days; day++ {
				date, err := fromDate.AddDays(day)
				if err != nil {
					return fmt.Errorf("%w: Generate - date arithmetic: %v", ErrInternal, err)
				}

				for _, w := range windows {
					created, err := s.generateOne(txCtx, courtID, date, w)
					if err != nil {
						return err
					}
					if created == nil {
						result.Skipped++
						continue
					}
					result.Created++
					result.Schedules = append(result.Schedules, *models.FromDomainSchedule(created))
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.known(err)
	}

	s.logger.Info("Generate: created %d schedules, skipped %d existing (from %s, %d days)",
		result.Created, result.Skipped, fromDate, days)
	return result, nil
}

// generateOne создает слот, если его еще нет; nil означает пропуск
func (s *Service) generateOne(ctx context.Context, courtID int64, date types.Date, w domain.TimeWindow) (*domain.Schedule, error) {
	start := types.TimeString(w.StartTime)

	exists, err := s.scheduleRepo.Exists(ctx, courtID, date, start)
	if err != nil {
		s.logger.Error("Generate: failed to check slot court=%d %s %s: %v", courtID, date, start, err)
		return nil, fmt.Errorf("%w: Generate - check existing: %v", ErrInternal, err)
	}
	if exists {
		return nil, nil
	}

	created, err := s.scheduleRepo.Create(ctx, &domain.Schedule{
		CourtID:   courtID,
		Date:      date,
		StartTime: start,
		EndTime:   types.TimeString(w.EndTime),
		Status:    domain.ScheduleStatusAvailable,
	})
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Generate: failed to create slot court=%d %s %s: %v", courtID, date, start, err)
		return nil, fmt.Errorf("%w: Generate - create: %v", ErrInternal, err)
	}
	return created, nil
}

// generateCourts переданные корты (каждый должен существовать) или все активные
func (s *Service) generateCourts(ctx context.Context, requested []int64) ([]int64, error) {
	if len(requested) > 0 {
		for _, id := range requested {
			if _, err := s.courtRepo.GetByID(ctx, id); err != nil {
				return nil, s.courtError("Generate", id, err)
			}
		}
		return requested, nil
	}

	active := domain.CourtStatusActive
	courts, err := s.courtRepo.List(ctx, domain.CourtFilter{Status: &active})
	if err != nil {
		s.logger.Error("Generate: failed to list active courts: %v", err)
		return nil, fmt.Errorf("%w: Generate - list courts: %v", ErrInternal, err)
	}

	ids := make([]int64, 0, len(courts))
	for _, c := range courts {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func (s *Service) courtError(op string, id int64, err error) error {
	if errors.Is(err, courtRepo.ErrCourtNotFound) {
		s.logger.Warn("%s: court id=%d not found", op, id)
		return ErrCourtNotFound
	}
	s.logger.Error("%s: failed to get court id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - get court: %v", ErrInternal, op, err)
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Schedule, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("%s: schedule id=%d not found", op, id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("%s: repository error for schedule id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return schedule, nil
}

func (s *Service) ensureNotBooked(ctx context.Context, op string, id int64) error {
	booked, err := s.bookingRepo.ExistsBySchedule(ctx, id)
	if err != nil {
		s.logger.Error("%s: failed to check bookings of schedule id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - check bookings: %v", ErrInternal, op, err)
	}
	if booked {
		s.logger.Warn("%s: schedule id=%d has a booking", op, id)
		return ErrScheduleBooked
	}
	return nil
}

// known пропускает ошибки сервиса, остальное оборачивает в ErrInternal
func (s *Service) known(err error) error {
	for _, known := range []error{
		ErrScheduleNotFound,
		ErrCourtNotFound,
		ErrScheduleExists,
		ErrScheduleBooked,
		ErrInvalidInput,
		ErrInternal,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	s.logger.Error("transaction failed: %v", err)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

// setTimes нормализует время к HH:MM и проверяет, что конец позже начала
func setTimes(schedule *domain.Schedule, start, end string) error {
	normStart, err := timerange.Normalize(start)
	if err != nil {
		return invalidField("start_time", "The start_time does not match the format HH:MM.")
	}
	normEnd, err := timerange.Normalize(end)
	if err != nil {
		return invalidField("end_time", "The end_time does not match the format HH:MM.")
	}
	if err := timerange.ValidateSlot(normStart, normEnd); err != nil {
		return invalidField("end_time", "The end_time must be after start_time.")
	}

	schedule.StartTime = types.TimeString(normStart)
	schedule.EndTime = types.TimeString(normEnd)
	return nil
}

// generateWindows интервалы из запроса (нормализованные) или интервалы по умолчанию
func generateWindows(requested []models.TimeWindowRequest) ([]domain.TimeWindow, error) {
	if len(requested) == 0 {
		return domain.DefaultTimeWindows, nil
	}

	windows := make([]domain.TimeWindow, 0, len(requested))
	for i, w := range requested {
		var schedule domain.Schedule
		if err := setTimes(&schedule, w.StartTime, w.EndTime); err != nil {
			return nil, invalidField(fmt.Sprintf("windows[%d]", i), "The window end_time must be after start_time.")
		}
		windows = append(windows, domain.TimeWindow{
			StartTime: schedule.StartTime.String(),
			EndTime:   schedule.EndTime.String(),
		})
	}
	return windows, nil
}

func invalidField(field, message string) error {
	verr := validation.NewError()
	verr.Add(field, message)
	return fmt.Errorf("%w: %w", ErrInvalidInput, verr)
}
