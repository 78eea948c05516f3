package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/court-booking/internal/domain"
	courtRepo "github.com/m04kA/court-booking/internal/infra/storage/court"
	scheduleRepo "github.com/m04kA/court-booking/internal/infra/storage/schedule"
	scheduleModels "github.com/m04kA/court-booking/internal/service/schedules/models"
	"github.com/m04kA/court-booking/pkg/timerange"
	"github.com/m04kA/court-booking/pkg/types"
	"github.com/m04kA/court-booking/pkg/validation"
)

// UseCase use case для проверки доступности без изменения данных
type UseCase struct {
	scheduleRepo ScheduleRepository
	courtRepo    CourtRepository
	validator    Validator
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	courtRepo CourtRepository,
	validator Validator,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		scheduleRepo: scheduleRepo,
		courtRepo:    courtRepo,
		validator:    validator,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет доступность слота по schedule_id либо интервала court_id/date/start_time/end_time
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := uc.validator.Struct(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	today := types.DateOf(uc.timeProvider.Now().In(uc.location))

	if req.ScheduleID != nil {
		return uc.checkSchedule(ctx, *req.ScheduleID, today)
	}
	return uc.checkRange(ctx, req, today)
}

func (uc *UseCase) checkSchedule(ctx context.Context, scheduleID int64, today types.Date) (*Response, error) {
	schedule, err := uc.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get schedule id=%d: %v", scheduleID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	resp := &Response{
		Available: true,
		Schedule:  scheduleModels.FromDomainSchedule(schedule),
	}

	switch {
	case !schedule.IsAvailable():
		resp.Available, resp.Reason = false, ReasonSlotBooked
	case schedule.Court == nil || !schedule.Court.IsActive():
		resp.Available, resp.Reason = false, ReasonCourtInactive
	case schedule.IsPast(today):
		resp.Available, resp.Reason = false, ReasonDateInPast
	}

	uc.logger.Info("CheckAvailability: schedule id=%d available=%t", scheduleID, resp.Available)
	return resp, nil
}

func (uc *UseCase) checkRange(ctx context.Context, req *Request, today types.Date) (*Response, error) {
	if err := timerange.ValidateSlot(*req.StartTime, *req.EndTime); err != nil {
		verr := validation.NewError()
		verr.Add("end_time", "The end_time must be after start_time.")
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, verr)
	}

	date, err := types.ParseDate(*req.Date)
	if err != nil {
		verr := validation.NewError()
		verr.Add("date", "The date is not a valid date (YYYY-MM-DD).")
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, verr)
	}

	court, err := uc.courtRepo.GetByID(ctx, *req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get court id=%d: %v", *req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	schedules, err := uc.scheduleRepo.List(ctx, domain.ScheduleFilter{Date: &date, CourtID: &court.ID})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list schedules of court id=%d: %v", court.ID, err)
		return nil, fmt.Errorf("%w: failed to list schedules: %v", ErrInternal, err)
	}

	resp := &Response{Available: true}

	for _, s := range schedules {
		if s.IsAvailable() {
			if sameRange(s, *req.StartTime, *req.EndTime) {
				resp.Schedule = scheduleModels.FromDomainSchedule(s)
			}
			continue
		}

		overlaps, err := timerange.Overlaps(s.StartTime.String(), s.EndTime.String(), *req.StartTime, *req.EndTime)
		if err != nil {
			uc.logger.Warn("CheckAvailability: skip schedule id=%d with malformed time: %v", s.ID, err)
			continue
		}
		if overlaps {
			resp.Conflicts = append(resp.Conflicts, *scheduleModels.FromDomainSchedule(s))
		}
	}

	switch {
	case !court.IsActive():
		resp.Available, resp.Reason = false, ReasonCourtInactive
	case date.Before(today):
		resp.Available, resp.Reason = false, ReasonDateInPast
	case len(resp.Conflicts) > 0:
		resp.Available, resp.Reason = false, ReasonOverlapsBooked
	}

	uc.logger.Info("CheckAvailability: court id=%d date=%s %s-%s available=%t",
		court.ID, date, *req.StartTime, *req.EndTime, resp.Available)
	return resp, nil
}

// sameRange слот совпадает с интервалом с точностью до формата времени
func sameRange(s *domain.Schedule, start, end string) bool {
	sStart, err1 := timerange.Normalize(s.StartTime.String())
	sEnd, err2 := timerange.Normalize(s.EndTime.String())
	rStart, err3 := timerange.Normalize(start)
	rEnd, err4 := timerange.Normalize(end)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return false
	}
	return sStart == rStart && sEnd == rEnd
}
