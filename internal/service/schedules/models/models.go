package models

import (
	"time"

	"github.com/m04kA/court-booking/internal/domain"
	courtModels "github.com/m04kA/court-booking/internal/service/courts/models"
	"github.com/m04kA/court-booking/pkg/timerange"
	"github.com/m04kA/court-booking/pkg/types"
)

// Request модели

// CreateScheduleRequest запрос на создание слота
type CreateScheduleRequest struct {
	CourtID   int64   `json:"court_id" validate:"required,gt=0"`
	Date      string  `json:"date" validate:"required,date"`
	StartTime string  `json:"start_time" validate:"required,time_of_day"`
	EndTime   string  `json:"end_time" validate:"required,time_of_day"`
	Status    *string `json:"status,omitempty" validate:"omitempty,oneof=available booked"`
}

// UpdateScheduleRequest частичное обновление слота, nil - поле не меняется
type UpdateScheduleRequest struct {
	CourtID   *int64  `json:"court_id,omitempty" validate:"omitempty,gt=0"`
	Date      *string `json:"date,omitempty" validate:"omitempty,date"`
	StartTime *string `json:"start_time,omitempty" validate:"omitempty,time_of_day"`
	EndTime   *string `json:"end_time,omitempty" validate:"omitempty,time_of_day"`
	Status    *string `json:"status,omitempty" validate:"omitempty,oneof=available booked"`
}

// IsEmpty ни одно поле не передано
func (r *UpdateScheduleRequest) IsEmpty() bool {
	return r.CourtID == nil && r.Date == nil && r.StartTime == nil && r.EndTime == nil && r.Status == nil
}

// ListSchedulesRequest фильтры списка слотов
type ListSchedulesRequest struct {
	Date    *string `json:"date,omitempty" validate:"omitempty,date"`
	CourtID *int64  `json:"court_id,omitempty" validate:"omitempty,gt=0"`
	Status  *string `json:"status,omitempty" validate:"omitempty,oneof=available booked"`
}

// TimeWindowRequest ежедневный интервал для генерации
type TimeWindowRequest struct {
	StartTime string `json:"start_time" validate:"required,time_of_day"`
	EndTime   string `json:"end_time" validate:"required,time_of_day"`
}

// GenerateSchedulesRequest генерация повторяющихся слотов.
// Пустые поля заменяются значениями по умолчанию: все активные корты, сегодня, 7 дней, стандартные интервалы.
type GenerateSchedulesRequest struct {
	CourtIDs []int64            `json:"court_ids,omitempty" validate:"omitempty,dive,gt=0"`
	FromDate *string            `json:"from_date,omitempty" validate:"omitempty,date"`
	Days     *int               `json:"days,omitempty" validate:"omitempty,min=1,max=90"`
	Windows  []TimeWindowRequest `json:"windows,omitempty" validate:"omitempty,dive"`
}

// Response модели

// ScheduleResponse слот
type ScheduleResponse struct {
	ID        int64                      `json:"id"`
	CourtID   int64                      `json:"court_id"`
	Date      string                     `json:"date"`
	StartTime string                     `json:"start_time"`
	EndTime   string                     `json:"end_time"`
	Status    string                     `json:"status"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
	Court     *courtModels.CourtResponse `json:"court,omitempty"`
}

// ScheduleListResponse список слотов
type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}

// GenerateSchedulesResponse результат генерации
type GenerateSchedulesResponse struct {
	Created   int                `json:"created"`
	Skipped   int                `json:"skipped"`
	Schedules []ScheduleResponse `json:"schedules"`
}

// FromDomainSchedule конвертирует domain модель в response
func FromDomainSchedule(s *domain.Schedule) *ScheduleResponse {
	if s == nil {
		return nil
	}
	return &ScheduleResponse{
		ID:        s.ID,
		CourtID:   s.CourtID,
		Date:      s.Date.String(),
		StartTime: FormatTime(s.StartTime),
		EndTime:   FormatTime(s.EndTime),
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Court:     courtModels.FromDomainCourt(s.Court),
	}
}

// FromDomainScheduleList конвертирует список слотов
func FromDomainScheduleList(schedules []*domain.Schedule) *ScheduleListResponse {
	result := &ScheduleListResponse{
		Schedules: make([]ScheduleResponse, 0, len(schedules)),
		Total:     len(schedules),
	}
	for _, s := range schedules {
		result.Schedules = append(result.Schedules, *FromDomainSchedule(s))
	}
	return result
}

// FormatTime время в виде HH:MM; некорректное значение отдается как есть
func FormatTime(t types.TimeString) string {
	normalized, err := timerange.Normalize(t.String())
	if err != nil {
		return t.String()
	}
	return normalized
}
