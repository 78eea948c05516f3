package check_availability

import (
	scheduleModels "github.com/m04kA/court-booking/internal/service/schedules/models"
)

// Причины недоступности
const (
	ReasonSlotBooked     = "slot is already booked"
	ReasonCourtInactive  = "court is not active"
	ReasonDateInPast     = "date is in the past"
	ReasonOverlapsBooked = "time range overlaps a booked slot"
)

// Request проверка по слоту (schedule_id) или по произвольному интервалу на корте
type Request struct {
	ScheduleID *int64  `json:"schedule_id,omitempty" validate:"omitempty,gt=0"`
	CourtID    *int64  `json:"court_id,omitempty" validate:"required_without=ScheduleID,omitempty,gt=0"`
	Date       *string `json:"date,omitempty" validate:"required_without=ScheduleID,omitempty,date"`
	StartTime  *string `json:"start_time,omitempty" validate:"required_without=ScheduleID,omitempty,time_of_day"`
	EndTime    *string `json:"end_time,omitempty" validate:"required_without=ScheduleID,omitempty,time_of_day"`
}

// Response результат проверки.
// Schedule свободный слот, точно совпадающий с запросом (если есть); Conflicts занятые пересекающиеся слоты.
type Response struct {
	Available bool                              `json:"available"`
	Reason    string                            `json:"reason,omitempty"`
	Schedule  *scheduleModels.ScheduleResponse  `json:"schedule,omitempty"`
	Conflicts []scheduleModels.ScheduleResponse `json:"conflicts,omitempty"`
}
