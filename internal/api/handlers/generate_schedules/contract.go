package generate_schedules

import (
	"context"

	"github.com/m04kA/court-booking/internal/service/schedules/models"
)

type ScheduleService interface {
	Generate(ctx context.Context, req *models.GenerateSchedulesRequest) (*models.GenerateSchedulesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
