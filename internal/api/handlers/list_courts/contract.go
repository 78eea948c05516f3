package list_courts

import (
	"context"

	"github.com/m04kA/court-booking/internal/service/courts/models"
)

type CourtService interface {
	List(ctx context.Context, req *models.ListCourtsRequest) (*models.CourtListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
