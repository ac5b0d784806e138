package manage_closed_dates

import (
	"context"

	"github.com/m04kA/RST-ReservationService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListClosedDates(ctx context.Context) (*models.ClosedDateListResponse, error)
	AddClosedDate(ctx context.Context, req *models.AddClosedDateRequest) (*models.ClosedDateResponse, error)
	RemoveClosedDate(ctx context.Context, date string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
