package manage_recurring_closures

import (
	"context"

	"github.com/m04kA/RST-ReservationService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListRecurringClosures(ctx context.Context) (*models.RecurringClosureListResponse, error)
	CreateRecurringClosure(ctx context.Context, req *models.CreateRecurringClosureRequest) (*models.RecurringClosureResponse, error)
	UpdateRecurringClosure(ctx context.Context, id int64, req *models.UpdateRecurringClosureRequest) (*models.RecurringClosureResponse, error)
	DeleteRecurringClosure(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
