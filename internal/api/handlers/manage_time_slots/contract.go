package manage_time_slots

import (
	"context"

	"github.com/m04kA/RST-ReservationService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListTimeSlots(ctx context.Context) (*models.TimeSlotListResponse, error)
	CreateTimeSlot(ctx context.Context, req *models.CreateTimeSlotRequest) (*models.TimeSlotResponse, error)
	UpdateTimeSlot(ctx context.Context, id int64, req *models.UpdateTimeSlotRequest) (*models.TimeSlotResponse, error)
	DeleteTimeSlot(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
