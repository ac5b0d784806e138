package schedule

import (
	"context"
	"time"

	"github.com/m04kA/RST-ReservationService/internal/domain"
	"github.com/m04kA/RST-ReservationService/internal/infra/storage/closure"
	"github.com/m04kA/RST-ReservationService/internal/infra/storage/timeslot"
)

// TimeSlotRepository интерфейс репозитория слотов времени
type TimeSlotRepository interface {
	Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	List(ctx context.Context) ([]*domain.TimeSlot, error)
	Update(ctx context.Context, id int64, update *timeslot.SlotUpdate) (*domain.TimeSlot, error)
	Delete(ctx context.Context, id int64) error
}

// ClosureRepository интерфейс репозитория закрытий ресторана
type ClosureRepository interface {
	ListClosedDates(ctx context.Context) ([]*domain.ClosedDate, error)
	AddClosedDate(ctx context.Context, date time.Time) (*domain.ClosedDate, error)
	RemoveClosedDate(ctx context.Context, date time.Time) error

	ListRecurringClosures(ctx context.Context) ([]*domain.RecurringClosure, error)
	CreateRecurringClosure(ctx context.Context, rc *domain.RecurringClosure) (*domain.RecurringClosure, error)
	UpdateRecurringClosure(ctx context.Context, id int64, update *closure.ClosureUpdate) (*domain.RecurringClosure, error)
	DeleteRecurringClosure(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
