package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/RST-ReservationService/internal/domain"
)

// TimeSlotRepository интерфейс репозитория каталога слотов
type TimeSlotRepository interface {
	ListActive(ctx context.Context) ([]*domain.TimeSlot, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetActiveByDate возвращает бронирования на дату со статусами pending/confirmed
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// ClosureRepository интерфейс репозитория правил закрытия
type ClosureRepository interface {
	IsDateClosed(ctx context.Context, date time.Time) (bool, error)
	ListActiveByWeekday(ctx context.Context, dayOfWeek int) ([]*domain.RecurringClosure, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
