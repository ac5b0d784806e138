package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/RST-ReservationService/internal/domain"
	"github.com/m04kA/RST-ReservationService/internal/integrations/mailer"
	"github.com/m04kA/RST-ReservationService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
	ExistsByDateTimeEmail(ctx context.Context, date time.Time, slotTime types.TimeString, email string) (bool, error)
}

// TimeSlotRepository интерфейс репозитория каталога слотов
type TimeSlotRepository interface {
	ListActive(ctx context.Context) ([]*domain.TimeSlot, error)
}

// ClosureRepository интерфейс репозитория правил закрытия
type ClosureRepository interface {
	IsDateClosed(ctx context.Context, date time.Time) (bool, error)
	ListActiveByWeekday(ctx context.Context, dayOfWeek int) ([]*domain.RecurringClosure, error)
}

// MailerClient интерфейс клиента mailer-сервиса
type MailerClient interface {
	SendReservationConfirmation(ctx context.Context, req *mailer.EmailRequest) error
	SendAdminCopy(ctx context.Context, req *mailer.EmailRequest) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
