package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/RST-ReservationService/internal/domain"
)

// UseCase use case для расчёта доступности слотов на дату
//
// Объединяет каталог слотов, активные бронирования, разовые закрытые даты
// и еженедельные закрытия. Проверка closed_dates централизована здесь,
// чтобы вызывающим не приходилось сверяться с ней отдельно
type UseCase struct {
	slotRepo        TimeSlotRepository
	reservationRepo ReservationRepository
	closureRepo     ClosureRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo TimeSlotRepository,
	reservationRepo ReservationRepository,
	closureRepo ClosureRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:        slotRepo,
		reservationRepo: reservationRepo,
		closureRepo:     closureRepo,
		logger:          logger,
	}
}

// Execute выполняет use case расчёта доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailability: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Проверяем разовое закрытие всей даты
	dateClosed, err := uc.closureRepo.IsDateClosed(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to check closed date: %v", err)
		return nil, fmt.Errorf("%w: failed to check closed date: %v", ErrInternal, err)
	}

	// 3. Получаем активные слоты каталога, отсортированные по времени
	slots, err := uc.slotRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list time slots: %v", ErrInternal, err)
	}

	// 4. Получаем активные бронирования на дату (pending/confirmed)
	reservations, err := uc.reservationRepo.GetActiveByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Получаем активные еженедельные закрытия на день недели даты
	closures, err := uc.closureRepo.ListActiveByWeekday(ctx, int(req.Date.Weekday()))
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get recurring closures: %v", err)
		return nil, fmt.Errorf("%w: failed to get recurring closures: %v", ErrInternal, err)
	}

	// 6. Вычисляем доступность каждого слота
	result := calculateAvailability(slots, reservations, closures, dateClosed)

	uc.logger.Info("GetAvailability: date=%s, slots=%d, dateClosed=%t",
		req.Date.Format(domain.DateFormat), len(result), dateClosed)

	return &Response{
		Date:       req.Date,
		DateClosed: dateClosed,
		Slots:      result,
	}, nil
}
