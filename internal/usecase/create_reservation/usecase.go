package create_reservation

import (
	"context"
	"fmt"

	"github.com/m04kA/RST-ReservationService/internal/domain"
	"github.com/m04kA/RST-ReservationService/internal/integrations/mailer"
	"github.com/m04kA/RST-ReservationService/pkg/types"
)

// UseCase use case для создания бронирования столика
//
// Проверка доступности, проверка дубликата и вставка выполняются в одной
// сериализуемой транзакции с блокировкой строк (FOR UPDATE), чтобы два
// одновременных бронирования не смогли занять последние места сверх
// вместимости слота
type UseCase struct {
	reservationRepo ReservationRepository
	slotRepo        TimeSlotRepository
	closureRepo     ClosureRepository
	mailerClient    MailerClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	adminCopy       bool
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	slotRepo TimeSlotRepository,
	closureRepo ClosureRepository,
	mailerClient MailerClient,
	txManager TransactionManager,
	adminCopy bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		closureRepo:     closureRepo,
		mailerClient:    mailerClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		adminCopy:       adminCopy,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: date=%s, time=%s, guests=%d, email=%s",
		req.Date.Format(domain.DateFormat), req.Time, req.Guests, req.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация окна дат [сегодня, сегодня + 3 месяца]
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	// 3. Проверка доступности и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Разовое закрытие всей даты блокирует любые слоты
		dateClosed, err := uc.closureRepo.IsDateClosed(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check closed date: %v", err)
			return fmt.Errorf("%w: failed to check closed date: %v", ErrInternal, err)
		}
		if dateClosed {
			uc.logger.Warn("CreateReservation: restaurant is closed on %s", req.Date.Format(domain.DateFormat))
			return ErrSlotUnavailable
		}

		// 3.2. Слот должен существовать в активном каталоге
		slots, err := uc.slotRepo.ListActive(txCtx)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list time slots: %v", err)
			return fmt.Errorf("%w: failed to list time slots: %v", ErrInternal, err)
		}

		slot := findSlot(slots, req.Time)
		if slot == nil {
			uc.logger.Warn("CreateReservation: slot %s not found in active catalog", req.Time)
			return ErrSlotNotFound
		}

		// 3.3. Еженедельное закрытие на день недели даты
		closures, err := uc.closureRepo.ListActiveByWeekday(txCtx, int(req.Date.Weekday()))
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get recurring closures: %v", err)
			return fmt.Errorf("%w: failed to get recurring closures: %v", ErrInternal, err)
		}
		for _, closure := range closures {
			if closure.Covers(req.Time) {
				uc.logger.Warn("CreateReservation: slot %s is recurring-closed on weekday %d",
					req.Time, req.Date.Weekday())
				return ErrSlotUnavailable
			}
		}

		// 3.4. Активные бронирования на дату с блокировкой строк (FOR UPDATE)
		reservations, err := uc.reservationRepo.GetActiveByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		totalGuests := sumGuestsAt(reservations, req.Time)
		if totalGuests >= slot.MaxCapacity {
			uc.logger.Warn("CreateReservation: slot %s is full (%d/%d guests)",
				req.Time, totalGuests, slot.MaxCapacity)
			return ErrSlotUnavailable
		}

		remaining := slot.MaxCapacity - totalGuests
		if remaining < req.Guests {
			uc.logger.Warn("CreateReservation: not enough capacity for %d guests, %d remaining",
				req.Guests, remaining)
			return fmt.Errorf("%w: %d guests requested, %d spots remaining",
				ErrNotEnoughCapacity, req.Guests, remaining)
		}

		// 3.5. Проверка дубликата (date, time, email) - статус существующего
		// бронирования не учитывается
		exists, err := uc.reservationRepo.ExistsByDateTimeEmail(txCtx, req.Date, req.Time, req.Email)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check for duplicate: %v", err)
			return fmt.Errorf("%w: failed to check for duplicate: %v", ErrInternal, err)
		}
		if exists {
			uc.logger.Warn("CreateReservation: duplicate reservation for %s %s %s",
				req.Date.Format(domain.DateFormat), req.Time, req.Email)
			return ErrDuplicateReservation
		}

		// 3.6. Создаем бронирование со статусом pending
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			Date:             req.Date,
			Time:             req.Time,
			Guests:           req.Guests,
			Name:             req.Name,
			Email:            req.Email,
			Phone:            req.Phone,
			Occasion:         req.Occasion,
			SpecialRequests:  req.SpecialRequests,
			MarketingConsent: req.MarketingConsent,
			Status:           domain.StatusPending,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	// 4. Отправляем подтверждение по почте (best-effort)
	// Ошибка отправки логируется, но не откатывает бронирование
	uc.sendConfirmation(ctx, req)

	return &Response{
		ID:               result.ID,
		Date:             result.Date,
		Time:             result.Time,
		Guests:           result.Guests,
		Name:             result.Name,
		Email:            result.Email,
		Phone:            result.Phone,
		Occasion:         result.Occasion,
		SpecialRequests:  result.SpecialRequests,
		MarketingConsent: result.MarketingConsent,
		Status:           string(result.Status),
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}

// sendConfirmation отправляет письмо-подтверждение гостю и копию ресторану
func (uc *UseCase) sendConfirmation(ctx context.Context, req *Request) {
	emailReq := &mailer.EmailRequest{
		Name:            req.Name,
		Email:           req.Email,
		Date:            req.Date.Format(domain.DateFormat),
		Time:            req.Time.String(),
		Guests:          req.Guests,
		Occasion:        req.Occasion,
		SpecialRequests: req.SpecialRequests,
	}

	if err := uc.mailerClient.SendReservationConfirmation(ctx, emailReq); err != nil {
		uc.logger.Warn("CreateReservation: failed to send confirmation email to %s: %v", req.Email, err)
	}

	if uc.adminCopy {
		if err := uc.mailerClient.SendAdminCopy(ctx, emailReq); err != nil {
			uc.logger.Warn("CreateReservation: failed to send admin copy: %v", err)
		}
	}
}

// findSlot ищет слот с указанным временем в активном каталоге
func findSlot(slots []*domain.TimeSlot, slotTime types.TimeString) *domain.TimeSlot {
	for _, slot := range slots {
		if slot.Time == slotTime {
			return slot
		}
	}
	return nil
}

// sumGuestsAt суммирует гостей активных бронирований на указанное время
func sumGuestsAt(reservations []*domain.Reservation, slotTime types.TimeString) int {
	total := 0
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		if res.Time == slotTime {
			total += res.Guests
		}
	}
	return total
}
