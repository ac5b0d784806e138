package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/RST-ReservationService/internal/domain"
	closureRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/closure"
	timeslotRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/timeslot"
	"github.com/m04kA/RST-ReservationService/internal/service/schedule/models"
	"github.com/m04kA/RST-ReservationService/pkg/types"
)

// Service сервис управления расписанием ресторана:
// каталог слотов времени, разовые и еженедельные закрытия
type Service struct {
	slotRepo    TimeSlotRepository
	closureRepo ClosureRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(slotRepo TimeSlotRepository, closureRepo ClosureRepository, logger Logger) *Service {
	return &Service{
		slotRepo:    slotRepo,
		closureRepo: closureRepo,
		logger:      logger,
	}
}

// ==================== Слоты времени ====================

// ListTimeSlots возвращает все слоты, включая неактивные
// Админский каталог, в отличие от публичной доступности
func (s *Service) ListTimeSlots(ctx context.Context) (*models.TimeSlotListResponse, error) {
	slots, err := s.slotRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListTimeSlots: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTimeSlots - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainTimeSlotList(slots), nil
}

// CreateTimeSlot создает новый слот времени
func (s *Service) CreateTimeSlot(ctx context.Context, req *models.CreateTimeSlotRequest) (*models.TimeSlotResponse, error) {
	s.logger.Info("CreateTimeSlot: time=%s, capacity=%d, lunch=%t", req.Time, req.MaxCapacity, req.IsLunch)

	slotTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		s.logger.Warn("CreateTimeSlot: invalid time %q: %v", req.Time, err)
		return nil, fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
	}
	if err := validateCapacity(req.MaxCapacity); err != nil {
		s.logger.Warn("CreateTimeSlot: %v", err)
		return nil, err
	}

	created, err := s.slotRepo.Create(ctx, &domain.TimeSlot{
		Time:        slotTime,
		MaxCapacity: req.MaxCapacity,
		IsLunch:     req.IsLunch,
		IsActive:    true,
	})
	if err != nil {
		s.logger.Error("CreateTimeSlot: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateTimeSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTimeSlot: successfully created slot id=%d time=%s", created.ID, created.Time)
	return models.FromDomainTimeSlot(created), nil
}

// UpdateTimeSlot частично обновляет слот (активность и/или вместимость)
func (s *Service) UpdateTimeSlot(ctx context.Context, id int64, req *models.UpdateTimeSlotRequest) (*models.TimeSlotResponse, error) {
	s.logger.Info("UpdateTimeSlot: updating slot id=%d", id)

	if req.IsActive == nil && req.MaxCapacity == nil {
		return nil, fmt.Errorf("%w: at least one field must be provided", ErrInvalidInput)
	}
	if req.MaxCapacity != nil {
		if err := validateCapacity(*req.MaxCapacity); err != nil {
			s.logger.Warn("UpdateTimeSlot: %v", err)
			return nil, err
		}
	}

	updated, err := s.slotRepo.Update(ctx, id, &timeslotRepo.SlotUpdate{
		IsActive:    req.IsActive,
		MaxCapacity: req.MaxCapacity,
	})
	if err != nil {
		if errors.Is(err, timeslotRepo.ErrTimeSlotNotFound) {
			s.logger.Warn("UpdateTimeSlot: slot id=%d not found", id)
			return nil, ErrTimeSlotNotFound
		}
		s.logger.Error("UpdateTimeSlot: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateTimeSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateTimeSlot: successfully updated slot id=%d", id)
	return models.FromDomainTimeSlot(updated), nil
}

// DeleteTimeSlot удаляет слот из каталога
func (s *Service) DeleteTimeSlot(ctx context.Context, id int64) error {
	s.logger.Info("DeleteTimeSlot: deleting slot id=%d", id)

	if err := s.slotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, timeslotRepo.ErrTimeSlotNotFound) {
			s.logger.Warn("DeleteTimeSlot: slot id=%d not found", id)
			return ErrTimeSlotNotFound
		}
		s.logger.Error("DeleteTimeSlot: repository error for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteTimeSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteTimeSlot: successfully deleted slot id=%d", id)
	return nil
}

// ==================== Разовые закрытия ====================

// ListClosedDates возвращает все разово закрытые даты
func (s *Service) ListClosedDates(ctx context.Context) (*models.ClosedDateListResponse, error) {
	dates, err := s.closureRepo.ListClosedDates(ctx)
	if err != nil {
		s.logger.Error("ListClosedDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListClosedDates - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainClosedDateList(dates), nil
}

// AddClosedDate закрывает ресторан на дату целиком
func (s *Service) AddClosedDate(ctx context.Context, req *models.AddClosedDateRequest) (*models.ClosedDateResponse, error) {
	s.logger.Info("AddClosedDate: closing date=%s", req.Date)

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("AddClosedDate: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	created, err := s.closureRepo.AddClosedDate(ctx, date)
	if err != nil {
		s.logger.Error("AddClosedDate: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: AddClosedDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddClosedDate: successfully closed date=%s", req.Date)
	return models.FromDomainClosedDate(created), nil
}

// RemoveClosedDate снимает разовое закрытие с даты
func (s *Service) RemoveClosedDate(ctx context.Context, dateStr string) error {
	s.logger.Info("RemoveClosedDate: reopening date=%s", dateStr)

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		s.logger.Warn("RemoveClosedDate: invalid date %q: %v", dateStr, err)
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	if err := s.closureRepo.RemoveClosedDate(ctx, date); err != nil {
		if errors.Is(err, closureRepo.ErrClosedDateNotFound) {
			s.logger.Warn("RemoveClosedDate: date=%s is not closed", dateStr)
			return ErrClosedDateNotFound
		}
		s.logger.Error("RemoveClosedDate: repository error for date=%s: %v", dateStr, err)
		return fmt.Errorf("%w: RemoveClosedDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveClosedDate: successfully reopened date=%s", dateStr)
	return nil
}

// ==================== Еженедельные закрытия ====================

// ListRecurringClosures возвращает все еженедельные закрытия, включая неактивные
func (s *Service) ListRecurringClosures(ctx context.Context) (*models.RecurringClosureListResponse, error) {
	closures, err := s.closureRepo.ListRecurringClosures(ctx)
	if err != nil {
		s.logger.Error("ListRecurringClosures: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRecurringClosures - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRecurringClosureList(closures), nil
}

// CreateRecurringClosure создает еженедельное закрытие
func (s *Service) CreateRecurringClosure(ctx context.Context, req *models.CreateRecurringClosureRequest) (*models.RecurringClosureResponse, error) {
	s.logger.Info("CreateRecurringClosure: dayOfWeek=%d, window=%s-%s", req.DayOfWeek, req.StartTime, req.EndTime)

	startTime, endTime, err := validateClosureWindow(req.DayOfWeek, req.StartTime, req.EndTime)
	if err != nil {
		s.logger.Warn("CreateRecurringClosure: %v", err)
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := s.closureRepo.CreateRecurringClosure(ctx, &domain.RecurringClosure{
		DayOfWeek: req.DayOfWeek,
		StartTime: startTime,
		EndTime:   endTime,
		Active:    active,
	})
	if err != nil {
		s.logger.Error("CreateRecurringClosure: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateRecurringClosure - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRecurringClosure: successfully created closure id=%d", created.ID)
	return models.FromDomainRecurringClosure(created), nil
}

// UpdateRecurringClosure частично обновляет еженедельное закрытие
func (s *Service) UpdateRecurringClosure(ctx context.Context, id int64, req *models.UpdateRecurringClosureRequest) (*models.RecurringClosureResponse, error) {
	s.logger.Info("UpdateRecurringClosure: updating closure id=%d", id)

	if req.DayOfWeek == nil && req.StartTime == nil && req.EndTime == nil && req.Active == nil {
		return nil, fmt.Errorf("%w: at least one field must be provided", ErrInvalidInput)
	}
	if req.DayOfWeek != nil {
		if err := validateDayOfWeek(*req.DayOfWeek); err != nil {
			s.logger.Warn("UpdateRecurringClosure: %v", err)
			return nil, err
		}
	}

	update := &closureRepo.ClosureUpdate{
		DayOfWeek: req.DayOfWeek,
		Active:    req.Active,
	}
	if req.StartTime != nil {
		st, err := types.NewTimeStringFromString(*req.StartTime)
		if err != nil {
			s.logger.Warn("UpdateRecurringClosure: invalid startTime %q: %v", *req.StartTime, err)
			return nil, fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
		}
		value := st.String()
		update.StartTime = &value
	}
	if req.EndTime != nil {
		et, err := types.NewTimeStringFromString(*req.EndTime)
		if err != nil {
			s.logger.Warn("UpdateRecurringClosure: invalid endTime %q: %v", *req.EndTime, err)
			return nil, fmt.Errorf("%w: endTime must be in HH:MM format", ErrInvalidInput)
		}
		value := et.String()
		update.EndTime = &value
	}

	updated, err := s.closureRepo.UpdateRecurringClosure(ctx, id, update)
	if err != nil {
		if errors.Is(err, closureRepo.ErrClosureNotFound) {
			s.logger.Warn("UpdateRecurringClosure: closure id=%d not found", id)
			return nil, ErrClosureNotFound
		}
		s.logger.Error("UpdateRecurringClosure: repository error for closure id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateRecurringClosure - repository error: %v", ErrInternal, err)
	}

	if updated.StartTime.IsAfter(updated.EndTime) {
		s.logger.Warn("UpdateRecurringClosure: closure id=%d has inverted window %s-%s after update",
			id, updated.StartTime, updated.EndTime)
	}

	s.logger.Info("UpdateRecurringClosure: successfully updated closure id=%d", id)
	return models.FromDomainRecurringClosure(updated), nil
}

// DeleteRecurringClosure удаляет еженедельное закрытие
func (s *Service) DeleteRecurringClosure(ctx context.Context, id int64) error {
	s.logger.Info("DeleteRecurringClosure: deleting closure id=%d", id)

	if err := s.closureRepo.DeleteRecurringClosure(ctx, id); err != nil {
		if errors.Is(err, closureRepo.ErrClosureNotFound) {
			s.logger.Warn("DeleteRecurringClosure: closure id=%d not found", id)
			return ErrClosureNotFound
		}
		s.logger.Error("DeleteRecurringClosure: repository error for closure id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteRecurringClosure - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteRecurringClosure: successfully deleted closure id=%d", id)
	return nil
}

// validateCapacity проверяет границы вместимости слота
func validateCapacity(capacity int) error {
	if capacity < domain.MinSlotCapacity || capacity > domain.MaxSlotCapacity {
		return fmt.Errorf("%w: maxCapacity must be between %d and %d",
			ErrInvalidInput, domain.MinSlotCapacity, domain.MaxSlotCapacity)
	}
	return nil
}

// validateDayOfWeek проверяет день недели (0 = воскресенье .. 6 = суббота)
func validateDayOfWeek(dayOfWeek int) error {
	if dayOfWeek < domain.MinDayOfWeek || dayOfWeek > domain.MaxDayOfWeek {
		return fmt.Errorf("%w: dayOfWeek must be between %d and %d",
			ErrInvalidInput, domain.MinDayOfWeek, domain.MaxDayOfWeek)
	}
	return nil
}

// validateClosureWindow проверяет день недели и окно времени закрытия
func validateClosureWindow(dayOfWeek int, start, end string) (types.TimeString, types.TimeString, error) {
	if err := validateDayOfWeek(dayOfWeek); err != nil {
		return "", "", err
	}

	startTime, err := types.NewTimeStringFromString(start)
	if err != nil {
		return "", "", fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
	}
	endTime, err := types.NewTimeStringFromString(end)
	if err != nil {
		return "", "", fmt.Errorf("%w: endTime must be in HH:MM format", ErrInvalidInput)
	}
	if startTime.IsAfter(endTime) {
		return "", "", fmt.Errorf("%w: startTime must not be after endTime", ErrInvalidInput)
	}

	return startTime, endTime, nil
}
