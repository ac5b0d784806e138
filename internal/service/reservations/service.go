package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/RST-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/RST-ReservationService/internal/service/reservations/models"
)

// Service сервис чтения и изменения жизненного цикла бронирований
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Используется админским дашбордом
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// GetByDate получает бронирования на дату, отсортированные по времени
// Используется админским дашбордом
func (s *Service) GetByDate(ctx context.Context, date time.Time) (*models.ReservationListResponse, error) {
	s.logger.Info("GetByDate: fetching reservations for date=%s", date.Format(domain.DateFormat))

	reservations, err := s.reservationRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByDate: fetched %d reservations for date=%s",
		len(reservations), date.Format(domain.DateFormat))
	return models.FromDomainReservationList(reservations), nil
}

// GetByEmail получает бронирования гостя, отсортированные по дате и времени
// Используется гостевой страницей "мои бронирования"
func (s *Service) GetByEmail(ctx context.Context, email string) (*models.ReservationListResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	s.logger.Info("GetByEmail: fetching reservations for email=%s", email)

	reservations, err := s.reservationRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error("GetByEmail: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: GetByEmail - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(reservations), nil
}

// UpdateStatus обновляет статус бронирования с проверкой таблицы переходов
// pending -> confirmed | cancelled; confirmed -> completed | cancelled
// Возврат в pending и изменение терминальных статусов отклоняются
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s", id, req.Status)

	newStatus, ok := domain.ParseReservationStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !res.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: invalid transition %s -> %s for reservation id=%d",
			res.Status, newStatus, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, res.Status, newStatus)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated reservation id=%d to status=%s", id, newStatus)

	res.Status = newStatus
	return models.FromDomainReservation(res), nil
}

// Cancel отменяет бронирование по запросу гостя
// Разрешена только владельцу: email должен совпадать с email бронирования
// Несовпадение email не раскрывает существование бронирования
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !strings.EqualFold(res.Email, strings.TrimSpace(req.Email)) {
		s.logger.Warn("Cancel: email mismatch for reservation id=%d", id)
		return ErrReservationNotFound
	}

	if res.IsCancelled() {
		s.logger.Warn("Cancel: reservation id=%d is already cancelled", id)
		return ErrAlreadyCancelled
	}

	if !res.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, res.Status)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return nil
}
