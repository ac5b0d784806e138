package messages

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/RST-ReservationService/internal/domain"
	messageRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/message"
	"github.com/m04kA/RST-ReservationService/internal/service/messages/models"
)

// Формат email такой же, как при создании бронирования
var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service сервис сообщений контактной формы
type Service struct {
	messageRepo MessageRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса сообщений
func NewService(messageRepo MessageRepository, logger Logger) *Service {
	return &Service{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// Create сохраняет сообщение контактной формы со статусом unread
func (s *Service) Create(ctx context.Context, req *models.CreateMessageRequest) (*models.MessageResponse, error) {
	s.logger.Info("CreateMessage: new contact message from email=%s", req.Email)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("CreateMessage: validation failed: %v", err)
		return nil, err
	}

	created, err := s.messageRepo.Create(ctx, &domain.ContactMessage{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		Status:    domain.MessageUnread,
	})
	if err != nil {
		s.logger.Error("CreateMessage: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateMessage: successfully created message id=%d", created.ID)
	return models.FromDomainMessage(created), nil
}

// List возвращает сообщения, новые первыми
// statusFilter пустой - все сообщения
func (s *Service) List(ctx context.Context, statusFilter string) (*models.MessageListResponse, error) {
	var status *domain.MessageStatus
	if statusFilter != "" {
		parsed, ok := domain.ParseMessageStatus(statusFilter)
		if !ok {
			s.logger.Warn("ListMessages: invalid status filter=%s", statusFilter)
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, statusFilter)
		}
		status = &parsed
	}

	messages, err := s.messageRepo.List(ctx, status)
	if err != nil {
		s.logger.Error("ListMessages: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMessageList(messages), nil
}

// UpdateStatus переводит сообщение в любой известный статус
// Таблицы переходов нет: админ волен вернуть archived в unread
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateMessageStatusRequest) error {
	s.logger.Info("UpdateMessageStatus: updating message id=%d to status=%s", id, req.Status)

	status, ok := domain.ParseMessageStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateMessageStatus: invalid status=%s for message id=%d", req.Status, id)
		return fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	if err := s.messageRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, messageRepo.ErrMessageNotFound) {
			s.logger.Warn("UpdateMessageStatus: message id=%d not found", id)
			return ErrMessageNotFound
		}
		s.logger.Error("UpdateMessageStatus: repository error for message id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateMessageStatus: successfully updated message id=%d to status=%s", id, status)
	return nil
}

// validateCreateRequest проверяет обязательные поля и длины
func validateCreateRequest(req *models.CreateMessageRequest) error {
	if strings.TrimSpace(req.FirstName) == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.LastName) == "" {
		return fmt.Errorf("%w: lastName is required", ErrInvalidInput)
	}
	if len(req.FirstName) > domain.MaxNameLength || len(req.LastName) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !emailRegexp.MatchString(email) {
		return fmt.Errorf("%w: email format is invalid", ErrInvalidInput)
	}

	if len(req.Subject) > domain.MaxSubjectLength {
		return fmt.Errorf("%w: subject must not exceed %d characters", ErrInvalidInput, domain.MaxSubjectLength)
	}

	if strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if len(req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message must not exceed %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	return nil
}
