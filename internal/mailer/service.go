package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/RST-ReservationService/internal/integrations/resend"
)

const (
	guestSubject = "Reservation Confirmation - Al Gobbo di Rialto"
	adminSubject = "New Reservation - Al Gobbo di Rialto"
)

// Service сервис отправки писем о бронированиях
type Service struct {
	sender      EmailSender
	fromAddress string
	adminInbox  string
	logger      Logger
}

// NewService создает новый экземпляр сервиса отправки писем
func NewService(sender EmailSender, fromAddress, adminInbox string, logger Logger) *Service {
	return &Service{
		sender:      sender,
		fromAddress: fromAddress,
		adminInbox:  adminInbox,
		logger:      logger,
	}
}

// SendGuestConfirmation отправляет письмо-подтверждение гостю
func (s *Service) SendGuestConfirmation(ctx context.Context, req *SendEmailRequest) (string, error) {
	if err := validateRequest(req); err != nil {
		return "", err
	}

	html, err := renderGuestEmail(req)
	if err != nil {
		s.logger.Error("SendGuestConfirmation: failed to render template: %v", err)
		return "", err
	}

	id, err := s.sender.SendEmail(ctx, &resend.SendEmailRequest{
		From:    s.fromAddress,
		To:      []string{req.Email},
		Subject: guestSubject,
		HTML:    html,
	})
	if err != nil {
		s.logger.Error("SendGuestConfirmation: provider rejected email to %s: %v", req.Email, err)
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	s.logger.Info("SendGuestConfirmation: email sent to %s, id=%s", req.Email, id)
	return id, nil
}

// SendAdminNotification отправляет уведомление о новом бронировании ресторану
func (s *Service) SendAdminNotification(ctx context.Context, req *SendEmailRequest) (string, error) {
	if err := validateRequest(req); err != nil {
		return "", err
	}

	html, err := renderAdminEmail(req)
	if err != nil {
		s.logger.Error("SendAdminNotification: failed to render template: %v", err)
		return "", err
	}

	id, err := s.sender.SendEmail(ctx, &resend.SendEmailRequest{
		From:    s.fromAddress,
		To:      []string{s.adminInbox},
		Subject: adminSubject,
		HTML:    html,
	})
	if err != nil {
		s.logger.Error("SendAdminNotification: provider rejected email: %v", err)
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	s.logger.Info("SendAdminNotification: email sent to %s, id=%s", s.adminInbox, id)
	return id, nil
}

// validateRequest проверяет обязательные поля письма
func validateRequest(req *SendEmailRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Time) == "" {
		return fmt.Errorf("%w: date and time are required", ErrInvalidInput)
	}
	if req.Guests <= 0 {
		return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}
	return nil
}
