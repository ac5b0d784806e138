package mailer

import (
	"context"

	"github.com/m04kA/RST-ReservationService/internal/integrations/resend"
)

// EmailSender интерфейс транзакционного email-провайдера
type EmailSender interface {
	SendEmail(ctx context.Context, req *resend.SendEmailRequest) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
