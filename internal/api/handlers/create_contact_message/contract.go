package create_contact_message

import (
	"context"

	"github.com/m04kA/RST-ReservationService/internal/service/messages/models"
)

type MessageService interface {
	Create(ctx context.Context, req *models.CreateMessageRequest) (*models.MessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
