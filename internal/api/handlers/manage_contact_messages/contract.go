package manage_contact_messages

import (
	"context"

	"github.com/m04kA/RST-ReservationService/internal/service/messages/models"
)

type MessageService interface {
	List(ctx context.Context, statusFilter string) (*models.MessageListResponse, error)
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateMessageStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
