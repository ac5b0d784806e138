package mailer

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/m04kA/RST-ReservationService/internal/api/handlers"
)

// InternalTokenHeader заголовок с общим секретом между сервисами
const InternalTokenHeader = "X-Internal-Token"

// Handler HTTP-обработчики mailer-сервиса
type Handler struct {
	service *Service
	logger  Logger
}

// NewHandler создает новый экземпляр обработчика
func NewHandler(service *Service, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleSendEmail POST /send-email
// Отправляет письмо-подтверждение гостю
func (h *Handler) HandleSendEmail(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "POST /send-email", h.service.SendGuestConfirmation)
}

// HandleSendAdminConfirmation POST /send-admin-confirmation
// Отправляет уведомление о бронировании ресторану
func (h *Handler) HandleSendAdminConfirmation(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "POST /send-admin-confirmation", h.service.SendAdminNotification)
}

func (h *Handler) handle(
	w http.ResponseWriter,
	r *http.Request,
	route string,
	send func(ctx context.Context, req *SendEmailRequest) (string, error),
) {
	var req SendEmailRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondJSON(w, http.StatusBadRequest, SendEmailResponse{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	id, err := send(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", route, err)
			handlers.RespondJSON(w, http.StatusBadRequest, SendEmailResponse{
				Success: false,
				Error:   err.Error(),
			})

		default:
			h.logger.Error("%s - Failed to send email: %v", route, err)
			handlers.RespondJSON(w, http.StatusInternalServerError, SendEmailResponse{
				Success: false,
				Error:   err.Error(),
			})
		}
		return
	}

	h.logger.Info("%s - Email sent successfully: id=%s", route, id)
	handlers.RespondJSON(w, http.StatusOK, SendEmailResponse{
		Success: true,
		ID:      id,
	})
}

// InternalAuth проверяет общий секрет на всех маршрутах mailer-сервиса
func InternalAuth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(InternalTokenHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				logger.Warn("%s %s - Invalid internal token", r.Method, r.URL.Path)
				handlers.RespondJSON(w, http.StatusUnauthorized, SendEmailResponse{
					Success: false,
					Error:   "unauthorized",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
