package manage_contact_messages

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RST-ReservationService/internal/api/handlers"
	"github.com/m04kA/RST-ReservationService/internal/service/messages"
	"github.com/m04kA/RST-ReservationService/internal/service/messages/models"
)

const (
	msgInvalidMessageID   = "некорректный ID сообщения"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус сообщения"
	msgNotFound           = "сообщение не найдено"
)

type Handler struct {
	service MessageService
	logger  Logger
}

func NewHandler(service MessageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/contact-messages
// Query params: status (optional, unread|read|replied|archived)
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	statusFilter := r.URL.Query().Get("status")

	result, err := h.service.List(r.Context(), statusFilter)
	if err != nil {
		switch {
		case errors.Is(err, messages.ErrInvalidStatus):
			h.logger.Warn("GET /admin/contact-messages - Invalid status filter: status=%s", statusFilter)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/contact-messages - Failed to list messages: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/contact-messages - Messages retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateStatus PATCH /api/v1/admin/contact-messages/{messageId}/status
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	messageID, err := strconv.ParseInt(vars["messageId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/contact-messages/{id}/status - Invalid message ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMessageID)
		return
	}

	var req models.UpdateMessageStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/contact-messages/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), messageID, &req); err != nil {
		switch {
		case errors.Is(err, messages.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/contact-messages/{id}/status - Invalid status: message_id=%d, status=%s",
				messageID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, messages.ErrMessageNotFound):
			h.logger.Warn("PATCH /admin/contact-messages/{id}/status - Message not found: message_id=%d", messageID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/contact-messages/{id}/status - Failed to update status: message_id=%d, error=%v",
				messageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/contact-messages/{id}/status - Status updated successfully: message_id=%d, status=%s",
		messageID, req.Status)
	handlers.RespondNoContent(w)
}
