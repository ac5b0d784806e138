package get_guest_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/RST-ReservationService/internal/api/handlers"
	"github.com/m04kA/RST-ReservationService/internal/service/reservations"
)

const (
	msgMissingEmail = "email обязателен"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
// Query params: email (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем email из query параметров
	email := r.URL.Query().Get("email")
	if email == "" {
		h.logger.Warn("GET /reservations - Missing email")
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	result, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid email: %v", err)
			handlers.RespondBadRequest(w, msgMissingEmail)

		default:
			h.logger.Error("GET /reservations - Failed to get reservations: email=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: email=%s, count=%d",
		email, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
