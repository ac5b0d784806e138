package manage_closed_dates

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/RST-ReservationService/internal/api/handlers"
	"github.com/m04kA/RST-ReservationService/internal/service/schedule"
	"github.com/m04kA/RST-ReservationService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound           = "закрытая дата не найдена"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/closed-dates
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListClosedDates(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/closed-dates - Failed to list closed dates: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/closed-dates - Closed dates retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAdd POST /api/v1/admin/closed-dates
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req models.AddClosedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/closed-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddClosedDate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /admin/closed-dates - Invalid date: date=%s, error=%v", req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /admin/closed-dates - Failed to add closed date: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/closed-dates - Closed date added successfully: date=%s", req.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleRemove DELETE /api/v1/admin/closed-dates/{date}
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date := vars["date"]

	if err := h.service.RemoveClosedDate(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/closed-dates/{date} - Invalid date: date=%s, error=%v", date, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, schedule.ErrClosedDateNotFound):
			h.logger.Warn("DELETE /admin/closed-dates/{date} - Closed date not found: date=%s", date)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/closed-dates/{date} - Failed to remove closed date: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/closed-dates/{date} - Closed date removed successfully: date=%s", date)
	handlers.RespondNoContent(w)
}
