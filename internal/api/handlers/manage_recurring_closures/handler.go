package manage_recurring_closures

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RST-ReservationService/internal/api/handlers"
	"github.com/m04kA/RST-ReservationService/internal/service/schedule"
	"github.com/m04kA/RST-ReservationService/internal/service/schedule/models"
)

const (
	msgInvalidClosureID   = "некорректный ID закрытия"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные закрытия"
	msgNotFound           = "еженедельное закрытие не найдено"
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

// HandleList GET /api/v1/admin/recurring-closures
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListRecurringClosures(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/recurring-closures - Failed to list closures: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/recurring-closures - Closures retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/admin/recurring-closures
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRecurringClosureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/recurring-closures - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateRecurringClosure(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /admin/recurring-closures - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /admin/recurring-closures - Failed to create closure: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/recurring-closures - Closure created successfully: closure_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PATCH /api/v1/admin/recurring-closures/{closureId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	closureID, ok := h.closureID(w, r)
	if !ok {
		return
	}

	var req models.UpdateRecurringClosureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/recurring-closures/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateRecurringClosure(r.Context(), closureID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/recurring-closures/{id} - Invalid data: closure_id=%d, error=%v", closureID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, schedule.ErrClosureNotFound):
			h.logger.Warn("PATCH /admin/recurring-closures/{id} - Closure not found: closure_id=%d", closureID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/recurring-closures/{id} - Failed to update closure: closure_id=%d, error=%v",
				closureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/recurring-closures/{id} - Closure updated successfully: closure_id=%d", closureID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/recurring-closures/{closureId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	closureID, ok := h.closureID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteRecurringClosure(r.Context(), closureID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrClosureNotFound):
			h.logger.Warn("DELETE /admin/recurring-closures/{id} - Closure not found: closure_id=%d", closureID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/recurring-closures/{id} - Failed to delete closure: closure_id=%d, error=%v",
				closureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/recurring-closures/{id} - Closure deleted successfully: closure_id=%d", closureID)
	handlers.RespondNoContent(w)
}

// closureID извлекает closureId из URL
func (h *Handler) closureID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	vars := mux.Vars(r)
	closureID, err := strconv.ParseInt(vars["closureId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s %s - Invalid closure ID: %v", r.Method, r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidClosureID)
		return 0, false
	}
	return closureID, true
}
