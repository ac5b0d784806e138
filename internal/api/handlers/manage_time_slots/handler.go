package manage_time_slots

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
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные слота"
	msgNotFound           = "слот не найден"
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

// HandleList GET /api/v1/admin/time-slots
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListTimeSlots(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/time-slots - Failed to list slots: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/time-slots - Slots retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/admin/time-slots
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/time-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateTimeSlot(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /admin/time-slots - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /admin/time-slots - Failed to create slot: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/time-slots - Slot created successfully: slot_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PATCH /api/v1/admin/time-slots/{slotId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	slotID, ok := h.slotID(w, r)
	if !ok {
		return
	}

	var req models.UpdateTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/time-slots/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateTimeSlot(r.Context(), slotID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/time-slots/{id} - Invalid data: slot_id=%d, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, schedule.ErrTimeSlotNotFound):
			h.logger.Warn("PATCH /admin/time-slots/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/time-slots/{id} - Failed to update slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/time-slots/{id} - Slot updated successfully: slot_id=%d", slotID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/time-slots/{slotId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	slotID, ok := h.slotID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteTimeSlot(r.Context(), slotID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrTimeSlotNotFound):
			h.logger.Warn("DELETE /admin/time-slots/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/time-slots/{id} - Failed to delete slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/time-slots/{id} - Slot deleted successfully: slot_id=%d", slotID)
	handlers.RespondNoContent(w)
}

// slotID извлекает slotId из URL
func (h *Handler) slotID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s %s - Invalid slot ID: %v", r.Method, r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return 0, false
	}
	return slotID, true
}
