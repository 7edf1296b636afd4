package slots

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	slotsService "github.com/m04kA/SMC-ReservationService/internal/service/slots"
	"github.com/m04kA/SMC-ReservationService/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "время в формате HH:MM, окончание позже начала, вместимость не меньше 1"
	msgSlotNotFound       = "временной слот не найден"
	msgSlotInUse          = "нельзя удалить слот, на который есть бронирования"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/admin/slots
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/slots - Failed to list slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// Create POST /api/v1/admin/slots
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.SlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slot, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /admin/slots", err)
		return
	}

	h.logger.Info("POST /admin/slots - Slot created: id=%s %s-%s", slot.ID, slot.StartTime, slot.EndTime)
	handlers.RespondJSON(w, http.StatusCreated, slot)
}

// Update PUT /api/v1/admin/slots/{slotId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.slotID(w, r, "PUT /admin/slots/{id}")
	if !ok {
		return
	}

	var req models.SlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/slots/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slot, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /admin/slots/{id}", err)
		return
	}

	h.logger.Info("PUT /admin/slots/{id} - Slot updated: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, slot)
}

// Delete DELETE /api/v1/admin/slots/{slotId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.slotID(w, r, "DELETE /admin/slots/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /admin/slots/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/slots/{id} - Slot deleted: id=%s", id)
	handlers.RespondNoContent(w)
}

// ListSoldOut GET /api/v1/admin/sold-out?date=YYYY-MM-DD
func (h *Handler) ListSoldOut(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	date, err := domain.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /admin/sold-out - Invalid date: %q", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	list, err := h.service.ListSoldOut(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /admin/sold-out - Failed to list sold-out settings: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// ToggleSoldOut POST /api/v1/admin/slots/{slotId}/sold-out/toggle
func (h *Handler) ToggleSoldOut(w http.ResponseWriter, r *http.Request) {
	id, ok := h.slotID(w, r, "POST /admin/slots/{id}/sold-out/toggle")
	if !ok {
		return
	}

	var req ToggleSoldOutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots/{id}/sold-out/toggle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		h.logger.Warn("POST /admin/slots/{id}/sold-out/toggle - Invalid date: %q", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ToggleSoldOut(r.Context(), id, date)
	if err != nil {
		h.respondServiceError(w, "POST /admin/slots/{id}/sold-out/toggle", err)
		return
	}

	h.logger.Info("POST /admin/slots/{id}/sold-out/toggle - slot_id=%s, date=%s, sold_out=%t",
		id, req.Date, result.IsSoldOut)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) slotID(w http.ResponseWriter, r *http.Request, route string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["slotId"])
	if err != nil {
		h.logger.Warn("%s - Invalid slot ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, slotsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, slotsService.ErrSlotNotFound):
		h.logger.Warn("%s - Slot not found", route)
		handlers.RespondNotFound(w, msgSlotNotFound)

	case errors.Is(err, slotsService.ErrSlotInUse):
		h.logger.Warn("%s - Slot in use", route)
		handlers.RespondConflict(w, msgSlotInUse)

	default:
		h.logger.Error("%s - Service error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
