package reservations

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	reservationsService "github.com/m04kA/SMC-ReservationService/internal/service/reservations"
)

const (
	msgInvalidParams        = "некорректные параметры запроса"
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidPeriod        = "укажите период from и to в формате YYYY-MM-DD, не длиннее года"
	msgReservationNotFound  = "бронирование не найдено"
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

// List GET /api/v1/admin/reservations
// Query params: date, name (опционально)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req, err := ToListRequest(r.URL.Query().Get("date"), r.URL.Query().Get("name"))
	if err != nil {
		h.logger.Warn("GET /admin/reservations - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /admin/reservations - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/reservations - Reservations retrieved: count=%d", len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}

// Get GET /api/v1/admin/reservations/{reservationId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["reservationId"])
	if err != nil {
		h.logger.Warn("GET /admin/reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	reservation, err := h.service.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("GET /admin/reservations/{id} - Reservation not found: id=%s", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("GET /admin/reservations/{id} - Failed to get reservation: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/reservations/{id} - Reservation retrieved: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}

// Cancel DELETE /api/v1/admin/reservations/{reservationId}
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["reservationId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err := h.service.Cancel(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("DELETE /admin/reservations/{id} - Reservation not found: id=%s", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("DELETE /admin/reservations/{id} - Failed to cancel: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/reservations/{id} - Reservation cancelled: id=%s", id)
	handlers.RespondNoContent(w)
}

// Export GET /api/v1/admin/reservations/export?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	req, err := ToExportRequest(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		h.logger.Warn("GET /admin/reservations/export - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	file, err := h.service.Export(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/reservations/export - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /admin/reservations/export - Failed to export: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Content); err != nil {
		h.logger.Error("GET /admin/reservations/export - Failed to write file: %v", err)
		return
	}

	h.logger.Info("GET /admin/reservations/export - Exported %s (%d bytes)", file.FileName, len(file.Content))
}
