package get_daily_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getDailySlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_daily_slots"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast  = "нельзя выбрать прошедшую дату"
)

type Handler struct {
	useCase GetDailySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDailySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/daily?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	date, err := domain.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /slots/daily - Invalid date: %q", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDailySlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getDailySlots.ErrInvalidDate):
			h.logger.Warn("GET /slots/daily - Invalid date: %s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getDailySlots.ErrDateInPast):
			h.logger.Warn("GET /slots/daily - Date in the past: %s", dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		default:
			h.logger.Error("GET /slots/daily - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/daily - Slots retrieved: date=%s, count=%d", dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
