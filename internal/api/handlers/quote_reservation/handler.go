package quote_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	quoteReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/quote_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMenuID      = "некорректный ID меню"
	msgMenuNotFound       = "меню не найдено"
	msgCouponNotFound     = "купон не найден"
	msgCouponInactive     = "купон недействителен"
	msgInvalidPartySize   = "количество человек должно быть от 1 до 10"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase QuoteReservationUseCase
	logger  Logger
}

func NewHandler(useCase QuoteReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations/quote - Invalid menu ID: %q", req.MenuID)
		handlers.RespondBadRequest(w, msgInvalidMenuID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quoteReservation.ErrMenuNotFound):
			h.logger.Warn("POST /reservations/quote - Menu not found: menu_id=%s", req.MenuID)
			handlers.RespondNotFound(w, msgMenuNotFound)

		case errors.Is(err, quoteReservation.ErrCouponNotFound):
			h.logger.Warn("POST /reservations/quote - Coupon not found: menu_id=%s", req.MenuID)
			handlers.RespondNotFound(w, msgCouponNotFound)

		case errors.Is(err, quoteReservation.ErrCouponInactive):
			h.logger.Warn("POST /reservations/quote - Coupon inactive: menu_id=%s", req.MenuID)
			handlers.RespondBadRequest(w, msgCouponInactive)

		case errors.Is(err, quoteReservation.ErrInvalidPartySize):
			h.logger.Warn("POST /reservations/quote - Invalid party size: %d", req.NumberOfPeople)
			handlers.RespondBadRequest(w, msgInvalidPartySize)

		case errors.Is(err, quoteReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations/quote - Failed to quote: menu_id=%s, error=%v", req.MenuID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/quote - Quote computed: menu_id=%s, people=%d, final=%s %s",
		req.MenuID, req.NumberOfPeople, result.FinalAmount, result.Currency)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(result.Quote))
}
