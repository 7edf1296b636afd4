package create_payment_intent

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	createPaymentIntent "github.com/m04kA/SMC-ReservationService/internal/usecase/create_payment_intent"
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
	msgNothingToPay       = "сумма к оплате равна нулю, оплата не требуется"
	msgPaymentProvider    = "не удалось инициализировать оплату"
)

type Handler struct {
	useCase CreatePaymentIntentUseCase
	logger  Logger
}

func NewHandler(useCase CreatePaymentIntentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payment-intents
// Заголовок Idempotency-Key (опционально) передается в Stripe
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PaymentIntentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payment-intents - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(strings.TrimSpace(r.Header.Get("Idempotency-Key")))
	if err != nil {
		h.logger.Warn("POST /payment-intents - Invalid menu ID: %q", req.MenuID)
		handlers.RespondBadRequest(w, msgInvalidMenuID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quoteReservation.ErrMenuNotFound):
			h.logger.Warn("POST /payment-intents - Menu not found: menu_id=%s", req.MenuID)
			handlers.RespondNotFound(w, msgMenuNotFound)

		case errors.Is(err, quoteReservation.ErrCouponNotFound):
			h.logger.Warn("POST /payment-intents - Coupon not found: menu_id=%s", req.MenuID)
			handlers.RespondNotFound(w, msgCouponNotFound)

		case errors.Is(err, quoteReservation.ErrCouponInactive):
			h.logger.Warn("POST /payment-intents - Coupon inactive: menu_id=%s", req.MenuID)
			handlers.RespondBadRequest(w, msgCouponInactive)

		case errors.Is(err, quoteReservation.ErrInvalidPartySize):
			h.logger.Warn("POST /payment-intents - Invalid party size: %d", req.NumberOfPeople)
			handlers.RespondBadRequest(w, msgInvalidPartySize)

		case errors.Is(err, quoteReservation.ErrInvalidInput):
			h.logger.Warn("POST /payment-intents - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createPaymentIntent.ErrNothingToPay):
			h.logger.Warn("POST /payment-intents - Nothing to pay: menu_id=%s", req.MenuID)
			handlers.RespondBadRequest(w, msgNothingToPay)

		case errors.Is(err, createPaymentIntent.ErrPaymentProvider):
			h.logger.Error("POST /payment-intents - Payment provider error: menu_id=%s, error=%v", req.MenuID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentProvider)

		default:
			h.logger.Error("POST /payment-intents - Failed to create payment intent: menu_id=%s, error=%v", req.MenuID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payment-intents - Payment intent created: id=%s, amount=%s %s",
		result.PaymentIntentID, result.Amount, result.Currency)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
