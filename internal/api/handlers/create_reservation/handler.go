package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidIDsOrDate    = "некорректный ID меню, ID слота или дата (ожидается YYYY-MM-DD)"
	msgInvalidInput        = "проверьте имя, email и телефон"
	msgInvalidPartySize    = "количество человек должно быть от 1 до 10"
	msgDateInPast          = "нельзя забронировать прошедшую дату"
	msgMenuNotFound        = "меню не найдено"
	msgSlotNotFound        = "временной слот не найден"
	msgCouponNotFound      = "купон не найден"
	msgCouponInactive      = "купон недействителен"
	msgSlotSoldOut         = "выбранный слот закрыт для бронирования"
	msgCapacityExceeded    = "недостаточно свободных мест в выбранном слоте"
	msgPaymentRequired     = "требуется оплата"
	msgPaymentNotCompleted = "оплата не завершена"
	msgPaymentMismatch     = "сумма оплаты не совпадает со стоимостью бронирования"
	msgDuplicatePayment    = "этот платеж уже использован для другого бронирования"
	msgPaymentProvider     = "не удалось проверить оплату"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIDsOrDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrInvalidPartySize):
			h.logger.Warn("POST /reservations - Invalid party size: %d", req.NumberOfPeople)
			handlers.RespondBadRequest(w, msgInvalidPartySize)

		case errors.Is(err, createReservation.ErrDateInPast):
			h.logger.Warn("POST /reservations - Date in the past: %s", req.ReservationDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrCouponInactive):
			h.logger.Warn("POST /reservations - Coupon inactive: code=%s", req.couponCode())
			handlers.RespondBadRequest(w, msgCouponInactive)

		case errors.Is(err, createReservation.ErrMenuNotFound):
			h.logger.Warn("POST /reservations - Menu not found: menu_id=%s", req.MenuID)
			handlers.RespondNotFound(w, msgMenuNotFound)

		case errors.Is(err, createReservation.ErrSlotNotFound):
			h.logger.Warn("POST /reservations - Slot not found: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createReservation.ErrCouponNotFound):
			h.logger.Warn("POST /reservations - Coupon not found: code=%s", req.couponCode())
			handlers.RespondNotFound(w, msgCouponNotFound)

		case errors.Is(err, createReservation.ErrSlotSoldOut):
			h.logger.Warn("POST /reservations - Slot sold out: slot_id=%s, date=%s", req.SlotID, req.ReservationDate)
			handlers.RespondConflict(w, msgSlotSoldOut)

		case errors.Is(err, createReservation.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations - Capacity exceeded: slot_id=%s, date=%s, people=%d",
				req.SlotID, req.ReservationDate, req.NumberOfPeople)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, createReservation.ErrDuplicatePayment):
			h.logger.Warn("POST /reservations - Duplicate payment intent")
			handlers.RespondConflict(w, msgDuplicatePayment)

		case errors.Is(err, createReservation.ErrPaymentRequired):
			h.logger.Warn("POST /reservations - Payment intent missing: slot_id=%s", req.SlotID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentRequired)

		case errors.Is(err, createReservation.ErrPaymentNotCompleted):
			h.logger.Warn("POST /reservations - Payment not completed: %v", err)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentNotCompleted)

		case errors.Is(err, createReservation.ErrPaymentMismatch):
			h.logger.Warn("POST /reservations - Payment mismatch: %v", err)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentMismatch)

		case errors.Is(err, createReservation.ErrPaymentProvider):
			h.logger.Error("POST /reservations - Payment provider error: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentProvider)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: slot_id=%s, date=%s, error=%v",
				req.SlotID, req.ReservationDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s, slot_id=%s, date=%s, people=%d",
		result.ID, req.SlotID, req.ReservationDate, req.NumberOfPeople)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
