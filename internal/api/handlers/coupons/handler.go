package coupons

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	couponsService "github.com/m04kA/SMC-ReservationService/internal/service/coupons"
	"github.com/m04kA/SMC-ReservationService/internal/service/coupons/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCouponID    = "некорректный ID купона"
	msgInvalidInput       = "код 4-20 латинских букв или цифр, название обязательно, скидка: fixed 1-10000 или percent 1-100"
	msgDuplicateCode      = "купон с таким кодом уже существует"
	msgCouponNotFound     = "купон не найден"
)

type Handler struct {
	service CouponService
	logger  Logger
}

func NewHandler(service CouponService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/admin/coupons
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/coupons - Failed to list coupons: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// Create POST /api/v1/admin/coupons
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/coupons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	coupon, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, couponsService.ErrInvalidInput):
			h.logger.Warn("POST /admin/coupons - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, couponsService.ErrDuplicateCode):
			h.logger.Warn("POST /admin/coupons - Duplicate code: %s", req.Code)
			handlers.RespondConflict(w, msgDuplicateCode)

		default:
			h.logger.Error("POST /admin/coupons - Failed to create coupon: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/coupons - Coupon created: id=%s, code=%s", coupon.ID, coupon.Code)
	handlers.RespondJSON(w, http.StatusCreated, coupon)
}

// Toggle PATCH /api/v1/admin/coupons/{couponId}/toggle
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["couponId"])
	if err != nil {
		h.logger.Warn("PATCH /admin/coupons/{id}/toggle - Invalid coupon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCouponID)
		return
	}

	coupon, err := h.service.Toggle(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, couponsService.ErrCouponNotFound):
			h.logger.Warn("PATCH /admin/coupons/{id}/toggle - Coupon not found: id=%s", id)
			handlers.RespondNotFound(w, msgCouponNotFound)

		default:
			h.logger.Error("PATCH /admin/coupons/{id}/toggle - Failed to toggle: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/coupons/{id}/toggle - Coupon id=%s active=%t", id, coupon.IsActive)
	handlers.RespondJSON(w, http.StatusOK, coupon)
}
