package admin_auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	authService "github.com/m04kA/SMC-ReservationService/internal/service/auth"
	"github.com/m04kA/SMC-ReservationService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "укажите корректный email и пароль не короче 6 символов"
	msgInvalidCredentials = "неверный email или пароль"
	msgUnauthorized       = "требуется авторизация администратора"
	msgAdminNotFound      = "администратор не найден"
)

type Handler struct {
	service AuthService
	cookie  CookieConfig
	logger  Logger
}

func NewHandler(service AuthService, cookie CookieConfig, logger Logger) *Handler {
	return &Handler{
		service: service,
		cookie:  cookie,
		logger:  logger,
	}
}

// Login POST /api/v1/admin/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidInput):
			h.logger.Warn("POST /admin/login - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, authService.ErrInvalidCredentials):
			h.logger.Warn("POST /admin/login - Invalid credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /admin/login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    result.Token,
		Path:     "/",
		Expires:  result.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Logout POST /api/v1/admin/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	handlers.RespondNoContent(w)
}

// Me GET /api/v1/admin/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/me - Missing admin ID")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	admin, err := h.service.Me(r.Context(), adminID)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrAdminNotFound):
			h.logger.Warn("GET /admin/me - Admin not found: id=%s", adminID)
			handlers.RespondNotFound(w, msgAdminNotFound)

		default:
			h.logger.Error("GET /admin/me - Failed to get admin: id=%s, error=%v", adminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, admin)
}
