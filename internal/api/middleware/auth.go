package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const msgUnauthorized = "требуется авторизация администратора"

type adminIDKey struct{}

// WithAdminID кладет ID администратора в контекст
func WithAdminID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, adminIDKey{}, id)
}

// GetAdminID извлекает ID администратора из контекста
func GetAdminID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(adminIDKey{}).(uuid.UUID)
	return id, ok
}

// AdminAuth пропускает только запросы с валидным токеном администратора
// Токен берется из заголовка Authorization: Bearer, иначе из cookie
func AdminAuth(parser TokenParser, cookieName string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r, cookieName)
			if token == "" {
				logger.Warn("%s %s - missing admin token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			adminID, err := parser.ParseToken(token)
			if err != nil {
				logger.Warn("%s %s - invalid admin token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdminID(r.Context(), adminID)))
		})
	}
}

// TokenFromRequest достает токен из заголовка или cookie
func TokenFromRequest(r *http.Request, cookieName string) string {
	if header := strings.TrimSpace(r.Header.Get("Authorization")); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}

	if cookieName == "" {
		return ""
	}
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(cookie.Value)
}
