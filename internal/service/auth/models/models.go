package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// LoginRequest запрос на вход администратора
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse ответ с токеном доступа
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AdminResponse данные администратора (без хеша пароля)
type AdminResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomain конвертирует администратора в ответ
func FromDomain(a *domain.Admin) *AdminResponse {
	return &AdminResponse{
		ID:        a.ID.String(),
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}
