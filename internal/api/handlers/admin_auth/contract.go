package admin_auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/service/auth/models"
)

type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Me(ctx context.Context, adminID uuid.UUID) (*models.AdminResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
