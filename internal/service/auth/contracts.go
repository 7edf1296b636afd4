package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// AdminRepository интерфейс репозитория администраторов
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
