package reservations

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetDetails(ctx context.Context, id uuid.UUID) (*domain.ReservationDetails, error)
	ListDetails(ctx context.Context, filter domain.ReservationFilter) ([]*domain.ReservationDetails, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CouponRepository интерфейс репозитория купонов
type CouponRepository interface {
	DeleteUsagesByReservation(ctx context.Context, reservationID uuid.UUID) error
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
