package quote_reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// MenuRepository интерфейс репозитория меню
type MenuRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error)
}

// CouponRepository интерфейс репозитория купонов
type CouponRepository interface {
	// GetByCode получает купон по коду (без учета регистра)
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
