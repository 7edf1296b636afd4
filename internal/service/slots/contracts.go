package slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// SlotRepository интерфейс репозитория временных слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeSlot, error)
	List(ctx context.Context) ([]*domain.TimeSlot, error)
	Update(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SoldOutRepository интерфейс репозитория настроек sold-out
type SoldOutRepository interface {
	Create(ctx context.Context, slotID uuid.UUID, date time.Time) (*domain.SoldOutSetting, error)
	Delete(ctx context.Context, slotID uuid.UUID, date time.Time) error
	Exists(ctx context.Context, slotID uuid.UUID, date time.Time) (bool, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.SoldOutSetting, error)
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
