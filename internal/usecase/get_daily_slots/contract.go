package get_daily_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// SlotRepository интерфейс репозитория временных слотов
type SlotRepository interface {
	// List возвращает все слоты, отсортированные по времени начала
	List(ctx context.Context) ([]*domain.TimeSlot, error)
}

// SoldOutRepository интерфейс репозитория настроек sold-out
type SoldOutRepository interface {
	SlotIDsByDate(ctx context.Context, date time.Time) (map[uuid.UUID]struct{}, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// ReservedPeopleByDate возвращает количество забронированных мест по слотам
	ReservedPeopleByDate(ctx context.Context, date time.Time) (map[uuid.UUID]int, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
