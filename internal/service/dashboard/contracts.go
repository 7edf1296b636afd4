package dashboard

import (
	"context"
	"time"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Count(ctx context.Context, date *time.Time) (int, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Count(ctx context.Context) (int, error)
}

// SoldOutRepository интерфейс репозитория sold-out
type SoldOutRepository interface {
	CountByDate(ctx context.Context, date time.Time) (int, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
