package menu

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// MenuRepository интерфейс репозитория меню
type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error)
	List(ctx context.Context) ([]*domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
