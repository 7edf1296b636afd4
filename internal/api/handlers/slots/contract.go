package slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/service/slots/models"
)

type SlotService interface {
	List(ctx context.Context) ([]*models.SlotResponse, error)
	Create(ctx context.Context, req *models.SlotRequest) (*models.SlotResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *models.SlotRequest) (*models.SlotResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListSoldOut(ctx context.Context, date time.Time) ([]*models.SoldOutResponse, error)
	ToggleSoldOut(ctx context.Context, slotID uuid.UUID, date time.Time) (*models.ToggleSoldOutResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
