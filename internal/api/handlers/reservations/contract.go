package reservations

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	List(ctx context.Context, req *models.ListRequest) ([]*models.ReservationResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*models.ReservationResponse, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	Export(ctx context.Context, req *models.ExportRequest) (*models.ExportFile, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
