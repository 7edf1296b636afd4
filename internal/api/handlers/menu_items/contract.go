package menu_items

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/service/menu/models"
)

type MenuService interface {
	List(ctx context.Context) ([]*models.MenuItemResponse, error)
	Create(ctx context.Context, req *models.MenuItemRequest) (*models.MenuItemResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *models.MenuItemRequest) (*models.MenuItemResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
