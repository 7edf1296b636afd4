package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	menuRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/menu"
	"github.com/m04kA/SMC-ReservationService/internal/service/menu/models"
)

// Service сервис управления меню
type Service struct {
	menuRepo MenuRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса меню
func NewService(menuRepo MenuRepository, logger Logger) *Service {
	return &Service{
		menuRepo: menuRepo,
		logger:   logger,
	}
}

// List возвращает все пункты меню по возрастанию цены
// Публичный метод
func (s *Service) List(ctx context.Context) ([]*models.MenuItemResponse, error) {
	items, err := s.menuRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: failed to list menu items: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainList(items), nil
}

// Create создает пункт меню
func (s *Service) Create(ctx context.Context, req *models.MenuItemRequest) (*models.MenuItemResponse, error) {
	item := req.ToDomain(uuid.Nil)
	if err := item.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.menuRepo.Create(ctx, item)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: menu item id=%s created", created.ID)
	return models.FromDomain(created), nil
}

// Update полностью обновляет пункт меню
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.MenuItemRequest) (*models.MenuItemResponse, error) {
	item := req.ToDomain(id)
	if err := item.Validate(); err != nil {
		s.logger.Warn("Update: validation failed for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.menuRepo.Update(ctx, item)
	if err != nil {
		if errors.Is(err, menuRepo.ErrMenuItemNotFound) {
			s.logger.Warn("Update: menu item id=%s not found", id)
			return nil, ErrMenuItemNotFound
		}
		s.logger.Error("Update: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: menu item id=%s updated", id)
	return models.FromDomain(updated), nil
}

// Delete удаляет пункт меню без бронирований
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.menuRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, menuRepo.ErrMenuItemNotFound):
			s.logger.Warn("Delete: menu item id=%s not found", id)
			return ErrMenuItemNotFound
		case errors.Is(err, menuRepo.ErrMenuItemInUse):
			s.logger.Warn("Delete: menu item id=%s has reservations", id)
			return ErrMenuItemInUse
		default:
			s.logger.Error("Delete: repository error for id=%s: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Delete: menu item id=%s deleted", id)
	return nil
}
