package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модели

// MenuItemRequest запрос на создание или полное обновление пункта меню
type MenuItemRequest struct {
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	DurationMinutes int             `json:"durationMinutes"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        *string         `json:"imageUrl,omitempty"`
}

// ToDomain конвертирует запрос в доменную модель
func (r *MenuItemRequest) ToDomain(id uuid.UUID) *domain.MenuItem {
	return &domain.MenuItem{
		ID:              id,
		Name:            strings.TrimSpace(r.Name),
		Description:     trimOptional(r.Description),
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		ImageURL:        trimOptional(r.ImageURL),
	}
}

// Response модели

// MenuItemResponse ответ с данными пункта меню
type MenuItemResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	DurationMinutes int             `json:"durationMinutes"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        *string         `json:"imageUrl,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// FromDomain конвертирует доменную модель в ответ
func FromDomain(item *domain.MenuItem) *MenuItemResponse {
	return &MenuItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Description:     item.Description,
		DurationMinutes: item.DurationMinutes,
		Price:           item.Price,
		ImageURL:        item.ImageURL,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

// FromDomainList конвертирует список доменных моделей
func FromDomainList(items []*domain.MenuItem) []*MenuItemResponse {
	result := make([]*MenuItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, FromDomain(item))
	}
	return result
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
