package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модели

// SlotRequest запрос на создание или обновление слота
type SlotRequest struct {
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
	Capacity  int    `json:"capacity"`
}

// ToDomain конвертирует запрос в доменную модель
func (r *SlotRequest) ToDomain(id uuid.UUID) (*domain.TimeSlot, error) {
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}
	return &domain.TimeSlot{
		ID:        id,
		StartTime: start,
		EndTime:   end,
		Capacity:  r.Capacity,
	}, nil
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID        string    `json:"id"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SoldOutResponse ответ с настройкой sold-out
type SoldOutResponse struct {
	ID        string    `json:"id"`
	SlotID    string    `json:"slotId"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToggleSoldOutResponse результат переключения sold-out
type ToggleSoldOutResponse struct {
	SlotID    string `json:"slotId"`
	Date      string `json:"date"`
	IsSoldOut bool   `json:"isSoldOut"`
}

// FromDomain конвертирует слот в ответ
func FromDomain(slot *domain.TimeSlot) *SlotResponse {
	return &SlotResponse{
		ID:        slot.ID.String(),
		StartTime: slot.StartTime.String(),
		EndTime:   slot.EndTime.String(),
		Capacity:  slot.Capacity,
		CreatedAt: slot.CreatedAt,
		UpdatedAt: slot.UpdatedAt,
	}
}

// FromDomainList конвертирует список слотов
func FromDomainList(slots []*domain.TimeSlot) []*SlotResponse {
	result := make([]*SlotResponse, 0, len(slots))
	for _, slot := range slots {
		result = append(result, FromDomain(slot))
	}
	return result
}

// FromDomainSoldOutList конвертирует список настроек sold-out
func FromDomainSoldOutList(settings []*domain.SoldOutSetting) []*SoldOutResponse {
	result := make([]*SoldOutResponse, 0, len(settings))
	for _, s := range settings {
		result = append(result, &SoldOutResponse{
			ID:        s.ID.String(),
			SlotID:    s.SlotID.String(),
			Date:      s.Date.Format(domain.DateFormat),
			CreatedAt: s.CreatedAt,
		})
	}
	return result
}
