package get_daily_slots

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getDailySlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_daily_slots"
)

// DailySlotsResponse HTTP response model
type DailySlotsResponse struct {
	Date  string               `json:"date"`
	Slots []*DailySlotResponse `json:"slots"`
}

// DailySlotResponse слот с доступностью на дату
type DailySlotResponse struct {
	ID                string `json:"id"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	Capacity          int    `json:"capacity"`
	ReservedCount     int    `json:"reservedCount"`
	AvailableCapacity int    `json:"availableCapacity"`
	IsSoldOut         bool   `json:"isSoldOut"`
	IsAvailable       bool   `json:"isAvailable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDailySlots.Response) *DailySlotsResponse {
	slots := make([]*DailySlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, &DailySlotResponse{
			ID:                s.ID.String(),
			StartTime:         s.StartTime.String(),
			EndTime:           s.EndTime.String(),
			Capacity:          s.Capacity,
			ReservedCount:     s.ReservedCount,
			AvailableCapacity: s.AvailableCapacity,
			IsSoldOut:         s.IsSoldOut,
			IsAvailable:       s.IsBookable(domain.MinPartySize),
		})
	}

	return &DailySlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
