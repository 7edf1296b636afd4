package get_daily_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса слотов на дату
type Request struct {
	Date time.Time // Дата (без времени)
}

// Response модель ответа со слотами на дату
type Response struct {
	Date  time.Time
	Slots []*domain.DailySlot
}
