package get_daily_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateDate проверяет, что дата задана и не в прошлом
func validateDate(date, now time.Time) error {
	if date.IsZero() {
		return ErrInvalidDate
	}
	if domain.IsDateInPast(date, now) {
		return ErrDateInPast
	}
	return nil
}
