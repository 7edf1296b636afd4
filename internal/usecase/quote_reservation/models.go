package quote_reservation

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса расчета стоимости
type Request struct {
	MenuID         uuid.UUID
	NumberOfPeople int
	CouponCode     *string // Код купона (опционально)
}

// Response модель ответа с расчетом стоимости
type Response struct {
	*domain.Quote
}
