package create_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name            string
	Email           string
	PhoneNumber     string
	NumberOfPeople  int
	MenuID          uuid.UUID
	SlotID          uuid.UUID
	ReservationDate time.Time // Дата бронирования (без времени)
	CouponCode      *string   // Код купона (опционально)
	PaymentIntentID *string   // ID платежа Stripe (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	*domain.ReservationDetails
}

// Options настройки use case
type Options struct {
	VerifyPayment bool           // Проверять платеж в Stripe перед сохранением
	Location      *time.Location // Часовой пояс магазина
	MailTimeout   time.Duration  // Таймаут отправки письма
}
