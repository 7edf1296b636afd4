package create_reservation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/stripe"
	quoteReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/quote_reservation"
)

// Quoter рассчитывает стоимость бронирования
type Quoter interface {
	Quote(ctx context.Context, req *quoteReservation.Request) (*domain.Quote, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// GetByID получает слот, внутри транзакции строка блокируется
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeSlot, error)
}

// SoldOutRepository интерфейс репозитория настроек sold-out
type SoldOutRepository interface {
	Exists(ctx context.Context, slotID uuid.UUID, date time.Time) (bool, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// ReservedPeople возвращает занятые места в слоте на дату (с блокировкой в транзакции)
	ReservedPeople(ctx context.Context, slotID uuid.UUID, date time.Time) (int, error)
	ExistsByPaymentIntent(ctx context.Context, paymentIntentID string) (bool, error)
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
}

// CouponRepository интерфейс репозитория купонов
type CouponRepository interface {
	CreateUsage(ctx context.Context, couponID, reservationID uuid.UUID) (*domain.CouponUsage, error)
}

// PaymentClient интерфейс клиента платежной системы
type PaymentClient interface {
	GetPaymentIntent(ctx context.Context, id string) (*stripe.PaymentIntent, error)
}

// Mailer отправляет письмо-подтверждение
type Mailer interface {
	SendReservationConfirmation(ctx context.Context, details *domain.ReservationDetails) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncReservationCreated(withCoupon bool)
	IncCouponRedemption(discountType string)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
