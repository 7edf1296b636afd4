package create_payment_intent

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/stripe"
	quoteReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/quote_reservation"
)

// Quoter рассчитывает стоимость бронирования
type Quoter interface {
	Quote(ctx context.Context, req *quoteReservation.Request) (*domain.Quote, error)
}

// PaymentClient интерфейс клиента платежной системы
type PaymentClient interface {
	CreatePaymentIntent(ctx context.Context, input stripe.CreatePaymentIntentInput) (*stripe.PaymentIntent, error)
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncPaymentIntent(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
