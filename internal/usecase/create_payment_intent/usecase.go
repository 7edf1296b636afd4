package create_payment_intent

import (
	"context"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-ReservationService/internal/integrations/stripe"
	quoteReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/quote_reservation"
)

// UseCase use case создания платежного намерения Stripe
type UseCase struct {
	quoter        Quoter
	paymentClient PaymentClient
	metrics       Metrics
	shopName      string
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(quoter Quoter, paymentClient PaymentClient, metrics Metrics, shopName string, logger Logger) *UseCase {
	return &UseCase{
		quoter:        quoter,
		paymentClient: paymentClient,
		metrics:       metrics,
		shopName:      shopName,
		logger:        logger,
	}
}

// Execute рассчитывает стоимость на сервере и создает платежное намерение
// Ошибки расчета возвращаются как есть (ошибки quote_reservation)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePaymentIntent: menu=%s, people=%d", req.MenuID, req.NumberOfPeople)

	// 1. Считаем сумму
	quote, err := uc.quoter.Quote(ctx, &quoteReservation.Request{
		MenuID:         req.MenuID,
		NumberOfPeople: req.NumberOfPeople,
		CouponCode:     req.CouponCode,
	})
	if err != nil {
		return nil, err
	}

	// 2. Нулевую сумму оплачивать не нужно
	if quote.IsFree() {
		uc.logger.Warn("CreatePaymentIntent: final amount is zero for menu=%s", req.MenuID)
		return nil, ErrNothingToPay
	}

	// 3. Создаем платежное намерение
	metadata := map[string]string{
		"menu_id":          quote.MenuID,
		"menu_name":        quote.MenuName,
		"number_of_people": strconv.Itoa(quote.NumberOfPeople),
	}
	if quote.Coupon != nil {
		metadata["coupon_code"] = quote.Coupon.Code
	}

	intent, err := uc.paymentClient.CreatePaymentIntent(ctx, stripe.CreatePaymentIntentInput{
		Amount:         quote.FinalAmount,
		Currency:       quote.Currency,
		Description:    uc.description(quote.MenuName, quote.NumberOfPeople),
		Metadata:       metadata,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		uc.metrics.IncPaymentIntent(resultFailed)
		uc.logger.Error("CreatePaymentIntent: stripe request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	uc.metrics.IncPaymentIntent(resultCreated)
	uc.logger.Info("CreatePaymentIntent: intent id=%s created, amount=%s %s", intent.ID, quote.FinalAmount, quote.Currency)

	return &Response{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		Amount:          quote.FinalAmount,
		Currency:        quote.Currency,
	}, nil
}

func (uc *UseCase) description(menuName string, people int) string {
	if uc.shopName == "" {
		return fmt.Sprintf("%s x%d", menuName, people)
	}
	return fmt.Sprintf("%s: %s x%d", uc.shopName, menuName, people)
}
