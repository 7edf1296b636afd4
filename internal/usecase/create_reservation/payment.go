package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/stripe"
)

// verifyPayment проверяет, что платеж проведен на сумму и в валюте расчета
func (uc *UseCase) verifyPayment(ctx context.Context, paymentIntentID string, quote *domain.Quote) error {
	intent, err := uc.paymentClient.GetPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		if errors.Is(err, stripe.ErrPaymentIntentNotFound) {
			uc.logger.Warn("CreateReservation: payment intent id=%s not found", paymentIntentID)
			return ErrPaymentNotCompleted
		}
		uc.logger.Error("CreateReservation: failed to get payment intent id=%s: %v", paymentIntentID, err)
		return fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	if !intent.Succeeded() {
		uc.logger.Warn("CreateReservation: payment intent id=%s has status %s", paymentIntentID, intent.Status)
		return ErrPaymentNotCompleted
	}

	expected, err := stripe.ToMinorAmount(quote.FinalAmount, quote.Currency)
	if err != nil {
		return fmt.Errorf("%w: failed to convert amount: %v", ErrInternal, err)
	}

	if intent.Amount != expected || !strings.EqualFold(intent.Currency, quote.Currency) {
		uc.logger.Warn("CreateReservation: payment intent id=%s paid %d %s, expected %d %s",
			paymentIntentID, intent.Amount, intent.Currency, expected, quote.Currency)
		return ErrPaymentMismatch
	}

	return nil
}
