package stripe

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ToMinorAmount переводит сумму в минимальные единицы валюты (для JPY без изменений)
func ToMinorAmount(amount decimal.Decimal, currency string) (int64, error) {
	if !amount.IsPositive() {
		return 0, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidAmount)
	}
	minor := amount.Shift(currencyScale(currency))
	if !minor.Equal(minor.Truncate(0)) {
		return 0, fmt.Errorf("%w: amount %s has too many decimal places for %s", ErrInvalidAmount, amount, currency)
	}
	return minor.IntPart(), nil
}

// FromMinorAmount переводит сумму из минимальных единиц валюты
func FromMinorAmount(minor int64, currency string) decimal.Decimal {
	return decimal.New(minor, -currencyScale(currency))
}

func currencyScale(currency string) int32 {
	return domain.CurrencyPrecision(currency)
}
