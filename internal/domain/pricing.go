package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// zeroDecimalCurrencies валюты без дробных единиц
var zeroDecimalCurrencies = map[string]struct{}{
	"BIF": {}, "CLP": {}, "DJF": {}, "GNF": {}, "JPY": {}, "KMF": {},
	"KRW": {}, "MGA": {}, "PYG": {}, "RWF": {}, "UGX": {}, "VND": {},
	"VUV": {}, "XAF": {}, "XOF": {}, "XPF": {},
}

// CurrencyPrecision returns the number of fractional digits of a currency
func CurrencyPrecision(currency string) int32 {
	if _, ok := zeroDecimalCurrencies[strings.ToUpper(strings.TrimSpace(currency))]; ok {
		return 0
	}
	return 2
}

// Quote is the price breakdown of a reservation
type Quote struct {
	MenuID         string
	MenuName       string
	UnitPrice      decimal.Decimal
	NumberOfPeople int
	BaseAmount     decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalAmount    decimal.Decimal
	Currency       string
	Coupon         *Coupon // nil when no coupon applied
}

// NewQuote prices a party for a menu item, applying the coupon if given
// Inactive coupons must be rejected by the caller
func NewQuote(menu *MenuItem, people int, coupon *Coupon, currency string) *Quote {
	precision := CurrencyPrecision(currency)
	base := menu.Price.Mul(decimal.NewFromInt(int64(people))).Round(precision)

	discount := decimal.Zero
	if coupon != nil {
		discount = coupon.Discount(menu.Price, people, precision)
	}

	return &Quote{
		MenuID:         menu.ID.String(),
		MenuName:       menu.Name,
		UnitPrice:      menu.Price,
		NumberOfPeople: people,
		BaseAmount:     base,
		DiscountAmount: discount,
		FinalAmount:    base.Sub(discount),
		Currency:       strings.ToLower(currency),
		Coupon:         coupon,
	}
}

// IsFree returns true if nothing has to be paid
func (q *Quote) IsFree() bool {
	return !q.FinalAmount.IsPositive()
}

// DiscountPercent returns the discount share of the base amount, rounded down
func (q *Quote) DiscountPercent() int64 {
	if !q.BaseAmount.IsPositive() {
		return 0
	}
	return q.DiscountAmount.Mul(decimal.NewFromInt(100)).Div(q.BaseAmount).IntPart()
}
