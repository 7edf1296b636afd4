package domain

// Business validation constants
const (
	MinPartySize = 1
	MaxPartySize = 10

	MinSlotCapacity = 1
	MaxSlotCapacity = 1000

	MinCouponCodeLength = 4
	MaxCouponCodeLength = 20

	MinFixedDiscount   = 1
	MaxFixedDiscount   = 10000
	MinPercentDiscount = 1
	MaxPercentDiscount = 100

	MinPasswordLength = 6

	MaxNameLength        = 100
	MaxPhoneNumberLength = 30
	MaxDescriptionLength = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultCurrency валюта по умолчанию (ISO 4217, нижний регистр как в Stripe)
const DefaultCurrency = "jpy"
