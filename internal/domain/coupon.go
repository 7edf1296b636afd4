package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountType represents how a coupon discount is computed
type DiscountType string

const (
	DiscountFixed   DiscountType = "fixed"   // Fixed amount per person
	DiscountPercent DiscountType = "percent" // Percentage of the per-person price
)

// IsValid returns true for known discount types
func (t DiscountType) IsValid() bool {
	return t == DiscountFixed || t == DiscountPercent
}

// Coupon represents a discount code
type Coupon struct {
	ID            uuid.UUID
	Code          string // Always uppercase
	Name          string
	DiscountType  DiscountType
	DiscountValue decimal.Decimal // Amount per person for fixed, percent for percent
	IsActive      bool
	UsageCount    int // Filled by list queries only
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CouponUsage links a coupon to the reservation it was applied to
type CouponUsage struct {
	ID            uuid.UUID
	CouponID      uuid.UUID
	ReservationID uuid.UUID
	CreatedAt     time.Time
}

// NormalizeCouponCode trims and uppercases a code
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateCouponCode checks length and alphabet of a normalized code
func ValidateCouponCode(code string) error {
	if len(code) < MinCouponCodeLength || len(code) > MaxCouponCodeLength {
		return fmt.Errorf("%w: length must be between %d and %d", ErrInvalidCouponCode, MinCouponCodeLength, MaxCouponCodeLength)
	}
	for _, r := range code {
		if !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			return fmt.Errorf("%w: only latin letters and digits are allowed", ErrInvalidCouponCode)
		}
	}
	return nil
}

// ValidateDiscount checks discount type and value bounds
func ValidateDiscount(discountType DiscountType, value decimal.Decimal) error {
	switch discountType {
	case DiscountFixed:
		if value.LessThan(decimal.NewFromInt(MinFixedDiscount)) || value.GreaterThan(decimal.NewFromInt(MaxFixedDiscount)) {
			return fmt.Errorf("%w: fixed discount must be between %d and %d", ErrInvalidDiscount, MinFixedDiscount, MaxFixedDiscount)
		}
	case DiscountPercent:
		if value.LessThan(decimal.NewFromInt(MinPercentDiscount)) || value.GreaterThan(decimal.NewFromInt(MaxPercentDiscount)) {
			return fmt.Errorf("%w: percent discount must be between %d and %d", ErrInvalidDiscount, MinPercentDiscount, MaxPercentDiscount)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidDiscount, discountType)
	}
	return nil
}

// Discount returns the discount for a party, never exceeding the base amount
func (c *Coupon) Discount(unitPrice decimal.Decimal, people int, precision int32) decimal.Decimal {
	if people <= 0 || unitPrice.IsNegative() {
		return decimal.Zero
	}

	base := unitPrice.Mul(decimal.NewFromInt(int64(people)))

	var discount decimal.Decimal
	switch c.DiscountType {
	case DiscountFixed:
		discount = c.DiscountValue.Mul(decimal.NewFromInt(int64(people)))
	case DiscountPercent:
		discount = base.Mul(c.DiscountValue).Div(decimal.NewFromInt(100))
	default:
		return decimal.Zero
	}

	discount = discount.RoundDown(precision)
	if discount.IsNegative() {
		return decimal.Zero
	}
	if discount.GreaterThan(base) {
		return base
	}
	return discount
}
