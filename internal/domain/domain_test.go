package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlot_Validate(t *testing.T) {
	tests := []struct {
		name    string
		slot    TimeSlot
		wantErr error
	}{
		{"valid", TimeSlot{StartTime: "09:00", EndTime: "10:00", Capacity: 4}, nil},
		{"end before start", TimeSlot{StartTime: "10:00", EndTime: "09:00", Capacity: 4}, ErrInvalidTimeRange},
		{"end equals start", TimeSlot{StartTime: "10:00", EndTime: "10:00", Capacity: 4}, ErrInvalidTimeRange},
		{"bad time", TimeSlot{StartTime: "9", EndTime: "10:00", Capacity: 4}, ErrInvalidTimeRange},
		{"zero capacity", TimeSlot{StartTime: "09:00", EndTime: "10:00", Capacity: 0}, ErrInvalidCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.slot.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuildDailySlots(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	morning := &TimeSlot{ID: uuid.New(), StartTime: "09:00", EndTime: "10:00", Capacity: 4}
	noon := &TimeSlot{ID: uuid.New(), StartTime: "12:00", EndTime: "13:00", Capacity: 4}
	evening := &TimeSlot{ID: uuid.New(), StartTime: "18:00", EndTime: "19:00", Capacity: 2}

	soldOut := map[uuid.UUID]struct{}{noon.ID: {}}
	reserved := map[uuid.UUID]int{morning.ID: 3, evening.ID: 5}

	daily := BuildDailySlots(date, []*TimeSlot{morning, noon, evening}, soldOut, reserved)

	require.Len(t, daily, 3)

	assert.Equal(t, morning.ID, daily[0].ID)
	assert.False(t, daily[0].IsSoldOut)
	assert.Equal(t, 1, daily[0].AvailableCapacity)
	assert.True(t, daily[0].IsBookable(1))
	assert.False(t, daily[0].IsBookable(2))

	assert.True(t, daily[1].IsSoldOut)
	assert.Equal(t, 4, daily[1].AvailableCapacity)
	assert.False(t, daily[1].IsBookable(1))

	assert.Equal(t, 0, daily[2].AvailableCapacity, "overbooked slot is clamped at zero")
	assert.True(t, daily[2].IsFull())
	assert.Equal(t, float64(100), daily[2].OccupancyRate())
}

func TestCoupon_Discount(t *testing.T) {
	price := decimal.NewFromInt(3000)

	tests := []struct {
		name   string
		coupon Coupon
		people int
		want   int64
	}{
		{"fixed per person", Coupon{DiscountType: DiscountFixed, DiscountValue: decimal.NewFromInt(500)}, 3, 1500},
		{"fixed capped at base", Coupon{DiscountType: DiscountFixed, DiscountValue: decimal.NewFromInt(5000)}, 2, 6000},
		{"percent", Coupon{DiscountType: DiscountPercent, DiscountValue: decimal.NewFromInt(10)}, 2, 600},
		{"percent rounds down", Coupon{DiscountType: DiscountPercent, DiscountValue: decimal.NewFromInt(33)}, 1, 990},
		{"full percent", Coupon{DiscountType: DiscountPercent, DiscountValue: decimal.NewFromInt(100)}, 1, 3000},
		{"unknown type", Coupon{DiscountType: "bogus", DiscountValue: decimal.NewFromInt(10)}, 1, 0},
		{"no people", Coupon{DiscountType: DiscountFixed, DiscountValue: decimal.NewFromInt(10)}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.coupon.Discount(price, tt.people, 0)
			assert.True(t, decimal.NewFromInt(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestValidateCouponCode(t *testing.T) {
	assert.NoError(t, ValidateCouponCode("SUMMER2025"))
	assert.ErrorIs(t, ValidateCouponCode("AB1"), ErrInvalidCouponCode)
	assert.ErrorIs(t, ValidateCouponCode("ABCDEFGHIJKLMNOPQRSTU"), ErrInvalidCouponCode)
	assert.ErrorIs(t, ValidateCouponCode("SALE-10"), ErrInvalidCouponCode)
	assert.ErrorIs(t, ValidateCouponCode("СКИДКА"), ErrInvalidCouponCode)
	assert.Equal(t, "SALE10", NormalizeCouponCode("  sale10 "))
}

func TestValidateDiscount(t *testing.T) {
	assert.NoError(t, ValidateDiscount(DiscountFixed, decimal.NewFromInt(500)))
	assert.ErrorIs(t, ValidateDiscount(DiscountFixed, decimal.NewFromInt(0)), ErrInvalidDiscount)
	assert.ErrorIs(t, ValidateDiscount(DiscountFixed, decimal.NewFromInt(10001)), ErrInvalidDiscount)
	assert.NoError(t, ValidateDiscount(DiscountPercent, decimal.NewFromInt(100)))
	assert.ErrorIs(t, ValidateDiscount(DiscountPercent, decimal.NewFromInt(101)), ErrInvalidDiscount)
	assert.ErrorIs(t, ValidateDiscount("other", decimal.NewFromInt(1)), ErrInvalidDiscount)
}

func TestNewQuote(t *testing.T) {
	menu := &MenuItem{ID: uuid.New(), Name: "Tea ceremony", Price: decimal.NewFromInt(4500)}
	coupon := &Coupon{Code: "WELCOME", DiscountType: DiscountPercent, DiscountValue: decimal.NewFromInt(20), IsActive: true}

	q := NewQuote(menu, 2, coupon, "JPY")

	assert.True(t, decimal.NewFromInt(9000).Equal(q.BaseAmount))
	assert.True(t, decimal.NewFromInt(1800).Equal(q.DiscountAmount))
	assert.True(t, decimal.NewFromInt(7200).Equal(q.FinalAmount))
	assert.Equal(t, "jpy", q.Currency)
	assert.Equal(t, int64(20), q.DiscountPercent())
	assert.False(t, q.IsFree())

	free := NewQuote(menu, 1, &Coupon{DiscountType: DiscountFixed, DiscountValue: decimal.NewFromInt(9999)}, "jpy")
	assert.True(t, free.IsFree())
	assert.True(t, free.FinalAmount.IsZero())
}

func TestNewQuote_TwoDecimalCurrency(t *testing.T) {
	menu := &MenuItem{ID: uuid.New(), Name: "Brunch", Price: decimal.RequireFromString("19.99")}
	coupon := &Coupon{DiscountType: DiscountPercent, DiscountValue: decimal.NewFromInt(15)}

	q := NewQuote(menu, 3, coupon, "usd")

	assert.Equal(t, "59.97", q.BaseAmount.StringFixed(2))
	assert.Equal(t, "8.99", q.DiscountAmount.StringFixed(2))
	assert.Equal(t, "50.98", q.FinalAmount.StringFixed(2))
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2025, 10, 15, 23, 30, 0, 0, time.UTC)

	assert.True(t, IsDateInPast(time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC), now))
}

func TestMenuItem_Validate(t *testing.T) {
	valid := MenuItem{Name: "Lunch", DurationMinutes: 60, Price: decimal.NewFromInt(1000)}
	assert.NoError(t, valid.Validate())

	noName := valid
	noName.Name = " "
	assert.ErrorIs(t, noName.Validate(), ErrInvalidMenuItem)

	negative := valid
	negative.Price = decimal.NewFromInt(-1)
	assert.ErrorIs(t, negative.Validate(), ErrInvalidMenuItem)

	noDuration := valid
	noDuration.DurationMinutes = 0
	assert.ErrorIs(t, noDuration.Validate(), ErrInvalidMenuItem)
}
