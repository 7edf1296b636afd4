package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func testDetails() *domain.ReservationDetails {
	return &domain.ReservationDetails{
		Reservation: domain.Reservation{
			ID:              uuid.MustParse("7f0c4a4e-2f1f-4c89-9d44-6c1b7a5f0e11"),
			ReservationDate: time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC),
			NumberOfPeople:  2,
			DiscountAmount:  decimal.NewFromInt(1000),
			FinalAmount:     decimal.NewFromInt(9000),
			Currency:        "jpy",
		},
		Customer: domain.Customer{
			Name:  "Yamada <Taro>",
			Email: "taro@example.com",
		},
		StartTime:  types.TimeString("10:00"),
		EndTime:    types.TimeString("11:00"),
		MenuName:   "Tea ceremony",
		CouponCode: ptr.Ptr("WELCOME10"),
	}
}

func TestRenderConfirmation(t *testing.T) {
	body, err := renderConfirmation("Sakura", testDetails())
	require.NoError(t, err)

	assert.Contains(t, body, "Sakura")
	assert.Contains(t, body, "2026-11-03")
	assert.Contains(t, body, "10:00 - 11:00")
	assert.Contains(t, body, "Tea ceremony")
	assert.Contains(t, body, "WELCOME10")
	assert.Contains(t, body, "9000 JPY")
	assert.Contains(t, body, "Yamada &lt;Taro&gt;")
	assert.NotContains(t, body, "<Taro>")
}

func TestRenderConfirmation_WithoutCoupon(t *testing.T) {
	details := testDetails()
	details.CouponCode = nil

	body, err := renderConfirmation("", details)
	require.NoError(t, err)
	assert.NotContains(t, body, "クーポン")
}

func TestSendReservationConfirmation(t *testing.T) {
	dialer := &fakeDialer{}
	m := NewMailerWithDialer(Config{Enabled: true, From: "shop@example.com", ShopName: "Sakura"}, dialer, logger.NewNop())

	err := m.SendReservationConfirmation(context.Background(), testDetails())
	require.NoError(t, err)
	require.Len(t, dialer.sent, 1)

	msg := dialer.sent[0]
	assert.Equal(t, []string{"shop@example.com"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"【Sakura】ご予約確認"}, msg.GetHeader("Subject"))
	require.Len(t, msg.GetHeader("To"), 1)
	assert.Contains(t, msg.GetHeader("To")[0], "taro@example.com")
}

func TestSendReservationConfirmation_Disabled(t *testing.T) {
	dialer := &fakeDialer{}
	m := NewMailerWithDialer(Config{Enabled: false}, dialer, logger.NewNop())

	err := m.SendReservationConfirmation(context.Background(), testDetails())
	require.NoError(t, err)
	assert.Empty(t, dialer.sent)
}

func TestSendReservationConfirmation_Errors(t *testing.T) {
	dialer := &fakeDialer{err: errors.New("connection refused")}
	m := NewMailerWithDialer(Config{Enabled: true, From: "shop@example.com"}, dialer, logger.NewNop())

	err := m.SendReservationConfirmation(context.Background(), testDetails())
	assert.ErrorIs(t, err, ErrSend)

	details := testDetails()
	details.Customer.Email = " "
	err = m.SendReservationConfirmation(context.Background(), details)
	assert.ErrorIs(t, err, ErrNoRecipient)
}
