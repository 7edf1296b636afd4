package create_payment_intent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	createPaymentIntent "github.com/m04kA/SMC-ReservationService/internal/usecase/create_payment_intent"
	quoteReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/quote_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *createPaymentIntent.Request) (*createPaymentIntent.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*createPaymentIntent.Response)
	return resp, args.Error(1)
}

func TestHandle_Created(t *testing.T) {
	menuID := uuid.New()
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createPaymentIntent.Request) bool {
		return req.MenuID == menuID && req.NumberOfPeople == 3 && req.IdempotencyKey == "key-1" &&
			req.CouponCode != nil && *req.CouponCode == "WELCOME10"
	})).Return(&createPaymentIntent.Response{
		ClientSecret:    "pi_1_secret",
		PaymentIntentID: "pi_1",
		Amount:          decimal.NewFromInt(10800),
		Currency:        "jpy",
	}, nil)

	body := `{"menuId":"` + menuID.String() + `","numberOfPeople":3,"couponCode":"WELCOME10"}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/payment-intents", strings.NewReader(body))
	r.Header.Set("Idempotency-Key", "key-1")
	w := httptest.NewRecorder()

	NewHandler(uc, logger.NewNop()).Handle(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp PaymentIntentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pi_1_secret", resp.ClientSecret)
	assert.Equal(t, "pi_1", resp.PaymentIntentID)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"menu not found", quoteReservation.ErrMenuNotFound, http.StatusNotFound, msgMenuNotFound},
		{"coupon not found", quoteReservation.ErrCouponNotFound, http.StatusNotFound, msgCouponNotFound},
		{"coupon inactive", quoteReservation.ErrCouponInactive, http.StatusBadRequest, msgCouponInactive},
		{"party size", quoteReservation.ErrInvalidPartySize, http.StatusBadRequest, msgInvalidPartySize},
		{"free", createPaymentIntent.ErrNothingToPay, http.StatusBadRequest, msgNothingToPay},
		{"stripe", createPaymentIntent.ErrPaymentProvider, http.StatusBadGateway, msgPaymentProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			body := `{"menuId":"` + uuid.NewString() + `","numberOfPeople":1}`
			w := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/payment-intents", strings.NewReader(body)))

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
		})
	}
}
