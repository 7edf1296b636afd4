package metrics

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNamespace(t *testing.T) {
	assert.Equal(t, "smc_reservation_service", namespace("SMC-Reservation Service"))
	assert.Equal(t, "reservation_service", namespace("  "))
}

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.ObserveHTTP(http.MethodGet, "/api/v1/slots/daily", http.StatusOK, 10*time.Millisecond)
	m.ObserveQuery("select", time.Millisecond, errors.New("boom"))
	m.IncReservationCreated(true)
	m.IncReservationCreated(false)
	m.IncPaymentIntent("ok")
	m.IncCouponRedemption("percent")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/slots/daily", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("select")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ReservationsCreated.WithLabelValues("true")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PaymentIntents.WithLabelValues("ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CouponRedemptions.WithLabelValues("percent")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Millisecond)
		m.ObserveQuery("select", time.Millisecond, nil)
		m.IncReservationCreated(false)
		m.IncPaymentIntent("error")
		m.IncCouponRedemption("fixed")
	})
}
