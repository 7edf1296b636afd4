package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBOpenConns     prometheus.Gauge
	DBInUseConns    prometheus.Gauge
	DBIdleConns     prometheus.Gauge
	DBWaitCount     prometheus.Gauge

	ReservationsCreated *prometheus.CounterVec
	PaymentIntents      *prometheus.CounterVec
	CouponRedemptions   *prometheus.CounterVec
}

// New создает и регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	ns := namespace(serviceName)

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "http_requests_total",
				Help:      "Count of HTTP requests by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: ns,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: ns,
				Name:      "db_query_duration_seconds",
				Help:      "Database query latency by operation.",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"operation"},
		),
		DBQueryErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "db_query_errors_total",
				Help:      "Count of failed database queries by operation.",
			},
			[]string{"operation"},
		),
		DBOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_open_connections",
			Help:      "Open connections in the pool.",
		}),
		DBInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_in_use_connections",
			Help:      "Connections currently in use.",
		}),
		DBIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_idle_connections",
			Help:      "Idle connections in the pool.",
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_wait_count",
			Help:      "Total number of connections waited for.",
		}),
		ReservationsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "reservations_created_total",
				Help:      "Count of reservations created, by whether a coupon was applied.",
			},
			[]string{"coupon"},
		),
		PaymentIntents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "payment_intents_total",
				Help:      "Count of payment intent creations by result.",
			},
			[]string{"result"},
		),
		CouponRedemptions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "coupon_redemptions_total",
				Help:      "Count of coupon usages by discount type.",
			},
			[]string{"type"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConns,
		m.DBInUseConns,
		m.DBIdleConns,
		m.DBWaitCount,
		m.ReservationsCreated,
		m.PaymentIntents,
		m.CouponRedemptions,
	)

	return m
}

// ObserveHTTP записывает результат HTTP запроса
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveQuery записывает длительность запроса к БД
func (m *Metrics) ObserveQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// IncReservationCreated увеличивает счетчик созданных бронирований
func (m *Metrics) IncReservationCreated(withCoupon bool) {
	if m == nil {
		return
	}
	m.ReservationsCreated.WithLabelValues(strconv.FormatBool(withCoupon)).Inc()
}

// IncPaymentIntent увеличивает счетчик созданных платежных намерений
func (m *Metrics) IncPaymentIntent(result string) {
	if m == nil {
		return
	}
	m.PaymentIntents.WithLabelValues(result).Inc()
}

// IncCouponRedemption увеличивает счетчик использований купонов
func (m *Metrics) IncCouponRedemption(discountType string) {
	if m == nil {
		return
	}
	m.CouponRedemptions.WithLabelValues(discountType).Inc()
}

func namespace(serviceName string) string {
	ns := strings.ToLower(strings.TrimSpace(serviceName))
	ns = strings.NewReplacer("-", "_", " ", "_", ".", "_").Replace(ns)
	if ns == "" {
		return "reservation_service"
	}
	return ns
}
