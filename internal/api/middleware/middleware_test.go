package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
)

type fakeParser struct {
	valid string
	id    uuid.UUID
}

func (p fakeParser) ParseToken(token string) (uuid.UUID, error) {
	if token != p.valid {
		return uuid.Nil, errors.New("bad token")
	}
	return p.id, nil
}

func TestAdminAuth(t *testing.T) {
	id := uuid.New()
	guard := AdminAuth(fakeParser{valid: "good", id: id}, "admin_token", logger.NewNop())

	var gotID uuid.UUID
	h := guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetAdminID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		status int
	}{
		{"no token", func(r *http.Request) {}, http.StatusUnauthorized},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") }, http.StatusOK},
		{"bad bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized},
		{"basic scheme", func(r *http.Request) { r.Header.Set("Authorization", "Basic good") }, http.StatusUnauthorized},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "admin_token", Value: "good"}) }, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID = uuid.Nil
			r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/me", nil)
			tt.setup(r)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, r)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, id, gotID)
			}
		})
	}
}

func TestLocalLimiter(t *testing.T) {
	l := NewLocalLimiter(time.Minute, 2)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, _ := l.Allow(ctx, "1.2.3.4")
	assert.False(t, ok)

	ok, _ = l.Allow(ctx, "5.6.7.8")
	assert.True(t, ok, "other clients have their own bucket")

	now = now.Add(30 * time.Second)
	ok, _ = l.Allow(ctx, "1.2.3.4")
	assert.True(t, ok, "bucket refills over time")
}

type stubLimiter struct {
	allowed bool
	err     error
}

func (s stubLimiter) Allow(context.Context, string) (bool, error) { return s.allowed, s.err }

func TestRateLimit(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusCreated) })

	tests := []struct {
		name    string
		limiter Limiter
		status  int
	}{
		{"allowed", stubLimiter{allowed: true}, http.StatusCreated},
		{"blocked", stubLimiter{allowed: false}, http.StatusTooManyRequests},
		{"limiter down", stubLimiter{err: errors.New("redis down")}, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := RateLimit(tt.limiter, time.Minute, nil, logger.NewNop())(next)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/reservations", nil))
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusTooManyRequests {
				assert.Equal(t, "60", w.Header().Get("Retry-After"))
			}
		})
	}
}

func TestRateLimit_SpoofedForwardedForSharesBucket(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusCreated) })
	proxies, err := NewTrustedProxies([]string{"10.0.0.0/8"})
	require.NoError(t, err)

	h := RateLimit(NewLocalLimiter(time.Minute, 2), time.Minute, proxies, logger.NewNop())(next)

	allowed := 0
	for i := 0; i < 50; i++ {
		r := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", nil)
		r.RemoteAddr = "203.0.113.7:40000"
		r.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		if w.Code == http.StatusCreated {
			allowed++
		}
	}

	assert.Equal(t, 2, allowed)
}

func TestRateLimit_TrustedProxyForwardsClient(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusCreated) })
	proxies, err := NewTrustedProxies([]string{"10.0.0.1"})
	require.NoError(t, err)

	h := RateLimit(NewLocalLimiter(time.Minute, 1), time.Minute, proxies, logger.NewNop())(next)

	for i := 0; i < 3; i++ {
		r := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", nil)
		r.RemoteAddr = "10.0.0.1:40000"
		r.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, http.StatusCreated, w.Code)
	}
}

func TestNewTrustedProxies(t *testing.T) {
	proxies, err := NewTrustedProxies([]string{"10.0.0.0/8", " 192.168.1.10 ", "", "::1"})
	require.NoError(t, err)

	assert.True(t, proxies.Contains("10.20.30.40"))
	assert.True(t, proxies.Contains("192.168.1.10"))
	assert.True(t, proxies.Contains("::1"))
	assert.False(t, proxies.Contains("192.168.1.11"))
	assert.False(t, proxies.Contains("not-an-ip"))

	var empty *TrustedProxies
	assert.False(t, empty.Contains("10.0.0.1"))

	_, err = NewTrustedProxies([]string{"10.0.0.0/33"})
	assert.Error(t, err)
	_, err = NewTrustedProxies([]string{"proxy.local"})
	assert.Error(t, err)
}

func TestClientIP(t *testing.T) {
	proxies, err := NewTrustedProxies([]string{"10.0.0.0/8"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		realIP     string
		proxies    *TrustedProxies
		want       string
	}{
		{"direct", "203.0.113.7:54321", "", "", proxies, "203.0.113.7"},
		{"untrusted peer ignores forwarded", "203.0.113.7:54321", "198.51.100.1", "198.51.100.2", proxies, "203.0.113.7"},
		{"no proxies configured", "10.0.0.1:54321", "198.51.100.1", "", nil, "10.0.0.1"},
		{"trusted peer uses forwarded", "10.0.0.1:54321", "198.51.100.1", "", proxies, "198.51.100.1"},
		{"spoofed left hop skipped", "10.0.0.1:54321", "1.2.3.4, 198.51.100.1, 10.0.0.2", "", proxies, "198.51.100.1"},
		{"real ip from trusted peer", "10.0.0.1:54321", "", "172.16.0.5", proxies, "172.16.0.5"},
		{"garbage forwarded falls back", "10.0.0.1:54321", "unknown", "", proxies, "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}
			assert.Equal(t, tt.want, ClientIP(r, tt.proxies))
		})
	}
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewWithRegisterer("test_service", prometheus.NewRegistry())

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/menu-items/{menuId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/menu-items/123", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/menu-items/{menuId}", "404"),
	))
}
