package admin_auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	authService "github.com/m04kA/SMC-ReservationService/internal/service/auth"
	"github.com/m04kA/SMC-ReservationService/internal/service/auth/models"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.LoginResponse)
	return resp, args.Error(1)
}

func (m *mockService) Me(ctx context.Context, id uuid.UUID) (*models.AdminResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.AdminResponse)
	return resp, args.Error(1)
}

var cookie = CookieConfig{Name: "admin_token", Secure: true}

func TestLogin_SetsCookie(t *testing.T) {
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	svc := &mockService{}
	svc.On("Login", mock.Anything, &models.LoginRequest{Email: "owner@example.com", Password: "secret123"}).
		Return(&models.LoginResponse{Token: "jwt-token", ExpiresAt: expires}, nil)

	w := httptest.NewRecorder()
	NewHandler(svc, cookie, logger.NewNop()).Login(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/login",
		strings.NewReader(`{"email":"owner@example.com","password":"secret123"}`)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jwt-token")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "admin_token", cookies[0].Name)
	assert.Equal(t, "jwt-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid input", authService.ErrInvalidInput, http.StatusBadRequest},
		{"wrong password", authService.ErrInvalidCredentials, http.StatusUnauthorized},
		{"internal", authService.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Login", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := httptest.NewRecorder()
			NewHandler(svc, cookie, logger.NewNop()).Login(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/login",
				strings.NewReader(`{"email":"a@b.c","password":"x"}`)))

			assert.Equal(t, tt.status, w.Code)
			assert.Empty(t, w.Result().Cookies())
		})
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(&mockService{}, cookie, logger.NewNop()).Logout(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/logout", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestMe(t *testing.T) {
	id := uuid.New()
	svc := &mockService{}
	svc.On("Me", mock.Anything, id).Return(&models.AdminResponse{ID: id.String(), Email: "owner@example.com"}, nil)

	h := NewHandler(svc, cookie, logger.NewNop())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/me", nil)
	h.Me(w, r.WithContext(middleware.WithAdminID(r.Context(), id)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "owner@example.com")

	w = httptest.NewRecorder()
	h.Me(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
