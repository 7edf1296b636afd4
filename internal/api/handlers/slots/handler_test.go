package slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	slotsService "github.com/m04kA/SMC-ReservationService/internal/service/slots"
	"github.com/m04kA/SMC-ReservationService/internal/service/slots/models"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) List(ctx context.Context) ([]*models.SlotResponse, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*models.SlotResponse)
	return list, args.Error(1)
}

func (m *mockService) Create(ctx context.Context, req *models.SlotRequest) (*models.SlotResponse, error) {
	args := m.Called(ctx, req)
	slot, _ := args.Get(0).(*models.SlotResponse)
	return slot, args.Error(1)
}

func (m *mockService) Update(ctx context.Context, id uuid.UUID, req *models.SlotRequest) (*models.SlotResponse, error) {
	args := m.Called(ctx, id, req)
	slot, _ := args.Get(0).(*models.SlotResponse)
	return slot, args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockService) ListSoldOut(ctx context.Context, date time.Time) ([]*models.SoldOutResponse, error) {
	args := m.Called(ctx, date)
	list, _ := args.Get(0).([]*models.SoldOutResponse)
	return list, args.Error(1)
}

func (m *mockService) ToggleSoldOut(ctx context.Context, slotID uuid.UUID, date time.Time) (*models.ToggleSoldOutResponse, error) {
	args := m.Called(ctx, slotID, date)
	resp, _ := args.Get(0).(*models.ToggleSoldOutResponse)
	return resp, args.Error(1)
}

func newRouter(svc SlotService) *mux.Router {
	h := NewHandler(svc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/slots", h.List).Methods(http.MethodGet)
	r.HandleFunc("/slots", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/slots/{slotId}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/slots/{slotId}", h.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/slots/{slotId}/sold-out/toggle", h.ToggleSoldOut).Methods(http.MethodPost)
	r.HandleFunc("/sold-out", h.ListSoldOut).Methods(http.MethodGet)
	return r
}

func serve(svc SlotService, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(method, target, strings.NewReader(body)))
	return w
}

func TestCreate(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, &models.SlotRequest{StartTime: "09:00", EndTime: "10:00", Capacity: 4}).
		Return(&models.SlotResponse{ID: "s1", StartTime: "09:00", EndTime: "10:00", Capacity: 4}, nil)
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, slotsService.ErrInvalidInput)

	w := serve(svc, http.MethodPost, "/slots", `{"startTime":"09:00","endTime":"10:00","capacity":4}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"s1"`)

	w = serve(svc, http.MethodPost, "/slots", `{"startTime":"10:00","endTime":"09:00","capacity":4}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(svc, http.MethodPost, "/slots", `{"startTime":"09:00","unknown":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDelete(t *testing.T) {
	free, busy, missing := uuid.New(), uuid.New(), uuid.New()
	svc := &mockService{}
	svc.On("Delete", mock.Anything, free).Return(nil)
	svc.On("Delete", mock.Anything, busy).Return(slotsService.ErrSlotInUse)
	svc.On("Delete", mock.Anything, missing).Return(slotsService.ErrSlotNotFound)

	assert.Equal(t, http.StatusNoContent, serve(svc, http.MethodDelete, "/slots/"+free.String(), "").Code)
	assert.Equal(t, http.StatusConflict, serve(svc, http.MethodDelete, "/slots/"+busy.String(), "").Code)
	assert.Equal(t, http.StatusNotFound, serve(svc, http.MethodDelete, "/slots/"+missing.String(), "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, http.MethodDelete, "/slots/abc", "").Code)
}

func TestToggleSoldOut(t *testing.T) {
	id := uuid.New()
	date := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)
	svc := &mockService{}
	svc.On("ToggleSoldOut", mock.Anything, id, date).
		Return(&models.ToggleSoldOutResponse{SlotID: id.String(), Date: "2026-12-24", IsSoldOut: true}, nil)

	w := serve(svc, http.MethodPost, "/slots/"+id.String()+"/sold-out/toggle", `{"date":"2026-12-24"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isSoldOut":true`)

	w = serve(svc, http.MethodPost, "/slots/"+id.String()+"/sold-out/toggle", `{"date":"24.12.2026"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListSoldOut(t *testing.T) {
	date := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)
	svc := &mockService{}
	svc.On("ListSoldOut", mock.Anything, date).
		Return([]*models.SoldOutResponse{{ID: "so1", SlotID: "s1", Date: "2026-12-24"}}, nil)

	w := serve(svc, http.MethodGet, "/sold-out?date=2026-12-24", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slotId":"s1"`)

	assert.Equal(t, http.StatusBadRequest, serve(svc, http.MethodGet, "/sold-out", "").Code)
}
