package reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	reservationsService "github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) List(ctx context.Context, req *models.ListRequest) ([]*models.ReservationResponse, error) {
	args := m.Called(ctx, req)
	list, _ := args.Get(0).([]*models.ReservationResponse)
	return list, args.Error(1)
}

func (m *mockService) Get(ctx context.Context, id uuid.UUID) (*models.ReservationResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.ReservationResponse)
	return resp, args.Error(1)
}

func (m *mockService) Cancel(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockService) Export(ctx context.Context, req *models.ExportRequest) (*models.ExportFile, error) {
	args := m.Called(ctx, req)
	file, _ := args.Get(0).(*models.ExportFile)
	return file, args.Error(1)
}

func newRouter(svc ReservationService) *mux.Router {
	h := NewHandler(svc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/reservations", h.List).Methods(http.MethodGet)
	r.HandleFunc("/reservations/export", h.Export).Methods(http.MethodGet)
	r.HandleFunc("/reservations/{reservationId}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/reservations/{reservationId}", h.Cancel).Methods(http.MethodDelete)
	return r
}

func TestList_Filters(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, mock.MatchedBy(func(req *models.ListRequest) bool {
		return req.Date != nil && req.Date.Format("2006-01-02") == "2026-04-01" &&
			req.Name != nil && *req.Name == "yamada"
	})).Return([]*models.ReservationResponse{{ID: "r1"}}, nil)

	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reservations?date=2026-04-01&name=%20yamada%20", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"r1"`)

	w = httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reservations?date=April", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancel(t *testing.T) {
	id := uuid.New()
	svc := &mockService{}
	svc.On("Cancel", mock.Anything, id).Return(nil)
	svc.On("Cancel", mock.Anything, mock.Anything).Return(reservationsService.ErrReservationNotFound)

	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/reservations/"+id.String(), nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/reservations/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/reservations/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGet(t *testing.T) {
	id := uuid.New()
	missing := uuid.New()
	svc := &mockService{}
	svc.On("Get", mock.Anything, id).Return(&models.ReservationResponse{ID: id.String(), MenuName: "Tea ceremony"}, nil)
	svc.On("Get", mock.Anything, missing).Return(nil, reservationsService.ErrReservationNotFound)

	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reservations/"+id.String(), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"menuName":"Tea ceremony"`)

	w = httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reservations/"+missing.String(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reservations/xyz", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExport(t *testing.T) {
	svc := &mockService{}
	svc.On("Export", mock.Anything, mock.Anything).Return(&models.ExportFile{
		FileName:    "reservations_2026-04-01_2026-04-30.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     []byte("PK-fake"),
	}, nil)

	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reservations/export?from=2026-04-01&to=2026-04-30", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="reservations_2026-04-01_2026-04-30.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "PK-fake", w.Body.String())

	w = httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reservations/export?from=2026-04-01", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
