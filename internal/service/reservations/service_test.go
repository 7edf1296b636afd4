package reservations

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type mockReservationRepo struct{ mock.Mock }

func (m *mockReservationRepo) ListDetails(ctx context.Context, filter domain.ReservationFilter) ([]*domain.ReservationDetails, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*domain.ReservationDetails)
	return list, args.Error(1)
}

func (m *mockReservationRepo) GetDetails(ctx context.Context, id uuid.UUID) (*domain.ReservationDetails, error) {
	args := m.Called(ctx, id)
	details, _ := args.Get(0).(*domain.ReservationDetails)
	return details, args.Error(1)
}

func (m *mockReservationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockCouponRepo struct{ mock.Mock }

func (m *mockCouponRepo) DeleteUsagesByReservation(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testDetails() *domain.ReservationDetails {
	return &domain.ReservationDetails{
		Reservation: domain.Reservation{
			ID:              uuid.New(),
			ReservationDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
			NumberOfPeople:  3,
			BaseAmount:      decimal.NewFromInt(15000),
			DiscountAmount:  decimal.NewFromInt(1500),
			FinalAmount:     decimal.NewFromInt(13500),
			Currency:        "jpy",
			CreatedAt:       time.Date(2026, 10, 20, 12, 0, 0, 0, time.UTC),
		},
		Customer:   domain.Customer{ID: uuid.New(), Name: "Ken Sato", Email: "ken@example.com", PhoneNumber: "080-0000-0000"},
		StartTime:  "13:00",
		EndTime:    "14:00",
		MenuName:   "Tea ceremony",
		CouponCode: ptr.Ptr("AUTUMN"),
	}
}

func TestList_TrimsNameFilter(t *testing.T) {
	repo := &mockReservationRepo{}
	repo.On("ListDetails", mock.Anything, mock.MatchedBy(func(f domain.ReservationFilter) bool {
		return f.CustomerName != nil && *f.CustomerName == "sato" && f.Date == nil
	})).Return([]*domain.ReservationDetails{testDetails()}, nil)

	svc := NewService(repo, &mockCouponRepo{}, passthroughTx{}, logger.NewNop())
	list, err := svc.List(context.Background(), &models.ListRequest{Name: ptr.Ptr("  sato ")})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2026-11-01", list[0].ReservationDate)
	assert.Equal(t, "13:00", list[0].StartTime)
	assert.Equal(t, "Ken Sato", list[0].Customer.Name)
}

func TestList_BlankNameIgnored(t *testing.T) {
	repo := &mockReservationRepo{}
	repo.On("ListDetails", mock.Anything, domain.ReservationFilter{}).Return([]*domain.ReservationDetails{}, nil)

	list, err := NewService(repo, &mockCouponRepo{}, passthroughTx{}, logger.NewNop()).
		List(context.Background(), &models.ListRequest{Name: ptr.Ptr(" ")})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGet(t *testing.T) {
	details := testDetails()
	repo := &mockReservationRepo{}
	repo.On("GetDetails", mock.Anything, details.ID).Return(details, nil)

	resp, err := NewService(repo, &mockCouponRepo{}, passthroughTx{}, logger.NewNop()).Get(context.Background(), details.ID)
	require.NoError(t, err)
	assert.Equal(t, details.ID.String(), resp.ID)
	assert.Equal(t, "Tea ceremony", resp.MenuName)
}

func TestGet_NotFound(t *testing.T) {
	id := uuid.New()
	repo := &mockReservationRepo{}
	repo.On("GetDetails", mock.Anything, id).Return(nil, reservationRepo.ErrReservationNotFound)

	_, err := NewService(repo, &mockCouponRepo{}, passthroughTx{}, logger.NewNop()).Get(context.Background(), id)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel(t *testing.T) {
	id := uuid.New()
	repo := &mockReservationRepo{}
	repo.On("Delete", mock.Anything, id).Return(nil)
	coupons := &mockCouponRepo{}
	coupons.On("DeleteUsagesByReservation", mock.Anything, id).Return(nil)

	err := NewService(repo, coupons, passthroughTx{}, logger.NewNop()).Cancel(context.Background(), id)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	coupons.AssertExpectations(t)
}

func TestCancel_NotFound(t *testing.T) {
	id := uuid.New()
	repo := &mockReservationRepo{}
	repo.On("Delete", mock.Anything, id).Return(reservationRepo.ErrReservationNotFound)
	coupons := &mockCouponRepo{}
	coupons.On("DeleteUsagesByReservation", mock.Anything, id).Return(nil)

	err := NewService(repo, coupons, passthroughTx{}, logger.NewNop()).Cancel(context.Background(), id)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExport(t *testing.T) {
	from := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC)

	repo := &mockReservationRepo{}
	repo.On("ListDetails", mock.Anything, mock.MatchedBy(func(f domain.ReservationFilter) bool {
		return f.From != nil && f.From.Equal(from) && f.To != nil && f.To.Equal(to)
	})).Return([]*domain.ReservationDetails{testDetails()}, nil)

	file, err := NewService(repo, &mockCouponRepo{}, passthroughTx{}, logger.NewNop()).
		Export(context.Background(), &models.ExportRequest{From: from, To: to})
	require.NoError(t, err)
	assert.Equal(t, "reservations_2026-11-01_to_2026-11-30.xlsx", file.FileName)
	assert.Equal(t, xlsxContentType, file.ContentType)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Period: 2026-11-01 - 2026-11-30", rows[0][0])
	assert.Equal(t, exportHeaders[0], rows[1][0])
	assert.Equal(t, "2026-11-01", rows[2][0])
	assert.Equal(t, "Tea ceremony", rows[2][3])
	assert.Equal(t, "Ken Sato", rows[2][5])
	assert.Equal(t, "AUTUMN", rows[2][12])
}

func TestExport_InvalidPeriod(t *testing.T) {
	svc := NewService(&mockReservationRepo{}, &mockCouponRepo{}, passthroughTx{}, logger.NewNop())

	_, err := svc.Export(context.Background(), &models.ExportRequest{
		From: time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Export(context.Background(), &models.ExportRequest{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
