package get_daily_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type mockSlotRepo struct{ mock.Mock }

func (m *mockSlotRepo) List(ctx context.Context) ([]*domain.TimeSlot, error) {
	args := m.Called(ctx)
	slots, _ := args.Get(0).([]*domain.TimeSlot)
	return slots, args.Error(1)
}

type mockSoldOutRepo struct{ mock.Mock }

func (m *mockSoldOutRepo) SlotIDsByDate(ctx context.Context, date time.Time) (map[uuid.UUID]struct{}, error) {
	args := m.Called(ctx, date)
	ids, _ := args.Get(0).(map[uuid.UUID]struct{})
	return ids, args.Error(1)
}

type mockReservationRepo struct{ mock.Mock }

func (m *mockReservationRepo) ReservedPeopleByDate(ctx context.Context, date time.Time) (map[uuid.UUID]int, error) {
	args := m.Called(ctx, date)
	reserved, _ := args.Get(0).(map[uuid.UUID]int)
	return reserved, args.Error(1)
}

type passthroughTx struct{}

func (passthroughTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newTestUseCase(slots *mockSlotRepo, soldOut *mockSoldOutRepo, reservations *mockReservationRepo) *UseCase {
	uc := NewUseCase(slots, soldOut, reservations, passthroughTx{}, time.UTC, logger.NewNop())
	uc.timeProvider = fixedTime{now: time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute(t *testing.T) {
	date := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	morning := &domain.TimeSlot{ID: uuid.New(), StartTime: "09:00", EndTime: "10:00", Capacity: 4}
	noon := &domain.TimeSlot{ID: uuid.New(), StartTime: "12:00", EndTime: "13:00", Capacity: 6}

	slots := &mockSlotRepo{}
	slots.On("List", mock.Anything).Return([]*domain.TimeSlot{morning, noon}, nil)

	soldOut := &mockSoldOutRepo{}
	soldOut.On("SlotIDsByDate", mock.Anything, date).Return(map[uuid.UUID]struct{}{noon.ID: {}}, nil)

	reservations := &mockReservationRepo{}
	reservations.On("ReservedPeopleByDate", mock.Anything, date).Return(map[uuid.UUID]int{morning.ID: 3}, nil)

	resp, err := newTestUseCase(slots, soldOut, reservations).Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)

	assert.Equal(t, morning.ID, resp.Slots[0].ID)
	assert.Equal(t, 3, resp.Slots[0].ReservedCount)
	assert.Equal(t, 1, resp.Slots[0].AvailableCapacity)
	assert.False(t, resp.Slots[0].IsSoldOut)

	assert.True(t, resp.Slots[1].IsSoldOut)
	assert.Equal(t, 6, resp.Slots[1].AvailableCapacity)

	slots.AssertExpectations(t)
	soldOut.AssertExpectations(t)
	reservations.AssertExpectations(t)
}

func TestExecute_TodayIsAllowed(t *testing.T) {
	today := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

	slots := &mockSlotRepo{}
	slots.On("List", mock.Anything).Return([]*domain.TimeSlot{}, nil)
	soldOut := &mockSoldOutRepo{}
	soldOut.On("SlotIDsByDate", mock.Anything, today).Return(map[uuid.UUID]struct{}{}, nil)
	reservations := &mockReservationRepo{}
	reservations.On("ReservedPeopleByDate", mock.Anything, today).Return(map[uuid.UUID]int{}, nil)

	resp, err := newTestUseCase(slots, soldOut, reservations).Execute(context.Background(), &Request{Date: today})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DateInPast(t *testing.T) {
	slots := &mockSlotRepo{}
	uc := newTestUseCase(slots, &mockSoldOutRepo{}, &mockReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{Date: time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)})
	assert.ErrorIs(t, err, ErrDateInPast)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidDate)

	slots.AssertNotCalled(t, "List", mock.Anything)
}

func TestExecute_RepositoryError(t *testing.T) {
	slots := &mockSlotRepo{}
	slots.On("List", mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := newTestUseCase(slots, &mockSoldOutRepo{}, &mockReservationRepo{}).
		Execute(context.Background(), &Request{Date: time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)})
	assert.ErrorIs(t, err, ErrInternal)
}
