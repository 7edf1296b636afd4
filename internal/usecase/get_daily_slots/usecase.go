package get_daily_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// UseCase use case получения слотов с доступностью на дату
type UseCase struct {
	slotRepo        SlotRepository
	soldOutRepo     SoldOutRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	soldOutRepo SoldOutRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		slotRepo:        slotRepo,
		soldOutRepo:     soldOutRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		location:        location,
		logger:          logger,
	}
}

// Execute возвращает все слоты с учетом sold-out и занятых мест
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDailySlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация даты в часовом поясе магазина
	now := uc.timeProvider.Now().In(uc.location)
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetDailySlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)

	var (
		slots    []*domain.TimeSlot
		soldOut  map[uuid.UUID]struct{}
		reserved map[uuid.UUID]int
	)

	// 2. Читаем слоты, sold-out и занятые места одним снимком
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		slots, err = uc.slotRepo.List(txCtx)
		if err != nil {
			uc.logger.Error("GetDailySlots: failed to list slots: %v", err)
			return fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
		}

		soldOut, err = uc.soldOutRepo.SlotIDsByDate(txCtx, date)
		if err != nil {
			uc.logger.Error("GetDailySlots: failed to get sold-out settings: %v", err)
			return fmt.Errorf("%w: failed to get sold-out settings: %v", ErrInternal, err)
		}

		reserved, err = uc.reservationRepo.ReservedPeopleByDate(txCtx, date)
		if err != nil {
			uc.logger.Error("GetDailySlots: failed to get reserved counts: %v", err)
			return fmt.Errorf("%w: failed to get reserved counts: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("GetDailySlots: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Собираем доступность
	daily := domain.BuildDailySlots(date, slots, soldOut, reserved)

	uc.logger.Info("GetDailySlots: %d slots for %s, %d sold out", len(daily), date.Format(domain.DateFormat), len(soldOut))

	return &Response{
		Date:  date,
		Slots: daily,
	}, nil
}
