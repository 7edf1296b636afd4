package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/slot"
	quoteReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/quote_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

const defaultMailTimeout = 30 * time.Second

// UseCase use case для создания бронирования
type UseCase struct {
	quoter          Quoter
	slotRepo        SlotRepository
	soldOutRepo     SoldOutRepository
	reservationRepo ReservationRepository
	customerRepo    CustomerRepository
	couponRepo      CouponRepository
	paymentClient   PaymentClient
	mailer          Mailer
	metrics         Metrics
	txManager       TransactionManager
	timeProvider    TimeProvider
	opts            Options
	logger          Logger

	mailWG sync.WaitGroup
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	quoter Quoter,
	slotRepo SlotRepository,
	soldOutRepo SoldOutRepository,
	reservationRepo ReservationRepository,
	customerRepo CustomerRepository,
	couponRepo CouponRepository,
	paymentClient PaymentClient,
	mailer Mailer,
	metrics Metrics,
	txManager TransactionManager,
	opts Options,
	logger Logger,
) *UseCase {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.MailTimeout <= 0 {
		opts.MailTimeout = defaultMailTimeout
	}
	return &UseCase{
		quoter:          quoter,
		slotRepo:        slotRepo,
		soldOutRepo:     soldOutRepo,
		reservationRepo: reservationRepo,
		customerRepo:    customerRepo,
		couponRepo:      couponRepo,
		paymentClient:   paymentClient,
		mailer:          mailer,
		metrics:         metrics,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		opts:            opts,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка вместимости и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: slot=%s, menu=%s, date=%s, people=%d",
		req.SlotID, req.MenuID, req.ReservationDate.Format(domain.DateFormat), req.NumberOfPeople)

	// 1. Валидация входных данных
	now := uc.timeProvider.Now().In(uc.opts.Location)
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.ReservationDate)
	paymentIntentID := normalizePaymentIntentID(req.PaymentIntentID)

	// 2. Рассчитываем стоимость
	quote, err := uc.quoter.Quote(ctx, &quoteReservation.Request{
		MenuID:         req.MenuID,
		NumberOfPeople: req.NumberOfPeople,
		CouponCode:     req.CouponCode,
	})
	if err != nil {
		return nil, mapQuoteError(err)
	}

	// 3. Платеж не должен быть уже привязан к другому бронированию
	if paymentIntentID != nil {
		used, err := uc.reservationRepo.ExistsByPaymentIntent(ctx, *paymentIntentID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check payment intent id=%s: %v", *paymentIntentID, err)
			return nil, fmt.Errorf("%w: failed to check payment intent: %v", ErrInternal, err)
		}
		if used {
			uc.logger.Warn("CreateReservation: payment intent id=%s already used", *paymentIntentID)
			return nil, ErrDuplicatePayment
		}
	}

	// 4. Проверяем платеж в Stripe
	if uc.opts.VerifyPayment && !quote.IsFree() {
		if paymentIntentID == nil {
			uc.logger.Warn("CreateReservation: payment intent is required for amount %s", quote.FinalAmount)
			return nil, ErrPaymentRequired
		}
		if err := uc.verifyPayment(ctx, *paymentIntentID, quote); err != nil {
			return nil, err
		}
	}

	var details *domain.ReservationDetails

	// 5. Проверка мест и сохранение в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Блокируем слот
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateReservation: slot id=%s not found", req.SlotID)
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: failed to get slot: %w", ErrInternal, err)
		}

		// 5.2. Проверяем sold-out
		soldOut, err := uc.soldOutRepo.Exists(txCtx, slot.ID, date)
		if err != nil {
			return fmt.Errorf("%w: failed to check sold-out: %w", ErrInternal, err)
		}
		if soldOut {
			uc.logger.Warn("CreateReservation: slot id=%s is sold out on %s", slot.ID, date.Format(domain.DateFormat))
			return ErrSlotSoldOut
		}

		// 5.3. Проверяем вместимость с учетом уже занятых мест
		reserved, err := uc.reservationRepo.ReservedPeople(txCtx, slot.ID, date)
		if err != nil {
			return fmt.Errorf("%w: failed to count reserved people: %w", ErrInternal, err)
		}

		daily := domain.NewDailySlot(slot, date, false, reserved)
		if !daily.IsBookable(req.NumberOfPeople) {
			uc.logger.Warn("CreateReservation: slot id=%s has %d/%d seats taken, requested %d",
				slot.ID, reserved, slot.Capacity, req.NumberOfPeople)
			return ErrCapacityExceeded
		}

		// 5.4. Сохраняем клиента
		customer, err := uc.customerRepo.Create(txCtx, &domain.Customer{
			Name:        strings.TrimSpace(req.Name),
			Email:       strings.TrimSpace(req.Email),
			PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create customer: %w", ErrInternal, err)
		}

		// 5.5. Сохраняем бронирование с зафиксированными суммами
		reservation, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			CustomerID:      customer.ID,
			SlotID:          slot.ID,
			MenuID:          req.MenuID,
			ReservationDate: date,
			NumberOfPeople:  req.NumberOfPeople,
			BaseAmount:      quote.BaseAmount,
			DiscountAmount:  quote.DiscountAmount,
			FinalAmount:     quote.FinalAmount,
			Currency:        quote.Currency,
			PaymentIntentID: paymentIntentID,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrDuplicatePaymentIntent) {
				return ErrDuplicatePayment
			}
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		// 5.6. Записываем использование купона
		var couponCode *string
		if quote.Coupon != nil {
			if _, err := uc.couponRepo.CreateUsage(txCtx, quote.Coupon.ID, reservation.ID); err != nil {
				return fmt.Errorf("%w: failed to create coupon usage: %w", ErrInternal, err)
			}
			code := quote.Coupon.Code
			couponCode = &code
		}

		details = &domain.ReservationDetails{
			Reservation: *reservation,
			Customer:    *customer,
			StartTime:   slot.StartTime,
			EndTime:     slot.EndTime,
			MenuName:    quote.MenuName,
			CouponCode:  couponCode,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrTransaction) {
			uc.logger.Error("CreateReservation: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateReservation: %v", err)
		}
		return nil, err
	}

	// 6. Метрики и письмо после коммита
	uc.metrics.IncReservationCreated(quote.Coupon != nil)
	if quote.Coupon != nil {
		uc.metrics.IncCouponRedemption(string(quote.Coupon.DiscountType))
	}
	uc.sendConfirmationAsync(details)

	uc.logger.Info("CreateReservation: reservation id=%s created, slot=%s, date=%s, final=%s %s",
		details.ID, details.SlotID, date.Format(domain.DateFormat), details.FinalAmount, details.Currency)

	return &Response{ReservationDetails: details}, nil
}

// Wait ожидает завершения фоновой отправки писем
func (uc *UseCase) Wait() {
	uc.mailWG.Wait()
}

func (uc *UseCase) sendConfirmationAsync(details *domain.ReservationDetails) {
	uc.mailWG.Add(1)
	go func() {
		defer uc.mailWG.Done()

		ctx, cancel := context.WithTimeout(context.Background(), uc.opts.MailTimeout)
		defer cancel()

		if err := uc.mailer.SendReservationConfirmation(ctx, details); err != nil {
			uc.logger.Error("CreateReservation: failed to send confirmation for reservation id=%s: %v", details.ID, err)
		}
	}()
}

func mapQuoteError(err error) error {
	switch {
	case errors.Is(err, quoteReservation.ErrMenuNotFound):
		return ErrMenuNotFound
	case errors.Is(err, quoteReservation.ErrCouponNotFound):
		return ErrCouponNotFound
	case errors.Is(err, quoteReservation.ErrCouponInactive):
		return ErrCouponInactive
	case errors.Is(err, quoteReservation.ErrInvalidPartySize):
		return ErrInvalidPartySize
	case errors.Is(err, quoteReservation.ErrInvalidInput):
		return ErrInvalidInput
	default:
		return fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
	}
}

func normalizePaymentIntentID(id *string) *string {
	if id == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*id)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
