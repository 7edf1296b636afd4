package coupon

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/storagetest"
)

func TestCreate_DuplicateCode(t *testing.T) {
	rec, mock := storagetest.NewDB(t)
	mock.ExpectQuery(`INSERT INTO coupons`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: couponsCodeKey})

	_, err := NewRepository(rec).Create(context.Background(), &domain.Coupon{
		Code:          "AUTUMN",
		Name:          "Autumn",
		DiscountType:  domain.DiscountPercent,
		DiscountValue: decimal.NewFromInt(10),
		IsActive:      true,
	})

	assert.ErrorIs(t, err, ErrDuplicateCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUsage_ReservationAlreadyHasCoupon(t *testing.T) {
	rec, mock := storagetest.NewDB(t)
	mock.ExpectQuery(`INSERT INTO coupon_usages`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "coupon_usages_reservation_id_key"})

	_, err := NewRepository(rec).CreateUsage(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrUsageExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleActive_NotFound(t *testing.T) {
	rec, mock := storagetest.NewDB(t)
	mock.ExpectQuery(`UPDATE coupons c SET is_active = NOT c.is_active`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewRepository(rec).ToggleActive(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrCouponNotFound)
}
