package coupon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/pgerrors"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

const couponsCodeKey = "coupons_code_key"

var couponColumns = []string{
	"c.id",
	"c.code",
	"c.name",
	"c.discount_type",
	"c.discount_value",
	"c.is_active",
	"c.created_at",
	"c.updated_at",
}

// Repository репозиторий купонов и истории их использования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория купонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает купон, код должен быть уже нормализован
func (r *Repository) Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	coupon.ID = uuid.New()

	query, args, err := psqlbuilder.Insert("coupons").
		Columns("id", "code", "name", "discount_type", "discount_value", "is_active").
		Values(coupon.ID, coupon.Code, coupon.Name, coupon.DiscountType, coupon.DiscountValue, coupon.IsActive).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&coupon.CreatedAt, &coupon.UpdatedAt); err != nil {
		if pgerrors.IsUniqueViolation(err, couponsCodeKey) {
			return nil, ErrDuplicateCode
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return coupon, nil
}

// GetByCode получает купон по коду (без учета регистра)
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	return r.getOne(ctx, squirrel.Eq{"c.code": domain.NormalizeCouponCode(code)}, "GetByCode")
}

// ListWithUsage возвращает все купоны (новые первыми) с количеством использований
func (r *Repository) ListWithUsage(ctx context.Context) ([]*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := append(append([]string{}, couponColumns...), "COUNT(u.id) AS usage_count")

	query, args, err := psqlbuilder.Select(columns...).
		From("coupons c").
		LeftJoin("coupon_usages u ON u.coupon_id = c.id").
		GroupBy("c.id").
		OrderBy("c.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithUsage - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithUsage - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	coupons := make([]*domain.Coupon, 0)
	for rows.Next() {
		var c domain.Coupon
		err := rows.Scan(
			&c.ID,
			&c.Code,
			&c.Name,
			&c.DiscountType,
			&c.DiscountValue,
			&c.IsActive,
			&c.CreatedAt,
			&c.UpdatedAt,
			&c.UsageCount,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithUsage - scan row: %v", ErrScanRow, err)
		}
		coupons = append(coupons, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithUsage - rows error: %v", ErrScanRow, err)
	}

	return coupons, nil
}

// ToggleActive инвертирует флаг активности и возвращает обновленный купон
func (r *Repository) ToggleActive(ctx context.Context, id uuid.UUID) (*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("coupons c").
		Set("is_active", squirrel.Expr("NOT c.is_active")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"c.id": id}).
		Suffix("RETURNING c.id, c.code, c.name, c.discount_type, c.discount_value, c.is_active, c.created_at, c.updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ToggleActive - build update query: %v", ErrBuildQuery, err)
	}

	coupon, err := scanCoupon(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ToggleActive - scan coupon: %v", ErrScanRow, err)
	}

	return coupon, nil
}

// CreateUsage записывает применение купона к бронированию
func (r *Repository) CreateUsage(ctx context.Context, couponID, reservationID uuid.UUID) (*domain.CouponUsage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	usage := &domain.CouponUsage{
		ID:            uuid.New(),
		CouponID:      couponID,
		ReservationID: reservationID,
	}

	query, args, err := psqlbuilder.Insert("coupon_usages").
		Columns("id", "coupon_id", "reservation_id").
		Values(usage.ID, usage.CouponID, usage.ReservationID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateUsage - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&usage.CreatedAt); err != nil {
		if pgerrors.IsUniqueViolation(err, "") {
			return nil, ErrUsageExists
		}
		return nil, fmt.Errorf("%w: CreateUsage - execute insert: %w", ErrExecQuery, err)
	}

	return usage, nil
}

// DeleteUsagesByReservation удаляет историю использования купона для бронирования
func (r *Repository) DeleteUsagesByReservation(ctx context.Context, reservationID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("coupon_usages").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteUsagesByReservation - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteUsagesByReservation - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, cond squirrel.Eq, op string) (*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(couponColumns...).
		From("coupons c").
		Where(cond).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	coupon, err := scanCoupon(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan coupon: %v", ErrScanRow, op, err)
	}

	return coupon, nil
}

func scanCoupon(row *sql.Row) (*domain.Coupon, error) {
	var c domain.Coupon
	err := row.Scan(
		&c.ID,
		&c.Code,
		&c.Name,
		&c.DiscountType,
		&c.DiscountValue,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
