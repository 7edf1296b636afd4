package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/pgerrors"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

const paymentIntentKey = "reservations_payment_intent_id_key"

var detailsColumns = []string{
	"r.id",
	"r.customer_id",
	"r.slot_id",
	"r.menu_id",
	"r.reservation_date",
	"r.number_of_people",
	"r.base_amount",
	"r.discount_amount",
	"r.final_amount",
	"r.currency",
	"r.payment_intent_id",
	"r.created_at",
	"r.updated_at",
	"c.name",
	"c.email",
	"c.phone_number",
	"s.start_time",
	"s.end_time",
	"m.name",
	"cp.code",
}

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование
// Проверка вместимости выполняется вызывающим кодом в той же транзакции
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	res.ID = uuid.New()

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"customer_id",
			"slot_id",
			"menu_id",
			"reservation_date",
			"number_of_people",
			"base_amount",
			"discount_amount",
			"final_amount",
			"currency",
			"payment_intent_id",
		).
		Values(
			res.ID,
			res.CustomerID,
			res.SlotID,
			res.MenuID,
			res.ReservationDate.Format(domain.DateFormat),
			res.NumberOfPeople,
			res.BaseAmount,
			res.DiscountAmount,
			res.FinalAmount,
			res.Currency,
			res.PaymentIntentID,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&res.CreatedAt, &res.UpdatedAt); err != nil {
		if pgerrors.IsUniqueViolation(err, paymentIntentKey) {
			return nil, ErrDuplicatePaymentIntent
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return res, nil
}

// ReservedPeople возвращает количество забронированных мест в слоте на дату
// Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) ReservedPeople(ctx context.Context, slotID uuid.UUID, date time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("number_of_people").
		From("reservations").
		Where(squirrel.Eq{"slot_id": slotID, "reservation_date": date.Format(domain.DateFormat)})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ReservedPeople - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ReservedPeople - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	total := 0
	for rows.Next() {
		var people int
		if err := rows.Scan(&people); err != nil {
			return 0, fmt.Errorf("%w: ReservedPeople - scan row: %v", ErrScanRow, err)
		}
		total += people
	}

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: ReservedPeople - rows error: %v", ErrScanRow, err)
	}

	return total, nil
}

// ReservedPeopleByDate возвращает количество забронированных мест по слотам на дату
func (r *Repository) ReservedPeopleByDate(ctx context.Context, date time.Time) (map[uuid.UUID]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_id", "COALESCE(SUM(number_of_people), 0)").
		From("reservations").
		Where(squirrel.Eq{"reservation_date": date.Format(domain.DateFormat)}).
		GroupBy("slot_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReservedPeopleByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ReservedPeopleByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reserved := make(map[uuid.UUID]int)
	for rows.Next() {
		var slotID uuid.UUID
		var people int
		if err := rows.Scan(&slotID, &people); err != nil {
			return nil, fmt.Errorf("%w: ReservedPeopleByDate - scan row: %v", ErrScanRow, err)
		}
		reserved[slotID] = people
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ReservedPeopleByDate - rows error: %v", ErrScanRow, err)
	}

	return reserved, nil
}

// ExistsByPaymentIntent проверяет, использован ли платеж
func (r *Repository) ExistsByPaymentIntent(ctx context.Context, paymentIntentID string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("reservations").
		Where(squirrel.Eq{"payment_intent_id": paymentIntentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByPaymentIntent - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByPaymentIntent - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// GetDetails получает бронирование с данными клиента, слота, меню и купона
func (r *Repository) GetDetails(ctx context.Context, id uuid.UUID) (*domain.ReservationDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsQuery().
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetails - build select query: %v", ErrBuildQuery, err)
	}

	details, err := scanDetails(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetails - scan reservation: %v", ErrScanRow, err)
	}

	return details, nil
}

// ListDetails получает бронирования с фильтрацией для админки
// Сортировка: новые даты первыми, внутри дня по времени начала
func (r *Repository) ListDetails(ctx context.Context, filter domain.ReservationFilter) ([]*domain.ReservationDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := detailsQuery()

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.reservation_date": filter.Date.Format(domain.DateFormat)})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"r.reservation_date": filter.From.Format(domain.DateFormat)})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"r.reservation_date": filter.To.Format(domain.DateFormat)})
	}
	if filter.CustomerName != nil && strings.TrimSpace(*filter.CustomerName) != "" {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"c.name": "%" + escapeLike(strings.TrimSpace(*filter.CustomerName)) + "%"})
	}

	query, args, err := selectBuilder.
		OrderBy("r.reservation_date DESC", "s.start_time ASC", "r.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetails - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetails - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ReservationDetails, 0)
	for rows.Next() {
		details, err := scanDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDetails - scan row: %v", ErrScanRow, err)
		}
		result = append(result, details)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDetails - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Delete удаляет бронирование (отмена администратором)
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Count возвращает количество бронирований, при date != nil только на эту дату
func (r *Repository) Count(ctx context.Context, date *time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").From("reservations")
	if date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"reservation_date": date.Format(domain.DateFormat)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

func detailsQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(detailsColumns...).
		From("reservations r").
		Join("customers c ON c.id = r.customer_id").
		Join("time_slots s ON s.id = r.slot_id").
		Join("menu_items m ON m.id = r.menu_id").
		LeftJoin("coupon_usages u ON u.reservation_id = r.id").
		LeftJoin("coupons cp ON cp.id = u.coupon_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDetails(row rowScanner) (*domain.ReservationDetails, error) {
	var d domain.ReservationDetails
	var paymentIntentID, phone, couponCode sql.NullString

	err := row.Scan(
		&d.ID,
		&d.CustomerID,
		&d.SlotID,
		&d.MenuID,
		&d.ReservationDate,
		&d.NumberOfPeople,
		&d.BaseAmount,
		&d.DiscountAmount,
		&d.FinalAmount,
		&d.Currency,
		&paymentIntentID,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.Customer.Name,
		&d.Customer.Email,
		&phone,
		&d.StartTime,
		&d.EndTime,
		&d.MenuName,
		&couponCode,
	)
	if err != nil {
		return nil, err
	}

	d.Customer.ID = d.CustomerID
	d.Customer.PhoneNumber = phone.String
	if paymentIntentID.Valid {
		d.PaymentIntentID = &paymentIntentID.String
	}
	if couponCode.Valid {
		d.CouponCode = &couponCode.String
	}

	return &d, nil
}

// escapeLike экранирует спецсимволы шаблона LIKE
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
